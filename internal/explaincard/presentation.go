package explaincard

import (
	"strings"
	"unicode/utf8"
)

const (
	maxBullets    = 3
	maxZHSegments = 2
	maxReasonLen  = 20 // characters, not bytes
	noData        = "無資料"
)

// posAbbrev maps spelled-out part-of-speech names to their compact
// forms. Values get a trailing "." except the literal "idiom".
var posAbbrev = map[string]string{
	"noun":         "n",
	"verb":         "v",
	"adjective":    "adj",
	"adverb":       "adv",
	"preposition":  "prep",
	"conjunction":  "conj",
	"pronoun":      "pron",
	"interjection": "interj",
	"determiner":   "det",
	"auxiliary":    "aux",
	"phrase":       "phr",
	"idiom":        "idiom",
}

// createPresentation derives the display view from the normalized
// fields. Called once, at normalization time.
func createPresentation(card *NormalizedCard) ExplainView {
	view := ExplainView{
		Bullets: reasoningBullets(card),
		Vocab:   contextVocab(card),
	}

	for _, opt := range card.Options {
		view.Options = append(view.Options, OptionView{
			Key:    opt.Key,
			Label:  opt.Label,
			POS:    compactPOS(opt.POS),
			ZH:     capZH(opt.ZH),
			Reason: displayReason(opt.Reason),
			Fit:    opt.Verdict == "fit",
		})
		if opt.Verdict == "fit" {
			view.CorrectKey = opt.Key
		}
	}
	if view.CorrectKey == "" && card.Correct != nil {
		view.CorrectKey = card.Correct.Key
	}

	return view
}

// reasoningBullets prefers cues; with no cues it falls back to step
// details. Deduplicated, capped at 3.
func reasoningBullets(card *NormalizedCard) []string {
	source := card.Cues
	if len(source) == 0 {
		for _, step := range card.Steps {
			if step.Detail != "" {
				source = append(source, step.Detail)
			}
		}
	}

	seen := make(map[string]bool)
	var bullets []string
	for _, s := range source {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		bullets = append(bullets, s)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}

// compactPOS splits a free-form part-of-speech string on "/", "," and
// whitespace, maps tokens through the abbreviation table, dedupes and
// suffixes each with "." except "idiom".
func compactPOS(pos string) string {
	tokens := strings.FieldsFunc(pos, func(r rune) bool {
		return r == '/' || r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(tok), "."))
		if tok == "" {
			continue
		}
		if abbr, ok := posAbbrev[tok]; ok {
			tok = abbr
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if tok != "idiom" {
			tok += "."
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// capZH keeps at most two semicolon-separated gloss segments.
func capZH(zh string) string {
	segments := strings.FieldsFunc(zh, func(r rune) bool {
		return r == ';' || r == '；'
	})
	var kept []string
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		kept = append(kept, seg)
		if len(kept) == maxZHSegments {
			break
		}
	}
	return strings.Join(kept, "；")
}

// displayReason truncates to 20 characters with an ellipsis, or
// substitutes the no-data placeholder when empty.
func displayReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return noData
	}
	if utf8.RuneCountInString(reason) > maxReasonLen {
		return string([]rune(reason)[:maxReasonLen]) + "…"
	}
	return reason
}
