package explaincard

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeCard turns any loosely-shaped payload into a canonical
// card. It is total: absent or malformed fields become empty values,
// never errors. The payload is searched under explanation.card, then
// card, then the value itself.
func NormalizeCard(raw any) NormalizedCard {
	payload := findPayload(raw)

	card := NormalizedCard{
		ID:          pickString(payload, "id", "questionId", "question_id"),
		Question:    pickString(payload, "question", "stem", "text"),
		Kind:        pickString(payload, "kind", "type"),
		Translation: pickString(payload, "translation", "translate", "cn"),
		Cues:        pickStrings(payload, "cues", "hints", "clues"),
		NextActions: pickStrings(payload, "nextActions", "next_actions", "actions"),
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	card.Options = normalizeOptions(pickSlice(payload, "options", "choices"))
	card.Steps = normalizeSteps(pickSlice(payload, "steps"))
	card.Correct = normalizeCorrect(payload, card.Options)
	card.Vocab = normalizeVocab(pickSlice(payload, "vocab", "vocabulary", "words"))

	card.Presentation = createPresentation(&card)
	return card
}

func findPayload(raw any) map[string]any {
	m := asMap(raw)
	if m == nil {
		return map[string]any{}
	}
	if exp := asMap(m["explanation"]); exp != nil {
		if card := asMap(exp["card"]); card != nil {
			return card
		}
	}
	if card := asMap(m["card"]); card != nil {
		return card
	}
	return m
}

func normalizeOptions(items []any) []CardOption {
	var options []CardOption
	fitSeen := false

	for i, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}

		opt := CardOption{
			Key:    pickString(m, "key", "id"),
			Label:  pickString(m, "label", "text", "word"),
			POS:    pickString(m, "pos", "partOfSpeech", "speech", "lexical"),
			ZH:     pickString(m, "zh", "translation", "chinese"),
			Reason: pickString(m, "reason", "why"),
		}
		if opt.Key == "" {
			// Synthesize A, B, C... so every option is addressable.
			opt.Key = string(rune('A' + i%26))
		}

		verdict := strings.ToLower(pickString(m, "verdict"))
		fit := verdict == "fit" || asBool(m["correct"]) || asBool(m["isCorrect"])
		if fit && !fitSeen {
			opt.Verdict = "fit"
			fitSeen = true
		} else {
			opt.Verdict = "unfit"
		}

		options = append(options, opt)
	}
	return options
}

func normalizeSteps(items []any) []CardStep {
	var steps []CardStep
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				steps = append(steps, CardStep{Title: v})
			}
		case map[string]any:
			step := CardStep{
				Title:  pickString(v, "title", "text", "step"),
				Detail: pickString(v, "detail", "details", "description"),
			}
			if step.Title != "" || step.Detail != "" {
				steps = append(steps, step)
			}
		}
	}
	return steps
}

func normalizeCorrect(payload map[string]any, options []CardOption) *CardCorrect {
	if m := asMap(payload["correct"]); m != nil {
		c := &CardCorrect{
			Key:    pickString(m, "key", "id"),
			Text:   pickString(m, "text", "label"),
			Reason: pickString(m, "reason", "why"),
		}
		if c.Key != "" || c.Text != "" {
			return c
		}
	}
	// Fall back to the option marked fit.
	for _, opt := range options {
		if opt.Verdict == "fit" {
			return &CardCorrect{Key: opt.Key, Text: opt.Label, Reason: opt.Reason}
		}
	}
	return nil
}

func normalizeVocab(items []any) []VocabEntry {
	var vocab []VocabEntry
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		entry := VocabEntry{
			Word: pickString(m, "word", "term", "text"),
			POS:  pickString(m, "pos", "partOfSpeech", "speech", "lexical"),
			ZH:   pickString(m, "zh", "translation", "chinese"),
			Note: pickString(m, "note", "notes", "memo"),
		}
		if entry.Word != "" {
			vocab = append(vocab, entry)
		}
	}
	return vocab
}

// alias-tolerant accessors

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func pickSlice(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if s, ok := m[k].([]any); ok {
			return s
		}
	}
	return nil
}

func pickStrings(m map[string]any, keys ...string) []string {
	var out []string
	for _, item := range pickSlice(m, keys...) {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
