package qset

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// parenOption matches "(A)" style markers, tolerating full-width
	// leftovers in case the caller skipped normalization.
	parenOption = regexp.MustCompile(`[（(]([A-OＡ-Ｏ])[)）]`)

	// dotOption matches "A." / "A、" markers at line starts.
	dotOption = regexp.MustCompile(`(?m)^[ \t]*([A-O])[.、．]\s*`)
)

type optionMarker struct {
	label string
	start int // byte offset of the marker
	end   int // byte offset just past the marker
}

// ExtractOptions finds lettered options and the free text that follows
// each. Text between option N and option N+1 is attributed entirely to
// option N; there is no lookahead beyond the next marker.
func ExtractOptions(text string) []OptionStat {
	markers := findOptionMarkers(text)
	if len(markers) == 0 {
		return nil
	}

	stats := make([]OptionStat, 0, len(markers))
	for i, m := range markers {
		limit := len(text)
		if i+1 < len(markers) {
			limit = markers[i+1].start
		}
		body := strings.TrimSpace(text[m.end:limit])
		stats = append(stats, newOptionStat(m.label, body))
	}
	return stats
}

func findOptionMarkers(text string) []optionMarker {
	var markers []optionMarker
	for _, loc := range parenOption.FindAllStringSubmatchIndex(text, -1) {
		markers = append(markers, optionMarker{
			label: foldLabel(text[loc[2]:loc[3]]),
			start: loc[0],
			end:   loc[1],
		})
	}
	for _, loc := range dotOption.FindAllStringSubmatchIndex(text, -1) {
		markers = append(markers, optionMarker{
			label: text[loc[2]:loc[3]],
			start: loc[0],
			end:   loc[1],
		})
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })
	return markers
}

// foldLabel maps a full-width option letter to half-width.
func foldLabel(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r >= 'Ａ' && r <= 'Ｏ' {
		r = r - 'Ａ' + 'A'
	}
	return string(r)
}

func newOptionStat(label, body string) OptionStat {
	tokens := countTokens(body)
	punct := endsWithSentencePunct(body)
	return OptionStat{
		Label:               label,
		Text:                body,
		Tokens:              tokens,
		EndsWithPunctuation: punct,
		IsShort:             tokens <= 3 && !punct,
	}
}

// countTokens counts whitespace-separated words; runs of Han characters
// count one token per rune since Chinese has no word spacing.
func countTokens(s string) int {
	tokens := 0
	for _, field := range strings.Fields(s) {
		han := 0
		other := false
		for _, r := range field {
			if unicode.Is(unicode.Han, r) {
				han++
			} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
				other = true
			}
		}
		tokens += han
		if other || (han == 0 && field != "") {
			tokens++
		}
	}
	return tokens
}

func endsWithSentencePunct(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case '.', '!', '?', ';', '。', '！', '？', '；':
		return true
	}
	return false
}
