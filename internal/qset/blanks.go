package qset

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	parenBlank = regexp.MustCompile(`[（(]\s*(\d{1,4})\s*[)）]`)

	// circledBlank handles raw input that skipped textnorm, where
	// circled glyphs still exist.
	circledBlank = regexp.MustCompile(`[①②③④⑤⑥⑦⑧⑨⑩❶❷❸❹❺❻❼❽❾❿]`)

	// underscoreBlank matches hand-drawn blanks: 2+ underscores of
	// either width.
	underscoreBlank = regexp.MustCompile(`[_＿]{2,}`)
)

var circledValue = map[rune]int{
	'①': 1, '②': 2, '③': 3, '④': 4, '⑤': 5, '⑥': 6, '⑦': 7, '⑧': 8, '⑨': 9, '⑩': 10,
	'❶': 1, '❷': 2, '❸': 3, '❹': 4, '❺': 5, '❻': 6, '❼': 7, '❽': 8, '❾': 9, '❿': 10,
}

type blankMatch struct {
	index int // 0 when the marker carries no number (underscore runs)
	start int
	end   int
}

// ExtractBlanks finds numbered blanks in every supported marker form
// and canonicalizes them to "(n)". Anchors are unique within the text:
// a colliding explicit number is renumbered to the next free slot.
// Finding fewer than 2 blanks produces a warning, not an error, since
// most supported question types need at least two.
func ExtractBlanks(text string, cfg Config) ([]Blank, []string) {
	var matches []blankMatch

	for _, loc := range parenBlank.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(foldDigits(text[loc[2]:loc[3]]))
		if err != nil || n == 0 {
			continue
		}
		// Go's RE2 has no lookahead, so the year exclusion lives here
		// instead of in the marker pattern.
		if cfg.ExcludeYears && n >= 1900 && n <= 2099 {
			continue
		}
		matches = append(matches, blankMatch{index: n, start: loc[0], end: loc[1]})
	}

	for _, loc := range circledBlank.FindAllStringIndex(text, -1) {
		for _, r := range text[loc[0]:loc[1]] {
			matches = append(matches, blankMatch{index: circledValue[r], start: loc[0], end: loc[1]})
		}
	}

	for _, loc := range underscoreBlank.FindAllStringIndex(text, -1) {
		matches = append(matches, blankMatch{start: loc[0], end: loc[1]})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	used := map[int]bool{}
	blanks := make([]Blank, 0, len(matches))
	for _, m := range matches {
		n := m.index
		if n == 0 {
			n = len(blanks) + 1
		}
		for used[n] {
			n++
		}
		used[n] = true

		blanks = append(blanks, Blank{
			Index:            n,
			AnchorID:         fmt.Sprintf("blank-%d", n),
			Start:            runeOffset(text, m.start),
			End:              runeOffset(text, m.end),
			ParagraphIndex:   paragraphIndexAt(text, m.start),
			NormalizedMarker: fmt.Sprintf("(%d)", n),
		})
	}

	var warnings []string
	if len(blanks) < 2 {
		warnings = append(warnings, fmt.Sprintf("only %d blank(s) detected; most question types need at least 2", len(blanks)))
	}
	return blanks, warnings
}

// foldDigits maps full-width digits to ASCII.
func foldDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '０' && r <= '９' {
			r = r - '０' + '0'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// runeOffset converts a byte offset into a rune offset. Char spans are
// rune-based so UI anchors survive multi-byte CJK text.
func runeOffset(text string, byteOff int) int {
	return len([]rune(text[:byteOff]))
}

var blankLineRun = regexp.MustCompile(`\n{2,}`)

// paragraphIndexAt counts blank-line-separated blocks before the offset.
func paragraphIndexAt(text string, byteOff int) int {
	prefix := strings.TrimLeft(text[:byteOff], "\n")
	return len(blankLineRun.FindAllString(prefix, -1))
}
