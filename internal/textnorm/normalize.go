// Package textnorm canonicalizes student-submitted question text before
// any classification runs. Input is frequently OCR output with mixed
// full/half-width characters, so every downstream regex assumes the
// canonical form produced here.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// circledDigits maps circled-number glyphs to their plain value.
// Rewritten to "(n)" before NFKC, which would otherwise strip the
// circle and leave a bare digit that no blank marker regex can find.
var circledDigits = map[rune]string{
	'①': "1", '②': "2", '③': "3", '④': "4", '⑤': "5",
	'⑥': "6", '⑦': "7", '⑧': "8", '⑨': "9", '⑩': "10",
	'❶': "1", '❷': "2", '❸': "3", '❹': "4", '❺': "5",
	'❻': "6", '❼': "7", '❽': "8", '❾': "9", '❿': "10",
}

var (
	spaceRuns = regexp.MustCompile(`[ \t]{2,}`)

	// markerBreak matches sentence-final punctuation glued to the next
	// question or blank marker. OCR tends to drop the line break there,
	// which hides the marker from the block splitter.
	markerBreak = regexp.MustCompile(`([。！？!?;])[ \t]*((?:\(\d{1,2}\))|(?:\d{1,2}[.)、])|(?:\([A-O]\))|(?:Q\d+))`)
)

// Normalize canonicalizes raw question text. It is total (never fails on
// any input) and idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// Guarantees on the output: half-width ASCII letters and digits,
// half-width parentheses, single spaces, ";" instead of "；", LF line
// endings, no zero-width characters.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 0x200B || r == 0x200C || r == 0x200D || r == 0x2060 || r == 0xFEFF:
			// Zero-width marks and BOMs carry no content.
		case circledDigits[r] != "":
			b.WriteString("(")
			b.WriteString(circledDigits[r])
			b.WriteString(")")
		default:
			b.WriteRune(r)
		}
	}

	// NFKC folds full-width Latin letters, digits, parentheses,
	// ideographic spaces and the full-width semicolon in one pass.
	s = norm.NFKC.String(b.String())

	s = spaceRuns.ReplaceAllString(s, " ")
	s = markerBreak.ReplaceAllString(s, "$1\n$2")

	return s
}
