package subject

import (
	"fmt"
	"regexp"
)

// guardPattern is one deterministic math signal class.
type guardPattern struct {
	name string
	re   *regexp.Regexp
}

// guardPatterns covers glyphs and tokens that essentially never appear
// in language questions. Equations are often interleaved with English
// instructions, so the softer expert scorers must never get a chance to
// outvote a match here.
var guardPatterns = []guardPattern{
	{"relation", regexp.MustCompile(`[=≠≈≤≥±]`)},
	{"operator", regexp.MustCompile(`[√∑∫π×÷^]|%(?:\s|$)`)},
	// Hyphen is deliberately absent: "1914-1918" is a year range in a
	// history stem, not a subtraction.
	{"arithmetic", regexp.MustCompile(`\d\s*[+*/]\s*\d`)},
	{"degree", regexp.MustCompile(`\d+\s*°`)},
	{"function", regexp.MustCompile(`\b(?:sin|cos|tan|cot|sec|csc|log|ln|sqrt)\b`)},
	{"latex", regexp.MustCompile(`\\(?:frac|sqrt|sum|int|lim|cdot|times|div|alpha|beta|theta|pi|left|right|begin|end)\b`)},
	{"braces", regexp.MustCompile(`[{}]`)},
}

const maxGuardTokens = 8

// RunHardGuard scans text for unambiguous math glyphs, function names
// and LaTeX commands. It returns SubjectMath iff at least one class
// matches, otherwise SubjectNone. There is no maybe: this decision
// overrides every probabilistic signal downstream.
func RunHardGuard(text string) HardGuardDecision {
	var tokens []string
	seen := map[string]bool{}
	firstClass := ""

	for _, p := range guardPatterns {
		for _, m := range p.re.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			tokens = append(tokens, m)
			if firstClass == "" {
				firstClass = p.name
			}
			if len(tokens) >= maxGuardTokens {
				break
			}
		}
	}

	if len(tokens) == 0 {
		return HardGuardDecision{Subject: SubjectNone, Reason: "no math tokens"}
	}
	return HardGuardDecision{
		Subject:       SubjectMath,
		Reason:        fmt.Sprintf("matched %s class (%d tokens)", firstClass, len(tokens)),
		MatchedTokens: tokens,
	}
}
