package qset

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/luyichen/kaobang/internal/textnorm"
)

var (
	lineNumMarker = regexp.MustCompile(`(?m)^[ \t]*(\d{1,2})[.)、．][ \t]*`)
	qNumMarker    = regexp.MustCompile(`(?mi)^[ \t]*Q(\d{1,2})[.:：]?[ \t]*`)

	// parenCombo is a parenthesized question index immediately followed
	// by a parenthesized option letter, a common OCR'd exam layout.
	// The second group marks where the question body starts.
	parenCombo = regexp.MustCompile(`\((\d{1,2})\)[ \t]*(\([A-O]\))`)
)

type qMarker struct {
	index     int
	start     int // byte offset where the block begins (marker included)
	bodyStart int // byte offset of the question body
}

// Analyze normalizes raw text and classifies its question-set
// structure. It is total and deterministic: identical input always
// yields the identical analysis, and malformed input degrades to
// KindUnknown rather than failing.
func Analyze(raw string, cfg Config) QuestionSetAnalysis {
	text := textnorm.Normalize(raw)

	markers := findQuestionMarkers(text)

	passage := text
	if len(markers) > 0 {
		passage = text[:markers[0].start]
	}

	var blocks []QuestionBlockStat
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		blocks = append(blocks, buildBlock(m, text[m.bodyStart:end], cfg))
	}

	passageBlanks, passageWarnings := ExtractBlanks(passage, cfg)
	globalBlanks, globalWarnings := ExtractBlanks(text, cfg)

	a := QuestionSetAnalysis{
		Passage:       strings.TrimSpace(passage),
		PassageBlanks: passageBlanks,
		GlobalBlanks:  globalBlanks,
		Blocks:        blocks,
		GlobalOptions: ExtractOptions(text),
		WordBank:      ExtractOptions(passage),
		Warnings:      mergeWarnings(passageWarnings, globalWarnings),
	}
	a.Kind, a.MatchedRule = determineKind(&a, cfg)
	return a
}

func buildBlock(m qMarker, body string, cfg Config) QuestionBlockStat {
	stem := body
	if opts := findOptionMarkers(body); len(opts) > 0 {
		stem = body[:opts[0].start]
	}
	stemBlanks, _ := ExtractBlanks(stem, cfg)
	hasUnderscore := underscoreBlank.MatchString(stem)

	return QuestionBlockStat{
		Index:          m.index,
		Stem:           strings.TrimSpace(stem),
		Options:        ExtractOptions(body),
		HasBlankInStem: len(stemBlanks) > 0 || hasUnderscore,
	}
}

func findQuestionMarkers(text string) []qMarker {
	var markers []qMarker

	for _, loc := range lineNumMarker.FindAllStringSubmatchIndex(text, -1) {
		n, _ := strconv.Atoi(text[loc[2]:loc[3]])
		markers = append(markers, qMarker{index: n, start: loc[0], bodyStart: loc[1]})
	}
	for _, loc := range qNumMarker.FindAllStringSubmatchIndex(text, -1) {
		n, _ := strconv.Atoi(text[loc[2]:loc[3]])
		markers = append(markers, qMarker{index: n, start: loc[0], bodyStart: loc[1]})
	}
	for _, loc := range parenCombo.FindAllStringSubmatchIndex(text, -1) {
		n, _ := strconv.Atoi(text[loc[2]:loc[3]])
		// The body starts at the option marker, which stays part of the
		// block so option extraction can see it.
		markers = append(markers, qMarker{index: n, start: loc[0], bodyStart: loc[4]})
	}

	dedupeAndSortMarkers(&markers)
	return markers
}

// mergeWarnings concatenates warning sets from the passage and global
// blank passes, dropping exact duplicates in order.
func mergeWarnings(sets ...[]string) []string {
	seen := map[string]bool{}
	var merged []string
	for _, set := range sets {
		for _, w := range set {
			if seen[w] {
				continue
			}
			seen[w] = true
			merged = append(merged, w)
		}
	}
	return merged
}

// dedupeAndSortMarkers orders markers by position and drops overlaps
// (the same question matched by two marker forms).
func dedupeAndSortMarkers(markers *[]qMarker) {
	ms := *markers
	if len(ms) == 0 {
		return
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].start < ms[j].start })
	out := ms[:1]
	for _, m := range ms[1:] {
		last := out[len(out)-1]
		if m.start < last.bodyStart {
			continue
		}
		out = append(out, m)
	}
	*markers = out
}
