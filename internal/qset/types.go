// Package qset analyzes the structure of a multi-question text block:
// which options and blanks it contains and which structural kind
// (reading, cloze, banked cloze, sentence insertion) it represents.
// Classification is a layered heuristic decision table, not a grammar:
// signal quality differs drastically between clean digital text and
// OCR'd exam scans, and later rules exist to catch what earlier rules
// miss on degraded input.
package qset

// QuestionKind is the structural category of a question block.
type QuestionKind string

const (
	KindReading           QuestionKind = "reading"
	KindCloze             QuestionKind = "cloze"
	KindBankedCloze       QuestionKind = "banked_cloze"
	KindSentenceInsertion QuestionKind = "sentence_insertion"

	// KindUnknown means classification legitimately could not decide.
	// Callers must not auto-route on it; it is an output value, not an
	// error.
	KindUnknown QuestionKind = "unknown"
)

// OptionStat describes one detected lettered option.
type OptionStat struct {
	Label               string `json:"label"` // single letter A-O
	Text                string `json:"text"`
	Tokens              int    `json:"tokens"`
	EndsWithPunctuation bool   `json:"endsWithPunctuation"`
	IsShort             bool   `json:"isShort"` // tokens <= 3 and no final punctuation
}

// Blank is one numbered blank marker, canonicalized to "(n)" form.
type Blank struct {
	Index            int    `json:"blankIndex"`
	AnchorID         string `json:"anchorId"` // "blank-{n}", unique per passage
	Start            int    `json:"start"`    // rune offset of the marker
	End              int    `json:"end"`
	ParagraphIndex   int    `json:"paragraphIndex"` // 0-based, blank-line separated blocks
	NormalizedMarker string `json:"normalizedMarker"`
}

// QuestionBlockStat summarizes one numbered question inside a set.
// Instances live for the duration of a single analysis pass.
type QuestionBlockStat struct {
	Index          int          `json:"index"`
	Stem           string       `json:"stem"`
	Options        []OptionStat `json:"options"`
	HasBlankInStem bool         `json:"hasBlankInStem"`
}

// QuestionSetAnalysis is the full structural picture of one input.
// Kind is a pure function of the other fields: re-running analysis on
// identical input yields an identical Kind.
type QuestionSetAnalysis struct {
	Passage       string              `json:"passage"`
	PassageBlanks []Blank             `json:"passageBlanks"`
	GlobalBlanks  []Blank             `json:"globalBlanks"`
	Blocks        []QuestionBlockStat `json:"questionBlocks"`
	GlobalOptions []OptionStat        `json:"globalOptions"`
	WordBank      []OptionStat        `json:"wordBank"`
	Kind          QuestionKind        `json:"questionKind"`
	MatchedRule   string              `json:"matchedRule"`
	Warnings      []string            `json:"warnings"`
}

// Config holds the analyzer tunables, passed explicitly so goldset runs
// and tests can vary them without process-wide state.
type Config struct {
	// MinBankSize is the minimum passage option count to call the
	// passage options a word bank.
	MinBankSize int

	// ShortRatio is the option-shortness ratio gate.
	ShortRatio float64

	// SentenceRatio is the sentence-like-option ratio gate.
	SentenceRatio float64

	// SentenceMinTokens marks an option sentence-like when it has at
	// least this many tokens even without final punctuation.
	SentenceMinTokens int

	// MinAvgOptions is the average options-per-question gate for the
	// reading rule.
	MinAvgOptions float64

	// ExcludeYears drops parenthesized 1900-2099 numbers from blank
	// detection. See the open-question note in DESIGN.md.
	ExcludeYears bool
}

// DefaultConfig returns the values tuned against the goldset.
func DefaultConfig() Config {
	return Config{
		MinBankSize:       4,
		ShortRatio:        0.6,
		SentenceRatio:     0.6,
		SentenceMinTokens: 8,
		MinAvgOptions:     3.5,
		ExcludeYears:      true,
	}
}
