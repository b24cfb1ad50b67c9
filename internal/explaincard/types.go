// Package explaincard normalizes loosely-shaped explanation payloads
// into one canonical card. Input is whatever JSON an upstream model or
// route handler produced; output is always a fully-populated
// NormalizedCard, never an error.
package explaincard

// CardOption is one answer choice on the card. Key is never empty;
// at most one option per card has Verdict "fit".
type CardOption struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	POS     string `json:"pos,omitempty"`
	ZH      string `json:"zh,omitempty"`
	Verdict string `json:"verdict,omitempty"` // "fit" or "unfit"
	Reason  string `json:"reason,omitempty"`
}

// CardStep is one reasoning step.
type CardStep struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// CardCorrect identifies the correct choice.
type CardCorrect struct {
	Key    string `json:"key"`
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// VocabEntry is one vocabulary item, from upstream or mined out of the
// question stem.
type VocabEntry struct {
	Word string `json:"word"`
	POS  string `json:"pos,omitempty"`
	ZH   string `json:"zh,omitempty"`
	Note string `json:"note,omitempty"`
}

// OptionView is the display-ready form of one option: POS compacted,
// gloss capped, reason truncated or placeholdered.
type OptionView struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	POS    string `json:"pos"`
	ZH     string `json:"zh"`
	Reason string `json:"reason"`
	Fit    bool   `json:"fit"`
}

// ExplainView is the derived presentation. It is computed once at
// normalization time so renderers never re-derive it.
type ExplainView struct {
	Bullets    []string     `json:"bullets"`
	Options    []OptionView `json:"options"`
	CorrectKey string       `json:"correctKey"`
	Vocab      []VocabEntry `json:"vocab"`
}

// NormalizedCard is the canonical explanation shape.
type NormalizedCard struct {
	ID           string       `json:"id"`
	Question     string       `json:"question"`
	Kind         string       `json:"kind"`
	Translation  string       `json:"translation,omitempty"`
	Cues         []string     `json:"cues"`
	Options      []CardOption `json:"options"`
	Steps        []CardStep   `json:"steps"`
	Correct      *CardCorrect `json:"correct,omitempty"`
	Vocab        []VocabEntry `json:"vocab"`
	NextActions  []string     `json:"nextActions"`
	Presentation ExplainView  `json:"presentation"`
}
