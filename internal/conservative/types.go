// Package conservative is the self-diagnosing explainer: it detects a
// fine-grained question type from a closed taxonomy and requests a
// strictly-shaped, slot-by-slot explanation, falling back to a typed
// minimal answer on any failure.
package conservative

// QuestionType is the closed taxonomy of exam question templates.
type QuestionType string

const (
	TypeVocab       QuestionType = "E1_VOCAB"
	TypeCloze       QuestionType = "E2_CLOZE"
	TypeFillInCloze QuestionType = "E3_FILL_IN_CLOZE"
	TypeReading     QuestionType = "E4_READING"
	TypeDiscourse   QuestionType = "E5_DISCOURSE"
	TypeTranslation QuestionType = "E5_TRANSLATION"
	TypeWriting     QuestionType = "E6_WRITING"
)

// AllTypes lists every taxonomy value.
func AllTypes() []QuestionType {
	return []QuestionType{
		TypeVocab, TypeCloze, TypeFillInCloze, TypeReading,
		TypeDiscourse, TypeTranslation, TypeWriting,
	}
}

// ParseQuestionType maps a raw string onto the taxonomy. Unknown
// values coerce to the safe default TypeCloze, the most common and
// most forgiving template downstream.
func ParseQuestionType(raw string) (QuestionType, bool) {
	t := QuestionType(raw)
	for _, known := range AllTypes() {
		if t == known {
			return t, true
		}
	}
	return TypeCloze, false
}

// Confidence is the coarse self-assessment attached to a Result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// DistractorReject explains why one wrong option does not fit.
type DistractorReject struct {
	Option string `json:"option"`
	Reason string `json:"reason"`
}

// ClozeSlot is one answerable blank with its own distractor analysis.
type ClozeSlot struct {
	Index             int                `json:"index"`
	Answer            string             `json:"answer"`
	OneLineReason     string             `json:"one_line_reason"`
	DistractorRejects []DistractorReject `json:"distractor_rejects"`
}

// VocabAnswer is the E1_VOCAB variant.
type VocabAnswer struct {
	Answer            string             `json:"answer"`
	WordMeaning       string             `json:"word_meaning"`
	OneLineReason     string             `json:"one_line_reason"`
	DistractorRejects []DistractorReject `json:"distractor_rejects"`
}

// ClozeAnswer is the slot-by-slot variant shared by E2_CLOZE and
// E3_FILL_IN_CLOZE.
type ClozeAnswer struct {
	Slots []ClozeSlot `json:"slots"`
}

// ReadingAnswer is the E4_READING variant. EvidenceSentence must be a
// verbatim sentence from the original passage.
type ReadingAnswer struct {
	Answer           string `json:"answer"`
	EvidenceSentence string `json:"evidence_sentence"`
	OneLineReason    string `json:"one_line_reason"`
}

// DiscourseAnswer is the E5_DISCOURSE variant: sentence-insertion
// slots with full distractor coverage.
type DiscourseAnswer struct {
	Slots []ClozeSlot `json:"slots"`
}

// TranslationAnswer is the E5_TRANSLATION variant.
type TranslationAnswer struct {
	Translation string   `json:"translation"`
	KeyPoints   []string `json:"key_points"`
}

// WritingAnswer is the E6_WRITING variant.
type WritingAnswer struct {
	Outline       []string `json:"outline"`
	SampleOpening string   `json:"sample_opening"`
}

// Answer is the tagged union keyed by Type. Exactly the variant
// matching Type is non-nil; consumers switch on Type and never
// null-check the rest.
type Answer struct {
	Type        QuestionType       `json:"type"`
	Vocab       *VocabAnswer       `json:"vocab,omitempty"`
	Cloze       *ClozeAnswer       `json:"cloze,omitempty"`
	Reading     *ReadingAnswer     `json:"reading,omitempty"`
	Discourse   *DiscourseAnswer   `json:"discourse,omitempty"`
	Translation *TranslationAnswer `json:"translation,omitempty"`
	Writing     *WritingAnswer     `json:"writing,omitempty"`
}

// Result is the terminal output of one detect→explain run. It is
// always fully populated: Answer.Type equals DetectedType even when
// every LLM call failed.
type Result struct {
	DetectedType QuestionType `json:"detected_type"`
	Answer       Answer       `json:"answer"`
	Confidence   Confidence   `json:"confidence"`
	Notes        []string     `json:"notes,omitempty"`
}
