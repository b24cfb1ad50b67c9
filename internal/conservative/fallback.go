package conservative

// FallbackAnswer builds the minimally-populated answer for one
// taxonomy value. It is always shape-correct: the returned Answer's
// Type equals t and the matching variant is non-nil, so consumers can
// pattern-match without null checks even when every LLM call failed.
func FallbackAnswer(t QuestionType) Answer {
	a := Answer{Type: t}

	switch t {
	case TypeVocab:
		a.Vocab = &VocabAnswer{
			OneLineReason:     "無資料",
			DistractorRejects: []DistractorReject{},
		}
	case TypeCloze, TypeFillInCloze:
		a.Cloze = &ClozeAnswer{Slots: []ClozeSlot{}}
	case TypeReading:
		a.Reading = &ReadingAnswer{OneLineReason: "無資料"}
	case TypeDiscourse:
		a.Discourse = &DiscourseAnswer{Slots: []ClozeSlot{}}
	case TypeTranslation:
		a.Translation = &TranslationAnswer{KeyPoints: []string{}}
	case TypeWriting:
		a.Writing = &WritingAnswer{Outline: []string{}}
	default:
		a.Type = TypeCloze
		a.Cloze = &ClozeAnswer{Slots: []ClozeSlot{}}
	}

	return a
}
