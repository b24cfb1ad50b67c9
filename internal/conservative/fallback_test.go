package conservative

import "testing"

func TestFallbackAnswerMatchesRequestedType(t *testing.T) {
	for _, qt := range AllTypes() {
		a := FallbackAnswer(qt)
		if a.Type != qt {
			t.Errorf("FallbackAnswer(%s).Type = %s", qt, a.Type)
		}
	}
}

func TestFallbackAnswerVariantPopulated(t *testing.T) {
	cases := []struct {
		qt  QuestionType
		has func(Answer) bool
	}{
		{TypeVocab, func(a Answer) bool { return a.Vocab != nil }},
		{TypeCloze, func(a Answer) bool { return a.Cloze != nil }},
		{TypeFillInCloze, func(a Answer) bool { return a.Cloze != nil }},
		{TypeReading, func(a Answer) bool { return a.Reading != nil }},
		{TypeDiscourse, func(a Answer) bool { return a.Discourse != nil }},
		{TypeTranslation, func(a Answer) bool { return a.Translation != nil }},
		{TypeWriting, func(a Answer) bool { return a.Writing != nil }},
	}
	for _, tc := range cases {
		if !tc.has(FallbackAnswer(tc.qt)) {
			t.Errorf("FallbackAnswer(%s): variant is nil", tc.qt)
		}
	}
}

func TestFallbackSlotsNeverNil(t *testing.T) {
	a := FallbackAnswer(TypeCloze)
	if a.Cloze.Slots == nil {
		t.Error("fallback cloze slots should be an empty slice, not nil")
	}
}

func TestParseQuestionTypeCoercion(t *testing.T) {
	got, ok := ParseQuestionType("E9_NONSENSE")
	if ok {
		t.Error("unknown type reported as known")
	}
	if got != TypeCloze {
		t.Errorf("coerced to %s, want %s", got, TypeCloze)
	}

	got, ok = ParseQuestionType("E4_READING")
	if !ok || got != TypeReading {
		t.Errorf("ParseQuestionType(E4_READING) = %s, %v", got, ok)
	}
}
