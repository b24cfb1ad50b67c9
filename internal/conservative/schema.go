package conservative

import "github.com/luyichen/kaobang/internal/llm"

func detectSchema() *llm.Schema {
	types := make([]any, 0, len(AllTypes()))
	for _, t := range AllTypes() {
		types = append(types, string(t))
	}
	return &llm.Schema{
		Name:        "conservative-detect",
		Description: "Classify the exam question into exactly one template type.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": map[string]any{"type": "string", "enum": types},
			},
			"required":             []any{"type"},
			"additionalProperties": false,
		},
	}
}

func distractorRejectsSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"option": map[string]any{"type": "string"},
				"reason": map[string]any{"type": "string"},
			},
			"required":             []any{"option", "reason"},
			"additionalProperties": false,
		},
	}
}

func slotsSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"index":              map[string]any{"type": "integer"},
				"answer":             map[string]any{"type": "string"},
				"one_line_reason":    map[string]any{"type": "string"},
				"distractor_rejects": distractorRejectsSchema(),
			},
			"required":             []any{"index", "answer", "one_line_reason", "distractor_rejects"},
			"additionalProperties": false,
		},
	}
}

// explainSchema returns the fixed output shape for one taxonomy value.
func explainSchema(t QuestionType) *llm.Schema {
	var def map[string]any

	switch t {
	case TypeVocab:
		def = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":             map[string]any{"type": "string"},
				"word_meaning":       map[string]any{"type": "string"},
				"one_line_reason":    map[string]any{"type": "string"},
				"distractor_rejects": distractorRejectsSchema(),
			},
			"required":             []any{"answer", "word_meaning", "one_line_reason", "distractor_rejects"},
			"additionalProperties": false,
		}
	case TypeCloze, TypeFillInCloze, TypeDiscourse:
		def = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"slots": slotsSchema(),
			},
			"required":             []any{"slots"},
			"additionalProperties": false,
		}
	case TypeReading:
		def = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":            map[string]any{"type": "string"},
				"evidence_sentence": map[string]any{"type": "string"},
				"one_line_reason":   map[string]any{"type": "string"},
			},
			"required":             []any{"answer", "evidence_sentence", "one_line_reason"},
			"additionalProperties": false,
		}
	case TypeTranslation:
		def = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"translation": map[string]any{"type": "string"},
				"key_points":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []any{"translation", "key_points"},
			"additionalProperties": false,
		}
	case TypeWriting:
		def = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"outline":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"sample_opening": map[string]any{"type": "string"},
			},
			"required":             []any{"outline", "sample_opening"},
			"additionalProperties": false,
		}
	}

	return &llm.Schema{
		Name:        "conservative-explain-" + string(t),
		Description: "Strictly-shaped explanation for one question template.",
		Definition:  def,
	}
}
