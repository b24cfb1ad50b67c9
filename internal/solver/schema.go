package solver

import "github.com/luyichen/kaobang/internal/llm"

func solveSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "general-solve",
		Description: "Structured step-by-step explanation for one exam question.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":  map[string]any{"type": "string"},
				"focus":   map[string]any{"type": "string"},
				"summary": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 3,
					"maxItems": 5,
				},
				"details": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 4,
				},
				"grammarTable": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"pattern": map[string]any{"type": "string"},
							"note":    map[string]any{"type": "string"},
							"example": map[string]any{"type": "string"},
						},
						"required":             []any{"pattern", "note", "example"},
						"additionalProperties": false,
					},
				},
				"encouragement": map[string]any{"type": "string"},
			},
			"required":             []any{"answer", "focus", "summary", "steps", "details"},
			"additionalProperties": false,
		},
	}
}
