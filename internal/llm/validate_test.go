package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{
					"type": "string",
					"enum": []any{"A", "B", "C", "D"},
				},
				"confidence": map[string]any{"type": "number"},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"answer":"B","confidence":0.9}`))
	if err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"confidence":0.9}`},
		{"enum violation", `{"answer":"E"}`},
		{"extra property", `{"answer":"A","extra":1}`},
		{"not JSON", `answer: A`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tc.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("got %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestGenerateIntoDecodes(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"answer":"C"}`)})

	var out struct {
		Answer string `json:"answer"`
	}
	if err := GenerateInto(context.Background(), mock, Request{}, &out); err != nil {
		t.Fatalf("GenerateInto: %v", err)
	}
	if out.Answer != "C" {
		t.Errorf("Answer = %q, want %q", out.Answer, "C")
	}
}
