// Package llm wraps the LLM vendors behind one structured-output
// interface. Every call in the ingestion core goes through Provider:
// prompt in, schema-validated JSON out, or a typed error.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider is the single abstraction for LLM interaction.
type Provider interface {
	// Generate sends one request and returns structured output. When
	// the request carries a Schema, Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes one LLM call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Ingestion calls are single-turn:
	// one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response before returning it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (tool name for Anthropic,
	// schema name for OpenAI).
	Name string

	// Description guides generation; sent to the model.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is one model reply.
type Response struct {
	// Content is the generated JSON (validated when a Schema was set),
	// or raw text wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// GenerateInto runs one schema-bound call and decodes the validated
// JSON into out. It is the typed entry point the ingestion pipeline
// uses for every generation.
func GenerateInto(ctx context.Context, p Provider, req Request, out any) error {
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
