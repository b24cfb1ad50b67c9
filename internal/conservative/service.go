package conservative

import (
	"context"

	"github.com/luyichen/kaobang/internal/llm"
)

// Config holds the explainer tunables.
type Config struct {
	// DetectMaxTokens bounds the type-detection call. Default 128.
	DetectMaxTokens int

	// ExplainMaxTokens bounds the explanation call. Default 2048.
	ExplainMaxTokens int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		DetectMaxTokens:  128,
		ExplainMaxTokens: 2048,
	}
}

// Service runs the two-step detect→explain state machine.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates the conservative explainer on the given provider
// with default tunables.
func NewService(provider llm.Provider) *Service {
	return NewServiceWithConfig(provider, DefaultConfig())
}

func NewServiceWithConfig(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Run executes detect then explain and always returns a well-typed
// Result: Answer.Type equals DetectedType even when both LLM calls
// fail. Confidence is high on a clean run, medium when the type was
// coerced, low when the answer is a fallback.
func (s *Service) Run(ctx context.Context, text string) Result {
	detected, detectNotes := s.DetectType(ctx, text)
	answer, explainNotes := s.Explain(ctx, text, detected)

	confidence := ConfidenceHigh
	if len(detectNotes) > 0 {
		confidence = ConfidenceMedium
	}
	if len(explainNotes) > 0 {
		confidence = ConfidenceLow
	}

	return Result{
		DetectedType: detected,
		Answer:       answer,
		Confidence:   confidence,
		Notes:        append(detectNotes, explainNotes...),
	}
}
