// Package solver is the general-purpose route: subject probes pick an
// expert hint, one schema-bound LLM call produces the explanation, and
// the result is refined with expert notes and retrieval inputs.
package solver

import "github.com/luyichen/kaobang/internal/subject"

// GrammarRow is one row of the optional grammar table.
type GrammarRow struct {
	Pattern string `json:"pattern"`
	Note    string `json:"note"`
	Example string `json:"example"`
}

// ExplainResult is the fixed general-solver output shape.
type ExplainResult struct {
	Answer        string       `json:"answer"`
	Focus         string       `json:"focus"`
	Summary       string       `json:"summary"`
	Steps         []string     `json:"steps"`
	Details       []string     `json:"details"`
	GrammarTable  []GrammarRow `json:"grammarTable,omitempty"`
	Encouragement string       `json:"encouragement,omitempty"`
}

// Retrieval is the input shape for the downstream search collaborator.
// This package only shapes it, it never calls the service.
type Retrieval struct {
	BaseQuery   string   `json:"baseQuery"`
	Tags        []string `json:"tags"`
	SearchQuery string   `json:"searchQuery"`
}

// Response is one complete solve: classification trail, refined
// explanation and retrieval inputs. QuestionID is a content hash of
// the raw question text, so identical inputs get identical ids.
// Config echoes the effective tunables and Reason records the
// arbitration verdict, so consumers can audit the routing.
type Response struct {
	QuestionID string                    `json:"questionId"`
	Subject    subject.Subject           `json:"subject"`
	Guard      subject.HardGuardDecision `json:"guard"`
	Probes     []subject.ExpertProbe     `json:"probes"`
	Chosen     []subject.ExpertProbe     `json:"chosen"`
	Explain    ExplainResult             `json:"explain"`
	Retrieval  Retrieval                 `json:"retrieval"`
	Config     Config                    `json:"config"`
	Reason     string                    `json:"reason"`
}

// Config holds the solver tunables.
type Config struct {
	Arbiter subject.ArbiterConfig `json:"arbiter"`

	// MaxTokens bounds the explanation call. Default 2048.
	MaxTokens int `json:"maxTokens"`

	// BaseQueryMaxRunes caps the retrieval base query. Default 80.
	BaseQueryMaxRunes int `json:"baseQueryMaxRunes"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Arbiter:           subject.DefaultArbiterConfig(),
		MaxTokens:         2048,
		BaseQueryMaxRunes: 80,
	}
}
