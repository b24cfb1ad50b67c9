package solver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/subject"
	"github.com/luyichen/kaobang/internal/textnorm"
)

const solveSystem = `你是台灣國高中生的全科解題家教。針對題目給出結構化講解，只回傳 JSON：
answer 為最終答案；focus 為本題考點；summary 為一句話總結；
steps 為 3 到 5 個解題步驟；details 為 2 到 4 條延伸說明；
若為英文文法題可附 grammarTable；encouragement 為給學生的一句鼓勵。`

// Solver runs the general route: classify, solve, refine.
type Solver struct {
	provider llm.Provider
	prober   *subject.Prober
	cfg      Config
}

// New creates a Solver. A nil prober gets the default detector-backed
// one.
func New(provider llm.Provider, prober *subject.Prober, cfg Config) *Solver {
	if prober == nil {
		prober = subject.NewProber()
	}
	return &Solver{provider: provider, prober: prober, cfg: cfg}
}

// Solve classifies the question, makes one schema-bound LLM call and
// refines the result. A schema or decode failure on the LLM reply is
// fatal to the call and surfaces as a typed error; there is no silent
// fallback on this route.
func (s *Solver) Solve(ctx context.Context, text string) (*Response, error) {
	ctx = llm.WithPurpose(ctx, "hybrid-solve")

	// Classification runs on the canonical form: the guard's glyph
	// classes are half-width, so full-width OCR input must be folded
	// before it is scanned.
	normalized := textnorm.Normalize(text)

	guard := subject.RunHardGuard(normalized)
	probes := s.prober.Probe(normalized)
	chosen := subject.PickExperts(probes, s.cfg.Arbiter)
	hint := subject.DeriveSubjectHint(guard, chosen)

	var explain ExplainResult
	err := llm.GenerateInto(ctx, s.provider, llm.Request{
		System: solveSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: solvePrompt(normalized, hint)},
		},
		Schema:    solveSchema(),
		MaxTokens: s.cfg.MaxTokens,
	}, &explain)
	if err != nil {
		return nil, fmt.Errorf("general solve: %w", err)
	}

	refineExplanation(&explain, chosen)

	return &Response{
		// The id identifies the submission, not the canonical form, so
		// it hashes the raw text.
		QuestionID: questionID(text),
		Subject:    hint,
		Guard:      guard,
		Probes:     probes,
		Chosen:     chosen,
		Explain:    explain,
		Retrieval:  buildRetrieval(normalized, hint, chosen, s.cfg),
		Config:     s.cfg,
		Reason:     arbitrationReason(guard, chosen, s.cfg.Arbiter),
	}, nil
}

// arbitrationReason summarizes the routing decision for consumers that
// need to audit why a question went to a given subject.
func arbitrationReason(guard subject.HardGuardDecision, chosen []subject.ExpertProbe, cfg subject.ArbiterConfig) string {
	if guard.Subject == subject.SubjectMath {
		return "hard guard: " + guard.Reason
	}
	if len(chosen) == 0 {
		return fmt.Sprintf("no expert at or above threshold %.2f; subject unknown", cfg.Threshold)
	}
	e := chosen[0]
	return fmt.Sprintf("expert %s (%.2f) cleared threshold %.2f", e.Subject, e.Confidence, cfg.Threshold)
}

func solvePrompt(text string, hint subject.Subject) string {
	if label := subjectLabel(hint); label != "" {
		return fmt.Sprintf("科目：%s\n題目：\n%s", label, text)
	}
	return "題目：\n" + text
}

// questionID hashes the raw question text so identical inputs are
// idempotently identifiable.
func questionID(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

func subjectLabel(s subject.Subject) string {
	switch s {
	case subject.SubjectEnglish:
		return "英文"
	case subject.SubjectMath:
		return "數學"
	case subject.SubjectChinese:
		return "國文"
	case subject.SubjectSocial:
		return "社會"
	case subject.SubjectScience:
		return "自然"
	}
	return ""
}
