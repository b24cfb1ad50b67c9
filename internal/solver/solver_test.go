package solver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/subject"
)

const englishQuestion = `Choose the best answer. The manager asked everyone to ( ) their reports by Friday.
(A) submit (B) omit (C) permit (D) admit`

func validExplainJSON() json.RawMessage {
	return json.RawMessage(`{
		"answer": "A",
		"focus": "動詞辨析",
		"summary": "submit 表示繳交報告",
		"steps": ["找出空格後的受詞 reports", "判斷語意為繳交", "選 submit"],
		"details": ["omit 是省略", "permit 是允許"]
	}`)
}

func TestSolveProducesStableQuestionID(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplainJSON()},
		llm.MockResponse{Content: validExplainJSON()},
	)
	s := New(mock, nil, DefaultConfig())

	first, err := s.Solve(context.Background(), englishQuestion)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	second, err := s.Solve(context.Background(), englishQuestion)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if first.QuestionID == "" {
		t.Fatal("empty QuestionID")
	}
	if first.QuestionID != second.QuestionID {
		t.Errorf("QuestionID not stable: %s vs %s", first.QuestionID, second.QuestionID)
	}
	if len(first.QuestionID) != 40 {
		t.Errorf("QuestionID length = %d, want 40 hex chars", len(first.QuestionID))
	}
}

func TestSolveClassifiesEnglish(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplainJSON()})
	s := New(mock, nil, DefaultConfig())

	resp, err := s.Solve(context.Background(), englishQuestion)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if resp.Subject != subject.SubjectEnglish {
		t.Errorf("Subject = %s, want english", resp.Subject)
	}
	if len(resp.Probes) != 5 {
		t.Errorf("got %d probes, want 5", len(resp.Probes))
	}
	if resp.Explain.Answer != "A" {
		t.Errorf("Answer = %q, want %q", resp.Explain.Answer, "A")
	}
	if resp.Config != DefaultConfig() {
		t.Errorf("Config echo = %+v, want defaults", resp.Config)
	}
	if !strings.Contains(resp.Reason, "expert english") {
		t.Errorf("Reason = %q, want expert english verdict", resp.Reason)
	}
}

const fullWidthMathQuestion = "已知ｘ＝５，ｙ＝７，求ｘ＋ｙ＝？"

func TestSolveNormalizesBeforeClassifying(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplainJSON()})
	s := New(mock, nil, DefaultConfig())

	resp, err := s.Solve(context.Background(), fullWidthMathQuestion)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// Full-width equations must still trip the guard: its glyph classes
	// are half-width, so classification has to see the folded text.
	if resp.Guard.Subject != subject.SubjectMath {
		t.Errorf("Guard.Subject = %s, want math", resp.Guard.Subject)
	}
	if resp.Subject != subject.SubjectMath {
		t.Errorf("Subject = %s, want math", resp.Subject)
	}
	if !strings.HasPrefix(resp.Reason, "hard guard:") {
		t.Errorf("Reason = %q, want hard guard verdict", resp.Reason)
	}

	// The id still hashes the raw submission, not the canonical form.
	sum := sha1.Sum([]byte(fullWidthMathQuestion))
	if want := hex.EncodeToString(sum[:]); resp.QuestionID != want {
		t.Errorf("QuestionID = %s, want hash of raw text %s", resp.QuestionID, want)
	}
}

func TestArbitrationReasonNoExpert(t *testing.T) {
	guard := subject.HardGuardDecision{Subject: subject.SubjectNone}

	reason := arbitrationReason(guard, nil, subject.DefaultArbiterConfig())

	if !strings.Contains(reason, "0.55") || !strings.Contains(reason, "unknown") {
		t.Errorf("reason = %q", reason)
	}
}

func TestSolveLLMFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("shape mismatch")}},
	)
	s := New(mock, nil, DefaultConfig())

	_, err := s.Solve(context.Background(), englishQuestion)
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestRefineExplanationExpertTagAndNote(t *testing.T) {
	e := ExplainResult{
		Summary: "submit 表示繳交報告",
		Details: []string{"a", "b", "c", "d"},
	}
	chosen := []subject.ExpertProbe{{
		Subject:    subject.SubjectEnglish,
		Confidence: 0.85,
		Notes:      "注意 by Friday 的期限用法",
	}}

	refineExplanation(&e, chosen)

	if e.Summary != "【英文】submit 表示繳交報告" {
		t.Errorf("Summary = %q", e.Summary)
	}
	if len(e.Details) != 4 {
		t.Fatalf("Details len = %d, want 4 (capped)", len(e.Details))
	}
	if e.Details[0] != "補充：注意 by Friday 的期限用法" {
		t.Errorf("Details[0] = %q", e.Details[0])
	}
}

func TestRefineExplanationLowConfidenceNoTag(t *testing.T) {
	e := ExplainResult{Summary: "總結"}
	chosen := []subject.ExpertProbe{{Subject: subject.SubjectEnglish, Confidence: 0.6}}

	refineExplanation(&e, chosen)

	if e.Summary != "總結" {
		t.Errorf("Summary = %q, want untouched", e.Summary)
	}
}

func TestRefineExplanationCapsGrammarTable(t *testing.T) {
	e := ExplainResult{
		GrammarTable: []GrammarRow{
			{Pattern: "p1"}, {Pattern: "p2"}, {Pattern: "p3"}, {Pattern: "p4"}, {Pattern: "p5"},
		},
	}

	refineExplanation(&e, nil)

	if len(e.GrammarTable) != 3 {
		t.Errorf("GrammarTable len = %d, want 3", len(e.GrammarTable))
	}
}

func TestBuildRetrievalCollapsesAndTags(t *testing.T) {
	chosen := []subject.ExpertProbe{{
		Subject: subject.SubjectEnglish,
		Tags:    []string{"vocab", "english"},
	}}

	r := buildRetrieval("  The   manager\nasked  ", subject.SubjectEnglish, chosen, DefaultConfig())

	if r.BaseQuery != "The manager asked" {
		t.Errorf("BaseQuery = %q", r.BaseQuery)
	}
	want := []string{"english", "vocab"}
	if len(r.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", r.Tags, want)
	}
	for i := range want {
		if r.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, r.Tags[i], want[i])
		}
	}
	if r.SearchQuery != "The manager asked english vocab" {
		t.Errorf("SearchQuery = %q", r.SearchQuery)
	}
}

func TestBuildRetrievalCapsBaseQuery(t *testing.T) {
	long := ""
	for range 30 {
		long += "word "
	}

	r := buildRetrieval(long, subject.SubjectUnknown, nil, DefaultConfig())

	if got := len([]rune(r.BaseQuery)); got > DefaultConfig().BaseQueryMaxRunes {
		t.Errorf("BaseQuery rune length = %d, exceeds cap", got)
	}
	if len(r.Tags) != 0 {
		t.Errorf("unknown subject should add no tags, got %v", r.Tags)
	}
}
