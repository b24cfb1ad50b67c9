package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchemaIdempotently(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/kaobang.db"

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AppendLLMEvent(context.Background(), LLMEventData{
		Provider: "p", Model: "m", Purpose: "type-detect", Success: true,
	}))
	require.NoError(t, s.Close())

	// Reopening an existing database must not fail on the DDL.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.QueryLLMEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestAppendAndGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	data := LLMEventData{
		Provider:     "claude-sonnet-4-5",
		Model:        "claude-sonnet-4-5",
		Purpose:      "hybrid-solve",
		InputTokens:  120,
		OutputTokens: 340,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\nsolve this\n",
		ResponseBody: `{"answer":"B"}`,
	}
	if err := s.AppendLLMEvent(ctx, data); err != nil {
		t.Fatalf("AppendLLMEvent: %v", err)
	}

	events, err := s.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got, err := s.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got.Purpose != "hybrid-solve" {
		t.Errorf("Purpose = %q, want %q", got.Purpose, "hybrid-solve")
	}
	if got.OutputTokens != 340 {
		t.Errorf("OutputTokens = %d, want 340", got.OutputTokens)
	}
	if !got.Success {
		t.Error("Success = false, want true")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []LLMEventData{
		{Provider: "p", Model: "m", Purpose: "type-detect", Success: true},
		{Provider: "p", Model: "m", Purpose: "type-detect", Success: false, ErrorMessage: "rate limit"},
		{Provider: "p", Model: "m", Purpose: "hybrid-solve", Success: true},
	}
	for _, r := range rows {
		if err := s.AppendLLMEvent(ctx, r); err != nil {
			t.Fatalf("AppendLLMEvent: %v", err)
		}
	}

	byPurpose, err := s.QueryLLMEvents(ctx, QueryOpts{Purpose: "type-detect"})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Errorf("purpose filter: got %d events, want 2", len(byPurpose))
	}

	failed, err := s.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(failed) != 1 {
		t.Fatalf("failed filter: got %d events, want 1", len(failed))
	}
	if failed[0].ErrorMessage != "rate limit" {
		t.Errorf("ErrorMessage = %q, want %q", failed[0].ErrorMessage, "rate limit")
	}

	limited, err := s.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit: got %d events, want 2", len(limited))
	}
	// Newest first.
	if limited[0].Purpose != "hybrid-solve" {
		t.Errorf("first event purpose = %q, want %q", limited[0].Purpose, "hybrid-solve")
	}
}
