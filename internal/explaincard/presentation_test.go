package explaincard

import (
	"strings"
	"testing"
)

func TestCompactPOS(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"noun", "n."},
		{"verb/adjective", "v. adj."},
		{"noun, noun", "n."},
		{"idiom", "idiom"},
		{"Verb / Noun", "v. n."},
		{"adv", "adv."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := compactPOS(tc.in); got != tc.want {
			t.Errorf("compactPOS(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapZH(t *testing.T) {
	got := capZH("繳交；提出；呈遞；投稿")
	if got != "繳交；提出" {
		t.Errorf("capZH = %q", got)
	}
	if capZH("單一") != "單一" {
		t.Error("single segment should pass through")
	}
}

func TestDisplayReason(t *testing.T) {
	if got := displayReason(""); got != "無資料" {
		t.Errorf("empty reason = %q, want placeholder", got)
	}

	long := strings.Repeat("理", 25)
	got := displayReason(long)
	if want := strings.Repeat("理", 20) + "…"; got != want {
		t.Errorf("truncated = %q, want %q", got, want)
	}

	if got := displayReason("short"); got != "short" {
		t.Errorf("short reason = %q", got)
	}
}

func TestReasoningBulletsPreferCues(t *testing.T) {
	card := &NormalizedCard{
		Cues:  []string{"cue1", "cue1", "cue2", "cue3", "cue4"},
		Steps: []CardStep{{Title: "s", Detail: "step detail"}},
	}

	bullets := reasoningBullets(card)

	if len(bullets) != 3 {
		t.Fatalf("got %d bullets, want 3", len(bullets))
	}
	if bullets[0] != "cue1" || bullets[1] != "cue2" || bullets[2] != "cue3" {
		t.Errorf("bullets = %v", bullets)
	}
}

func TestReasoningBulletsFallBackToStepDetails(t *testing.T) {
	card := &NormalizedCard{
		Steps: []CardStep{
			{Title: "a", Detail: "d1"},
			{Title: "b"},
			{Title: "c", Detail: "d2"},
		},
	}

	bullets := reasoningBullets(card)

	if len(bullets) != 2 || bullets[0] != "d1" || bullets[1] != "d2" {
		t.Errorf("bullets = %v", bullets)
	}
}

func TestContextVocabMinesStem(t *testing.T) {
	card := &NormalizedCard{
		Question: "The manager asked everyone to finish their quarterly reports before the deadline",
		Options: []CardOption{
			{Key: "A", Label: "submit"},
			{Key: "B", Label: "deadline"},
		},
		Vocab: []VocabEntry{{Word: "manager", ZH: "經理"}},
	}

	vocab := contextVocab(card)

	for _, e := range vocab {
		if e.Word == "deadline" {
			t.Error("option word should be excluded from mining")
		}
	}

	minedCount := 0
	for _, e := range vocab {
		if e.Word != "manager" {
			minedCount++
			if !strings.Contains(e.Note, "語境：題幹「"+e.Word+"」") {
				t.Errorf("mined entry %q missing context note: %q", e.Word, e.Note)
			}
		}
	}
	if minedCount == 0 {
		t.Fatal("no terms mined from stem")
	}
	if minedCount > 4 {
		t.Errorf("mined %d terms, cap is 4", minedCount)
	}

	// Upstream gloss untouched.
	if vocab[0].Word != "manager" || vocab[0].ZH != "經理" {
		t.Errorf("vocab[0] = %+v", vocab[0])
	}
}

func TestPresentationViewShape(t *testing.T) {
	raw := map[string]any{
		"question": "Pick the word.",
		"options": []any{
			map[string]any{"key": "A", "label": "alpha", "pos": "noun", "zh": "甲；首；開端", "reason": ""},
			map[string]any{"key": "B", "label": "beta", "verdict": "fit", "reason": "fits the sentence"},
		},
	}

	card := NormalizeCard(raw)
	view := card.Presentation

	if len(view.Options) != 2 {
		t.Fatalf("got %d option views", len(view.Options))
	}
	if view.Options[0].POS != "n." {
		t.Errorf("POS = %q, want %q", view.Options[0].POS, "n.")
	}
	if view.Options[0].ZH != "甲；首" {
		t.Errorf("ZH = %q", view.Options[0].ZH)
	}
	if view.Options[0].Reason != "無資料" {
		t.Errorf("Reason = %q, want placeholder", view.Options[0].Reason)
	}
	if !view.Options[1].Fit || view.CorrectKey != "B" {
		t.Errorf("fit option not reflected: %+v, correct %q", view.Options[1], view.CorrectKey)
	}
}
