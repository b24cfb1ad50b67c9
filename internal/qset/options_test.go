package qset

import "testing"

func TestExtractOptions_ParenForm(t *testing.T) {
	opts := ExtractOptions("(A) apple (B) banana split (C) a very long answer indeed")
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}
	if opts[0].Label != "A" || opts[0].Text != "apple" {
		t.Errorf("first option = %+v", opts[0])
	}
	if opts[1].Text != "banana split" {
		t.Errorf("text between markers not attributed to preceding option: %q", opts[1].Text)
	}
}

func TestExtractOptions_FullWidthMarkers(t *testing.T) {
	opts := ExtractOptions("（Ａ）蘋果（Ｂ）香蕉")
	if len(opts) != 2 {
		t.Fatalf("got %d options, want 2", len(opts))
	}
	if opts[0].Label != "A" {
		t.Errorf("full-width label not folded: %q", opts[0].Label)
	}
}

func TestExtractOptions_DotFormAtLineStart(t *testing.T) {
	text := "A. first choice\nB. second choice\nC. third choice"
	opts := ExtractOptions(text)
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}
	if opts[2].Label != "C" || opts[2].Text != "third choice" {
		t.Errorf("last option = %+v", opts[2])
	}
}

func TestExtractOptions_ShortDetection(t *testing.T) {
	opts := ExtractOptions("(A) effort (B) He tried very hard but still failed the test.")
	if !opts[0].IsShort {
		t.Errorf("single-word option not short: %+v", opts[0])
	}
	if opts[1].IsShort {
		t.Errorf("sentence option marked short: %+v", opts[1])
	}
	if !opts[1].EndsWithPunctuation {
		t.Errorf("sentence option punctuation not detected: %+v", opts[1])
	}
}

func TestExtractOptions_None(t *testing.T) {
	if opts := ExtractOptions("no markers here at all"); opts != nil {
		t.Errorf("got %v, want nil", opts)
	}
}

func TestCountTokens_HanRunes(t *testing.T) {
	// Chinese has no word spacing; each Han rune counts as a token.
	if got := countTokens("蘋果"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := countTokens("an apple"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}
