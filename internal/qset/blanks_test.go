package qset

import "testing"

func TestExtractBlanks_ParenNumbers(t *testing.T) {
	blanks, _ := ExtractBlanks("Fill (1) here and (2) there.", DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(blanks))
	}
	if blanks[0].AnchorID != "blank-1" || blanks[1].AnchorID != "blank-2" {
		t.Errorf("anchors = %q, %q", blanks[0].AnchorID, blanks[1].AnchorID)
	}
	if blanks[0].NormalizedMarker != "(1)" {
		t.Errorf("marker = %q, want (1)", blanks[0].NormalizedMarker)
	}
}

func TestExtractBlanks_CircledNumbers(t *testing.T) {
	blanks, _ := ExtractBlanks("請填入①與❷的答案", DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(blanks))
	}
	if blanks[0].Index != 1 || blanks[1].Index != 2 {
		t.Errorf("indices = %d, %d", blanks[0].Index, blanks[1].Index)
	}
}

func TestExtractBlanks_UnderscoreRuns(t *testing.T) {
	blanks, _ := ExtractBlanks("He ____ to school and ______ his homework.", DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(blanks))
	}
	if blanks[0].AnchorID != "blank-1" || blanks[1].AnchorID != "blank-2" {
		t.Errorf("anchors = %q, %q", blanks[0].AnchorID, blanks[1].AnchorID)
	}
}

func TestExtractBlanks_YearExcluded(t *testing.T) {
	blanks, _ := ExtractBlanks("The war (1914) ended in (1918), see blank (1) and (2).", DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2 (years excluded): %+v", len(blanks), blanks)
	}

	cfg := DefaultConfig()
	cfg.ExcludeYears = false
	blanks, _ = ExtractBlanks("The war (1914) ended in (1918).", cfg)
	if len(blanks) != 2 {
		t.Errorf("with exclusion off, got %d blanks, want 2", len(blanks))
	}
}

func TestExtractBlanks_AnchorCollisionRenumbered(t *testing.T) {
	blanks, _ := ExtractBlanks("(1) once and (1) again", DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(blanks))
	}
	if blanks[0].AnchorID == blanks[1].AnchorID {
		t.Errorf("anchors not unique: %q", blanks[0].AnchorID)
	}
}

func TestExtractBlanks_ParagraphIndex(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph with (1)\n\nthird with (2)"
	blanks, _ := ExtractBlanks(text, DefaultConfig())
	if len(blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(blanks))
	}
	if blanks[0].ParagraphIndex != 1 {
		t.Errorf("first blank paragraph = %d, want 1", blanks[0].ParagraphIndex)
	}
	if blanks[1].ParagraphIndex != 2 {
		t.Errorf("second blank paragraph = %d, want 2", blanks[1].ParagraphIndex)
	}
}

func TestExtractBlanks_FewBlanksWarning(t *testing.T) {
	_, warnings := ExtractBlanks("only (1) here", DefaultConfig())
	if len(warnings) == 0 {
		t.Error("expected a warning for fewer than 2 blanks")
	}

	_, warnings = ExtractBlanks("(1) and (2)", DefaultConfig())
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestExtractBlanks_RuneSpans(t *testing.T) {
	text := "中文字(1)後面"
	blanks, _ := ExtractBlanks(text, DefaultConfig())
	if len(blanks) != 1 {
		t.Fatalf("got %d blanks, want 1", len(blanks))
	}
	if blanks[0].Start != 3 {
		t.Errorf("start = %d, want rune offset 3", blanks[0].Start)
	}
	if blanks[0].End != 6 {
		t.Errorf("end = %d, want rune offset 6", blanks[0].End)
	}
}
