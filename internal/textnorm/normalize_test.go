package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize_FullWidthLettersAndDigits(t *testing.T) {
	got := Normalize("ＡＢＣ１２３")
	if got != "ABC123" {
		t.Errorf("got %q, want %q", got, "ABC123")
	}
}

func TestNormalize_FullWidthParensAndSemicolon(t *testing.T) {
	got := Normalize("（Ａ）選項；結束")
	if got != "(A)選項;結束" {
		t.Errorf("got %q, want %q", got, "(A)選項;結束")
	}
}

func TestNormalize_IdeographicSpaceCollapsed(t *testing.T) {
	got := Normalize("a　　b")
	if got != "a b" {
		t.Errorf("got %q, want %q", got, "a b")
	}
}

func TestNormalize_CRLF(t *testing.T) {
	got := Normalize("line1\r\nline2\rline3")
	if got != "line1\nline2\nline3" {
		t.Errorf("got %q", got)
	}
}

func TestNormalize_ZeroWidthStripped(t *testing.T) {
	got := Normalize("a​b\uFEFFc⁠d")
	if got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
}

func TestNormalize_CircledDigitsBecomeParenMarkers(t *testing.T) {
	got := Normalize("填入①和❷的答案")
	if !strings.Contains(got, "(1)") || !strings.Contains(got, "(2)") {
		t.Errorf("circled digits not converted: %q", got)
	}
}

func TestNormalize_MarkerBreakInserted(t *testing.T) {
	got := Normalize("他回答完畢。2. 下一題是什麼")
	if !strings.Contains(got, "。\n2.") {
		t.Errorf("expected line break before question marker, got %q", got)
	}
}

func TestNormalize_NoBreakWithoutMarker(t *testing.T) {
	got := Normalize("他回答完畢。然後離開了")
	if strings.Contains(got, "\n") {
		t.Errorf("unexpected line break: %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii text",
		"（Ａ）ｆｕｌｌ　ｗｉｄｔｈ；ＯＣＲ混合①②",
		"他回答完畢。2. 下一題(1)____空格",
		"a  b\t\tc\r\nd​",
		"已知三角形兩邊為 a=5, b=7，求 c=?",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalize_TotalOnGarbage(t *testing.T) {
	// Must never panic, whatever the input.
	inputs := []string{"", "\x00\x01\x02", strings.Repeat("（", 1000), "\xff\xfe invalid utf8"}
	for _, in := range inputs {
		_ = Normalize(in)
	}
}
