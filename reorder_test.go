package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	m.Run()
}

func TestReorderStringPlainLTR(t *testing.T) {
	got, err := ReorderString("abc", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Errorf("expected 'abc' unchanged, got %q", got)
	}
}

func TestReorderStringHebrewReversal(t *testing.T) {
	// three Hebrew letters, no embedding: an all-RTL paragraph reverses.
	input := "אבג" // א ב ג
	want := "גבא"  // ג ב א
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReorderStringMixedLTRThenRTL(t *testing.T) {
	// "abc אבג": LTR paragraph, trailing RTL word reverses in place.
	input := "abc אבג"
	want := "abc גבא"
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReorderStringMixedRTLThenLTR(t *testing.T) {
	// "אבג abc": RTL paragraph (first strong is Hebrew), trailing LTR word
	// stays put relative to itself but the whole line flips around it.
	input := "אבג abc"
	want := "abc גבא"
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReorderStringNumberPreservesOrderBetweenRTLWords(t *testing.T) {
	// A multi-digit number sandwiched between two RTL words: I1 bumps the
	// digits to an even level above the surrounding odd paragraph level,
	// so L2's cascading reversal (once for the digit run, again as part
	// of the whole RTL line) restores their internal reading order while
	// repositioning the number as a block — digits always read
	// left-to-right even inside RTL text.
	input := "אבג12דהו"
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "והד12גבא"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReorderStringFSIWrappedArabic(t *testing.T) {
	// An FSI-wrapped Arabic run inside an LTR paragraph resolves its own
	// direction from its own contents (P2/P3 via X5c) independent of the
	// paragraph's LTR base level.
	input := "a⁨بة⁩b" // a FSI ب ة PDI b
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected non-empty result")
	}
	// the isolate's contents (2 Arabic letters) must appear reversed
	// relative to their logical order, still between the two Latin
	// letters in visual order.
	runes := []rune(got)
	if runes[0] != 'a' || runes[len(runes)-1] != 'b' {
		t.Errorf("expected isolate content sandwiched between a/b, got %q", got)
	}
	if len(runes) != 6 || runes[2] != 'ة' || runes[3] != 'ب' {
		t.Errorf("expected the two Arabic letters reversed inside the isolate, got %q", got)
	}
}

func TestReorderEmptyText(t *testing.T) {
	got, err := Reorder(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestReorderLinesMatchesSingleLineWhenCollapsed(t *testing.T) {
	text := []rune("abc אבג")
	single, err := Reorder(text, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, err := ReorderLines(text, []int{len(text)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(lines))
	}
	if string(lines[0]) != string(single) {
		t.Errorf("ReorderLines collapsed to one line = %q, want %q", string(lines[0]), string(single))
	}
}

func TestReorderLinesSplitsIndependently(t *testing.T) {
	text := []rune("אבג abc")
	lines, err := ReorderLines(text, []int{4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// each line is reordered on its own; nothing from line 2 should leak
	// into line 1's buffer or vice versa.
	if len(lines[0]) != 4 {
		t.Errorf("line 0 length = %d, want 4", len(lines[0]))
	}
	if len(lines[1]) != len(text)-4 {
		t.Errorf("line 1 length = %d, want %d", len(lines[1]), len(text)-4)
	}
}

func TestReorderLineBreaksValidation(t *testing.T) {
	text := []rune("abcdef")
	cases := []struct {
		name    string
		breaks  []int
		wantErr bool
	}{
		{"ok", []int{3}, false},
		{"zero break", []int{0}, true},
		{"non-monotonic", []int{3, 2}, true},
		{"out of range", []int{100}, true},
		{"equal to length is fine", []int{6}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Reorder(text, c.breaks)
			if c.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReorderUppercaseAsRTLOption(t *testing.T) {
	got, err := ReorderString("ABC", nil, WithUppercaseAsRTL(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "CBA" {
		t.Errorf("got %q, want %q", got, "CBA")
	}
}

func TestReorderBracketPairN0(t *testing.T) {
	// a Latin word followed by a parenthesized Hebrew word, within an LTR
	// paragraph: N0 should keep the parentheses adjacent to the Hebrew
	// text they enclose once that text's direction is resolved, rather
	// than letting N1/N2 treat them as independent neutrals.
	input := "abc (אבג) def"
	got, err := ReorderString(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len([]rune(got)) != len([]rune(input)) {
		t.Fatalf("expected length-preserving permutation, got %q", got)
	}
	want := "abc (גבא) def"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
