package bidi

import "testing"

func TestApplyL1ResetsTrailingWhitespace(t *testing.T) {
	// L L WS WS at levels 2 2 2 2, paragraph level 0: trailing WS run
	// resets to the paragraph level.
	types := []Class{L, L, WS, WS}
	levels := []int{2, 2, 2, 2}
	applyL1(types, levels, 0, 4, 0)
	want := []int{2, 2, 0, 0}
	for i, lvl := range want {
		if levels[i] != lvl {
			t.Errorf("levels[%d] = %d, want %d", i, levels[i], lvl)
		}
	}
}

func TestApplyL1ResetsBeforeSegmentSeparator(t *testing.T) {
	types := []Class{L, WS, S, L}
	levels := []int{3, 3, 3, 3}
	applyL1(types, levels, 0, 4, 1)
	want := []int{3, 1, 1, 3}
	for i, lvl := range want {
		if levels[i] != lvl {
			t.Errorf("levels[%d] = %d, want %d", i, levels[i], lvl)
		}
	}
}

func TestApplyL1ResetsIsolateFormattingAtLineEnd(t *testing.T) {
	types := []Class{L, LRI, PDI}
	levels := []int{2, 2, 2}
	applyL1(types, levels, 0, 3, 0)
	want := []int{2, 0, 0}
	for i, lvl := range want {
		if levels[i] != lvl {
			t.Errorf("levels[%d] = %d, want %d", i, levels[i], lvl)
		}
	}
}
