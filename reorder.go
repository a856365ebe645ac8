package bidi

import "unicode"

// Reorder computes the visual-order permutation of text according to
// UAX#9, given the caller's line breaks. lineBreaks holds the exclusive
// end offset of each line except the last (so a single-line call passes
// nil or an empty slice); offsets must be strictly increasing and within
// [1, len(text)]. L4 glyph mirroring is the caller's responsibility.
func Reorder(text []rune, lineBreaks []int, opts ...Option) ([]rune, error) {
	lines, err := ReorderLines(text, lineBreaks, opts...)
	if err != nil {
		return nil, err
	}
	var out []rune
	for _, l := range lines {
		out = append(out, l...)
	}
	return out, nil
}

// ReorderString is the string-valued convenience form of Reorder.
func ReorderString(text string, lineBreaks []int, opts ...Option) (string, error) {
	visual, err := Reorder([]rune(text), lineBreaks, opts...)
	if err != nil {
		return "", err
	}
	return string(visual), nil
}

// ReorderLines is Reorder's per-line form: it returns the visual order of
// each line as a separate slice, built on the same L1/L2 stages as
// Reorder, fixing the multi-line slicing defect of copying into a shared
// destination buffer at an offset by giving each line its own freshly
// sized buffer.
func ReorderLines(text []rune, lineBreaks []int, opts ...Option) ([][]rune, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	tracer := cfg.tracer
	if tracer == nil {
		tracer = T()
	}

	bounds, err := validateLineBreaks(lineBreaks, len(text))
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return [][]rune{}, nil
	}

	initialTypes, isOpen, isBracket := classify(text)
	if cfg.uppercaseRTL {
		for i, r := range text {
			if unicode.IsUpper(r) {
				initialTypes[i] = R
			}
		}
	}

	isolateMatch := matchIsolates(initialTypes)

	paragraphLvl := cfg.level
	if paragraphLvl < 0 {
		paragraphLvl = paragraphLevel(initialTypes, isolateMatch)
	}
	tracer.Debugf("bidi: paragraph level = %d", paragraphLvl)

	explicit := resolveExplicit(initialTypes, isolateMatch, paragraphLvl)
	levels := explicit.levels
	work := make([]Class, len(initialTypes))
	copy(work, explicit.types)

	runs := partitionLevelRuns(initialTypes, levels)
	sequences := buildIsolatingRunSequences(initialTypes, levels, runs, isolateMatch, paragraphLvl)

	for _, seq := range sequences {
		applyWeakRules(seq, work)
		resolveBracketPairs(seq, work, text, isOpen, isBracket, initialTypes)
		applyN1N2(seq, work)
		applyImplicitRules(seq, work, levels)
	}
	releaseSequences(sequences)

	lineStart := 0
	out := make([][]rune, 0, len(bounds))
	for _, lineEnd := range bounds {
		applyL1(initialTypes, levels, lineStart, lineEnd, paragraphLvl)
		out = append(out, reorderLine(text, levels, lineStart, lineEnd))
		lineStart = lineEnd
	}
	return out, nil
}

// validateLineBreaks checks lineBreaks and returns the full list of line
// boundaries, including the implicit final boundary at length.
func validateLineBreaks(lineBreaks []int, length int) ([]int, error) {
	bounds := make([]int, 0, len(lineBreaks)+1)
	prev := 0
	for i, b := range lineBreaks {
		if b == 0 {
			return nil, errZeroBreak()
		}
		if b <= prev {
			return nil, errNonMonotonicBreaks(i)
		}
		if b > length {
			return nil, errBreakOutOfRange(b, length)
		}
		bounds = append(bounds, b)
		prev = b
	}
	if length == 0 {
		return bounds, nil
	}
	if len(bounds) == 0 || bounds[len(bounds)-1] != length {
		bounds = append(bounds, length)
	}
	return bounds, nil
}

// reorderLine implements L2 over the half-open range [start, end):
// from the highest level down to the lowest odd level present, reverse
// each maximal run of characters at or above that level.
func reorderLine(text []rune, levels []int, start, end int) []rune {
	n := end - start
	out := make([]rune, n)
	copy(out, text[start:end])
	if n == 0 {
		return out
	}

	maxLevel := 0
	minOddLevel := -1
	for i := start; i < end; i++ {
		if levels[i] > maxLevel {
			maxLevel = levels[i]
		}
		if levels[i]%2 == 1 && (minOddLevel == -1 || levels[i] < minOddLevel) {
			minOddLevel = levels[i]
		}
	}
	if minOddLevel == -1 {
		return out // line is entirely at an even level, nothing to reverse
	}

	for lvl := maxLevel; lvl >= minOddLevel; lvl-- {
		i := 0
		for i < n {
			if levels[start+i] < lvl {
				i++
				continue
			}
			j := i
			for j < n && levels[start+j] >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
			i = j
		}
	}
	return out
}
