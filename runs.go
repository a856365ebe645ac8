package bidi

// levelRun is a maximal run of consecutive (in the X9-filtered view)
// character positions sharing one embedding level.
type levelRun struct {
	positions []int
	level     int
}

// isolatingRunSequence is BD13's stitched chain of level runs: level runs
// joined end to end whenever one ends with an isolate initiator and the
// next begins with that initiator's matching PDI.
type isolatingRunSequence struct {
	positions []int // original text positions, in logical order, X9-removed chars excluded
	level     int
	sos, eos  Class // L or R, computed per X10
}

// partitionLevelRuns groups the X9-surviving positions of text into
// maximal same-level runs (BD7), in logical order.
func partitionLevelRuns(types []Class, levels []int) []levelRun {
	var runs []levelRun
	var cur *levelRun
	for i, t := range types {
		if removedByX9(t) {
			continue
		}
		if cur != nil && cur.level == levels[i] {
			cur.positions = append(cur.positions, i)
			continue
		}
		if cur != nil {
			runs = append(runs, *cur)
		}
		cur = &levelRun{positions: []int{i}, level: levels[i]}
	}
	if cur != nil {
		runs = append(runs, *cur)
	}
	return runs
}

// buildIsolatingRunSequences implements BD13: it chains level runs into
// isolating run sequences and computes sos/eos for each per X10.
func buildIsolatingRunSequences(types []Class, levels []int, runs []levelRun, isolateMatch map[int]int, paragraphLvl int) []*isolatingRunSequence {
	// index level runs by the text position they start with, so a run
	// beginning with a matching PDI can be found and appended in place
	// of starting a fresh sequence.
	runByStart := make(map[int]int, len(runs))
	for ri, r := range runs {
		runByStart[r.positions[0]] = ri
	}
	isMatchedPDI := make(map[int]bool)
	for init, pdi := range isolateMatch {
		if types[init] != PDI {
			isMatchedPDI[pdi] = true
		}
	}

	var sequences []*isolatingRunSequence
	for ri, r := range runs {
		start := r.positions[0]
		if types[start] == PDI && isMatchedPDI[start] {
			continue // stitched onto an earlier sequence below
		}
		seq := borrowSequence()
		seq.level = r.level
		cur := ri
		for {
			seq.positions = append(seq.positions, runs[cur].positions...)
			last := runs[cur].positions[len(runs[cur].positions)-1]
			if !isIsolateInitiator(types[last]) {
				break
			}
			pdi, ok := isolateMatch[last]
			if !ok {
				break
			}
			next, ok := runByStart[pdi]
			if !ok {
				break
			}
			cur = next
		}
		sequences = append(sequences, seq)
	}

	for _, seq := range sequences {
		seq.sos, seq.eos = computeSosEos(types, levels, seq, isolateMatch, paragraphLvl)
	}
	return sequences
}

// computeSosEos implements X10's sos/eos determination for one isolating
// run sequence.
func computeSosEos(types []Class, levels []int, seq *isolatingRunSequence, isolateMatch map[int]int, paragraphLvl int) (sos, eos Class) {
	first := seq.positions[0]
	last := seq.positions[len(seq.positions)-1]

	precedingLevel := paragraphLvl
	for i := first - 1; i >= 0; i-- {
		if !removedByX9(types[i]) {
			precedingLevel = levels[i]
			break
		}
	}
	sos = levelToDirection(maxInt(seq.level, precedingLevel))

	followingLevel := paragraphLvl
	if isIsolateInitiator(types[last]) {
		if _, matched := isolateMatch[last]; !matched {
			followingLevel = paragraphLvl
		} else {
			followingLevel = followingLevelAfter(types, levels, last, paragraphLvl)
		}
	} else {
		followingLevel = followingLevelAfter(types, levels, last, paragraphLvl)
	}
	eos = levelToDirection(maxInt(seq.level, followingLevel))
	return
}

func followingLevelAfter(types []Class, levels []int, pos, paragraphLvl int) int {
	for i := pos + 1; i < len(types); i++ {
		if !removedByX9(types[i]) {
			return levels[i]
		}
	}
	return paragraphLvl
}

func levelToDirection(level int) Class {
	if level%2 == 1 {
		return R
	}
	return L
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
