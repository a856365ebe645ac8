package bidi

// applyWeakRules runs W1-W7 over one isolating run sequence, in order,
// mutating work in place at the sequence's positions.
func applyWeakRules(seq *isolatingRunSequence, work []Class) {
	applyW1(seq, work)
	applyW2(seq, work)
	applyW3(seq, work)
	applyW4(seq, work)
	applyW5(seq, work)
	applyW6(seq, work)
	applyW7(seq, work)
}

// applyW1: an NSM takes the type of the previous character, or sos if it
// is the first character of the sequence; isolate initiators and PDI make
// a following NSM resolve to ON rather than to their own type.
func applyW1(seq *isolatingRunSequence, work []Class) {
	prev := seq.sos
	for _, pos := range seq.positions {
		if work[pos] == NSM {
			if isIsolateInitiator(prev) || prev == PDI {
				work[pos] = ON
			} else {
				work[pos] = prev
			}
		}
		prev = work[pos]
	}
}

// applyW2: an EN takes type AN if the first strong type found scanning
// backward (treating sos as a strong type) is AL.
func applyW2(seq *isolatingRunSequence, work []Class) {
	lastStrong := seq.sos
	for _, pos := range seq.positions {
		switch work[pos] {
		case L, R, AL:
			lastStrong = work[pos]
		case EN:
			if lastStrong == AL {
				work[pos] = AN
			}
		}
	}
}

// applyW3: change all AL to R.
func applyW3(seq *isolatingRunSequence, work []Class) {
	for _, pos := range seq.positions {
		if work[pos] == AL {
			work[pos] = R
		}
	}
}

// applyW4: a single ES between two EN becomes EN; a single CS between two
// numbers of the same type becomes that type.
func applyW4(seq *isolatingRunSequence, work []Class) {
	n := len(seq.positions)
	for i := 1; i < n-1; i++ {
		pos := seq.positions[i]
		prevPos := seq.positions[i-1]
		nextPos := seq.positions[i+1]
		switch work[pos] {
		case ES:
			if work[prevPos] == EN && work[nextPos] == EN {
				work[pos] = EN
			}
		case CS:
			if work[prevPos] == EN && work[nextPos] == EN {
				work[pos] = EN
			} else if work[prevPos] == AN && work[nextPos] == AN {
				work[pos] = AN
			}
		}
	}
}

// applyW5: a sequence of ET adjacent to EN (on either side) becomes EN.
func applyW5(seq *isolatingRunSequence, work []Class) {
	n := len(seq.positions)
	i := 0
	for i < n {
		pos := seq.positions[i]
		if work[pos] != ET {
			i++
			continue
		}
		j := i
		for j < n && work[seq.positions[j]] == ET {
			j++
		}
		// run of ET is seq.positions[i:j]
		adjacentEN := (i > 0 && work[seq.positions[i-1]] == EN) || (j < n && work[seq.positions[j]] == EN)
		if adjacentEN {
			for k := i; k < j; k++ {
				work[seq.positions[k]] = EN
			}
		}
		i = j
	}
}

// applyW6: remaining ES, ET, CS become ON.
func applyW6(seq *isolatingRunSequence, work []Class) {
	for _, pos := range seq.positions {
		switch work[pos] {
		case ES, ET, CS:
			work[pos] = ON
		}
	}
}

// applyW7: an EN takes type L if the first strong type found scanning
// backward (treating sos as strong) is L.
//
// The reference description scans backward from each EN; this
// implementation instead tracks the last strong type seen while scanning
// forward once, which yields the identical result without re-reading
// characters already rewritten earlier in the same pass (scanning
// backward from a later EN would otherwise see the possibly-rewritten
// type of an earlier EN, not its original strong context).
func applyW7(seq *isolatingRunSequence, work []Class) {
	lastStrong := seq.sos
	for _, pos := range seq.positions {
		switch work[pos] {
		case L, R:
			lastStrong = work[pos]
		case EN:
			if lastStrong == L {
				work[pos] = L
			}
		}
	}
}
