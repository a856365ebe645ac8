package bidi

// isNI reports whether c is one of the "neutral or isolate formatting"
// types N1/N2 operate on: B, S, WS, ON, and the isolate format characters
// themselves (X9 does not remove them, so they are still members of their
// level run and of the isolating run sequence at this point).
func isNI(c Class) bool {
	switch c {
	case B, S, WS, ON, FSI, LRI, RLI, PDI:
		return true
	}
	return false
}

// strongForN1 maps a resolved type to the strong direction N1 compares
// against, treating EN and AN as R per N1's own wording.
func strongForN1(c Class) Class {
	switch c {
	case L:
		return L
	case R, EN, AN:
		return R
	default:
		return ON
	}
}

// applyN1N2 implements N1 (runs of NI characters take on a matching
// surrounding strong direction) followed by N2 (anything left takes the
// embedding direction).
func applyN1N2(seq *isolatingRunSequence, work []Class) {
	n := len(seq.positions)
	embedDir := levelToDirection(seq.level)

	i := 0
	for i < n {
		pos := seq.positions[i]
		if !isNI(work[pos]) {
			i++
			continue
		}
		j := i
		for j < n && isNI(work[seq.positions[j]]) {
			j++
		}
		before := seq.sos
		if i > 0 {
			before = strongForN1(work[seq.positions[i-1]])
		}
		after := seq.eos
		if j < n {
			after = strongForN1(work[seq.positions[j]])
		}
		var dir Class
		if before == after && (before == L || before == R) {
			dir = before
		} else {
			dir = embedDir
		}
		for k := i; k < j; k++ {
			work[seq.positions[k]] = dir
		}
		i = j
	}
}
