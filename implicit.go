package bidi

// applyImplicitRules implements I1 and I2: after W/N resolution every
// character remaining in an isolating run sequence is L, R, EN, or AN.
// These rules bump the character's embedding level according to its
// resolved type and the parity of the level it already carries.
// Characters removed by X9 never appear in seq.positions; their level
// was already fixed up to match their neighbor in resolveExplicit.
func applyImplicitRules(seq *isolatingRunSequence, work []Class, levels []int) {
	for _, pos := range seq.positions {
		level := levels[pos]
		if level%2 == 0 {
			switch work[pos] {
			case R:
				levels[pos] = level + 1
			case AN, EN:
				levels[pos] = level + 2
			}
		} else {
			switch work[pos] {
			case L, EN, AN:
				levels[pos] = level + 1
			}
		}
	}
}
