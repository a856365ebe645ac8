package bidi

// paragraphLevel implements P2 and P3: scan the text for the first strong
// type (L, AL, or R), skipping over the contents of isolates, and derive
// the paragraph embedding level from it. isolateMatch is the BD9 result
// from matchIsolates, used to skip isolated content per P2.
//
// If no strong type is found before an unmatched isolate initiator or the
// end of the text, the paragraph level defaults to 0 (LTR), per P3's
// fallback.
func paragraphLevel(types []Class, isolateMatch map[int]int) int {
	i := 0
	for i < len(types) {
		c := types[i]
		if isIsolateInitiator(c) {
			if end, ok := isolateMatch[i]; ok {
				i = end + 1
				continue
			}
			// unmatched isolate initiator: nothing strong follows within
			// this paragraph that P2 would consider, so stop.
			break
		}
		if c == PDI {
			i++
			continue
		}
		switch c {
		case L:
			return 0
		case R, AL:
			return 1
		}
		i++
	}
	return 0
}

// paragraphLevelFromOffset is paragraphLevel restricted to the half-open
// range [from, to), used by X5c to resolve an FSI's effective direction
// (rule P2/P3 applied to the isolate's own contents).
func paragraphLevelFromOffset(types []Class, isolateMatch map[int]int, from, to int) int {
	i := from
	for i < to {
		c := types[i]
		if isIsolateInitiator(c) {
			if end, ok := isolateMatch[i]; ok && end < to {
				i = end + 1
				continue
			}
			break
		}
		if c == PDI {
			i++
			continue
		}
		switch c {
		case L:
			return 0
		case R, AL:
			return 1
		}
		i++
	}
	return 0
}
