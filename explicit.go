package bidi

// directionalStatus is one entry of the X1-X8 directional status stack.
type directionalStatus struct {
	level    int
	override Class // L, R, or ON for neutral
	isolate  bool  // true if this entry was pushed by an isolate initiator
}

// explicitResult carries the per-character output of resolveExplicit:
// the resolved embedding level of every character, and its type after
// any directional override has been applied (X6/X6a).
type explicitResult struct {
	levels []int
	types  []Class
}

// resolveExplicit implements X1-X9: it walks the directional status stack
// driven by the explicit embedding, override, and isolate format
// characters, assigns every character its embedding level, applies
// directional overrides, and tracks overflow per X8's overflow counters.
// isolateMatch is BD9's result, used to resolve an FSI's effective
// direction via P2/P3 applied to its own contents (X5c).
func resolveExplicit(types []Class, isolateMatch map[int]int, paragraphLvl int) explicitResult {
	n := len(types)
	levels := make([]int, n)
	resolved := make([]Class, n)
	copy(resolved, types)

	stack := make([]directionalStatus, 1, MaxDepth+2)
	stack[0] = directionalStatus{level: paragraphLvl, override: ON, isolate: false}
	top := func() *directionalStatus { return &stack[len(stack)-1] }

	overflowIsolate := 0
	overflowEmbedding := 0
	validIsolate := 0

	applyOverride := func(i int) {
		switch top().override {
		case L:
			resolved[i] = L
		case R:
			resolved[i] = R
		}
	}

	leastGreaterOdd := func(l int) int { return (l + 1) | 1 }
	leastGreaterEven := func(l int) int { return (l + 2) &^ 1 }

	for i, t := range types {
		switch t {
		case RLE, LRE, RLO, LRO:
			levels[i] = top().level
			var newLevel int
			if t == RLE || t == RLO {
				newLevel = leastGreaterOdd(top().level)
			} else {
				newLevel = leastGreaterEven(top().level)
			}
			ov := ON
			if t == RLO {
				ov = R
			} else if t == LRO {
				ov = L
			}
			if newLevel <= MaxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				stack = append(stack, directionalStatus{level: newLevel, override: ov, isolate: false})
			} else if overflowIsolate == 0 {
				overflowEmbedding++
			}

		case LRI, RLI, FSI:
			levels[i] = top().level
			applyOverride(i)
			dir := t
			if t == FSI {
				end := i + 1
				if e, ok := isolateMatch[i]; ok {
					end = e
				} else {
					end = n
				}
				if paragraphLevelFromOffset(types, isolateMatch, i+1, end) == 1 {
					dir = RLI
				} else {
					dir = LRI
				}
			}
			var newLevel int
			if dir == RLI {
				newLevel = leastGreaterOdd(top().level)
			} else {
				newLevel = leastGreaterEven(top().level)
			}
			if newLevel <= MaxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				stack = append(stack, directionalStatus{level: newLevel, override: ON, isolate: true})
			} else {
				overflowIsolate++
			}

		case PDI:
			if overflowIsolate > 0 {
				overflowIsolate--
			} else if validIsolate == 0 {
				// no matching initiator, stack untouched
			} else {
				overflowEmbedding = 0
				for !top().isolate {
					stack = stack[:len(stack)-1]
				}
				stack = stack[:len(stack)-1]
				validIsolate--
			}
			levels[i] = top().level
			applyOverride(i)

		case PDF:
			if overflowIsolate > 0 {
				// within an overflow isolate scope: no effect
			} else if overflowEmbedding > 0 {
				overflowEmbedding--
			} else if !top().isolate && len(stack) >= 2 {
				stack = stack[:len(stack)-1]
			}
			levels[i] = top().level

		case B:
			levels[i] = paragraphLvl
			stack = stack[:1]
			stack[0] = directionalStatus{level: paragraphLvl, override: ON, isolate: false}
			overflowIsolate, overflowEmbedding, validIsolate = 0, 0, 0

		case BN:
			levels[i] = top().level

		default:
			levels[i] = top().level
			applyOverride(i)
		}
	}

	// Retaining convention (UAX#9 "Retaining BNs and Explicit Formatting
	// Characters"): characters X9 removes take on the level of the
	// preceding character, so that L1's trailing whitespace/isolate-
	// formatting reset still sees a contiguous run at end of line.
	for i, t := range types {
		if removedByX9(t) {
			if i == 0 {
				levels[i] = paragraphLvl
			} else {
				levels[i] = levels[i-1]
			}
		}
	}

	return explicitResult{levels: levels, types: resolved}
}
