package bidi

import "github.com/emirpasic/gods/stacks/arraystack"

// matchIsolates implements BD9: it pairs each isolate initiator (LRI, RLI,
// FSI) with the PDI that matches it, skipping over nested isolates. The
// result maps an initiator's index to its matching PDI's index, and vice
// versa. An initiator with no matching PDI is left unmapped; per BD9 that
// means its "matching PDI" is one past the end of the paragraph.
func matchIsolates(types []Class) map[int]int {
	match := make(map[int]int)
	stack := arraystack.New()
	for i, c := range types {
		switch {
		case isIsolateInitiator(c):
			stack.Push(i)
		case c == PDI:
			if opener, ok := stack.Pop(); ok {
				o := opener.(int)
				match[o] = i
				match[i] = o
			}
		}
	}
	return match
}
