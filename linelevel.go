package bidi

// isWhitespaceOrIsolateFormatting reports whether c is one of the types
// L1.3/L1.4 treat as part of a trailing/pre-separator whitespace run: WS
// plus the isolate format characters FSI, LRI, RLI, and PDI.
func isWhitespaceOrIsolateFormatting(c Class) bool {
	switch c {
	case WS, FSI, LRI, RLI, PDI:
		return true
	}
	return false
}

// applyL1 implements L1 over the half-open line [lineStart, lineEnd) of
// the paragraph, using the original (pre-resolution) character types:
// segment and paragraph separators reset to the paragraph level, and so
// does any run of whitespace/isolate-formatting characters that either
// precedes a separator or trails at the end of the line.
func applyL1(initialTypes []Class, levels []int, lineStart, lineEnd, paragraphLvl int) {
	i := lineEnd - 1
	for i >= lineStart && isWhitespaceOrIsolateFormatting(initialTypes[i]) {
		levels[i] = paragraphLvl
		i--
	}
	for j := lineStart; j < lineEnd; j++ {
		switch initialTypes[j] {
		case S, B:
			levels[j] = paragraphLvl
			k := j - 1
			for k >= lineStart && isWhitespaceOrIsolateFormatting(initialTypes[k]) {
				levels[k] = paragraphLvl
				k--
			}
		}
	}
}
