package bidi

import (
	xbidi "golang.org/x/text/unicode/bidi"
)

// Class is a UAX#9 bidirectional character class. It mirrors
// golang.org/x/text/unicode/bidi.Class's values so conversion between the
// two is a straight cast, but is declared locally so the rest of this
// package never has to import xbidi outside this file.
type Class int

const (
	L   Class = iota // left-to-right
	R                 // right-to-left
	EN                // european number
	ES                // european separator
	ET                // european terminator
	AN                // arabic number
	CS                // common separator
	B                 // paragraph separator
	S                 // segment separator
	WS                // whitespace
	ON                // other neutral
	BN                // boundary neutral
	NSM               // nonspacing mark
	AL                // arabic letter
	Control           // x/text's Control class; the explicit formatting characters have their own classes below
	LRO               // left-to-right override
	RLO               // right-to-left override
	LRE               // left-to-right embedding
	RLE               // right-to-left embedding
	PDF               // pop directional format
	LRI               // left-to-right isolate
	RLI               // right-to-left isolate
	FSI               // first strong isolate
	PDI               // pop directional isolate
)

var classNames = [...]string{
	"L", "R", "EN", "ES", "ET", "AN", "CS", "B", "S", "WS", "ON", "BN",
	"NSM", "AL", "Control", "LRO", "RLO", "LRE", "RLE", "PDF", "LRI",
	"RLI", "FSI", "PDI",
}

func (c Class) String() string {
	if int(c) < 0 || int(c) >= len(classNames) {
		return "?"
	}
	return classNames[c]
}

// fromXBidi converts a golang.org/x/text/unicode/bidi.Class into a Class.
// The two enumerations are declared in the same order, but this module
// never depends on that remaining true: the conversion goes through an
// explicit switch so a reordering in x/text fails loudly instead of
// silently mis-classifying text.
func fromXBidi(c xbidi.Class) Class {
	switch c {
	case xbidi.L:
		return L
	case xbidi.R:
		return R
	case xbidi.EN:
		return EN
	case xbidi.ES:
		return ES
	case xbidi.ET:
		return ET
	case xbidi.AN:
		return AN
	case xbidi.CS:
		return CS
	case xbidi.B:
		return B
	case xbidi.S:
		return S
	case xbidi.WS:
		return WS
	case xbidi.ON:
		return ON
	case xbidi.BN:
		return BN
	case xbidi.NSM:
		return NSM
	case xbidi.AL:
		return AL
	case xbidi.Control:
		return Control
	case xbidi.LRO:
		return LRO
	case xbidi.RLO:
		return RLO
	case xbidi.LRE:
		return LRE
	case xbidi.RLE:
		return RLE
	case xbidi.PDF:
		return PDF
	case xbidi.LRI:
		return LRI
	case xbidi.RLI:
		return RLI
	case xbidi.FSI:
		return FSI
	case xbidi.PDI:
		return PDI
	default:
		T().Errorf("bidi: unrecognized xbidi class %v, falling back to ON", c)
		return ON
	}
}

// classify returns the bidirectional class and bracket metadata for each
// rune of text, using golang.org/x/text/unicode/bidi's class table.
// Unassigned code points fall back to ON, matching LookupRune's own
// behavior for unassigned runes.
func classify(text []rune) (types []Class, isOpen []bool, isBracket []bool) {
	types = make([]Class, len(text))
	isOpen = make([]bool, len(text))
	isBracket = make([]bool, len(text))
	for i, r := range text {
		props, _ := xbidi.LookupRune(r)
		types[i] = fromXBidi(props.Class())
		if props.IsOpeningBracket() {
			isOpen[i] = true
			isBracket[i] = true
		} else if props.IsBracket() {
			isBracket[i] = true
		}
	}
	return
}

// isStrong reports whether c is one of the strong types L, R, or AL.
func isStrong(c Class) bool {
	return c == L || c == R || c == AL
}

// isIsolateInitiator reports whether c opens an isolate (LRI, RLI, FSI).
func isIsolateInitiator(c Class) bool {
	return c == LRI || c == RLI || c == FSI
}

// isExplicitFormatting reports whether c is one of the embedding/override
// format characters X2-X7 push or pop on the directional status stack.
// Isolate initiators and PDI are deliberately excluded: unlike these, they
// are never removed by X9 and keep the level X5a/X5b/X5c/X6a assigns them
// directly, since BD7/BD13 need them present to delimit and stitch runs.
func isExplicitFormatting(c Class) bool {
	switch c {
	case RLE, LRE, RLO, LRO, PDF:
		return true
	}
	return false
}

// removedByX9 reports whether c is one of the characters X9 removes from
// the level-run view: the embedding/override formatting characters and BN.
// Isolate initiators and PDI are NOT removed; they remain ordinary members
// of their level run so BD13 can find them at run boundaries.
func removedByX9(c Class) bool {
	return isExplicitFormatting(c) || c == BN
}
