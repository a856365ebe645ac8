package bidi

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// bracketPairs maps each opening paired-bracket rune recognized by this
// module to its closing counterpart, for BD16 matching. golang.org/x/text
// /unicode/bidi classifies a rune as an opening or closing paired bracket
// via Properties.IsOpeningBracket/IsBracket, but its own canonicalized
// pairing table (bracket.go's pairValues, built from the unexported
// reverseBracket) is not part of its public surface. This is the curated
// subset of UnicodeData's BidiBrackets.txt pairs this module matches
// against directly.
var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'⁅': '⁆', // ⁅ ⁆
	'〈': '〉', // 〈 〉
	'⟦': '⟧', // ⟦ ⟧
	'⟨': '⟩', // ⟨ ⟩
	'⟪': '⟫', // ⟪ ⟫
	'⟬': '⟭', // ⟬ ⟭
	'⟮': '⟯', // ⟮ ⟯
	'⦃': '⦄', // ⦃ ⦄
	'⦅': '⦆', // ⦅ ⦆
	'⦇': '⦈', // ⦇ ⦈
	'⦉': '⦊', // ⦉ ⦊
	'⦋': '⦌', // ⦋ ⦌
	'⦍': '⦎', // ⦍ ⦎
	'⦏': '⦐', // ⦏ ⦐
	'⦑': '⦒', // ⦑ ⦒
	'⦓': '⦔', // ⦓ ⦔
	'⦕': '⦖', // ⦕ ⦖
	'⦗': '⦘', // ⦗ ⦘
	'⧘': '⧙', // ⧘ ⧙
	'⧛': '⧜', // ⧛ ⧜
	'《': '》', // 《 》
	'「': '」', // 「 」
	'『': '』', // 『 』
	'【': '】', // 【 】
	'〔': '〕', // 〔 〕
	'〖': '〗', // 〖 〗
	'〘': '〙', // 〘 〙
	'〚': '〛', // 〚 〛
	'（': '）', // （ ）
	'［': '］', // ［ ］
	'｛': '｝', // ｛ ｝
}

var closingOf = func() map[rune]rune {
	m := make(map[rune]rune, len(bracketPairs))
	for o, c := range bracketPairs {
		m[c] = o
	}
	return m
}()

// bracketPair is a matched (opener, closer) position pair, indices into
// the isolating run sequence's logical position list.
type bracketPair struct {
	opener, closer int
}

const maxPairingDepth = 63

// locateBracketPairs implements BD16 over one isolating run sequence.
func locateBracketPairs(seq *isolatingRunSequence, work []Class, text []rune, isOpen, isBracket []bool) []bracketPair {
	var pairs []bracketPair
	openers := arraystack.New() // stack of local indices (into seq.positions) of unmatched openers

	for i, pos := range seq.positions {
		if !isBracket[pos] || work[pos] != ON {
			continue
		}
		r := text[pos]
		if isOpen[pos] {
			if openers.Size() == maxPairingDepth {
				openers.Clear()
				break
			}
			openers.Push(i)
			continue
		}
		// closing bracket: find the canonical opener it closes
		opener, ok := closingOf[r]
		if !ok {
			continue
		}
		// walk the stack from the top looking for a matching opener
		var matched []interface{}
		found := -1
		for {
			top, ok := openers.Peek()
			if !ok {
				break
			}
			matched = append(matched, top)
			openers.Pop()
			openerIdx := top.(int)
			if text[seq.positions[openerIdx]] == opener {
				found = openerIdx
				break
			}
		}
		if found >= 0 {
			pairs = append(pairs, bracketPair{opener: found, closer: i})
		} else {
			// no match: restore everything popped while searching
			for j := len(matched) - 1; j >= 0; j-- {
				openers.Push(matched[j])
			}
		}
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].opener < pairs[b].opener })
	return pairs
}

func strongForN0(c Class) Class {
	switch c {
	case EN, AN, AL, R:
		return R
	case L:
		return L
	default:
		return ON
	}
}

func classifyPairContent(seq *isolatingRunSequence, work []Class, pair bracketPair, dirEmbed Class) Class {
	opposite := ON
	for i := pair.opener + 1; i < pair.closer; i++ {
		dir := strongForN0(work[seq.positions[i]])
		if dir == ON {
			continue
		}
		if dir == dirEmbed {
			return dir
		}
		opposite = dir
	}
	return opposite
}

func classBeforePair(seq *isolatingRunSequence, work []Class, pair bracketPair) Class {
	for i := pair.opener - 1; i >= 0; i-- {
		if dir := strongForN0(work[seq.positions[i]]); dir != ON {
			return dir
		}
	}
	return seq.sos
}

func setBracketsToType(seq *isolatingRunSequence, work []Class, pair bracketPair, dir Class, initialTypes []Class) {
	openPos := seq.positions[pair.opener]
	closePos := seq.positions[pair.closer]
	work[openPos] = dir
	work[closePos] = dir

	for i := pair.opener + 1; i < len(seq.positions); i++ {
		pos := seq.positions[i]
		if initialTypes[pos] != NSM {
			break
		}
		work[pos] = dir
	}
	for i := pair.closer + 1; i < len(seq.positions); i++ {
		pos := seq.positions[i]
		if initialTypes[pos] != NSM {
			break
		}
		work[pos] = dir
	}
}

// resolveBracketPairs runs N0 for every pair found by BD16 in a sequence,
// in logical order of the opening bracket, exactly as UAX#9 orders it.
func resolveBracketPairs(seq *isolatingRunSequence, work []Class, text []rune, isOpen, isBracket []bool, initialTypes []Class) {
	pairs := locateBracketPairs(seq, work, text, isOpen, isBracket)
	dirEmbed := levelToDirection(seq.level)
	for _, pair := range pairs {
		dir := classifyPairContent(seq, work, pair, dirEmbed)
		if dir == ON {
			continue // N0.d: leave unresolved for N1/N2
		}
		if dir != dirEmbed {
			before := classBeforePair(seq, work, pair)
			if before == dirEmbed || before == ON {
				dir = dirEmbed
			} else {
				dir = before
			}
		}
		setBracketsToType(seq, work, pair, dir, initialTypes)
	}
}
