package ngram

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Vietnamese combining diacritics. Tone marks and the three vowel
// modifiers (breve, circumflex, horn) share the "above" combining class, so
// Unicode's canonical ordering algorithm will not reorder a user-typed
// sequence that has the tone mark before the modifier — composition to the
// single precomposed character then silently fails and the text is left
// decomposed. This pass corrects exactly that case.
const (
	combBreve      = '̆' // combining breve
	combCircumflex = '̂' // combining circumflex accent
	combHorn       = '̛' // combining horn

	combGrave    = '̀' // combining grave accent
	combAcute    = '́' // combining acute accent
	combTilde    = '̃' // combining tilde
	combHookAbve = '̉' // combining hook above
	combDotBelow = '̣' // combining dot below
)

var vietnameseModifiers = [...]rune{combBreve, combCircumflex, combHorn}
var vietnameseTones = [...]rune{combGrave, combAcute, combTilde, combHookAbve, combDotBelow}

// vietnameseReorder swaps every (tone, modifier) pair it finds into the
// canonical (modifier, tone) order required for norm.NFC to recompose the
// precomposed Vietnamese letter, per spec.md §4.1's "(base, modifier,
// tone)" description.
var vietnameseReorder = buildVietnameseReorder()

func buildVietnameseReorder() *strings.Replacer {
	pairs := make([]string, 0, 2*len(vietnameseModifiers)*len(vietnameseTones))
	for _, tone := range vietnameseTones {
		for _, mod := range vietnameseModifiers {
			pairs = append(pairs, string([]rune{tone, mod}), string([]rune{mod, tone}))
		}
	}
	return strings.NewReplacer(pairs...)
}

// hasCombiningMark reports whether s contains any combining mark this pass
// cares about, used as a fast path so plain ASCII/other-script input never
// pays for decomposition.
func hasCombiningMark(s string) bool {
	for _, r := range s {
		switch r {
		case combBreve, combCircumflex, combHorn, combGrave, combAcute, combTilde, combHookAbve, combDotBelow:
			return true
		}
	}
	return false
}

// NormalizeVietnamese reorders misordered Vietnamese tone-mark/modifier
// combining sequences into canonical order and recomposes them, per
// spec.md §4.1. It is a total function applied once, before any other
// normalization, and is idempotent: running it twice yields the same
// string, because after the first pass no (tone, modifier) pair remains
// for the replacer to match.
func NormalizeVietnamese(s string) string {
	if !hasCombiningMark(s) {
		return s
	}
	decomposed := norm.NFD.String(s)
	reordered := vietnameseReorder.Replace(decomposed)
	return norm.NFC.String(reordered)
}
