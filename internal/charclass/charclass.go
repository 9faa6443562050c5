// Package charclass maps Unicode code points onto the small alphabet of
// behaviors the n-gram extractor needs: keep the rune, lowercase-fold it, or
// collapse it to the word-boundary marker.
//
// The mapping is data-driven from a table of Unicode block ranges (taken
// from the Unicode Character Database's Blocks.txt) plus
// golang.org/x/text/unicode/rangetable for the unassigned-code-point
// fallback, rather than a long chain of per-character branches.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Marker is the sentinel rune substituted for digits, punctuation,
// symbols, and decorative/control characters. It also represents a single
// run of collapsed whitespace at a word boundary.
const Marker = ' '

// assignedTable is the set of code points assigned in the Unicode version
// bundled with the standard library's unicode tables. Anything outside it
// folds to Marker.
var assignedTable = rangetable.Assigned(unicode.Version)

type action int

const (
	actionASCIIFold     action = iota // Basic Latin: lowercase a-z, else Marker
	actionLatin1Supp                  // Latin-1 Supplement: keep unless control/punct/symbol/space
	actionKeep                        // CJK/Hangul and similar high-signal scripts: keep verbatim
	actionLettersOnly                 // single-language scripts: keep letters, Marker otherwise
)

type blockRule struct {
	table  *unicode.RangeTable
	action action
}

// blocks holds the canonical Unicode block ranges (per the Unicode Character
// Database's Blocks.txt) referenced by blockRules below. The standard
// library's unicode package exposes Scripts and Categories but not Blocks,
// so the block boundaries are reproduced here verbatim.
var blocks = map[string]*unicode.RangeTable{
	"Basic Latin":            {R16: []unicode.Range16{{0x0000, 0x007F, 1}}},
	"Latin-1 Supplement":     {R16: []unicode.Range16{{0x0080, 0x00FF, 1}}},
	"Greek and Coptic":       {R16: []unicode.Range16{{0x0370, 0x03FF, 1}}},
	"Cyrillic":               {R16: []unicode.Range16{{0x0400, 0x04FF, 1}}},
	"Armenian":               {R16: []unicode.Range16{{0x0530, 0x058F, 1}}},
	"Hebrew":                 {R16: []unicode.Range16{{0x0590, 0x05FF, 1}}},
	"Arabic":                 {R16: []unicode.Range16{{0x0600, 0x06FF, 1}}},
	"Devanagari":             {R16: []unicode.Range16{{0x0900, 0x097F, 1}}},
	"Bengali":                {R16: []unicode.Range16{{0x0980, 0x09FF, 1}}},
	"Gurmukhi":               {R16: []unicode.Range16{{0x0A00, 0x0A7F, 1}}},
	"Gujarati":               {R16: []unicode.Range16{{0x0A80, 0x0AFF, 1}}},
	"Tamil":                  {R16: []unicode.Range16{{0x0B80, 0x0BFF, 1}}},
	"Telugu":                 {R16: []unicode.Range16{{0x0C00, 0x0C7F, 1}}},
	"Kannada":                {R16: []unicode.Range16{{0x0C80, 0x0CFF, 1}}},
	"Malayalam":              {R16: []unicode.Range16{{0x0D00, 0x0D7F, 1}}},
	"Thai":                   {R16: []unicode.Range16{{0x0E00, 0x0E7F, 1}}},
	"Georgian":               {R16: []unicode.Range16{{0x10A0, 0x10FF, 1}}},
	"Hiragana":               {R16: []unicode.Range16{{0x3040, 0x309F, 1}}},
	"Katakana":               {R16: []unicode.Range16{{0x30A0, 0x30FF, 1}}},
	"CJK Unified Ideographs": {R16: []unicode.Range16{{0x4E00, 0x9FFF, 1}}},
	"Hangul Syllables":       {R16: []unicode.Range16{{0xAC00, 0xD7A3, 1}}},
}

// blockRules is the block-to-behavior table spec.md §4.1 requires. Each row
// corresponds to one bullet of the CharNormalizer.fold specification.
var blockRules = []blockRule{
	{blocks["Basic Latin"], actionASCIIFold},
	{blocks["Latin-1 Supplement"], actionLatin1Supp},
	{blocks["CJK Unified Ideographs"], actionKeep},
	{blocks["Hangul Syllables"], actionKeep},
	{blocks["Hiragana"], actionKeep},
	{blocks["Katakana"], actionKeep},
	{blocks["Arabic"], actionLettersOnly},
	{blocks["Devanagari"], actionLettersOnly},
	{blocks["Thai"], actionLettersOnly},
	{blocks["Hebrew"], actionLettersOnly},
	{blocks["Greek and Coptic"], actionLettersOnly},
	{blocks["Cyrillic"], actionLettersOnly},
	{blocks["Armenian"], actionLettersOnly},
	{blocks["Tamil"], actionLettersOnly},
	{blocks["Telugu"], actionLettersOnly},
	{blocks["Kannada"], actionLettersOnly},
	{blocks["Malayalam"], actionLettersOnly},
	{blocks["Bengali"], actionLettersOnly},
	{blocks["Gujarati"], actionLettersOnly},
	{blocks["Gurmukhi"], actionLettersOnly},
	{blocks["Georgian"], actionLettersOnly},
}

// Fold returns the canonical form of r: the rune itself when it should be
// kept (possibly case-folded), or Marker when it should collapse to a word
// boundary.
func Fold(r rune) rune {
	for _, rule := range blockRules {
		if rule.table == nil || !unicode.Is(rule.table, r) {
			continue
		}
		return applyAction(rule.action, r)
	}
	return fallback(r)
}

func applyAction(a action, r rune) rune {
	switch a {
	case actionASCIIFold:
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return Marker
		}
	case actionLatin1Supp:
		if unicode.IsControl(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			return Marker
		}
		return r
	case actionKeep:
		return r
	case actionLettersOnly:
		if unicode.IsLetter(r) {
			return r
		}
		return Marker
	default:
		return Marker
	}
}

// fallback handles code points outside every enumerated block: unassigned
// code points and any punctuation/symbol block collapse to Marker; letters
// from scripts not individually enumerated above are kept so the extractor
// still has signal for languages without a dedicated table row.
func fallback(r rune) rune {
	if !unicode.Is(assignedTable, r) {
		return Marker
	}
	if unicode.IsLetter(r) {
		return r
	}
	return Marker
}

// IsMarker reports whether r is the word-boundary marker.
func IsMarker(r rune) bool {
	return r == Marker
}
