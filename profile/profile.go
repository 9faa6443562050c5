// Package profile holds per-language n-gram frequency tables (LangProfile)
// and the JSON wire format they are read from, plus the ProfileStore that
// aggregates many of them into the dense n-gram → probability-vector map
// the detector scores against.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxNGramLength is the longest n-gram a profile may carry frequencies for.
const MaxNGramLength = 3

// ErrNotFound is returned by loaders when a requested language has no
// profile resource under the active variant.
var ErrNotFound = errors.New("profile: not found")

// ErrInvalid is returned when a profile resource exists but its contents
// violate the LangProfile invariants (wrong header length, n-gram longer
// than MaxNGramLength, etc).
var ErrInvalid = errors.New("profile: invalid")

// LangProfile is one language's n-gram frequency table, per spec.md §3.
//
//   - Name is the language code (e.g. "en", "zh-cn").
//   - NWords[k] is the total occurrence count of all n-grams of length k+1
//     in the source corpus, for k in {0, 1, 2}.
//   - Freq maps an n-gram string to its occurrence count in this profile.
//
// Invariant: every key in Freq has length 1..MaxNGramLength; the sum of
// counts of length-(k+1) n-grams equals NWords[k] up to pruning.
type LangProfile struct {
	Name   string                `json:"name"`
	NWords [MaxNGramLength]int64 `json:"n_words"`
	Freq   map[string]int64      `json:"freq"`
}

// Decode parses the JSON wire format of SPEC_FULL.md §3 into a LangProfile.
func Decode(data []byte) (LangProfile, error) {
	var p LangProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return LangProfile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if p.Name == "" {
		return LangProfile{}, fmt.Errorf("%w: missing name", ErrInvalid)
	}
	var header struct {
		NWords []int64 `json:"n_words"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return LangProfile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(header.NWords) != MaxNGramLength {
		return LangProfile{}, fmt.Errorf("%w: n_words has %d entries, want %d", ErrInvalid, len(header.NWords), MaxNGramLength)
	}
	for ngram := range p.Freq {
		n := len([]rune(ngram))
		if n < 1 || n > MaxNGramLength {
			return LangProfile{}, fmt.Errorf("%w: n-gram %q has length %d, want 1..%d", ErrInvalid, ngram, n, MaxNGramLength)
		}
	}
	return p, nil
}
