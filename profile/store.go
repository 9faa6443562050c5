package profile

import "fmt"

// Store is the aggregated, immutable n-gram → probability-vector map the
// detector scores against, per spec.md §4.3.
//
//   - Langs is the ordered sequence of language codes; its order defines
//     the index used by every probability vector, and is stable for the
//     life of the Store.
//   - NGramProb maps an n-gram string to a dense vector of length
//     len(Langs), where entry j is the relative frequency of the n-gram in
//     language j's profile.
//
// A Store is built once and never mutated afterward, so it is safe to
// share by reference across concurrent detector calls without locking.
type Store struct {
	Langs     []string
	NGramProb map[string][]float64
}

// Build aggregates an ordered list of LangProfiles into a Store, per
// spec.md §4.3's construction algorithm: for each profile i and each
// n-gram/count pair in its Freq table, a zero-initialized vector of length
// len(profiles) is created on first sight, and its i-th coordinate is set
// to count / profile.NWords[len(ngram)-1].
//
// Build returns an error wrapping ErrInvalid if any profile is malformed
// (already checked by Decode, but re-verified here since callers may
// construct LangProfile values directly rather than through Decode).
func Build(profiles []LangProfile) (*Store, error) {
	langs := make([]string, len(profiles))
	ngramProb := make(map[string][]float64)

	for i, p := range profiles {
		langs[i] = p.Name
		for ngram, count := range p.Freq {
			n := len([]rune(ngram))
			if n < 1 || n > MaxNGramLength {
				return nil, fmt.Errorf("%w: profile %q n-gram %q has length %d", ErrInvalid, p.Name, ngram, n)
			}
			total := p.NWords[n-1]
			if total <= 0 {
				continue // no signal for this n-length in this profile; leave coordinate at zero
			}
			vec, ok := ngramProb[ngram]
			if !ok {
				vec = make([]float64, len(profiles))
				ngramProb[ngram] = vec
			}
			vec[i] += float64(count) / float64(total)
		}
	}

	return &Store{Langs: langs, NGramProb: ngramProb}, nil
}

// Len returns the number of languages in the store.
func (s *Store) Len() int {
	return len(s.Langs)
}

// Lookup returns the probability vector for ngram and whether it exists in
// the vocabulary.
func (s *Store) Lookup(ngram string) ([]float64, bool) {
	v, ok := s.NGramProb[ngram]
	return v, ok
}
