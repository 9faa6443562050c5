package profile

import (
	"math"
	"testing"
)

func TestBuildVectorLength(t *testing.T) {
	t.Parallel()
	profiles := []LangProfile{
		{Name: "en", NWords: [3]int64{10, 0, 0}, Freq: map[string]int64{"e": 5, "t": 5}},
		{Name: "fr", NWords: [3]int64{8, 0, 0}, Freq: map[string]int64{"e": 4, "a": 4}},
	}
	store, err := Build(profiles)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	for ngram, vec := range store.NGramProb {
		if len(vec) != store.Len() {
			t.Errorf("vector for %q has length %d, want %d", ngram, len(vec), store.Len())
		}
	}
}

func TestBuildRelativeFrequencies(t *testing.T) {
	t.Parallel()
	profiles := []LangProfile{
		{Name: "en", NWords: [3]int64{10, 0, 0}, Freq: map[string]int64{"e": 5, "t": 5}},
		{Name: "fr", NWords: [3]int64{8, 0, 0}, Freq: map[string]int64{"e": 4, "a": 4}},
	}
	store, err := Build(profiles)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	vec, ok := store.Lookup("e")
	if !ok {
		t.Fatal("expected \"e\" to be in vocabulary")
	}
	if !closeTo(vec[0], 0.5) || !closeTo(vec[1], 0.5) {
		t.Errorf("Lookup(\"e\") = %v, want [0.5 0.5]", vec)
	}

	if _, ok := store.Lookup("a"); !ok {
		t.Fatal("expected \"a\" to be in vocabulary")
	}
	if vecA, _ := store.Lookup("a"); !closeTo(vecA[0], 0) || !closeTo(vecA[1], 0.5) {
		t.Errorf("Lookup(\"a\") = %v, want [0 0.5]", vecA)
	}
}

func TestBuildPerLanguagePerLengthSumsToOne(t *testing.T) {
	t.Parallel()
	profiles := []LangProfile{
		{Name: "en", NWords: [3]int64{100, 0, 0}, Freq: map[string]int64{"e": 40, "t": 30, "a": 30}},
	}
	store, err := Build(profiles)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var sum float64
	for _, vec := range store.NGramProb {
		sum += vec[0]
	}
	if !closeTo(sum, 1.0) {
		t.Errorf("sum of 1-gram probabilities for en = %v, want 1.0", sum)
	}
}

func TestBuildRejectsOverlongNGram(t *testing.T) {
	t.Parallel()
	profiles := []LangProfile{
		{Name: "en", NWords: [3]int64{1, 1, 1}, Freq: map[string]int64{"abcd": 1}},
	}
	if _, err := Build(profiles); err == nil {
		t.Error("Build with overlong n-gram: want error, got nil")
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
