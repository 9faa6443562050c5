package detect

import "regexp"

// Config holds the tunable parameters of spec.md §6, with the documented
// defaults. The zero Config is not valid for direct use — build one with
// DefaultConfig and override only the fields that need to change.
type Config struct {
	// NumTrials is T, the number of independent Monte-Carlo trials
	// averaged together. Default 7.
	NumTrials int

	// Alpha is the smoothing mean α₀. Default 0.5.
	Alpha float64

	// AlphaWidth is the smoothing standard deviation αw. Default 0.05.
	AlphaWidth float64

	// IterationLimit caps the length of a single trial. Default 10000.
	IterationLimit int

	// ProbThreshold is the minimum probability a language must reach to
	// be reported. Default 0.1.
	ProbThreshold float64

	// ConvThreshold is the convergence cutoff on the maximum component
	// of π. Default 0.99999.
	ConvThreshold float64

	// BaseFreq is the divisor in the smoothing weight w = α / BaseFreq.
	// Default 10000.
	BaseFreq int

	// Pattern, if non-nil, gates admission: inputs that do not match it
	// produce an empty result without running detection at all. MatchString
	// is unanchored, so Pattern must itself anchor to the whole input
	// (e.g. with \A...\z) to reproduce Java's Matcher.matches() semantics
	// that LangdetectService.java's admission gate relies on;
	// config.Settings.ToDetectConfig does this anchoring for callers that go
	// through it.
	Pattern *regexp.Regexp

	// Max, if > 0, truncates the returned ranking to at most Max entries.
	Max int

	// ExperimentName is a pass-through research toggle mirroring the
	// original LangdetectService's "experimentName" setting. Only
	// "no-ngram-subsampling" is recognized; every other value (including
	// the empty string) runs the default randomized-sampling loop. Not
	// part of the stable contract — see spec.md §9's Open Questions.
	ExperimentName string
}

// DefaultConfig returns the configuration spec.md §6 documents as the
// default.
func DefaultConfig() Config {
	return Config{
		NumTrials:      7,
		Alpha:          0.5,
		AlphaWidth:     0.05,
		IterationLimit: 10000,
		ProbThreshold:  0.1,
		ConvThreshold:  0.99999,
		BaseFreq:       10000,
	}
}
