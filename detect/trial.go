package detect

import "math/rand"

// runTrial executes one Monte-Carlo trial over the in-vocabulary n-gram
// vectors g, returning the trial's final probability vector π and the
// number of iterations it ran, per spec.md §4.4 step 5's inner loop.
//
// When cfg.ExperimentName is "no-ngram-subsampling", the trial walks g
// deterministically instead of sampling with replacement — the one
// research toggle spec.md §9 carries forward without making it part of
// the stable contract.
func runTrial(rng *rand.Rand, g [][]float64, numLangs int, cfg Config) ([]float64, int) {
	pi := make([]float64, numLangs)
	for j := range pi {
		pi[j] = 1.0 / float64(numLangs)
	}

	weight := (cfg.Alpha + rng.NormFloat64()*cfg.AlphaWidth) / float64(cfg.BaseFreq)

	if cfg.ExperimentName == "no-ngram-subsampling" {
		for i, vec := range g {
			for j := range pi {
				pi[j] *= weight + vec[j]
			}
			if i%renormalizeEvery == 0 {
				normalizeProbabilities(pi)
			}
		}
		normalizeProbabilities(pi)
		return pi, len(g)
	}

	for i := 0; ; i++ {
		vec := g[rng.Intn(len(g))]
		for j := range pi {
			pi[j] *= weight + vec[j]
		}
		if i%renormalizeEvery == 0 {
			m := normalizeProbabilities(pi)
			if m > cfg.ConvThreshold || i >= cfg.IterationLimit {
				return pi, i + 1
			}
		}
	}
}

// normalizeProbabilities scales pi so it sums to 1 and returns the largest
// normalized component, per spec.md §4.4 step 5c.
func normalizeProbabilities(pi []float64) float64 {
	var sum float64
	for _, p := range pi {
		sum += p
	}
	var max float64
	for j, p := range pi {
		pi[j] = p / sum
		if pi[j] > max {
			max = pi[j]
		}
	}
	return max
}
