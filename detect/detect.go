// Package detect implements the statistical language identification
// engine: a naive-Bayes estimator over character n-gram frequencies,
// evaluated with randomized Monte-Carlo trials, per spec.md.
//
// A Detector is built once from a profile.Store and is safe for concurrent
// use by multiple goroutines afterward — the store is immutable and each
// DetectAll call allocates only call-local scratch state (a fresh RNG, a
// trial n-gram list, per-trial probability vectors).
package detect

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"unicode"

	"go.uber.org/zap"

	"github.com/Automattic/elasticsearch-langdetect/internal/charclass"
	"github.com/Automattic/elasticsearch-langdetect/langmap"
	"github.com/Automattic/elasticsearch-langdetect/ngram"
	"github.com/Automattic/elasticsearch-langdetect/profile"
	"github.com/Automattic/elasticsearch-langdetect/telemetry/metrics"
)

// randomSeed is fixed per spec.md §9 ("Deterministic RNG: the core fixes a
// seed of zero") so detection is reproducible given a fixed profile store.
const randomSeed = 0

// renormalizeEvery is the iteration cadence at which a trial renormalizes
// π and checks for convergence, per spec.md §4.4 step 5c.
const renormalizeEvery = 5

// invariantChecks gates the defensive vector-length assertion described in
// SPEC_FULL.md §7. It costs a length comparison per in-vocabulary n-gram,
// so it defaults off; profile.Build already guarantees the invariant it
// checks, making a tripped assertion a programming bug rather than a
// recoverable runtime condition.
var invariantChecks = false

// ConfigError is spec.md §7's ConfigurationError: raised at construction
// time, never leaving the store partially usable.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("detect: configuration error: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// ErrVectorLength is spec.md §7's DetectionError: a stored probability
// vector's length does not match the number of languages. Build already
// guarantees this cannot happen, so this should be unreachable outside a
// hand-assembled profile.Store that skipped profile.Build.
var ErrVectorLength = errors.New("detect: probability vector length mismatch")

// Result pairs a language code with its detected probability, per spec.md
// §3's "Language result".
type Result struct {
	Code        string
	Probability float64
}

// Detector is the Monte-Carlo inference engine of spec.md §4.4. Construct
// with New; the zero Detector is not usable.
type Detector struct {
	store   *profile.Store
	cfg     Config
	langMap langmap.Map
	canon   bool
	logger  *zap.Logger
	metrics *metrics.Detector
}

// Option configures optional Detector behavior: observability (logger,
// metrics), which never changes the results, and post-detection code
// remapping (language map, tag canonicalization), which changes only the
// reported codes, not the probabilities or their order.
type Option func(*Detector)

// WithLogger attaches a Zap logger for debug-level diagnostics. Detection
// output never depends on whether a logger is attached.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Detector) { d.logger = logger }
}

// WithMetrics attaches Prometheus instrumentation. The Detector updates m
// whether or not it is registered; its values are only exported once m is
// registered with a Registerer (see metrics.Detector.MustRegister).
func WithMetrics(m *metrics.Detector) Option {
	return func(d *Detector) { d.metrics = m }
}

// WithLanguageMap attaches the static internal→external code remapping of
// spec.md §4.5.
func WithLanguageMap(m langmap.Map) Option {
	return func(d *Detector) { d.langMap = m }
}

// WithTagCanonicalization enables the optional second remapping stage
// described in SPEC_FULL.md §4.5, running each surviving code through
// golang.org/x/text/language after the static Map substitution.
func WithTagCanonicalization() Option {
	return func(d *Detector) { d.canon = true }
}

// New builds a Detector from an ordered list of language profiles and a
// Config. It fails with a *ConfigError if the profiles cannot be
// aggregated into a valid profile.Store.
func New(profiles []profile.LangProfile, cfg Config, opts ...Option) (*Detector, error) {
	store, err := profile.Build(profiles)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if len(store.Langs) == 0 {
		return nil, &ConfigError{Err: errors.New("no languages loaded")}
	}

	d := &Detector{
		store:  store,
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// DetectAll returns all candidate languages ranked by descending
// probability, per spec.md §4.4. It returns an empty (nil) slice — never
// an error — for empty input, input the admission pattern rejects, or
// input with no in-vocabulary n-grams.
func (d *Detector) DetectAll(text string) []Result {
	if d.metrics != nil {
		d.metrics.Calls.Inc()
	}

	text = ngram.NormalizeVietnamese(text)

	if d.cfg.Pattern != nil && !d.cfg.Pattern.MatchString(text) {
		return d.recordEmpty(nil)
	}

	g := extractNGramVectors(text, d.store)
	if len(g) == 0 {
		return d.recordEmpty(nil)
	}
	if d.metrics != nil {
		d.metrics.NGramCount.Observe(float64(len(g)))
	}

	overall := d.detectProbabilities(g)
	results := d.toResults(overall)
	if len(results) == 0 {
		return d.recordEmpty(nil)
	}
	return results
}

func (d *Detector) recordEmpty(results []Result) []Result {
	if d.metrics != nil {
		d.metrics.EmptyResults.Inc()
	}
	d.logger.Debug("detect: empty result")
	return results
}

// extractNGramVectors replaces non-word runes with the fold marker, feeds
// the result through the n-gram generator, and collects the probability
// vector of every emitted n-gram that exists in the store's vocabulary.
// Out-of-vocabulary n-grams are dropped, per spec.md §4.4 step 3.
func extractNGramVectors(text string, store *profile.Store) [][]float64 {
	var g [][]float64
	gen := ngram.New()
	for _, r := range text {
		if !isWordRune(r) {
			r = charclass.Marker
		}
		gen.Push(r)
		for n := 1; n <= ngram.MaxN; n++ {
			tok, ok := gen.Get(n)
			if !ok {
				continue
			}
			if vec, ok := store.Lookup(tok); ok {
				if invariantChecks && len(vec) != store.Len() {
					panic(fmt.Errorf("%w: %q has length %d, want %d", ErrVectorLength, tok, len(vec), store.Len()))
				}
				g = append(g, vec)
			}
		}
	}
	return g
}

// isWordRune approximates Java's \P{IsWord} complement (UNICODE_CHARACTER_CLASS
// mode): letters, digits, non-spacing combining marks, and underscore count
// as word characters; everything else is folded to a space before n-gram
// extraction. Only general category Mn counts as a mark — spacing (Mc) and
// enclosing (Me) marks are not part of Java's \p{IsWord}.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}

// detectProbabilities runs Config.NumTrials independent Monte-Carlo trials
// and averages them, per spec.md §4.4 step 5.
func (d *Detector) detectProbabilities(g [][]float64) []float64 {
	l := d.store.Len()
	overall := make([]float64, l)

	rng := rand.New(rand.NewSource(randomSeed))
	for t := 0; t < d.cfg.NumTrials; t++ {
		trial, iterations := runTrial(rng, g, l, d.cfg)
		if d.metrics != nil {
			d.metrics.TrialLength.Observe(float64(iterations))
		}
		for j, p := range trial {
			overall[j] += p / float64(d.cfg.NumTrials)
		}
	}
	return overall
}

// toResults filters by probability threshold, remaps codes, and sorts the
// result descending by probability, per spec.md §4.4 steps 6-8.
func (d *Detector) toResults(overall []float64) []Result {
	results := make([]Result, 0, len(overall))
	for j, p := range overall {
		if p <= d.cfg.ProbThreshold {
			continue
		}
		code := d.store.Langs[j]
		code = d.langMap.Apply(code)
		if d.canon {
			code = langmap.Canonicalize(code)
		}
		results = append(results, Result{Code: code, Probability: p})
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Probability, a.Probability)
	})

	if d.cfg.Max > 0 && len(results) > d.cfg.Max {
		results = results[:d.cfg.Max]
	}
	return results
}
