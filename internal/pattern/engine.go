// Package pattern implements the recurring-pattern detection and
// prediction engine. Given a history of logged impulses it discovers
// recurring behaviors (same time of day, same weekday, same
// category/price band, abnormally high frequency), scores and ranks
// them, predicts the next occurrence, and scores new candidate impulses
// against the detected set.
//
// The engine holds no state between calls: every method is a pure
// function of its inputs, with the current time passed explicitly.
package pattern

import (
	"sort"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// Config holds the engine tunables.
type Config struct {
	// PriceTolerance is the relative tolerance for two prices to count
	// as similar (0.20 means within 20% of their mean).
	PriceTolerance float64
	// MinOccurrences gates every detector; smaller groups are discarded.
	MinOccurrences int
	// MaxPatterns caps how many ranked patterns a detection call returns.
	MaxPatterns int
	// MatchThreshold is the minimum score for a candidate match to be reported.
	MatchThreshold float64
}

// DefaultConfig returns the tunables the CLI runs with.
func DefaultConfig() Config {
	return Config{
		PriceTolerance: 0.20,
		MinOccurrences: 3,
		MaxPatterns:    10,
		MatchThreshold: 40,
	}
}

// Engine detects recurring impulse patterns and scores candidates against them.
type Engine struct {
	cfg Config
}

// New creates an engine with the given config. Zero-valued fields fall
// back to their defaults.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.PriceTolerance <= 0 {
		cfg.PriceTolerance = def.PriceTolerance
	}
	if cfg.MinOccurrences <= 0 {
		cfg.MinOccurrences = def.MinOccurrences
	}
	if cfg.MaxPatterns <= 0 {
		cfg.MaxPatterns = def.MaxPatterns
	}
	if cfg.MatchThreshold <= 0 {
		cfg.MatchThreshold = def.MatchThreshold
	}
	return &Engine{cfg: cfg}
}

// NewDefault creates an engine with default tunables.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

// Detect runs every detector over the impulse history, deduplicates
// overlapping detections, ranks survivors by confidence, and annotates
// them with predictions. It returns at most MaxPatterns patterns sorted
// by confidence descending, and nothing at all when the history is
// shorter than MinOccurrences.
func (e *Engine) Detect(impulses []model.Impulse, now time.Time) []model.Pattern {
	if len(impulses) < e.cfg.MinOccurrences {
		return []model.Pattern{}
	}

	var candidates []model.Pattern
	candidates = append(candidates, e.detectDaily(impulses)...)
	candidates = append(candidates, e.detectWeekly(impulses)...)
	candidates = append(candidates, e.detectTimeOfDay(impulses)...)
	candidates = append(candidates, e.detectCategoryPrice(impulses)...)
	candidates = append(candidates, e.detectFrequent(impulses)...)

	patterns := e.dedupe(candidates)

	sortByConfidence(patterns)
	if len(patterns) > e.cfg.MaxPatterns {
		patterns = patterns[:e.cfg.MaxPatterns]
	}

	for i := range patterns {
		e.predict(&patterns[i])
		annotate(&patterns[i], now)
	}

	return patterns
}

// sortByConfidence orders patterns by confidence descending, with a
// stable tie-break so map iteration order never leaks into results.
func sortByConfidence(patterns []model.Pattern) {
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		if patterns[i].Type != patterns[j].Type {
			return patterns[i].Type < patterns[j].Type
		}
		return patterns[i].Category < patterns[j].Category
	})
}
