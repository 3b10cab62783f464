package pattern

import "github.com/sleeponit/sleep-on-it/internal/model"

// Per-detector consistency constants reflecting how strict each
// detector's grouping rule is: the daily detector demands near-identical
// titles and tight intervals, while the frequency detector only counts.
const (
	consistencyDaily     = 0.8
	consistencyWeekly    = 0.7
	consistencyTimeOfDay = 0.6
	consistencyCategory  = 0.5
	consistencyFrequent  = 0.4
)

// Strength score thresholds.
const (
	veryStrongThreshold = 8
	strongThreshold     = 6
	moderateThreshold   = 4
)

// strengthFor maps raw group numbers onto the ordinal strength scale.
// The score blends occurrence count, the detector's consistency
// constant, and the occurrence rate over the group's time span.
// Callers must guarantee spanDays > 0.
func strengthFor(occurrences int, consistency, spanDays float64) model.PatternStrength {
	frequency := float64(occurrences) / spanDays
	score := 0.4*float64(occurrences) + 0.4*consistency + 0.2*frequency

	switch {
	case score >= veryStrongThreshold:
		return model.StrengthVeryStrong
	case score >= strongThreshold:
		return model.StrengthStrong
	case score >= moderateThreshold:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}

// clampScore bounds a confidence or match score to [0,100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
