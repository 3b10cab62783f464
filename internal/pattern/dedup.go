package pattern

import "github.com/sleeponit/sleep-on-it/internal/model"

// dedupKey identifies detections that describe the same habit. The key
// deliberately omits the title, so two distinct recurring items sharing
// a category and time slot collapse into the higher-confidence one.
type dedupKey struct {
	ptype    model.PatternType
	category model.Category
	slot     int // dayOfWeek or timeOfDay, -1 when the pattern has neither
}

func keyFor(p model.Pattern) dedupKey {
	slot := -1
	switch {
	case p.DayOfWeek != nil:
		slot = *p.DayOfWeek
	case p.TimeOfDay != nil:
		slot = *p.TimeOfDay
	}
	return dedupKey{ptype: p.Type, category: p.Category, slot: slot}
}

// dedupe merges candidates that share a key, keeping the one with the
// higher confidence.
func (e *Engine) dedupe(candidates []model.Pattern) []model.Pattern {
	best := make(map[dedupKey]model.Pattern, len(candidates))
	for _, candidate := range candidates {
		key := keyFor(candidate)
		kept, seen := best[key]
		if !seen || candidate.Confidence > kept.Confidence {
			best[key] = candidate
		}
	}

	survivors := make([]model.Pattern, 0, len(best))
	for _, p := range best {
		survivors = append(survivors, p)
	}
	return survivors
}
