package pattern

import (
	"sort"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// Match scoring weights.
const (
	categoryWeight   = 30
	priceWeight      = 25
	timeOfDayWeight  = 20
	dayOfWeekWeight  = 25
	titleWeight      = 0.2 // applied to the 0-100 title similarity
	hourProximityMax = 2
)

// Match scores a candidate impulse, which need not be saved anywhere,
// against previously detected patterns. Matches below the configured
// threshold are dropped; the rest come back sorted by score descending.
func (e *Engine) Match(candidate model.Impulse, patterns []model.Pattern) []model.PatternMatch {
	var matches []model.PatternMatch

	for _, p := range patterns {
		score := e.matchScore(candidate, p)
		if score < e.cfg.MatchThreshold {
			continue
		}
		matches = append(matches, model.PatternMatch{
			Pattern:         p,
			MatchScore:      clampScore(score),
			MatchedImpulses: p.ImpulseIDs,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Pattern.Confidence > matches[j].Pattern.Confidence
	})

	return matches
}

func (e *Engine) matchScore(candidate model.Impulse, p model.Pattern) float64 {
	score := 0.0

	if p.Category != "" && p.Category == candidate.Category {
		score += categoryWeight
	}

	if candidate.HasPrice() && p.PriceRange != nil && e.priceSimilar(*candidate.Price, p.PriceRange.Avg) {
		score += priceWeight
	}

	if p.TimeOfDay != nil {
		diff := hourOf(candidate.CreatedAt) - *p.TimeOfDay
		if diff < 0 {
			diff = -diff
		}
		if diff <= hourProximityMax {
			score += timeOfDayWeight
		}
	}

	if p.DayOfWeek != nil && *p.DayOfWeek == weekdayOf(candidate.CreatedAt) {
		score += dayOfWeekWeight
	}

	if p.Title != "" && candidate.Title != "" {
		score += TitleSimilarity(p.Title, candidate.Title) * titleWeight
	}

	return score
}
