package pattern

import (
	"math"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// Grouping keys. Detectors group by explicit struct keys rather than
// concatenated strings so a malformed key can't collide across fields.
type dailyKey struct {
	category model.Category
	prefix   string
}

type weeklyKey struct {
	category model.Category
	weekday  int
}

// dailyTitlePrefixLen is how much of a title the daily detector uses to
// decide two impulses are "the same purchase".
const dailyTitlePrefixLen = 20

// maxIntervalDeviation is how far (in days) a single gap may drift from
// the group mean before the daily detector rejects the group.
const maxIntervalDeviation = 1.5

// maxDailyMeanInterval is the largest mean gap (in days) that still
// counts as a daily habit.
const maxDailyMeanInterval = 2.0

// detectDaily finds near-identical purchases recurring on a roughly
// daily cadence: same category, same title prefix, consistent short
// intervals across at least three distinct calendar days.
func (e *Engine) detectDaily(impulses []model.Impulse) []model.Pattern {
	groups := make(map[dailyKey][]model.Impulse)
	for _, imp := range impulses {
		key := dailyKey{
			category: imp.Category,
			prefix:   titlePrefix(imp.Title, dailyTitlePrefixLen),
		}
		groups[key] = append(groups[key], imp)
	}

	var patterns []model.Pattern
	for key, group := range groups {
		if len(group) < e.cfg.MinOccurrences {
			continue
		}

		stats := summarize(group)
		if stats.distinctDays < 3 || stats.spanDays <= 0 {
			continue
		}

		if stats.avgInterval > maxDailyMeanInterval {
			continue
		}
		consistent := true
		for _, gap := range stats.intervals {
			if math.Abs(gap-stats.avgInterval) > maxIntervalDeviation {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}

		p := newPattern(model.PatternDaily, key.category, stats)
		p.Period = "day"
		p.Frequency = float64(stats.count) / stats.spanDays
		p.Confidence = clampScore(float64(stats.count) / stats.spanDays * 20)
		p.Strength = strengthFor(stats.count, consistencyDaily, stats.spanDays)
		patterns = append(patterns, p)
	}

	return patterns
}

// detectWeekly finds purchases recurring on the same weekday within a
// category, provided the group spans at least two weeks.
func (e *Engine) detectWeekly(impulses []model.Impulse) []model.Pattern {
	groups := make(map[weeklyKey][]model.Impulse)
	for _, imp := range impulses {
		key := weeklyKey{
			category: imp.Category,
			weekday:  weekdayOf(imp.CreatedAt),
		}
		groups[key] = append(groups[key], imp)
	}

	var patterns []model.Pattern
	for key, group := range groups {
		if len(group) < e.cfg.MinOccurrences {
			continue
		}

		stats := summarize(group)
		if stats.spanDays < 14 {
			continue
		}
		weekSpan := stats.spanDays / 7
		if weekSpan <= 0 {
			continue
		}

		weekday := key.weekday
		p := newPattern(model.PatternWeekly, key.category, stats)
		p.DayOfWeek = &weekday
		p.Period = "week"
		p.Frequency = float64(stats.count) / weekSpan
		p.Confidence = clampScore(float64(stats.count) / weekSpan * 30)
		p.Strength = strengthFor(stats.count, consistencyWeekly, stats.spanDays)
		patterns = append(patterns, p)
	}

	return patterns
}

// detectTimeOfDay finds purchases clustering around the same hour of
// day regardless of title; the group's plurality category becomes the
// pattern's category.
func (e *Engine) detectTimeOfDay(impulses []model.Impulse) []model.Pattern {
	groups := make(map[int][]model.Impulse)
	for _, imp := range impulses {
		groups[hourOf(imp.CreatedAt)] = append(groups[hourOf(imp.CreatedAt)], imp)
	}

	var patterns []model.Pattern
	for hour, group := range groups {
		if len(group) < e.cfg.MinOccurrences {
			continue
		}

		stats := summarize(group)
		if stats.spanDays < 7 {
			continue
		}

		hourCopy := hour
		p := newPattern(model.PatternTimeBased, pluralityCategory(group), stats)
		p.TimeOfDay = &hourCopy
		p.Period = "day"
		p.Frequency = float64(stats.count) / stats.spanDays
		p.Confidence = clampScore(float64(stats.count) / stats.spanDays * 15)
		p.Strength = strengthFor(stats.count, consistencyTimeOfDay, stats.spanDays)
		patterns = append(patterns, p)
	}

	return patterns
}

// detectCategoryPrice finds category groups whose prices cluster in a
// band around the category mean. Unlike the other detectors, the
// price-filtered subset is definitive: unpriced and out-of-band
// impulses do not contribute to the pattern at all.
func (e *Engine) detectCategoryPrice(impulses []model.Impulse) []model.Pattern {
	groups := groupByCategory(impulses)

	var patterns []model.Pattern
	for category, group := range groups {
		var priced []model.Impulse
		sum := 0.0
		for _, imp := range group {
			if imp.HasPrice() {
				priced = append(priced, imp)
				sum += *imp.Price
			}
		}
		if len(priced) < e.cfg.MinOccurrences {
			continue
		}
		mean := sum / float64(len(priced))

		var band []model.Impulse
		for _, imp := range priced {
			if e.priceSimilar(*imp.Price, mean) {
				band = append(band, imp)
			}
		}
		if len(band) < e.cfg.MinOccurrences {
			continue
		}

		stats := summarize(band)
		if stats.spanDays <= 0 {
			continue
		}

		p := newPattern(model.PatternCategory, category, stats)
		p.Period = "day"
		p.Frequency = float64(stats.count) / stats.spanDays
		p.Confidence = clampScore(float64(stats.count) / stats.spanDays * 10)
		p.Strength = strengthFor(stats.count, consistencyCategory, stats.spanDays)
		patterns = append(patterns, p)
	}

	return patterns
}

// detectFrequent flags categories with an abnormally high logging rate:
// at least twice the usual occurrence floor, sustained over a week,
// at a rate above half an impulse per day.
func (e *Engine) detectFrequent(impulses []model.Impulse) []model.Pattern {
	groups := groupByCategory(impulses)

	var patterns []model.Pattern
	for category, group := range groups {
		if len(group) < 2*e.cfg.MinOccurrences {
			continue
		}

		stats := summarize(group)
		if stats.spanDays < 7 {
			continue
		}
		rate := float64(stats.count) / stats.spanDays
		if rate <= 0.5 {
			continue
		}

		p := newPattern(model.PatternFrequent, category, stats)
		p.Period = "day"
		p.Frequency = rate
		p.Confidence = clampScore(rate * 20)
		p.Strength = strengthFor(stats.count, consistencyFrequent, stats.spanDays)
		patterns = append(patterns, p)
	}

	return patterns
}

func groupByCategory(impulses []model.Impulse) map[model.Category][]model.Impulse {
	groups := make(map[model.Category][]model.Impulse)
	for _, imp := range impulses {
		groups[imp.Category] = append(groups[imp.Category], imp)
	}
	return groups
}

// pluralityCategory returns the most common category in a group, with a
// deterministic alphabetical tie-break.
func pluralityCategory(impulses []model.Impulse) model.Category {
	counts := make(map[model.Category]int, len(impulses))
	var best model.Category
	bestCount := 0
	for _, imp := range impulses {
		counts[imp.Category]++
		count := counts[imp.Category]
		if count > bestCount || (count == bestCount && imp.Category < best) {
			best = imp.Category
			bestCount = count
		}
	}
	return best
}
