package pattern

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// groupStats aggregates everything the detectors need from one group of
// impulses: time span, consecutive intervals, price summary, and
// regret accounting over the executed subset.
type groupStats struct {
	first          time.Time
	last           time.Time
	priceRange     *model.PriceRange
	title          string
	ids            []string
	intervals      []float64 // days between consecutive impulses
	spanDays       float64
	avgInterval    float64 // days
	avgPrice       float64
	totalSpent     float64
	totalRegretted float64
	regretRate     float64
	distinctDays   int
	count          int
}

// summarize computes group statistics over a copy of the impulses,
// sorted chronologically. Impulses without a positive price stay in the
// group but are excluded from all price math.
func summarize(impulses []model.Impulse) groupStats {
	sorted := make([]model.Impulse, len(impulses))
	copy(sorted, impulses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	stats := groupStats{
		count: len(sorted),
		title: representativeTitle(sorted),
	}
	if stats.count == 0 {
		return stats
	}

	stats.first = sorted[0].CreatedAt
	stats.last = sorted[len(sorted)-1].CreatedAt
	stats.spanDays = stats.last.Sub(stats.first).Hours() / 24

	days := make(map[time.Time]bool, len(sorted))
	for _, imp := range sorted {
		days[calendarDay(imp.CreatedAt)] = true
	}
	stats.distinctDays = len(days)

	stats.ids = make([]string, 0, len(sorted))
	for _, imp := range sorted {
		stats.ids = append(stats.ids, imp.ID)
	}

	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].CreatedAt.Sub(sorted[i-1].CreatedAt).Hours() / 24
		stats.intervals = append(stats.intervals, gap)
	}
	if len(stats.intervals) > 0 {
		sum := 0.0
		for _, gap := range stats.intervals {
			sum += gap
		}
		stats.avgInterval = sum / float64(len(stats.intervals))
	}

	summarizePrices(&stats, sorted)
	summarizeOutcomes(&stats, sorted)

	return stats
}

// summarizePrices fills the price range and average over priced impulses.
func summarizePrices(stats *groupStats, impulses []model.Impulse) {
	priced := 0
	sum := 0.0
	var minPrice, maxPrice float64

	for _, imp := range impulses {
		if !imp.HasPrice() {
			continue
		}
		price := *imp.Price
		if priced == 0 {
			minPrice, maxPrice = price, price
		} else {
			if price < minPrice {
				minPrice = price
			}
			if price > maxPrice {
				maxPrice = price
			}
		}
		sum += price
		priced++
	}

	if priced == 0 {
		return
	}

	stats.avgPrice = sum / float64(priced)
	stats.priceRange = &model.PriceRange{
		Min: minPrice,
		Max: maxPrice,
		Avg: stats.avgPrice,
	}
}

// summarizeOutcomes computes spend and regret totals over the executed subset.
func summarizeOutcomes(stats *groupStats, impulses []model.Impulse) {
	executed := 0
	regretted := 0

	for _, imp := range impulses {
		if imp.Status != model.StatusExecuted {
			continue
		}
		executed++
		if imp.HasPrice() {
			stats.totalSpent += *imp.Price
		}
		if imp.Regretted() {
			regretted++
			if imp.HasPrice() {
				stats.totalRegretted += *imp.Price
			}
		}
	}

	if executed > 0 {
		stats.regretRate = float64(regretted) / float64(executed) * 100
	}
}

// newPattern builds the shared fields of an emitted pattern from its
// group statistics. Detector-specific fields (day, hour, confidence,
// strength, frequency) are filled in by the caller.
func newPattern(ptype model.PatternType, category model.Category, stats groupStats) model.Pattern {
	return model.Pattern{
		ID:               uuid.New().String(),
		Type:             ptype,
		Category:         category,
		Title:            stats.title,
		FirstSeen:        stats.first,
		LastSeen:         stats.last,
		AvgInterval:      stats.avgInterval,
		TotalOccurrences: len(stats.ids),
		ImpulseIDs:       stats.ids,
		PriceRange:       stats.priceRange,
		AvgPrice:         stats.avgPrice,
		TotalSpent:       stats.totalSpent,
		TotalRegretted:   stats.totalRegretted,
		RegretRate:       stats.regretRate,
	}
}
