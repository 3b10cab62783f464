package pattern

import (
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// predict annotates a pattern with its next expected occurrence and
// price. Weekly patterns advance to the next matching weekday; every
// other type extrapolates from the average interval.
func (e *Engine) predict(p *model.Pattern) {
	var next time.Time

	switch {
	case p.Type == model.PatternWeekly && p.DayOfWeek != nil:
		next = nextWeekday(p.LastSeen, *p.DayOfWeek)
	default:
		if p.AvgInterval <= 0 {
			break
		}
		next = p.LastSeen.Add(time.Duration(p.AvgInterval * 24 * float64(time.Hour)))
	}

	if !next.IsZero() {
		p.NextPredictedDate = &next
	}

	if p.PriceRange != nil {
		avg := p.PriceRange.Avg
		p.PredictedPrice = &avg
	}
}

// nextWeekday returns the first timestamp after base whose weekday
// matches target; when base already sits on the target weekday it
// advances a full week.
func nextWeekday(base time.Time, target int) time.Time {
	days := (target - weekdayOf(base) + 7) % 7
	if days == 0 {
		days = 7
	}
	return base.AddDate(0, 0, days)
}
