package pattern

import (
	"fmt"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// annotate attaches human-readable insight and suggestion strings to a
// pattern. These are presentation sugar for the CLI; nothing downstream
// makes decisions on them.
func annotate(p *model.Pattern, now time.Time) {
	switch p.Type {
	case model.PatternDaily:
		p.Insights = append(p.Insights,
			fmt.Sprintf("You log a %s impulse roughly every %.1f days", p.Category, p.AvgInterval))
		p.Suggestions = append(p.Suggestions,
			"Try a 24-hour cooldown before acting on this one; the urge usually comes back tomorrow anyway")
	case model.PatternWeekly:
		if p.DayOfWeek != nil {
			p.Insights = append(p.Insights,
				fmt.Sprintf("%ss are your %s day (%d times so far)", weekdayNames[*p.DayOfWeek], p.Category, p.TotalOccurrences))
			p.Suggestions = append(p.Suggestions,
				fmt.Sprintf("Plan something free for %s before the urge shows up", weekdayNames[*p.DayOfWeek]))
		}
	case model.PatternTimeBased:
		if p.TimeOfDay != nil {
			p.Insights = append(p.Insights,
				fmt.Sprintf("Your %s impulses cluster around %02d:00", p.Category, *p.TimeOfDay))
			p.Suggestions = append(p.Suggestions,
				fmt.Sprintf("Keep your phone out of reach around %02d:00", *p.TimeOfDay))
		}
	case model.PatternCategory:
		if p.PriceRange != nil {
			p.Insights = append(p.Insights,
				fmt.Sprintf("You keep eyeing %s purchases around %.2f", p.Category, p.PriceRange.Avg))
			p.Suggestions = append(p.Suggestions,
				fmt.Sprintf("Set a monthly %s allowance and spend it guilt-free", p.Category))
		}
	case model.PatternFrequent:
		p.Insights = append(p.Insights,
			fmt.Sprintf("%s impulses are coming in at %.1f per day", p.Category, p.Frequency))
		p.Suggestions = append(p.Suggestions,
			fmt.Sprintf("Batch your %s wishes into one weekly review", p.Category))
	}

	if p.RegretRate > 50 {
		p.Insights = append(p.Insights,
			fmt.Sprintf("You regretted %.0f%% of the ones you went through with", p.RegretRate))
	}

	daysSince := now.Sub(p.LastSeen).Hours() / 24
	if daysSince >= 1 {
		p.Insights = append(p.Insights,
			fmt.Sprintf("Last seen %.0f days ago", daysSince))
	}
}
