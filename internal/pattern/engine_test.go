package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// scenarioDailyPastries returns three near-identical FOOD impulses, one
// per day on three consecutive days, priced around 100.
func scenarioDailyPastries() []model.Impulse {
	return []model.Impulse{
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 2, 8, 30), withPrice(90)),
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 3, 8, 30), withPrice(100)),
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 4, 8, 30), withPrice(110)),
	}
}

func TestDetect_DailyHabit(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 5, 12, 0)

	patterns := engine.Detect(scenarioDailyPastries(), now)
	require.NotEmpty(t, patterns)

	daily := findByType(t, patterns, model.PatternDaily)
	assert.Equal(t, model.CategoryFood, daily.Category)
	assert.InDelta(t, 100.0, daily.AvgPrice, 0.001)
	assert.Greater(t, daily.Confidence, 0.0)
	assert.Equal(t, 3, daily.TotalOccurrences)
	assert.Equal(t, "day", daily.Period)
	require.NotNil(t, daily.PriceRange)
	assert.InDelta(t, 90.0, daily.PriceRange.Min, 0.001)
	assert.InDelta(t, 110.0, daily.PriceRange.Max, 0.001)

	// Next occurrence extrapolates one average interval past the last sighting.
	require.NotNil(t, daily.NextPredictedDate)
	assert.WithinDuration(t, at(2025, time.June, 5, 8, 30), *daily.NextPredictedDate, time.Second)
	require.NotNil(t, daily.PredictedPrice)
	assert.InDelta(t, 100.0, *daily.PredictedPrice, 0.001)
}

func TestDetect_TooFewImpulses(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 5, 12, 0)

	impulses := []model.Impulse{
		makeImpulse("Mechanical keyboard", model.CategoryShopping, at(2025, time.June, 1, 20, 0), withPrice(150)),
		makeImpulse("Mechanical keyboard", model.CategoryShopping, at(2025, time.June, 2, 20, 0), withPrice(150)),
	}

	assert.Empty(t, engine.Detect(impulses, now))
	assert.Empty(t, engine.Detect(nil, now))
}

func TestDetect_WeeklyHabit(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 23, 12, 0)

	// Four Sundays in a row, prices within 15% of each other.
	impulses := []model.Impulse{
		makeImpulse("Vinyl records", model.CategoryShopping, at(2025, time.June, 1, 14, 0), withPrice(100)),
		makeImpulse("Vinyl crate dig", model.CategoryShopping, at(2025, time.June, 8, 14, 30), withPrice(105)),
		makeImpulse("Vinyl records again", model.CategoryShopping, at(2025, time.June, 15, 13, 45), withPrice(110)),
		makeImpulse("More vinyl", model.CategoryShopping, at(2025, time.June, 22, 14, 15), withPrice(95)),
	}

	patterns := engine.Detect(impulses, now)
	weekly := findByType(t, patterns, model.PatternWeekly)

	assert.Equal(t, model.CategoryShopping, weekly.Category)
	require.NotNil(t, weekly.DayOfWeek)
	assert.Equal(t, 0, *weekly.DayOfWeek) // Sunday
	assert.Equal(t, "week", weekly.Period)
	assert.Equal(t, 4, weekly.TotalOccurrences)

	// Prediction lands on the following Sunday.
	require.NotNil(t, weekly.NextPredictedDate)
	assert.Equal(t, time.Sunday, weekly.NextPredictedDate.Weekday())
	assert.WithinDuration(t, at(2025, time.June, 29, 14, 15), *weekly.NextPredictedDate, time.Second)
}

func TestDetect_NoPricesStillFindsTimingPatterns(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 5, 12, 0)

	impulses := []model.Impulse{
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 2, 8, 30)),
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 3, 8, 30)),
		makeImpulse("Morning pastry run", model.CategoryFood, at(2025, time.June, 4, 8, 30)),
	}

	patterns := engine.Detect(impulses, now)

	for _, p := range patterns {
		assert.NotEqual(t, model.PatternCategory, p.Type, "price-band detector must not fire without prices")
	}

	daily := findByType(t, patterns, model.PatternDaily)
	assert.Nil(t, daily.PriceRange)
	assert.Nil(t, daily.PredictedPrice)
	assert.Zero(t, daily.AvgPrice)
}

func TestDetect_RankedAndBounded(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.July, 1, 12, 0)
	impulses := busyMonth()

	patterns := engine.Detect(impulses, now)
	require.NotEmpty(t, patterns)
	assert.LessOrEqual(t, len(patterns), 10)

	seenKeys := make(map[dedupKey]bool)
	for i, p := range patterns {
		if i > 0 {
			assert.GreaterOrEqual(t, patterns[i-1].Confidence, p.Confidence, "patterns must be sorted by confidence descending")
		}

		assert.GreaterOrEqual(t, p.Confidence, 0.0)
		assert.LessOrEqual(t, p.Confidence, 100.0)
		assert.GreaterOrEqual(t, p.RegretRate, 0.0)
		assert.LessOrEqual(t, p.RegretRate, 100.0)
		assert.Equal(t, p.TotalOccurrences, len(p.ImpulseIDs))
		assert.False(t, p.FirstSeen.After(p.LastSeen))
		assert.NotEmpty(t, p.ID)

		if p.PriceRange != nil {
			assert.LessOrEqual(t, p.PriceRange.Min, p.PriceRange.Avg)
			assert.LessOrEqual(t, p.PriceRange.Avg, p.PriceRange.Max)
		}

		key := keyFor(p)
		assert.False(t, seenKeys[key], "no two patterns may share a dedup key")
		seenKeys[key] = true
	}
}

func TestDetect_HighFrequencyCategory(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 20, 12, 0)

	// 15 crypto impulses over 10 days, 1.5 per day.
	var impulses []model.Impulse
	base := at(2025, time.June, 2, 10, 0)
	for i := 0; i < 15; i++ {
		created := base.Add(time.Duration(i*16) * time.Hour)
		impulses = append(impulses, makeImpulse("Buy the dip", model.CategoryCrypto, created, withPrice(50)))
	}

	patterns := engine.Detect(impulses, now)
	frequent := findByType(t, patterns, model.PatternFrequent)

	assert.Equal(t, model.CategoryCrypto, frequent.Category)
	assert.Greater(t, frequent.Frequency, 0.5)
	assert.Equal(t, 15, frequent.TotalOccurrences)
}

func TestDetect_RegretAccounting(t *testing.T) {
	engine := NewDefault()
	now := at(2025, time.June, 10, 12, 0)

	impulses := []model.Impulse{
		makeImpulse("Midnight gadget", model.CategoryShopping, at(2025, time.June, 2, 23, 0), withPrice(40), executed(model.FeelingRegret)),
		makeImpulse("Midnight gadget", model.CategoryShopping, at(2025, time.June, 3, 23, 0), withPrice(42), executed(model.FeelingHappy)),
		makeImpulse("Midnight gadget", model.CategoryShopping, at(2025, time.June, 4, 23, 0), withPrice(44)),
	}

	patterns := engine.Detect(impulses, now)
	daily := findByType(t, patterns, model.PatternDaily)

	// Spend and regret cover only the executed subset.
	assert.InDelta(t, 82.0, daily.TotalSpent, 0.001)
	assert.InDelta(t, 40.0, daily.TotalRegretted, 0.001)
	assert.InDelta(t, 50.0, daily.RegretRate, 0.001)
}

// busyMonth generates a varied June: a daily coffee habit, a Sunday
// shopping habit, late-night entertainment, and a crypto spree.
func busyMonth() []model.Impulse {
	var impulses []model.Impulse

	for day := 2; day <= 11; day++ {
		impulses = append(impulses,
			makeImpulse("Oat latte", model.CategoryFood, at(2025, time.June, day, 9, 0), withPrice(5.5)))
	}

	for _, day := range []int{1, 8, 15, 22, 29} {
		impulses = append(impulses,
			makeImpulse("Sneaker drop", model.CategoryShopping, at(2025, time.June, day, 14, 0), withPrice(120), executed(model.FeelingRegret)))
	}

	for day := 5; day <= 18; day++ {
		impulses = append(impulses,
			makeImpulse("Movie rental", model.CategoryEntertainment, at(2025, time.June, day, 21, 0), withPrice(8)))
	}

	base := at(2025, time.June, 10, 10, 0)
	for i := 0; i < 15; i++ {
		impulses = append(impulses,
			makeImpulse("Buy the dip", model.CategoryCrypto, base.Add(time.Duration(i*16)*time.Hour), withPrice(50)))
	}

	return impulses
}

func findByType(t *testing.T, patterns []model.Pattern, ptype model.PatternType) model.Pattern {
	t.Helper()
	for _, p := range patterns {
		if p.Type == ptype {
			return p
		}
	}
	t.Fatalf("no pattern of type %s in %d patterns", ptype, len(patterns))
	return model.Pattern{}
}
