package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

func TestDetectDaily_RejectsInconsistentIntervals(t *testing.T) {
	engine := NewDefault()

	// Gaps of 1, 1, and 4 days: the mean of 2 squeaks under the daily
	// ceiling but the 4-day gap deviates by more than 1.5 days.
	impulses := []model.Impulse{
		makeImpulse("Energy drink", model.CategoryFood, at(2025, time.June, 2, 10, 0)),
		makeImpulse("Energy drink", model.CategoryFood, at(2025, time.June, 3, 10, 0)),
		makeImpulse("Energy drink", model.CategoryFood, at(2025, time.June, 4, 10, 0)),
		makeImpulse("Energy drink", model.CategoryFood, at(2025, time.June, 8, 10, 0)),
	}

	assert.Empty(t, engine.detectDaily(impulses))
}

func TestDetectDaily_RejectsLongMeanInterval(t *testing.T) {
	engine := NewDefault()

	// Every three days is consistent but too slow to be a daily habit.
	impulses := []model.Impulse{
		makeImpulse("Takeout", model.CategoryFood, at(2025, time.June, 2, 19, 0)),
		makeImpulse("Takeout", model.CategoryFood, at(2025, time.June, 5, 19, 0)),
		makeImpulse("Takeout", model.CategoryFood, at(2025, time.June, 8, 19, 0)),
	}

	assert.Empty(t, engine.detectDaily(impulses))
}

func TestDetectDaily_RequiresDistinctDays(t *testing.T) {
	engine := NewDefault()

	// Three impulses on two calendar days.
	impulses := []model.Impulse{
		makeImpulse("Snack", model.CategoryFood, at(2025, time.June, 2, 9, 0)),
		makeImpulse("Snack", model.CategoryFood, at(2025, time.June, 2, 15, 0)),
		makeImpulse("Snack", model.CategoryFood, at(2025, time.June, 3, 9, 0)),
	}

	assert.Empty(t, engine.detectDaily(impulses))
}

func TestDetectDaily_GroupsByTitlePrefix(t *testing.T) {
	engine := NewDefault()

	// Same category, different purchases: neither group reaches three.
	impulses := []model.Impulse{
		makeImpulse("Espresso", model.CategoryFood, at(2025, time.June, 2, 9, 0)),
		makeImpulse("Espresso", model.CategoryFood, at(2025, time.June, 3, 9, 0)),
		makeImpulse("Club sandwich", model.CategoryFood, at(2025, time.June, 4, 9, 0)),
	}

	assert.Empty(t, engine.detectDaily(impulses))
}

func TestDetectWeekly_RequiresTwoWeekSpan(t *testing.T) {
	engine := NewDefault()

	// Three Mondays... would need three weeks; these three impulses all
	// land on the same weekday inside 9 days.
	impulses := []model.Impulse{
		makeImpulse("Stream sub", model.CategoryEntertainment, at(2025, time.June, 2, 20, 0)),
		makeImpulse("Stream sub", model.CategoryEntertainment, at(2025, time.June, 9, 20, 0)),
	}
	assert.Empty(t, engine.detectWeekly(impulses))

	withThirdWeek := append(impulses,
		makeImpulse("Stream sub", model.CategoryEntertainment, at(2025, time.June, 16, 20, 0)))
	patterns := engine.detectWeekly(withThirdWeek)
	require.Len(t, patterns, 1)
	require.NotNil(t, patterns[0].DayOfWeek)
	assert.Equal(t, 1, *patterns[0].DayOfWeek) // Monday
}

func TestDetectTimeOfDay_RequiresWeekSpan(t *testing.T) {
	engine := NewDefault()

	short := []model.Impulse{
		makeImpulse("A", model.CategoryOther, at(2025, time.June, 2, 22, 0)),
		makeImpulse("B", model.CategoryOther, at(2025, time.June, 4, 22, 30)),
		makeImpulse("C", model.CategoryOther, at(2025, time.June, 6, 22, 15)),
	}
	assert.Empty(t, engine.detectTimeOfDay(short))

	spread := []model.Impulse{
		makeImpulse("A", model.CategoryOther, at(2025, time.June, 2, 22, 0)),
		makeImpulse("B", model.CategoryShopping, at(2025, time.June, 6, 22, 30)),
		makeImpulse("C", model.CategoryShopping, at(2025, time.June, 10, 22, 15)),
	}
	patterns := engine.detectTimeOfDay(spread)
	require.Len(t, patterns, 1)
	require.NotNil(t, patterns[0].TimeOfDay)
	assert.Equal(t, 22, *patterns[0].TimeOfDay)
	// Plurality category wins.
	assert.Equal(t, model.CategoryShopping, patterns[0].Category)
}

func TestDetectCategoryPrice_FiltersOutliers(t *testing.T) {
	engine := NewDefault()

	// The outlier drags the mean to 207.5, far from both the cluster
	// and itself, so nothing survives the band filter.
	impulses := []model.Impulse{
		makeImpulse("Webcam", model.CategoryShopping, at(2025, time.June, 2, 12, 0), withPrice(100)),
		makeImpulse("Headset", model.CategoryShopping, at(2025, time.June, 4, 12, 0), withPrice(110)),
		makeImpulse("Keyboard", model.CategoryShopping, at(2025, time.June, 6, 12, 0), withPrice(120)),
		makeImpulse("Monitor", model.CategoryShopping, at(2025, time.June, 8, 12, 0), withPrice(500)),
	}

	patterns := engine.detectCategoryPrice(impulses)
	assert.Empty(t, patterns)

	// Without the outlier the cluster sits on its own mean.
	patterns = engine.detectCategoryPrice(impulses[:3])
	require.Len(t, patterns, 1)
	assert.Equal(t, model.PatternCategory, patterns[0].Type)
	assert.Equal(t, 3, patterns[0].TotalOccurrences)
	assert.InDelta(t, 110.0, patterns[0].AvgPrice, 0.001)
}

func TestDetectCategoryPrice_IgnoresUnpricedImpulses(t *testing.T) {
	engine := NewDefault()

	impulses := []model.Impulse{
		makeImpulse("Webcam", model.CategoryShopping, at(2025, time.June, 2, 12, 0), withPrice(100)),
		makeImpulse("Headset", model.CategoryShopping, at(2025, time.June, 4, 12, 0), withPrice(105)),
		makeImpulse("Mystery", model.CategoryShopping, at(2025, time.June, 6, 12, 0)),
	}

	// Only two priced impulses, below the occurrence floor.
	assert.Empty(t, engine.detectCategoryPrice(impulses))
}

func TestDetectFrequent_RequiresSustainedRate(t *testing.T) {
	engine := NewDefault()

	// Six impulses over 14 days is only ~0.43/day.
	var slow []model.Impulse
	for i := 0; i < 6; i++ {
		slow = append(slow, makeImpulse("Course bundle", model.CategoryCourse,
			at(2025, time.June, 2+i*3, 18, 0)))
	}
	assert.Empty(t, engine.detectFrequent(slow))

	// Eight impulses over 9 days clears both gates.
	var fast []model.Impulse
	for i := 0; i < 8; i++ {
		fast = append(fast, makeImpulse("Course bundle", model.CategoryCourse,
			at(2025, time.June, 2, 10+i, 0).AddDate(0, 0, i)))
	}
	patterns := engine.detectFrequent(fast)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.PatternFrequent, patterns[0].Type)
	assert.Greater(t, patterns[0].Frequency, 0.5)
}

func TestPluralityCategory(t *testing.T) {
	impulses := []model.Impulse{
		makeImpulse("A", model.CategoryFood, at(2025, time.June, 2, 9, 0)),
		makeImpulse("B", model.CategoryCrypto, at(2025, time.June, 2, 10, 0)),
		makeImpulse("C", model.CategoryCrypto, at(2025, time.June, 2, 11, 0)),
	}
	assert.Equal(t, model.CategoryCrypto, pluralityCategory(impulses))

	// Ties break alphabetically for determinism.
	tied := impulses[:2]
	assert.Equal(t, model.CategoryCrypto, pluralityCategory(tied))
}
