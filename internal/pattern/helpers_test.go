package pattern

import (
	"fmt"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// impulseOpt mutates a test impulse during construction.
type impulseOpt func(*model.Impulse)

var testIDCounter int

// makeImpulse builds a pending impulse for tests; options tweak fields.
func makeImpulse(title string, category model.Category, createdAt time.Time, opts ...impulseOpt) model.Impulse {
	testIDCounter++
	imp := model.Impulse{
		ID:        fmt.Sprintf("imp-%03d", testIDCounter),
		Title:     title,
		Category:  category,
		Status:    model.StatusPending,
		CreatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(&imp)
	}
	return imp
}

func withPrice(price float64) impulseOpt {
	return func(imp *model.Impulse) {
		imp.Price = &price
	}
}

func executed(feeling model.Feeling) impulseOpt {
	return func(imp *model.Impulse) {
		imp.Status = model.StatusExecuted
		at := imp.CreatedAt.Add(48 * time.Hour)
		imp.ExecutedAt = &at
		imp.FinalFeeling = &feeling
	}
}

// at is shorthand for a UTC timestamp in tests.
func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func intPtr(i int) *int { return &i }
