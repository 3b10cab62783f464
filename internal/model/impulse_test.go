package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImpulse_Validate(t *testing.T) {
	now := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	price := 25.0
	negative := -1.0
	regret := FeelingRegret
	badFeeling := Feeling("elated")

	valid := Impulse{
		ID:        "imp-1",
		Title:     "Mechanical keyboard",
		Category:  CategoryShopping,
		Price:     &price,
		Status:    StatusPending,
		CreatedAt: now,
	}

	tests := []struct {
		name    string
		mutate  func(*Impulse)
		wantErr string
	}{
		{
			name:   "valid pending impulse",
			mutate: func(_ *Impulse) {},
		},
		{
			name: "valid executed impulse",
			mutate: func(i *Impulse) {
				i.Status = StatusExecuted
				executedAt := now.Add(24 * time.Hour)
				i.ExecutedAt = &executedAt
				i.FinalFeeling = &regret
			},
		},
		{
			name:    "missing id",
			mutate:  func(i *Impulse) { i.ID = "" },
			wantErr: "id is required",
		},
		{
			name:    "missing title",
			mutate:  func(i *Impulse) { i.Title = "" },
			wantErr: "title is required",
		},
		{
			name:    "unknown category",
			mutate:  func(i *Impulse) { i.Category = "GADGETS" },
			wantErr: "invalid category",
		},
		{
			name:    "unknown status",
			mutate:  func(i *Impulse) { i.Status = "maybe" },
			wantErr: "invalid status",
		},
		{
			name:    "negative price",
			mutate:  func(i *Impulse) { i.Price = &negative },
			wantErr: "price must be non-negative",
		},
		{
			name:    "zero created time",
			mutate:  func(i *Impulse) { i.CreatedAt = time.Time{} },
			wantErr: "created time is required",
		},
		{
			name:    "executed without execution time",
			mutate:  func(i *Impulse) { i.Status = StatusExecuted },
			wantErr: "must have an execution time",
		},
		{
			name: "pending with execution time",
			mutate: func(i *Impulse) {
				executedAt := now.Add(24 * time.Hour)
				i.ExecutedAt = &executedAt
			},
			wantErr: "only executed impulses",
		},
		{
			name:    "unknown feeling",
			mutate:  func(i *Impulse) { i.FinalFeeling = &badFeeling },
			wantErr: "invalid feeling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := valid
			tt.mutate(&imp)

			err := imp.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestImpulse_Regretted(t *testing.T) {
	now := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	regret := FeelingRegret
	happy := FeelingHappy

	executed := Impulse{Status: StatusExecuted, ExecutedAt: &now, FinalFeeling: &regret}
	assert.True(t, executed.Regretted())

	executed.FinalFeeling = &happy
	assert.False(t, executed.Regretted())

	cancelled := Impulse{Status: StatusCancelled, FinalFeeling: &regret}
	assert.False(t, cancelled.Regretted())
}

func TestImpulse_HasPrice(t *testing.T) {
	zero := 0.0
	price := 9.99

	assert.False(t, (&Impulse{}).HasPrice())
	assert.False(t, (&Impulse{Price: &zero}).HasPrice())
	assert.True(t, (&Impulse{Price: &price}).HasPrice())
}
