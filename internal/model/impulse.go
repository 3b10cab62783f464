// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"
)

// Category is the closed set of impulse categories.
type Category string

// Impulse categories.
const (
	CategoryFood          Category = "FOOD"
	CategoryShopping      Category = "SHOPPING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryTrading       Category = "TRADING"
	CategoryCrypto        Category = "CRYPTO"
	CategoryCourse        Category = "COURSE"
	CategorySubscription  Category = "SUBSCRIPTION"
	CategoryOther         Category = "OTHER"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryShopping,
	CategoryEntertainment,
	CategoryTrading,
	CategoryCrypto,
	CategoryCourse,
	CategorySubscription,
	CategoryOther,
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ImpulseStatus tracks where an impulse is in its lifecycle.
type ImpulseStatus string

// Impulse status constants.
const (
	StatusPending   ImpulseStatus = "pending"
	StatusCancelled ImpulseStatus = "cancelled"
	StatusExecuted  ImpulseStatus = "executed"
)

// Valid reports whether the status is one of the known values.
func (s ImpulseStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCancelled, StatusExecuted:
		return true
	}
	return false
}

// Feeling describes how the user felt about an executed purchase after the fact.
type Feeling string

// Feeling constants.
const (
	FeelingHappy   Feeling = "happy"
	FeelingNeutral Feeling = "neutral"
	FeelingRegret  Feeling = "regret"
)

// Valid reports whether the feeling is one of the known values.
func (f Feeling) Valid() bool {
	switch f {
	case FeelingHappy, FeelingNeutral, FeelingRegret:
		return true
	}
	return false
}

// Impulse represents a single logged purchase impulse. The price is
// optional; a nil Price means the user never entered one.
type Impulse struct {
	CreatedAt    time.Time
	ExecutedAt   *time.Time
	Price        *float64
	FinalFeeling *Feeling
	ID           string
	Title        string
	Category     Category
	Status       ImpulseStatus
}

// Validate ensures the impulse has well-formed data before it reaches storage.
func (i *Impulse) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("impulse id is required")
	}

	if i.Title == "" {
		return fmt.Errorf("impulse title is required")
	}

	if !i.Category.Valid() {
		return fmt.Errorf("invalid category: %s", i.Category)
	}

	if !i.Status.Valid() {
		return fmt.Errorf("invalid status: %s", i.Status)
	}

	if i.Price != nil && *i.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %.2f", *i.Price)
	}

	if i.CreatedAt.IsZero() {
		return fmt.Errorf("created time is required")
	}

	// ExecutedAt accompanies the executed status and nothing else.
	if i.Status == StatusExecuted && i.ExecutedAt == nil {
		return fmt.Errorf("executed impulse must have an execution time")
	}
	if i.Status != StatusExecuted && i.ExecutedAt != nil {
		return fmt.Errorf("only executed impulses may have an execution time")
	}

	if i.FinalFeeling != nil && !i.FinalFeeling.Valid() {
		return fmt.Errorf("invalid feeling: %s", *i.FinalFeeling)
	}

	return nil
}

// Regretted reports whether this impulse was executed and later marked as regret.
func (i *Impulse) Regretted() bool {
	return i.Status == StatusExecuted && i.FinalFeeling != nil && *i.FinalFeeling == FeelingRegret
}

// HasPrice reports whether the impulse carries a usable price for
// price-based math (present and strictly positive).
func (i *Impulse) HasPrice() bool {
	return i.Price != nil && *i.Price > 0
}
