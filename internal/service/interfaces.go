// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// ImpulseFilter defines filtering options for impulse queries.
type ImpulseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    model.ImpulseStatus
	Category  model.Category
	Limit     int
}

// Storage defines the contract for the persistence layer. The pattern
// engine never touches storage directly; callers load impulses through
// this interface and hand the slice to the engine.
type Storage interface {
	// Impulse operations
	SaveImpulses(ctx context.Context, impulses []model.Impulse) error
	GetImpulseByID(ctx context.Context, id string) (*model.Impulse, error)
	ListImpulses(ctx context.Context, filter ImpulseFilter) ([]model.Impulse, error)
	ResolveImpulse(ctx context.Context, id string, status model.ImpulseStatus, feeling *model.Feeling, resolvedAt time.Time) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
