package output

import (
	"context"
	"time"

	"eduhack/internal/domain/entities"
)

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *entities.Hackathon) error
	FindByID(ctx context.Context, id uint) (*entities.Hackathon, error)
	// FindAll returns every hackathon, or only those in state when it is not empty.
	FindAll(ctx context.Context, state string) ([]entities.Hackathon, error)
	// FindStartingAfter returns the hackathons that start after now, soonest first.
	FindStartingAfter(ctx context.Context, now time.Time) ([]entities.Hackathon, error)
	Update(ctx context.Context, hackathon *entities.Hackathon) error
	Delete(ctx context.Context, id uint) error
}
