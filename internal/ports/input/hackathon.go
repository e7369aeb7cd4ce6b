package input

import (
	"context"
	"time"

	"eduhack/internal/domain/entities"
)

// HackathonChanges is a partial update; nil fields are left untouched.
type HackathonChanges struct {
	Name        *string
	Description *string
	Location    *string
	State       *string
	Start       *time.Time
	End         *time.Time
}

type HackathonUseCase interface {
	CreateHackathon(ctx context.Context, hackathon *entities.Hackathon) error
	GetHackathon(ctx context.Context, id uint) (*entities.Hackathon, error)
	ListHackathons(ctx context.Context, state string) ([]entities.Hackathon, error)
	UpcomingHackathons(ctx context.Context) ([]entities.Hackathon, error)
	UpdateHackathon(ctx context.Context, id uint, changes HackathonChanges) (*entities.Hackathon, error)
	DeleteHackathon(ctx context.Context, id uint) error
	HackathonTeams(ctx context.Context, id uint) ([]entities.Team, error)
	HackathonChallenges(ctx context.Context, id uint) ([]entities.Challenge, error)
}
