package output

import (
	"context"

	"eduhack/internal/domain/entities"
)

// TeamRepository stores teams together with their member and challenge rows.
// Update and Delete write the team and its rows atomically.
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	FindByID(ctx context.Context, id uint) (*entities.Team, error)
	FindAll(ctx context.Context) ([]entities.Team, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id uint) error
}
