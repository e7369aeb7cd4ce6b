package output

import (
	"context"

	"eduhack/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	FindByID(ctx context.Context, id uint) (*entities.Participant, error)
	FindByEmail(ctx context.Context, email string) (*entities.Participant, error)
	// FindAll returns every participant, or only those of kind when it is not empty.
	FindAll(ctx context.Context, kind string) ([]entities.Participant, error)
	Update(ctx context.Context, participant *entities.Participant) error
	Delete(ctx context.Context, id uint) error
}
