package input

import (
	"context"

	"eduhack/internal/domain/entities"
)

// ParticipantChanges is a partial update. Profile fields of the other kind are ignored.
type ParticipantChanges struct {
	Name  *string
	Email *string
	Phone *string

	Grade       *string
	Institution *string
	WeeklyHours *int

	Specialty       *string
	YearsExperience *int
	Availability    *string
}

type ParticipantUseCase interface {
	RegisterParticipant(ctx context.Context, participant *entities.Participant) error
	GetParticipant(ctx context.Context, id uint) (*entities.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error)
	ListParticipants(ctx context.Context, kind string) ([]entities.Participant, error)
	UpdateParticipant(ctx context.Context, id uint, changes ParticipantChanges) (*entities.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}
