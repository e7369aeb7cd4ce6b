package output

import (
	"context"

	"eduhack/internal/domain/entities"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entities.Challenge) error
	FindByID(ctx context.Context, id uint) (*entities.Challenge, error)
	FindAll(ctx context.Context, kind string) ([]entities.Challenge, error)
	FindByHackathonID(ctx context.Context, hackathonID uint) ([]entities.Challenge, error)
	Update(ctx context.Context, challenge *entities.Challenge) error
	Delete(ctx context.Context, id uint) error
}
