package input

import (
	"context"

	"eduhack/internal/domain/entities"
)

// ChallengeChanges is a partial update. Variant fields of the other kind are ignored.
type ChallengeChanges struct {
	Title        *string
	Description  *string
	Difficulty   *string
	Technologies *string
	Sponsor      *string
	Approach     *string
}

type ChallengeUseCase interface {
	CreateChallenge(ctx context.Context, challenge *entities.Challenge) error
	GetChallenge(ctx context.Context, id uint) (*entities.Challenge, error)
	ListChallenges(ctx context.Context, kind string) ([]entities.Challenge, error)
	UpdateChallenge(ctx context.Context, id uint, changes ChallengeChanges) (*entities.Challenge, error)
	ChangeChallengeState(ctx context.Context, id uint, state string) (*entities.Challenge, error)
	EvaluateChallenge(ctx context.Context, id uint, scores map[string]float64) (entities.Evaluation, error)
	DeleteChallenge(ctx context.Context, id uint) error
}
