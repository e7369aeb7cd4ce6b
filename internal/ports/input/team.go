package input

import (
	"context"

	"eduhack/internal/domain/entities"
)

// TeamChanges is a partial update; nil fields are left untouched.
type TeamChanges struct {
	Name        *string
	Description *string
	MaxMembers  *int
	State       *string
}

// CompatibilityReport is the score of a team for one challenge.
type CompatibilityReport struct {
	Team      *entities.Team
	Challenge *entities.Challenge
	Score     float64
	Quality   string
}

type TeamUseCase interface {
	CreateTeam(ctx context.Context, team *entities.Team) error
	GetTeam(ctx context.Context, id uint) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id uint, changes TeamChanges) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uint) error
	AddMember(ctx context.Context, teamID, participantID uint, role string) (*entities.Team, error)
	RemoveMember(ctx context.Context, teamID, participantID uint) (*entities.Team, error)
	AssignChallenge(ctx context.Context, teamID, challengeID uint) (*entities.Team, error)
	UpdateChallengeProgress(ctx context.Context, teamID, challengeID uint, state string, progress int) (*entities.Team, error)
	Compatibility(ctx context.Context, teamID, challengeID uint) (*CompatibilityReport, error)
	Recommend(ctx context.Context, teamID uint) ([]entities.Recommendation, error)
}
