package application

import (
	"context"
	"fmt"

	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

var _ input.ChallengeUseCase = (*ChallengeService)(nil)

type ChallengeService struct {
	challengeRepo output.ChallengeRepository
	hackathonRepo output.HackathonRepository
}

func NewChallengeService(
	challengeRepo output.ChallengeRepository,
	hackathonRepo output.HackathonRepository,
) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		hackathonRepo: hackathonRepo,
	}
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, challenge *entities.Challenge) error {
	if err := invalid(challenge.Validate()); err != nil {
		return err
	}
	if _, err := s.hackathonRepo.FindByID(ctx, challenge.HackathonID); err != nil {
		return err
	}
	stamp(&challenge.CreatedAt, &challenge.UpdatedAt)
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return fmt.Errorf("create challenge: %w", err)
	}
	return nil
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id uint) (*entities.Challenge, error) {
	return s.challengeRepo.FindByID(ctx, id)
}

func (s *ChallengeService) ListChallenges(ctx context.Context, kind string) ([]entities.Challenge, error) {
	return s.challengeRepo.FindAll(ctx, kind)
}

func (s *ChallengeService) UpdateChallenge(ctx context.Context, id uint, changes input.ChallengeChanges) (*entities.Challenge, error) {
	c, err := s.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyString(&c.Title, changes.Title)
	applyString(&c.Description, changes.Description)
	applyString(&c.Technologies, changes.Technologies)
	if changes.Difficulty != nil {
		if err := c.SetDifficulty(*changes.Difficulty); err != nil {
			return nil, err
		}
	}
	if c.Real != nil {
		applyString(&c.Real.Sponsor, changes.Sponsor)
	}
	if c.Experimental != nil {
		applyString(&c.Experimental.Approach, changes.Approach)
	}
	return s.save(ctx, c)
}

func (s *ChallengeService) ChangeChallengeState(ctx context.Context, id uint, state string) (*entities.Challenge, error) {
	c, err := s.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.SetState(state); err != nil {
		return nil, err
	}
	return s.save(ctx, c)
}

func (s *ChallengeService) save(ctx context.Context, c *entities.Challenge) (*entities.Challenge, error) {
	if err := invalid(c.Validate()); err != nil {
		return nil, err
	}
	c.Touch()
	if err := s.challengeRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update challenge: %w", err)
	}
	return c, nil
}

func (s *ChallengeService) EvaluateChallenge(ctx context.Context, id uint, scores map[string]float64) (entities.Evaluation, error) {
	c, err := s.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return entities.Evaluation{}, err
	}
	return c.EvaluateSolution(scores), nil
}

func (s *ChallengeService) DeleteChallenge(ctx context.Context, id uint) error {
	return s.challengeRepo.Delete(ctx, id)
}
