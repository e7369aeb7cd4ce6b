package application

import (
	"context"
	"fmt"
	"time"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

var nowFunc = time.Now

var _ input.HackathonUseCase = (*HackathonService)(nil)

type HackathonService struct {
	hackathonRepo output.HackathonRepository
	teamRepo      output.TeamRepository
	challengeRepo output.ChallengeRepository
}

func NewHackathonService(
	hackathonRepo output.HackathonRepository,
	teamRepo output.TeamRepository,
	challengeRepo output.ChallengeRepository,
) *HackathonService {
	return &HackathonService{
		hackathonRepo: hackathonRepo,
		teamRepo:      teamRepo,
		challengeRepo: challengeRepo,
	}
}

// stamp fills creation timestamps left empty by decoded records.
func stamp(created, updated *time.Time) {
	now := nowFunc()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}

// invalid turns a non-empty Validate result into a ValidationError.
func invalid(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return domain.NewValidationError(messages...)
}

func (s *HackathonService) CreateHackathon(ctx context.Context, hackathon *entities.Hackathon) error {
	if err := invalid(hackathon.Validate()); err != nil {
		return err
	}
	stamp(&hackathon.CreatedAt, &hackathon.UpdatedAt)
	if err := s.hackathonRepo.Create(ctx, hackathon); err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}
	return nil
}

func (s *HackathonService) GetHackathon(ctx context.Context, id uint) (*entities.Hackathon, error) {
	return s.hackathonRepo.FindByID(ctx, id)
}

func (s *HackathonService) ListHackathons(ctx context.Context, state string) ([]entities.Hackathon, error) {
	return s.hackathonRepo.FindAll(ctx, state)
}

func (s *HackathonService) UpcomingHackathons(ctx context.Context) ([]entities.Hackathon, error) {
	return s.hackathonRepo.FindStartingAfter(ctx, nowFunc())
}

func (s *HackathonService) UpdateHackathon(ctx context.Context, id uint, changes input.HackathonChanges) (*entities.Hackathon, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if changes.Name != nil {
		hackathon.SetName(*changes.Name)
	}
	if changes.Description != nil {
		hackathon.SetDescription(*changes.Description)
	}
	if changes.Location != nil {
		hackathon.SetLocation(*changes.Location)
	}
	if changes.State != nil {
		if err := hackathon.SetState(*changes.State); err != nil {
			return nil, err
		}
	}
	if changes.Start != nil || changes.End != nil {
		start, end := hackathon.Start(), hackathon.End()
		if changes.Start != nil {
			start = *changes.Start
		}
		if changes.End != nil {
			end = *changes.End
		}
		if err := hackathon.Reschedule(start, end); err != nil {
			return nil, err
		}
	}
	if err := invalid(hackathon.Validate()); err != nil {
		return nil, err
	}
	if err := s.hackathonRepo.Update(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("update hackathon: %w", err)
	}
	return hackathon, nil
}

// DeleteHackathon refuses to remove a hackathon that still owns teams or challenges.
func (s *HackathonService) DeleteHackathon(ctx context.Context, id uint) error {
	if _, err := s.hackathonRepo.FindByID(ctx, id); err != nil {
		return err
	}
	teams, err := s.teamRepo.FindByHackathonID(ctx, id)
	if err != nil {
		return fmt.Errorf("find teams: %w", err)
	}
	challenges, err := s.challengeRepo.FindByHackathonID(ctx, id)
	if err != nil {
		return fmt.Errorf("find challenges: %w", err)
	}
	if len(teams) > 0 || len(challenges) > 0 {
		return domain.ErrHackathonInUse
	}
	return s.hackathonRepo.Delete(ctx, id)
}

func (s *HackathonService) HackathonTeams(ctx context.Context, id uint) ([]entities.Team, error) {
	if _, err := s.hackathonRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.teamRepo.FindByHackathonID(ctx, id)
}

func (s *HackathonService) HackathonChallenges(ctx context.Context, id uint) ([]entities.Challenge, error) {
	if _, err := s.hackathonRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.challengeRepo.FindByHackathonID(ctx, id)
}
