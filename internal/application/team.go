package application

import (
	"context"
	"fmt"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

var _ input.TeamUseCase = (*TeamService)(nil)

type TeamService struct {
	teamRepo        output.TeamRepository
	hackathonRepo   output.HackathonRepository
	participantRepo output.ParticipantRepository
	challengeRepo   output.ChallengeRepository
}

func NewTeamService(
	teamRepo output.TeamRepository,
	hackathonRepo output.HackathonRepository,
	participantRepo output.ParticipantRepository,
	challengeRepo output.ChallengeRepository,
) *TeamService {
	return &TeamService{
		teamRepo:        teamRepo,
		hackathonRepo:   hackathonRepo,
		participantRepo: participantRepo,
		challengeRepo:   challengeRepo,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, team *entities.Team) error {
	if err := invalid(team.Validate()); err != nil {
		return err
	}
	if _, err := s.hackathonRepo.FindByID(ctx, team.HackathonID); err != nil {
		return err
	}
	stamp(&team.CreatedAt, &team.UpdatedAt)
	if team.FormedAt.IsZero() {
		team.FormedAt = team.CreatedAt
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uint) (*entities.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) ListTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.FindAll(ctx)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint, changes input.TeamChanges) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyString(&team.Name, changes.Name)
	applyString(&team.Description, changes.Description)
	if changes.MaxMembers != nil {
		if err := team.SetCapacity(*changes.MaxMembers); err != nil {
			return nil, err
		}
	}
	if changes.State != nil {
		if err := team.SetState(*changes.State); err != nil {
			return nil, err
		}
	}
	return s.save(ctx, team)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint) error {
	return s.teamRepo.Delete(ctx, id)
}

// AddMember snapshots the participant's current skills and level into the team.
func (s *TeamService) AddMember(ctx context.Context, teamID, participantID uint, role string) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	p, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if err := team.AddMember(entities.MemberFromParticipant(p, role)); err != nil {
		return nil, err
	}
	return s.save(ctx, team)
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, participantID uint) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := team.RemoveMember(participantID); err != nil {
		return nil, err
	}
	return s.save(ctx, team)
}

// AssignChallenge attaches a published challenge of the team's own hackathon.
func (s *TeamService) AssignChallenge(ctx context.Context, teamID, challengeID uint) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	c, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if c.HackathonID != team.HackathonID {
		return nil, domain.NewValidationError("El reto pertenece a otro hackathon")
	}
	if !c.Available() {
		return nil, domain.ErrChallengeNotAvailable
	}
	if err := team.AssignChallenge(c); err != nil {
		return nil, err
	}
	return s.save(ctx, team)
}

func (s *TeamService) UpdateChallengeProgress(ctx context.Context, teamID, challengeID uint, state string, progress int) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := team.UpdateChallengeProgress(challengeID, state, progress); err != nil {
		return nil, err
	}
	return s.save(ctx, team)
}

func (s *TeamService) save(ctx context.Context, team *entities.Team) (*entities.Team, error) {
	if err := invalid(team.Validate()); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}
	return team, nil
}

func (s *TeamService) Compatibility(ctx context.Context, teamID, challengeID uint) (*input.CompatibilityReport, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	c, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	score := entities.Compatibility(team, c)
	return &input.CompatibilityReport{
		Team:      team,
		Challenge: c,
		Score:     score,
		Quality:   entities.CompatibilityQuality(score),
	}, nil
}

// Recommend ranks the published challenges of the team's hackathon.
func (s *TeamService) Recommend(ctx context.Context, teamID uint) ([]entities.Recommendation, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	challenges, err := s.challengeRepo.FindByHackathonID(ctx, team.HackathonID)
	if err != nil {
		return nil, fmt.Errorf("find challenges: %w", err)
	}
	candidates := make([]*entities.Challenge, 0, len(challenges))
	for i := range challenges {
		candidates = append(candidates, &challenges[i])
	}
	return entities.RankChallenges(team, candidates), nil
}
