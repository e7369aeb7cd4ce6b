package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
}

func NewParticipantService(participantRepo output.ParticipantRepository) *ParticipantService {
	return &ParticipantService{participantRepo: participantRepo}
}

// RegisterParticipant stores a new participant. Emails are unique, compared case-insensitively.
func (s *ParticipantService) RegisterParticipant(ctx context.Context, participant *entities.Participant) error {
	participant.Email = strings.TrimSpace(participant.Email)
	if err := invalid(participant.Validate()); err != nil {
		return err
	}
	if err := s.ensureEmailFree(ctx, participant.Email, 0); err != nil {
		return err
	}
	stamp(&participant.CreatedAt, &participant.UpdatedAt)
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (s *ParticipantService) ensureEmailFree(ctx context.Context, email string, ownerID uint) error {
	existing, err := s.participantRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find by email: %w", err)
	case existing.ID != ownerID:
		return domain.ErrEmailTaken
	default:
		return nil
	}
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (*entities.Participant, error) {
	return s.participantRepo.FindByID(ctx, id)
}

func (s *ParticipantService) GetParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	return s.participantRepo.FindByEmail(ctx, strings.TrimSpace(email))
}

func (s *ParticipantService) ListParticipants(ctx context.Context, kind string) ([]entities.Participant, error) {
	return s.participantRepo.FindAll(ctx, kind)
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id uint, changes input.ParticipantChanges) (*entities.Participant, error) {
	p, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyString(&p.Name, changes.Name)
	applyString(&p.Phone, changes.Phone)
	if changes.Email != nil {
		p.Email = strings.TrimSpace(*changes.Email)
	}
	if p.Student != nil {
		applyString(&p.Student.Grade, changes.Grade)
		applyString(&p.Student.Institution, changes.Institution)
		applyInt(&p.Student.WeeklyHours, changes.WeeklyHours)
	}
	if p.Mentor != nil {
		applyString(&p.Mentor.Specialty, changes.Specialty)
		applyInt(&p.Mentor.YearsExperience, changes.YearsExperience)
		applyString(&p.Mentor.Availability, changes.Availability)
	}
	if err := invalid(p.Validate()); err != nil {
		return nil, err
	}
	if changes.Email != nil {
		if err := s.ensureEmailFree(ctx, p.Email, p.ID); err != nil {
			return nil, err
		}
	}
	p.Touch()
	if err := s.participantRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return p, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	return s.participantRepo.Delete(ctx, id)
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
