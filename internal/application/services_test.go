package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/infrastructure/memory"
)

type fixture struct {
	hackathons   *HackathonService
	participants *ParticipantService
	challenges   *ChallengeService
	teams        *TeamService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.Open()
	hackathonRepo := memory.NewHackathonRepository(db)
	participantRepo := memory.NewParticipantRepository(db)
	challengeRepo := memory.NewChallengeRepository(db)
	teamRepo := memory.NewTeamRepository(db)
	return &fixture{
		hackathons:   NewHackathonService(hackathonRepo, teamRepo, challengeRepo),
		participants: NewParticipantService(participantRepo),
		challenges:   NewChallengeService(challengeRepo, hackathonRepo),
		teams:        NewTeamService(teamRepo, hackathonRepo, participantRepo, challengeRepo),
	}
}

var hackathonStart = time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

func (f *fixture) hackathon(t *testing.T) *entities.Hackathon {
	t.Helper()
	h, err := entities.NewHackathon("EduHack", hackathonStart, hackathonStart.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.hackathons.CreateHackathon(context.Background(), h))
	return h
}

func (f *fixture) publishedChallenge(t *testing.T, hackathonID uint, technologies string) *entities.Challenge {
	t.Helper()
	ctx := context.Background()
	c := entities.NewRealChallenge("Agua limpia", "Monitoreo de calidad", domain.DifficultyIntermediate, technologies, hackathonID, "ONG Agua")
	require.NoError(t, f.challenges.CreateChallenge(ctx, c))
	c, err := f.challenges.ChangeChallengeState(ctx, c.ID, domain.ChallengePublished)
	require.NoError(t, err)
	return c
}

func (f *fixture) student(t *testing.T, email, grade string) *entities.Participant {
	t.Helper()
	p := entities.NewStudent("Estudiante", email, "", entities.StudentProfile{Grade: grade, Institution: "UNI", WeeklyHours: 10})
	require.NoError(t, f.participants.RegisterParticipant(context.Background(), p))
	return p
}

func (f *fixture) mentor(t *testing.T, email, specialty string, years int) *entities.Participant {
	t.Helper()
	p := entities.NewMentor("Mentor", email, "", entities.MentorProfile{Specialty: specialty, YearsExperience: years, Availability: "tardes"})
	require.NoError(t, f.participants.RegisterParticipant(context.Background(), p))
	return p
}

func ptr[T any](v T) *T { return &v }
