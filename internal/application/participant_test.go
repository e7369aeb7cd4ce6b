package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
)

func TestRegisterParticipant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ana := f.student(t, "ana@uni.edu", "3er año")

	dup := entities.NewMentor("Otra", " ANA@uni.edu ", "", entities.MentorProfile{Specialty: "IA", Availability: "tardes"})
	assert.ErrorIs(t, f.participants.RegisterParticipant(ctx, dup), domain.ErrEmailTaken)

	bad := entities.NewStudent("Sin mail", "no-mail", "", entities.StudentProfile{Grade: "1", Institution: "UNI", WeeklyHours: 4})
	assert.ErrorIs(t, f.participants.RegisterParticipant(ctx, bad), domain.ErrValidation)

	found, err := f.participants.GetParticipantByEmail(ctx, "ana@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, found.ID)
	assert.Equal(t, domain.LevelIntermediate, found.ExperienceLevel())
}

func TestListParticipantsByKind(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.student(t, "a@uni.edu", "1")
	f.mentor(t, "m@corp.com", "IoT", 3)
	f.student(t, "b@uni.edu", "2")

	tests := []struct {
		kind string
		want int
	}{
		{"", 3},
		{domain.KindStudent, 2},
		{domain.KindMentor, 1},
	}
	for _, tt := range tests {
		list, err := f.participants.ListParticipants(ctx, tt.kind)
		require.NoError(t, err)
		assert.Len(t, list, tt.want, "kind=%q", tt.kind)
	}
}

func TestUpdateParticipant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ana := f.student(t, "ana@uni.edu", "1er año")
	f.student(t, "beto@uni.edu", "2do año")

	_, err := f.participants.UpdateParticipant(ctx, ana.ID, input.ParticipantChanges{Email: ptr("beto@uni.edu")})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = f.participants.UpdateParticipant(ctx, ana.ID, input.ParticipantChanges{WeeklyHours: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	updated, err := f.participants.UpdateParticipant(ctx, ana.ID, input.ParticipantChanges{
		Grade:     ptr("Ingeniería de Software"),
		Specialty: ptr("ignored for students"),
		Email:     ptr("ana@uni.edu"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, updated.ExperienceLevel())
	assert.Contains(t, updated.Skills(), entities.SkillProgramming)
	assert.Nil(t, updated.Mentor)

	require.NoError(t, f.participants.DeleteParticipant(ctx, ana.ID))
	_, err = f.participants.GetParticipant(ctx, ana.ID)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}
