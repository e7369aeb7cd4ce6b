package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/config"
	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
)

func TestOpenMemory(t *testing.T) {
	ctx := context.Background()
	repos, err := Open(ctx, &config.Config{StorageDriver: config.StorageMemory})
	require.NoError(t, err)
	defer repos.Close()

	start := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
	h, err := entities.NewHackathon("EduHack", start, start.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repos.Hackathons.Create(ctx, h))

	got, err := repos.Hackathons.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "EduHack", got.Name)

	_, err = repos.Teams.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageDriver: "sqlite"})
	assert.ErrorContains(t, err, "sqlite")
}
