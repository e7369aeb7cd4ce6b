// Package infrastructure selects the storage backend named by the configuration.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"eduhack/internal/config"
	"eduhack/internal/infrastructure/database"
	"eduhack/internal/infrastructure/memory"
	"eduhack/internal/ports/output"
)

type Repositories struct {
	Hackathons   output.HackathonRepository
	Participants output.ParticipantRepository
	Challenges   output.ChallengeRepository
	Teams        output.TeamRepository

	close func()
}

// Close releases the backend; it is safe to call on the memory store.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open builds the repositories for cfg.StorageDriver. With postgres it connects
// and, when enabled, applies the embedded migrations first.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		db := memory.Open()
		slog.Info("🧠 Almacenamiento en memoria")
		return &Repositories{
			Hackathons:   memory.NewHackathonRepository(db),
			Participants: memory.NewParticipantRepository(db),
			Challenges:   memory.NewChallengeRepository(db),
			Teams:        memory.NewTeamRepository(db),
		}, nil

	case config.StoragePostgres:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Hackathons:   database.NewHackathonRepository(pool),
			Participants: database.NewParticipantRepository(pool),
			Challenges:   database.NewChallengeRepository(pool),
			Teams:        database.NewTeamRepository(pool),
			close:        pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
}
