package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository implements output.ChallengeRepository using pgx.
type ChallengeRepository struct {
	pool *pgxpool.Pool
}

func NewChallengeRepository(pool *pgxpool.Pool) *ChallengeRepository {
	return &ChallengeRepository{pool: pool}
}

func (r *ChallengeRepository) Create(ctx context.Context, c *entities.Challenge) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO retos_solucionables
				(titulo, descripcion, dificultad, tecnologias_requeridas, tipo, estado, hackathon_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			c.Title, c.Description, c.Difficulty, c.Technologies, c.Kind, c.State, int64(c.HackathonID), c.CreatedAt, c.UpdatedAt,
		).Scan(&id)
		if err != nil {
			return err
		}
		c.ID = uint(id)
		return writeVariant(ctx, tx, c)
	})
	return writeError("create challenge", err, nil, referencesHackathon)
}

// writeVariant replaces the variant row of c.
func writeVariant(ctx context.Context, tx DBTX, c *entities.Challenge) error {
	id := int64(c.ID)
	if _, err := tx.Exec(ctx, `DELETE FROM retos_reales WHERE reto_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM retos_experimentales WHERE reto_id = $1`, id); err != nil {
		return err
	}
	switch {
	case c.Kind == domain.KindRealChallenge && c.Real != nil:
		_, err := tx.Exec(ctx, `INSERT INTO retos_reales (reto_id, entidad_colaboradora) VALUES ($1, $2)`, id, c.Real.Sponsor)
		return err
	case c.Kind == domain.KindExperimentalChallenge && c.Experimental != nil:
		_, err := tx.Exec(ctx, `INSERT INTO retos_experimentales (reto_id, enfoque_pedagogico) VALUES ($1, $2)`, id, c.Experimental.Approach)
		return err
	}
	return nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id uint) (*entities.Challenge, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+challengeColumns+` FROM `+challengeFrom+` WHERE r.id = $1`, int64(id))
	c, err := scanChallenge(row)
	if err != nil {
		return nil, orNotFound(err, domain.ErrChallengeNotFound)
	}
	return &c, nil
}

func (r *ChallengeRepository) FindAll(ctx context.Context, kind string) ([]entities.Challenge, error) {
	return r.list(ctx, `WHERE $1 = '' OR r.tipo = $1`, kind)
}

func (r *ChallengeRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]entities.Challenge, error) {
	return r.list(ctx, `WHERE r.hackathon_id = $1`, int64(hackathonID))
}

func (r *ChallengeRepository) list(ctx context.Context, where string, arg any) ([]entities.Challenge, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+challengeColumns+` FROM `+challengeFrom+` `+where+` ORDER BY r.id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Challenge, error) {
		return scanChallenge(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan challenges: %w", err)
	}
	return out, nil
}

func (r *ChallengeRepository) Update(ctx context.Context, c *entities.Challenge) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE retos_solucionables
			SET titulo = $2, descripcion = $3, dificultad = $4, tecnologias_requeridas = $5,
				tipo = $6, estado = $7, hackathon_id = $8, updated_at = $9
			WHERE id = $1`,
			int64(c.ID), c.Title, c.Description, c.Difficulty, c.Technologies, c.Kind, c.State, int64(c.HackathonID), c.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := affected(tag, domain.ErrChallengeNotFound); err != nil {
			return err
		}
		return writeVariant(ctx, tx, c)
	})
	return writeError("update challenge", err, domain.ErrChallengeNotFound, referencesHackathon)
}

func (r *ChallengeRepository) Delete(ctx context.Context, id uint) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM retos_solucionables WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	return affected(tag, domain.ErrChallengeNotFound)
}
