package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.HackathonRepository = (*HackathonRepository)(nil)

// HackathonRepository implements output.HackathonRepository using pgx.
type HackathonRepository struct {
	pool *pgxpool.Pool
}

func NewHackathonRepository(pool *pgxpool.Pool) *HackathonRepository {
	return &HackathonRepository{pool: pool}
}

func (r *HackathonRepository) Create(ctx context.Context, h *entities.Hackathon) error {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO hackathons (nombre, descripcion, fecha_inicio, fecha_fin, lugar, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		h.Name, h.Description, h.Start(), h.End(), h.Location, h.State, h.CreatedAt, h.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}
	h.ID = uint(id)
	return nil
}

func (r *HackathonRepository) FindByID(ctx context.Context, id uint) (*entities.Hackathon, error) {
	h, err := scanHackathon(r.pool.QueryRow(ctx, `SELECT `+hackathonColumns+` FROM hackathons WHERE id = $1`, int64(id)))
	if err != nil {
		return nil, orNotFound(err, domain.ErrHackathonNotFound)
	}
	return &h, nil
}

func (r *HackathonRepository) FindAll(ctx context.Context, state string) ([]entities.Hackathon, error) {
	return r.list(ctx, `SELECT `+hackathonColumns+` FROM hackathons
		WHERE $1 = '' OR estado = $1
		ORDER BY id`, state)
}

func (r *HackathonRepository) FindStartingAfter(ctx context.Context, now time.Time) ([]entities.Hackathon, error) {
	return r.list(ctx, `SELECT `+hackathonColumns+` FROM hackathons
		WHERE fecha_inicio > $1
		ORDER BY fecha_inicio, id`, now)
}

func (r *HackathonRepository) list(ctx context.Context, sql string, args ...any) ([]entities.Hackathon, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Hackathon, error) {
		return scanHackathon(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan hackathons: %w", err)
	}
	return out, nil
}

func (r *HackathonRepository) Update(ctx context.Context, h *entities.Hackathon) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE hackathons
		SET nombre = $2, descripcion = $3, fecha_inicio = $4, fecha_fin = $5, lugar = $6, estado = $7, updated_at = $8
		WHERE id = $1`,
		int64(h.ID), h.Name, h.Description, h.Start(), h.End(), h.Location, h.State, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hackathon: %w", err)
	}
	return affected(tag, domain.ErrHackathonNotFound)
}

func (r *HackathonRepository) Delete(ctx context.Context, id uint) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hackathons WHERE id = $1`, int64(id))
	if err := writeError("delete hackathon", err, nil, referencedHackathon); err != nil {
		return err
	}
	return affected(tag, domain.ErrHackathonNotFound)
}
