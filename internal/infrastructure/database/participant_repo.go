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

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using pgx.
// The shared columns live in participantes and each profile in its own table.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *entities.Participant) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO participantes (nombre, email, telefono, tipo, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			p.Name, p.Email, p.Phone, p.Kind, p.CreatedAt, p.UpdatedAt,
		).Scan(&id)
		if err != nil {
			return err
		}
		p.ID = uint(id)
		return writeProfile(ctx, tx, p)
	})
	return writeError("create participant", err, nil, uniqueEmail)
}

// writeProfile replaces the profile row of p.
func writeProfile(ctx context.Context, tx DBTX, p *entities.Participant) error {
	id := int64(p.ID)
	if _, err := tx.Exec(ctx, `DELETE FROM estudiantes WHERE participante_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM mentores_tecnicos WHERE participante_id = $1`, id); err != nil {
		return err
	}
	switch {
	case p.Kind == domain.KindStudent && p.Student != nil:
		_, err := tx.Exec(ctx, `
			INSERT INTO estudiantes (participante_id, grado, institucion, tiempo_disponible_semanal)
			VALUES ($1, $2, $3, $4)`,
			id, p.Student.Grade, p.Student.Institution, int32(p.Student.WeeklyHours))
		return err
	case p.Kind == domain.KindMentor && p.Mentor != nil:
		_, err := tx.Exec(ctx, `
			INSERT INTO mentores_tecnicos (participante_id, especialidad, experiencia_anos, disponibilidad_horaria)
			VALUES ($1, $2, $3, $4)`,
			id, p.Mentor.Specialty, int32(p.Mentor.YearsExperience), p.Mentor.Availability)
		return err
	}
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (*entities.Participant, error) {
	return r.findOne(ctx, `p.id = $1`, int64(id))
}

func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	return r.findOne(ctx, `lower(p.email) = lower($1)`, email)
}

func (r *ParticipantRepository) findOne(ctx context.Context, where string, arg any) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+participantColumns+` FROM `+participantFrom+` WHERE `+where, arg)
	p, err := scanParticipant(row)
	if err != nil {
		return nil, orNotFound(err, domain.ErrParticipantNotFound)
	}
	return &p, nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context, kind string) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+participantColumns+` FROM `+participantFrom+`
		WHERE $1 = '' OR p.tipo = $1
		ORDER BY p.id`, kind)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Participant, error) {
		return scanParticipant(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan participants: %w", err)
	}
	return out, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, p *entities.Participant) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE participantes
			SET nombre = $2, email = $3, telefono = $4, tipo = $5, updated_at = $6
			WHERE id = $1`,
			int64(p.ID), p.Name, p.Email, p.Phone, p.Kind, p.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := affected(tag, domain.ErrParticipantNotFound); err != nil {
			return err
		}
		return writeProfile(ctx, tx, p)
	})
	return writeError("update participant", err, domain.ErrParticipantNotFound, uniqueEmail)
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM participantes WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return affected(tag, domain.ErrParticipantNotFound)
}
