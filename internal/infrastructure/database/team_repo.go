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

var _ output.TeamRepository = (*TeamRepository)(nil)

// TeamRepository implements output.TeamRepository using pgx. Member and
// challenge rows are rewritten with the team in one transaction.
type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(ctx context.Context, t *entities.Team) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO equipos
				(nombre, descripcion, hackathon_id, fecha_formacion, estado, max_integrantes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			t.Name, t.Description, int64(t.HackathonID), t.FormedAt, t.State, int32(t.MaxMembers), t.CreatedAt, t.UpdatedAt,
		).Scan(&id)
		if err != nil {
			return err
		}
		t.ID = uint(id)
		return writeTeamRows(ctx, tx, t)
	})
	return writeError("create team", err, nil, referencesHackathon)
}

// writeTeamRows replaces the member and challenge rows of t, keeping their order.
func writeTeamRows(ctx context.Context, tx batchSender, t *entities.Team) error {
	id := int64(t.ID)
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM equipo_participantes WHERE equipo_id = $1`, id)
	batch.Queue(`DELETE FROM equipo_retos WHERE equipo_id = $1`, id)
	for i, m := range t.Members {
		skills := m.Skills
		if skills == nil {
			skills = []string{}
		}
		batch.Queue(`
			INSERT INTO equipo_participantes
				(equipo_id, participante_id, posicion, nombre, rol_en_equipo, habilidades, nivel_experiencia, fecha_union)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, int64(m.ParticipantID), int32(i), m.Name, m.Role, skills, m.ExperienceLevel, m.JoinedAt)
	}
	for i, c := range t.Challenges {
		batch.Queue(`
			INSERT INTO equipo_retos
				(equipo_id, reto_id, posicion, titulo, estado_participacion, progreso, fecha_asignacion)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, int64(c.ChallengeID), int32(i), c.Title, c.State, int32(c.Progress), c.AssignedAt)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (*entities.Team, error) {
	t, err := scanTeam(r.pool.QueryRow(ctx, `SELECT `+teamColumns+` FROM equipos WHERE id = $1`, int64(id)))
	if err != nil {
		return nil, orNotFound(err, domain.ErrTeamNotFound)
	}
	teams := []entities.Team{t}
	if err := r.attachRows(ctx, teams); err != nil {
		return nil, err
	}
	return &teams[0], nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]entities.Team, error) {
	return r.list(ctx, `SELECT `+teamColumns+` FROM equipos ORDER BY id`)
}

func (r *TeamRepository) FindByHackathonID(ctx context.Context, hackathonID uint) ([]entities.Team, error) {
	return r.list(ctx, `SELECT `+teamColumns+` FROM equipos WHERE hackathon_id = $1 ORDER BY id`, int64(hackathonID))
}

func (r *TeamRepository) list(ctx context.Context, sql string, args ...any) ([]entities.Team, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Team, error) {
		return scanTeam(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan teams: %w", err)
	}
	if err := r.attachRows(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// attachRows loads the member and challenge rows of every team in two queries.
func (r *TeamRepository) attachRows(ctx context.Context, teams []entities.Team) error {
	if len(teams) == 0 {
		return nil
	}
	ids := make([]int64, len(teams))
	byID := make(map[uint]*entities.Team, len(teams))
	for i := range teams {
		ids[i] = int64(teams[i].ID)
		byID[teams[i].ID] = &teams[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT equipo_id, participante_id, nombre, rol_en_equipo, habilidades, nivel_experiencia, fecha_union
		FROM equipo_participantes
		WHERE equipo_id = ANY($1)
		ORDER BY equipo_id, posicion`, ids)
	if err != nil {
		return fmt.Errorf("get team members: %w", err)
	}
	_, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (struct{}, error) {
		teamID, m, err := scanMember(row)
		if err == nil {
			byID[teamID].Members = append(byID[teamID].Members, m)
		}
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("scan team members: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT equipo_id, reto_id, titulo, estado_participacion, progreso, fecha_asignacion
		FROM equipo_retos
		WHERE equipo_id = ANY($1)
		ORDER BY equipo_id, posicion`, ids)
	if err != nil {
		return fmt.Errorf("get team challenges: %w", err)
	}
	_, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (struct{}, error) {
		teamID, c, err := scanAssignment(row)
		if err == nil {
			byID[teamID].Challenges = append(byID[teamID].Challenges, c)
		}
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("scan team challenges: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t *entities.Team) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE equipos
			SET nombre = $2, descripcion = $3, hackathon_id = $4, fecha_formacion = $5,
				estado = $6, max_integrantes = $7, updated_at = $8
			WHERE id = $1`,
			int64(t.ID), t.Name, t.Description, int64(t.HackathonID), t.FormedAt, t.State, int32(t.MaxMembers), t.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := affected(tag, domain.ErrTeamNotFound); err != nil {
			return err
		}
		return writeTeamRows(ctx, tx, t)
	})
	return writeError("update team", err, domain.ErrTeamNotFound, nil)
}

func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM equipo_participantes WHERE equipo_id = $1`, int64(id)); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM equipo_retos WHERE equipo_id = $1`, int64(id)); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM equipos WHERE id = $1`, int64(id))
		if err != nil {
			return err
		}
		return affected(tag, domain.ErrTeamNotFound)
	})
	return writeError("delete team", err, domain.ErrTeamNotFound, nil)
}
