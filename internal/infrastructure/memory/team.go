package memory

import (
	"context"
	"slices"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.TeamRepository = (*TeamRepository)(nil)

type TeamRepository struct {
	db *table[entities.Team]
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db.teams}
}

func cloneTeam(t *entities.Team) entities.Team {
	out := *t
	out.Members = make([]entities.TeamMember, len(t.Members))
	for i, m := range t.Members {
		m.Skills = slices.Clone(m.Skills)
		out.Members[i] = m
	}
	out.Challenges = slices.Clone(t.Challenges)
	if out.Challenges == nil {
		out.Challenges = []entities.TeamChallenge{}
	}
	return out
}

func (r *TeamRepository) Create(_ context.Context, t *entities.Team) error {
	r.db.Lock()
	defer r.db.Unlock()

	t.ID = r.db.nextID()
	row := cloneTeam(t)
	r.db.rows[t.ID] = &row
	return nil
}

func (r *TeamRepository) FindByID(_ context.Context, id uint) (*entities.Team, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	row, ok := r.db.rows[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	t := cloneTeam(row)
	return &t, nil
}

func (r *TeamRepository) FindAll(_ context.Context) ([]entities.Team, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneTeam, nil), nil
}

func (r *TeamRepository) FindByHackathonID(_ context.Context, hackathonID uint) ([]entities.Team, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneTeam, func(t *entities.Team) bool {
		return t.HackathonID == hackathonID
	}), nil
}

func (r *TeamRepository) Update(_ context.Context, t *entities.Team) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[t.ID]; !ok {
		return domain.ErrTeamNotFound
	}
	row := cloneTeam(t)
	r.db.rows[t.ID] = &row
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, id uint) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(r.db.rows, id)
	return nil
}
