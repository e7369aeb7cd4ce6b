package memory

import (
	"context"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.ChallengeRepository = (*ChallengeRepository)(nil)

type ChallengeRepository struct {
	db *table[entities.Challenge]
}

func NewChallengeRepository(db *DB) *ChallengeRepository {
	return &ChallengeRepository{db: db.challenges}
}

func cloneChallenge(c *entities.Challenge) entities.Challenge {
	out := *c
	if c.Real != nil {
		r := *c.Real
		out.Real = &r
	}
	if c.Experimental != nil {
		e := *c.Experimental
		out.Experimental = &e
	}
	return out
}

func (r *ChallengeRepository) Create(_ context.Context, c *entities.Challenge) error {
	r.db.Lock()
	defer r.db.Unlock()

	c.ID = r.db.nextID()
	row := cloneChallenge(c)
	r.db.rows[c.ID] = &row
	return nil
}

func (r *ChallengeRepository) FindByID(_ context.Context, id uint) (*entities.Challenge, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	row, ok := r.db.rows[id]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	c := cloneChallenge(row)
	return &c, nil
}

func (r *ChallengeRepository) FindAll(_ context.Context, kind string) ([]entities.Challenge, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneChallenge, func(c *entities.Challenge) bool {
		return kind == "" || c.Kind == kind
	}), nil
}

func (r *ChallengeRepository) FindByHackathonID(_ context.Context, hackathonID uint) ([]entities.Challenge, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneChallenge, func(c *entities.Challenge) bool {
		return c.HackathonID == hackathonID
	}), nil
}

func (r *ChallengeRepository) Update(_ context.Context, c *entities.Challenge) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[c.ID]; !ok {
		return domain.ErrChallengeNotFound
	}
	row := cloneChallenge(c)
	r.db.rows[c.ID] = &row
	return nil
}

func (r *ChallengeRepository) Delete(_ context.Context, id uint) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[id]; !ok {
		return domain.ErrChallengeNotFound
	}
	delete(r.db.rows, id)
	return nil
}
