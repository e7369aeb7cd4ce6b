package memory

import (
	"context"
	"slices"
	"time"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.HackathonRepository = (*HackathonRepository)(nil)

type HackathonRepository struct {
	db *table[entities.Hackathon]
}

func NewHackathonRepository(db *DB) *HackathonRepository {
	return &HackathonRepository{db: db.hackathons}
}

func cloneHackathon(h *entities.Hackathon) entities.Hackathon { return *h }

func (r *HackathonRepository) Create(_ context.Context, h *entities.Hackathon) error {
	r.db.Lock()
	defer r.db.Unlock()

	h.ID = r.db.nextID()
	row := cloneHackathon(h)
	r.db.rows[h.ID] = &row
	return nil
}

func (r *HackathonRepository) FindByID(_ context.Context, id uint) (*entities.Hackathon, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	row, ok := r.db.rows[id]
	if !ok {
		return nil, domain.ErrHackathonNotFound
	}
	h := cloneHackathon(row)
	return &h, nil
}

func (r *HackathonRepository) FindAll(_ context.Context, state string) ([]entities.Hackathon, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneHackathon, func(h *entities.Hackathon) bool {
		return state == "" || h.State == state
	}), nil
}

func (r *HackathonRepository) FindStartingAfter(_ context.Context, now time.Time) ([]entities.Hackathon, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	out := r.db.filter(cloneHackathon, func(h *entities.Hackathon) bool { return h.Start().After(now) })
	slices.SortStableFunc(out, func(a, b entities.Hackathon) int { return a.Start().Compare(b.Start()) })
	return out, nil
}

func (r *HackathonRepository) Update(_ context.Context, h *entities.Hackathon) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[h.ID]; !ok {
		return domain.ErrHackathonNotFound
	}
	row := cloneHackathon(h)
	r.db.rows[h.ID] = &row
	return nil
}

func (r *HackathonRepository) Delete(_ context.Context, id uint) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[id]; !ok {
		return domain.ErrHackathonNotFound
	}
	delete(r.db.rows, id)
	return nil
}
