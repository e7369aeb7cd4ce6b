package memory

import (
	"context"
	"strings"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

type ParticipantRepository struct {
	db *table[entities.Participant]
}

func NewParticipantRepository(db *DB) *ParticipantRepository {
	return &ParticipantRepository{db: db.participants}
}

func cloneParticipant(p *entities.Participant) entities.Participant {
	out := *p
	if p.Student != nil {
		s := *p.Student
		out.Student = &s
	}
	if p.Mentor != nil {
		m := *p.Mentor
		out.Mentor = &m
	}
	return out
}

// emailTaken must be called with a lock held.
func (r *ParticipantRepository) emailTaken(email string, exceptID uint) bool {
	for id, row := range r.db.rows {
		if id != exceptID && strings.EqualFold(row.Email, email) {
			return true
		}
	}
	return false
}

func (r *ParticipantRepository) Create(_ context.Context, p *entities.Participant) error {
	r.db.Lock()
	defer r.db.Unlock()

	if r.emailTaken(p.Email, 0) {
		return domain.ErrEmailTaken
	}
	p.ID = r.db.nextID()
	row := cloneParticipant(p)
	r.db.rows[p.ID] = &row
	return nil
}

func (r *ParticipantRepository) FindByID(_ context.Context, id uint) (*entities.Participant, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	row, ok := r.db.rows[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	p := cloneParticipant(row)
	return &p, nil
}

func (r *ParticipantRepository) FindByEmail(_ context.Context, email string) (*entities.Participant, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	for _, row := range r.db.rows {
		if strings.EqualFold(row.Email, email) {
			p := cloneParticipant(row)
			return &p, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (r *ParticipantRepository) FindAll(_ context.Context, kind string) ([]entities.Participant, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	return r.db.filter(cloneParticipant, func(p *entities.Participant) bool {
		return kind == "" || p.Kind == kind
	}), nil
}

func (r *ParticipantRepository) Update(_ context.Context, p *entities.Participant) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	if r.emailTaken(p.Email, p.ID) {
		return domain.ErrEmailTaken
	}
	row := cloneParticipant(p)
	r.db.rows[p.ID] = &row
	return nil
}

func (r *ParticipantRepository) Delete(_ context.Context, id uint) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, ok := r.db.rows[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	delete(r.db.rows, id)
	return nil
}
