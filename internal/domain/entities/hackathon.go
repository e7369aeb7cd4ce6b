package entities

import (
	"slices"
	"strings"
	"time"

	"eduhack/internal/domain"
)

const (
	msgHackathonDates = "La fecha de inicio debe ser anterior a la fecha de fin"
	minHackathonHours = 4
	maxHackathonHours = 168
)

// Hackathon is an event in which teams are formed and challenges are solved.
// Its dates are only reachable through methods so that start < end always holds
// after construction.
type Hackathon struct {
	ID          uint
	Name        string
	Description string
	Location    string
	State       string // advisory; see Phase for the derived one
	CreatedAt   time.Time
	UpdatedAt   time.Time

	start time.Time
	end   time.Time
}

// NewHackathon builds a hackathon in the planning state. It fails when end is
// not after start. Dates keep whole seconds only.
func NewHackathon(name string, start, end time.Time) (*Hackathon, error) {
	start, end = start.Truncate(time.Second), end.Truncate(time.Second)
	if !start.Before(end) {
		return nil, domain.NewValidationError(msgHackathonDates)
	}
	now := nowFunc()
	return &Hackathon{
		Name:      name,
		State:     domain.HackathonPlanning,
		CreatedAt: now,
		UpdatedAt: now,
		start:     start,
		end:       end,
	}, nil
}

// RestoreHackathon rebuilds a stored or decoded hackathon as is. Callers check
// Validate before trusting it.
func RestoreHackathon(h Hackathon, start, end time.Time) *Hackathon {
	h.start, h.end = start, end
	return &h
}

func (h *Hackathon) Start() time.Time {
	return h.start
}

func (h *Hackathon) End() time.Time {
	return h.end
}

func (h *Hackathon) touch() {
	h.UpdatedAt = nowFunc()
}

// Reschedule replaces both dates, or none of them when end is not after start.
func (h *Hackathon) Reschedule(start, end time.Time) error {
	start, end = start.Truncate(time.Second), end.Truncate(time.Second)
	if !start.Before(end) {
		return domain.NewValidationError(msgHackathonDates)
	}
	h.start, h.end = start, end
	h.touch()
	return nil
}

func (h *Hackathon) SetStart(start time.Time) error {
	return h.Reschedule(start, h.end)
}

func (h *Hackathon) SetEnd(end time.Time) error {
	return h.Reschedule(h.start, end)
}

func (h *Hackathon) SetName(name string) {
	h.Name = name
	h.touch()
}

func (h *Hackathon) SetDescription(description string) {
	h.Description = description
	h.touch()
}

func (h *Hackathon) SetLocation(location string) {
	h.Location = location
	h.touch()
}

// SetState changes the advisory state; unknown states are rejected.
func (h *Hackathon) SetState(state string) error {
	if !slices.Contains(domain.HackathonStates, state) {
		return domain.NewValidationError("Estado no válido")
	}
	h.State = state
	h.touch()
	return nil
}

func (h *Hackathon) Phase(now time.Time) Phase {
	return ResolvePhase(h.start, h.end, now)
}

func (h *Hackathon) DurationDays() int {
	return DurationDays(h.start, h.end)
}

func (h *Hackathon) DurationHours() int {
	return DurationHours(h.start, h.end)
}

func (h *Hackathon) Kind() EventKind {
	return KindForHours(h.DurationHours())
}

func (h *Hackathon) Modality() Modality {
	return ClassifyModality(h.Location)
}

func (h *Hackathon) Remaining(now time.Time) Countdown {
	return RemainingTime(h.start, h.end, now)
}

// AllowsRegistration is true while the hackathon is planned and has not started yet.
func (h *Hackathon) AllowsRegistration(now time.Time) bool {
	return h.State == domain.HackathonPlanning && now.Before(h.start)
}

// Validate returns every violated invariant; an empty slice means valid.
func (h *Hackathon) Validate() []string {
	errs := []string{}
	if strings.TrimSpace(h.Name) == "" {
		errs = append(errs, "El nombre es obligatorio")
	}
	if !h.start.Before(h.end) {
		errs = append(errs, msgHackathonDates)
	}
	if !slices.Contains(domain.HackathonStates, h.State) {
		errs = append(errs, "El estado debe ser: "+strings.Join(domain.HackathonStates, ", "))
	}
	if h.start.Before(h.end) {
		switch hours := h.DurationHours(); {
		case hours < minHackathonHours:
			errs = append(errs, "La duración mínima debe ser de 4 horas")
		case hours > maxHackathonHours:
			errs = append(errs, "La duración máxima recomendada es de 7 días")
		}
	}
	return errs
}
