package entities

import (
	"strings"
	"time"

	"eduhack/internal/domain"
)

// nowFunc is swapped in tests to freeze the update timestamps.
var nowFunc = time.Now

// Phase is the lifecycle phase derived from a date window and the current instant.
type Phase string

const (
	PhaseNotStarted Phase = domain.HackathonPlanning
	PhaseInProgress Phase = domain.HackathonActive
	PhaseFinished   Phase = domain.HackathonFinished
)

// ResolvePhase derives the phase of [start, end] at now. Both bounds are in progress.
func ResolvePhase(start, end, now time.Time) Phase {
	switch {
	case now.Before(start):
		return PhaseNotStarted
	case now.After(end):
		return PhaseFinished
	default:
		return PhaseInProgress
	}
}

// DurationDays counts the days covered by the window, inclusive: one full day apart gives 2.
func DurationDays(start, end time.Time) int {
	return wholeDays(end.Sub(start)) + 1
}

// DurationHours counts the whole hours between start and end.
func DurationHours(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(d / time.Hour)
}

func wholeDays(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// EventKind buckets a hackathon by its length.
type EventKind string

const (
	EventSprint      EventKind = "sprint"
	EventTraditional EventKind = "tradicional"
	EventExtended    EventKind = "extendido"
	EventMarathon    EventKind = "maraton"
)

// KindForHours returns the event kind for a duration in hours.
func KindForHours(hours int) EventKind {
	switch {
	case hours <= 24:
		return EventSprint
	case hours <= 48:
		return EventTraditional
	case hours <= 72:
		return EventExtended
	default:
		return EventMarathon
	}
}

// Countdown kinds.
const (
	CountdownToStart = "para_inicio"
	CountdownToEnd   = "para_fin"
	CountdownOver    = "finalizado"
)

// Countdown describes the time left until the next boundary of a window.
type Countdown struct {
	Kind  string
	Days  int
	Hours int
}

// RemainingTime computes the countdown that matches the current phase.
func RemainingTime(start, end, now time.Time) Countdown {
	switch ResolvePhase(start, end, now) {
	case PhaseNotStarted:
		return Countdown{Kind: CountdownToStart, Days: wholeDays(start.Sub(now))}
	case PhaseInProgress:
		left := end.Sub(now)
		return Countdown{
			Kind:  CountdownToEnd,
			Days:  wholeDays(left),
			Hours: int((left % (24 * time.Hour)) / time.Hour),
		}
	default:
		return Countdown{Kind: CountdownOver}
	}
}

// Modality is how a hackathon is attended, inferred from its location text.
type Modality string

const (
	ModalityUnspecified Modality = "no_especificada"
	ModalityVirtual     Modality = "virtual"
	ModalityHybrid      Modality = "hibrido"
	ModalityOnSite      Modality = "presencial"
)

var hybridMarkers = []string{"+", "híbrido", "hibrido", "hybrid"}

// ClassifyModality infers the modality from a free-text location.
func ClassifyModality(location string) Modality {
	l := strings.ToLower(strings.TrimSpace(location))
	if l == "" {
		return ModalityUnspecified
	}
	if strings.Contains(l, "online") || strings.Contains(l, "virtual") {
		return ModalityVirtual
	}
	for _, m := range hybridMarkers {
		if strings.Contains(l, m) {
			return ModalityHybrid
		}
	}
	return ModalityOnSite
}
