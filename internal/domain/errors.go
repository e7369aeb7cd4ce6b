package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrValidation            = errors.New("datos no válidos")
	ErrHackathonNotFound     = errors.New("hackathon no encontrado")
	ErrHackathonInUse        = errors.New("el hackathon tiene equipos o retos asociados")
	ErrParticipantNotFound   = errors.New("participante no encontrado")
	ErrEmailTaken            = errors.New("ya existe un participante con ese email")
	ErrChallengeNotFound     = errors.New("reto no encontrado")
	ErrChallengeNotAvailable = errors.New("el reto no está publicado")
	ErrTeamNotFound          = errors.New("equipo no encontrado")
	ErrTeamNotAccepting      = errors.New("el equipo no acepta más integrantes")
	ErrTeamChallengeLimit    = errors.New("el equipo no puede tomar más retos")
	ErrMemberExists          = errors.New("el participante ya pertenece al equipo")
	ErrMemberNotFound        = errors.New("el participante no pertenece al equipo")
	ErrChallengeAssigned     = errors.New("el reto ya está asignado al equipo")
	ErrChallengeNotAssigned  = errors.New("el reto no está asignado al equipo")
	ErrInvalidTransition     = errors.New("transición de estado no permitida")
)

// ValidationError carries every violated invariant of an entity.
type ValidationError struct {
	Messages []string
	Kind     error // optional refinement, e.g. ErrInvalidTransition
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NewTransitionError reports a state change that the lifecycle does not allow.
func NewTransitionError(from, to string) *ValidationError {
	return &ValidationError{
		Messages: []string{fmt.Sprintf("%s: %s → %s", ErrInvalidTransition.Error(), from, to)},
		Kind:     ErrInvalidTransition,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is matches ErrValidation for any ValidationError, and Kind when set.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || (e.Kind != nil && target == e.Kind)
}

// ValidationMessages returns the messages of a ValidationError found in err's chain.
func ValidationMessages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}

// codes is ordered: refinements come before ErrValidation.
var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidTransition, "invalid_transition"},
	{ErrValidation, "validation"},
	{ErrHackathonNotFound, "hackathon_not_found"},
	{ErrHackathonInUse, "hackathon_in_use"},
	{ErrParticipantNotFound, "participant_not_found"},
	{ErrEmailTaken, "email_taken"},
	{ErrChallengeNotFound, "challenge_not_found"},
	{ErrChallengeNotAvailable, "challenge_not_available"},
	{ErrTeamNotFound, "team_not_found"},
	{ErrTeamNotAccepting, "team_not_accepting"},
	{ErrTeamChallengeLimit, "team_challenge_limit"},
	{ErrMemberExists, "member_exists"},
	{ErrMemberNotFound, "member_not_found"},
	{ErrChallengeAssigned, "challenge_assigned"},
	{ErrChallengeNotAssigned, "challenge_not_assigned"},
}

// Code returns the stable code of a domain error, or "" when err is not one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// IsNotFound reports whether err is one of the *NotFound sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrHackathonNotFound) ||
		errors.Is(err, ErrParticipantNotFound) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrChallengeNotAssigned)
}
