package discord

import (
	"time"

	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

// Localizer renders messages and maps a Discord locale to a catalog.
type Localizer interface {
	output.T
	Match(acceptLanguage string) string
}

// Handler answers slash commands using the use cases.
type Handler struct {
	hackathons input.HackathonUseCase
	teams      input.TeamUseCase
	i18n       Localizer
	now        func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(
	hackathons input.HackathonUseCase,
	teams input.TeamUseCase,
	i18n Localizer,
) *Handler {
	return &Handler{
		hackathons: hackathons,
		teams:      teams,
		i18n:       i18n,
		now:        time.Now,
	}
}
