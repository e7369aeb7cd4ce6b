// Package httpapi exposes the use cases as a JSON API under /api.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eduhack/internal/ports/input"
	"eduhack/internal/ports/output"
)

// Localizer renders messages and picks the locale of a request.
type Localizer interface {
	output.T
	Match(acceptLanguage string) string
}

// Handler holds the use cases behind the HTTP routes.
type Handler struct {
	hackathons   input.HackathonUseCase
	participants input.ParticipantUseCase
	challenges   input.ChallengeUseCase
	teams        input.TeamUseCase
	i18n         Localizer
	now          func() time.Time
}

func NewHandler(
	hackathons input.HackathonUseCase,
	participants input.ParticipantUseCase,
	challenges input.ChallengeUseCase,
	teams input.TeamUseCase,
	i18n Localizer,
) *Handler {
	return &Handler{
		hackathons:   hackathons,
		participants: participants,
		challenges:   challenges,
		teams:        teams,
		i18n:         i18n,
		now:          time.Now,
	}
}

// NewRouter builds the gin engine. An empty origins list allows every origin.
func NewRouter(h *Handler, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(), gin.Recovery(), cors.New(corsConfig(origins)), h.Locale())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	hackathons := api.Group("/hackathons")
	{
		hackathons.GET("", h.ListHackathons)
		hackathons.GET("/proximos", h.UpcomingHackathons)
		hackathons.GET("/:id", h.GetHackathon)
		hackathons.POST("", h.CreateHackathon)
		hackathons.PUT("/:id", h.UpdateHackathon)
		hackathons.DELETE("/:id", h.DeleteHackathon)
		hackathons.GET("/:id/equipos", h.HackathonTeams)
		hackathons.GET("/:id/retos", h.HackathonChallenges)
	}

	participants := api.Group("/participantes")
	{
		participants.GET("", h.ListParticipants)
		participants.GET("/email/:email", h.GetParticipantByEmail)
		participants.GET("/:id", h.GetParticipant)
		participants.POST("", h.RegisterParticipant)
		participants.PUT("/:id", h.UpdateParticipant)
		participants.DELETE("/:id", h.DeleteParticipant)
	}

	challenges := api.Group("/retos")
	{
		challenges.GET("", h.ListChallenges)
		challenges.GET("/:id", h.GetChallenge)
		challenges.POST("", h.CreateChallenge)
		challenges.PUT("/:id", h.UpdateChallenge)
		challenges.PUT("/:id/estado", h.ChangeChallengeState)
		challenges.DELETE("/:id", h.DeleteChallenge)
		challenges.POST("/:id/evaluacion", h.EvaluateChallenge)
	}

	teams := api.Group("/equipos")
	{
		teams.GET("", h.ListTeams)
		teams.GET("/:id", h.GetTeam)
		teams.POST("", h.CreateTeam)
		teams.PUT("/:id", h.UpdateTeam)
		teams.DELETE("/:id", h.DeleteTeam)
		teams.POST("/:id/integrantes", h.AddMember)
		teams.DELETE("/:id/integrantes/:participanteId", h.RemoveMember)
		teams.POST("/:id/retos", h.AssignChallenge)
		teams.PUT("/:id/retos/:retoId", h.UpdateChallengeProgress)
		teams.GET("/:id/compatibilidad/:retoId", h.Compatibility)
		teams.GET("/:id/recomendaciones", h.Recommend)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", requestIDHeader}
	cfg.ExposeHeaders = []string{requestIDHeader}
	return cfg
}
