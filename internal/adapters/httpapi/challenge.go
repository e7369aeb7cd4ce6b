package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/presenter"
)

// hackathonOf loads the hackathon of a challenge for its phase. It is nil when
// the hackathon is gone or cannot be loaded; the latter is logged.
func (h *Handler) hackathonOf(ctx context.Context, c *entities.Challenge) *entities.Hackathon {
	hackathon, err := h.hackathons.GetHackathon(ctx, c.HackathonID)
	if err != nil {
		if !domain.IsNotFound(err) {
			slog.WarnContext(ctx, "⚠️ Hackathon lookup failed, phase omitted",
				"hackathon_id", c.HackathonID, "reto_id", c.ID, "error", err)
		}
		return nil
	}
	return hackathon
}

func (h *Handler) ListChallenges(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.challenges.ListChallenges(ctx, c.Query("tipo"))
	if err != nil {
		h.fail(c, err)
		return
	}
	hackathons, err := h.hackathons.ListHackathons(ctx, "")
	if err != nil {
		h.fail(c, err)
		return
	}
	byID := make(map[uint]*entities.Hackathon, len(hackathons))
	for i := range hackathons {
		byID[hackathons[i].ID] = &hackathons[i]
	}
	c.JSON(http.StatusOK, presenter.Challenges(h.view(c), list, byID))
}

func (h *Handler) GetChallenge(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	challenge, err := h.challenges.GetChallenge(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Challenge(h.view(c), challenge, h.hackathonOf(ctx, challenge)))
}

func (h *Handler) CreateChallenge(c *gin.Context) {
	var body presenter.ChallengeRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	challenge, err := body.ToEntity()
	if err != nil {
		h.badRequest(c, err)
		return
	}
	challenge.ID = 0
	challenge.CreatedAt, challenge.UpdatedAt = time.Time{}, time.Time{}
	if challenge.State == "" {
		challenge.State = domain.ChallengeDraft
	}
	if challenge.Experimental != nil && challenge.Experimental.Approach == "" {
		challenge.Experimental.Approach = domain.ApproachSTEM
	}
	ctx := c.Request.Context()
	if err := h.challenges.CreateChallenge(ctx, challenge); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Challenge(h.view(c), challenge, h.hackathonOf(ctx, challenge)))
}

type challengeChanges struct {
	Titulo                *string `json:"titulo"`
	Descripcion           *string `json:"descripcion"`
	Dificultad            *string `json:"dificultad"`
	TecnologiasRequeridas *string `json:"tecnologias_requeridas"`
	EntidadColaboradora   *string `json:"entidad_colaboradora"`
	EnfoquePedagogico     *string `json:"enfoque_pedagogico"`
}

func (h *Handler) UpdateChallenge(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body challengeChanges
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	challenge, err := h.challenges.UpdateChallenge(ctx, id, input.ChallengeChanges{
		Title:        body.Titulo,
		Description:  body.Descripcion,
		Difficulty:   body.Dificultad,
		Technologies: body.TecnologiasRequeridas,
		Sponsor:      body.EntidadColaboradora,
		Approach:     body.EnfoquePedagogico,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Challenge(h.view(c), challenge, h.hackathonOf(ctx, challenge)))
}

type stateChange struct {
	Estado string `json:"estado" binding:"required"`
}

func (h *Handler) ChangeChallengeState(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body stateChange
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	challenge, err := h.challenges.ChangeChallengeState(ctx, id, body.Estado)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Challenge(h.view(c), challenge, h.hackathonOf(ctx, challenge)))
}

func (h *Handler) DeleteChallenge(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.challenges.DeleteChallenge(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type evaluationRequest struct {
	Criterios map[string]float64 `json:"criterios" binding:"required"`
}

func (h *Handler) EvaluateChallenge(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body evaluationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	ev, err := h.challenges.EvaluateChallenge(c.Request.Context(), id, body.Criterios)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Evaluation(ev))
}
