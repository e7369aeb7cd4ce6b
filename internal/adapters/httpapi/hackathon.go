package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/presenter"
	"eduhack/pkg/tz"
)

func (h *Handler) ListHackathons(c *gin.Context) {
	list, err := h.hackathons.ListHackathons(c.Request.Context(), c.Query("estado"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Hackathons(h.view(c), list))
}

func (h *Handler) UpcomingHackathons(c *gin.Context) {
	list, err := h.hackathons.UpcomingHackathons(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Hackathons(h.view(c), list))
}

func (h *Handler) GetHackathon(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	hackathon, err := h.hackathons.GetHackathon(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Hackathon(h.view(c), hackathon))
}

func (h *Handler) CreateHackathon(c *gin.Context) {
	var body presenter.HackathonRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	hackathon, err := body.ToEntity()
	if err != nil {
		h.badRequest(c, err)
		return
	}
	hackathon.ID = 0
	hackathon.CreatedAt, hackathon.UpdatedAt = time.Time{}, time.Time{}
	if hackathon.State == "" {
		hackathon.State = domain.HackathonPlanning
	}
	if err := h.hackathons.CreateHackathon(c.Request.Context(), hackathon); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Hackathon(h.view(c), hackathon))
}

type hackathonChanges struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Lugar       *string `json:"lugar"`
	Estado      *string `json:"estado"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
}

func (b hackathonChanges) toInput() (input.HackathonChanges, error) {
	changes := input.HackathonChanges{
		Name:        b.Nombre,
		Description: b.Descripcion,
		Location:    b.Lugar,
		State:       b.Estado,
	}
	var err error
	if changes.Start, err = parseOptionalTime(b.FechaInicio); err != nil {
		return changes, err
	}
	if changes.End, err = parseOptionalTime(b.FechaFin); err != nil {
		return changes, err
	}
	return changes, nil
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := tz.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) UpdateHackathon(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body hackathonChanges
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	changes, err := body.toInput()
	if err != nil {
		h.badRequest(c, err)
		return
	}
	hackathon, err := h.hackathons.UpdateHackathon(c.Request.Context(), id, changes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Hackathon(h.view(c), hackathon))
}

func (h *Handler) DeleteHackathon(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.hackathons.DeleteHackathon(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HackathonTeams(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	teams, err := h.hackathons.HackathonTeams(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Teams(teams))
}

func (h *Handler) HackathonChallenges(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	hackathon, err := h.hackathons.GetHackathon(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	challenges, err := h.hackathons.HackathonChallenges(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Challenges(h.view(c), challenges, map[uint]*entities.Hackathon{id: hackathon}))
}
