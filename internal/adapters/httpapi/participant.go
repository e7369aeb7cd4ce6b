package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eduhack/internal/ports/input"
	"eduhack/internal/presenter"
)

func (h *Handler) ListParticipants(c *gin.Context) {
	list, err := h.participants.ListParticipants(c.Request.Context(), c.Query("tipo"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Participants(list))
}

func (h *Handler) GetParticipant(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.participants.GetParticipant(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Participant(p))
}

func (h *Handler) GetParticipantByEmail(c *gin.Context) {
	p, err := h.participants.GetParticipantByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Participant(p))
}

func (h *Handler) RegisterParticipant(c *gin.Context) {
	var body presenter.ParticipantRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	p, err := body.ToEntity()
	if err != nil {
		h.badRequest(c, err)
		return
	}
	p.ID = 0
	p.CreatedAt, p.UpdatedAt = time.Time{}, time.Time{}
	if err := h.participants.RegisterParticipant(c.Request.Context(), p); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Participant(p))
}

type participantChanges struct {
	Nombre                  *string `json:"nombre"`
	Email                   *string `json:"email"`
	Telefono                *string `json:"telefono"`
	Grado                   *string `json:"grado"`
	Institucion             *string `json:"institucion"`
	TiempoDisponibleSemanal *int    `json:"tiempo_disponible_semanal"`
	Especialidad            *string `json:"especialidad"`
	ExperienciaAnos         *int    `json:"experiencia_anos"`
	DisponibilidadHoraria   *string `json:"disponibilidad_horaria"`
}

func (h *Handler) UpdateParticipant(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body participantChanges
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	p, err := h.participants.UpdateParticipant(c.Request.Context(), id, input.ParticipantChanges{
		Name:            body.Nombre,
		Email:           body.Email,
		Phone:           body.Telefono,
		Grade:           body.Grado,
		Institution:     body.Institucion,
		WeeklyHours:     body.TiempoDisponibleSemanal,
		Specialty:       body.Especialidad,
		YearsExperience: body.ExperienciaAnos,
		Availability:    body.DisponibilidadHoraria,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Participant(p))
}

func (h *Handler) DeleteParticipant(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.participants.DeleteParticipant(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
