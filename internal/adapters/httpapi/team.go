package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
	"eduhack/internal/presenter"
)

func (h *Handler) ListTeams(c *gin.Context) {
	list, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Teams(list))
}

func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	team, err := h.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

// CreateTeam registers an empty team; members and challenges are added
// through their own routes.
func (h *Handler) CreateTeam(c *gin.Context) {
	var body presenter.TeamRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	team, err := body.ToEntity()
	if err != nil {
		h.badRequest(c, err)
		return
	}
	team.ID = 0
	team.CreatedAt, team.UpdatedAt = time.Time{}, time.Time{}
	team.Members = []entities.TeamMember{}
	team.Challenges = []entities.TeamChallenge{}
	if team.State == "" {
		team.State = domain.TeamForming
	}
	if team.MaxMembers == 0 {
		team.MaxMembers = entities.DefaultTeamCapacity
	}
	if err := h.teams.CreateTeam(c.Request.Context(), team); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Team(team))
}

type teamChanges struct {
	Nombre         *string `json:"nombre"`
	Descripcion    *string `json:"descripcion"`
	MaxIntegrantes *int    `json:"max_integrantes"`
	Estado         *string `json:"estado"`
}

func (h *Handler) UpdateTeam(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body teamChanges
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	team, err := h.teams.UpdateTeam(c.Request.Context(), id, input.TeamChanges{
		Name:        body.Nombre,
		Description: body.Descripcion,
		MaxMembers:  body.MaxIntegrantes,
		State:       body.Estado,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.teams.DeleteTeam(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type memberRequest struct {
	ParticipanteID uint   `json:"participante_id" binding:"required"`
	Rol            string `json:"rol_en_equipo"`
}

func (h *Handler) AddMember(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body memberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	team, err := h.teams.AddMember(c.Request.Context(), id, body.ParticipanteID, body.Rol)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := h.idParam(c, "participanteId")
	if !ok {
		return
	}
	team, err := h.teams.RemoveMember(c.Request.Context(), id, participantID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

type assignmentRequest struct {
	RetoID uint `json:"reto_id" binding:"required"`
}

func (h *Handler) AssignChallenge(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var body assignmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	team, err := h.teams.AssignChallenge(c.Request.Context(), id, body.RetoID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

type progressRequest struct {
	Estado   string `json:"estado_participacion"`
	Progreso *int   `json:"progreso" binding:"required"`
}

func (h *Handler) UpdateChallengeProgress(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	challengeID, ok := h.idParam(c, "retoId")
	if !ok {
		return
	}
	var body progressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, err)
		return
	}
	team, err := h.teams.UpdateChallengeProgress(c.Request.Context(), id, challengeID, body.Estado, *body.Progreso)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Team(team))
}

func (h *Handler) Compatibility(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	challengeID, ok := h.idParam(c, "retoId")
	if !ok {
		return
	}
	report, err := h.teams.Compatibility(c.Request.Context(), id, challengeID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Compatibility(h.view(c), id, challengeID, report.Score))
}

func (h *Handler) Recommend(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	list, err := h.teams.Recommend(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	var hackathon *entities.Hackathon
	if len(list) > 0 {
		hackathon = h.hackathonOf(ctx, list[0].Challenge)
	}
	c.JSON(http.StatusOK, presenter.Recommendations(h.view(c), list, hackathon))
}
