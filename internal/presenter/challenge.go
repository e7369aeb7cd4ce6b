package presenter

import (
	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/pkg/tz"
)

type ChallengeRecord struct {
	ID                    uint   `json:"id"`
	Titulo                string `json:"titulo"`
	Descripcion           string `json:"descripcion"`
	Dificultad            string `json:"dificultad"`
	TecnologiasRequeridas string `json:"tecnologias_requeridas"`
	Tipo                  string `json:"tipo"`
	Estado                string `json:"estado"`
	HackathonID           uint   `json:"hackathon_id"`
	EntidadColaboradora   string `json:"entidad_colaboradora,omitempty"`
	EnfoquePedagogico     string `json:"enfoque_pedagogico,omitempty"`

	NivelDificultad     int             `json:"nivel_dificultad"`
	TecnologiasArray    []string        `json:"tecnologias_array"`
	Disponible          bool            `json:"disponible"`
	Origen              string          `json:"origen,omitempty"`
	Enfoque             string          `json:"enfoque,omitempty"`
	CriteriosEvaluacion []CriterionView `json:"criterios_evaluacion"`
	Fase                string          `json:"fase,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CriterionView struct {
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion"`
}

// Challenge renders c. The phase is only filled in when its hackathon h is given.
func Challenge(v View, c *entities.Challenge, h *entities.Hackathon) ChallengeRecord {
	info := c.Info()
	r := ChallengeRecord{
		ID:                    c.ID,
		Titulo:                c.Title,
		Descripcion:           c.Description,
		Dificultad:            c.Difficulty,
		TecnologiasRequeridas: c.Technologies,
		Tipo:                  c.Kind,
		Estado:                c.State,
		HackathonID:           c.HackathonID,
		NivelDificultad:       c.DifficultyLevel(),
		TecnologiasArray:      c.TechnologyList(),
		Disponible:            c.Available(),
		Origen:                info.Origin,
		Enfoque:               info.Focus,
		CriteriosEvaluacion:   []CriterionView{},
		CreatedAt:             tz.Format(c.CreatedAt),
		UpdatedAt:             tz.Format(c.UpdatedAt),
	}
	if c.Real != nil {
		r.EntidadColaboradora = c.Real.Sponsor
	}
	if c.Experimental != nil {
		r.EnfoquePedagogico = c.Experimental.Approach
	}
	for _, cr := range c.EvaluationCriteria() {
		r.CriteriosEvaluacion = append(r.CriteriosEvaluacion, CriterionView{Clave: cr.Key, Descripcion: cr.Description})
	}
	if h != nil && h.ID == c.HackathonID {
		r.Fase = string(h.Phase(v.Now))
	}
	return r
}

// Challenges renders a list; hackathons are looked up by id for the phase.
func Challenges(v View, list []entities.Challenge, hackathons map[uint]*entities.Hackathon) []ChallengeRecord {
	out := make([]ChallengeRecord, 0, len(list))
	for i := range list {
		out = append(out, Challenge(v, &list[i], hackathons[list[i].HackathonID]))
	}
	return out
}

// ToEntity rebuilds the challenge; tipo selects which variant field is read.
func (r ChallengeRecord) ToEntity() (*entities.Challenge, error) {
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime("updated_at", r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c := &entities.Challenge{
		ID:           r.ID,
		Title:        r.Titulo,
		Description:  r.Descripcion,
		Difficulty:   r.Dificultad,
		Technologies: r.TecnologiasRequeridas,
		Kind:         r.Tipo,
		State:        r.Estado,
		HackathonID:  r.HackathonID,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}
	switch r.Tipo {
	case domain.KindRealChallenge:
		c.Real = &entities.RealDetails{Sponsor: r.EntidadColaboradora}
	case domain.KindExperimentalChallenge:
		c.Experimental = &entities.ExperimentalDetails{Approach: r.EnfoquePedagogico}
	}
	return c, nil
}

type EvaluationRecord struct {
	Criterios   map[string]float64 `json:"criterios"`
	Total       float64            `json:"puntuacion_total"`
	Aprobado    bool               `json:"aprobado"`
	Comentarios string             `json:"comentarios"`
}

func Evaluation(ev entities.Evaluation) EvaluationRecord {
	return EvaluationRecord{
		Criterios:   ev.Scores,
		Total:       ev.Total,
		Aprobado:    ev.Approved,
		Comentarios: ev.Comment,
	}
}
