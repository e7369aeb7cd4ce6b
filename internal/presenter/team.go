package presenter

import (
	"eduhack/internal/domain/entities"
	"eduhack/pkg/tz"
)

type TeamRecord struct {
	ID             uint   `json:"id"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion"`
	HackathonID    uint   `json:"hackathon_id"`
	FechaFormacion string `json:"fecha_formacion"`
	Estado         string `json:"estado"`
	MaxIntegrantes int    `json:"max_integrantes"`

	NumeroIntegrantes        int            `json:"numero_integrantes"`
	EstaCompleto             bool           `json:"esta_completo"`
	PuedeAceptarIntegrantes  bool           `json:"puede_aceptar_integrantes"`
	TieneMentor              bool           `json:"tiene_mentor"`
	TieneLider               bool           `json:"tiene_lider"`
	EstaBalanceado           bool           `json:"esta_balanceado"`
	DistribucionRoles        map[string]int `json:"distribucion_roles"`
	HabilidadesEquipo        []string       `json:"habilidades_equipo"`
	NivelExperienciaPromedio string         `json:"nivel_experiencia_promedio"`
	NumeroRetosActivos       int            `json:"numero_retos_activos"`
	PuedeTomarMasRetos       bool           `json:"puede_tomar_mas_retos"`
	ProgresoPromedio         float64        `json:"progreso_promedio"`

	Participantes []MemberRecord     `json:"participantes"`
	Retos         []AssignmentRecord `json:"retos"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type MemberRecord struct {
	ParticipanteID   uint     `json:"participante_id"`
	Nombre           string   `json:"nombre"`
	RolEnEquipo      string   `json:"rol_en_equipo"`
	Habilidades      []string `json:"habilidades"`
	NivelExperiencia string   `json:"nivel_experiencia"`
	FechaUnion       string   `json:"fecha_union"`
}

type AssignmentRecord struct {
	RetoID              uint   `json:"reto_id"`
	Titulo              string `json:"titulo"`
	EstadoParticipacion string `json:"estado_participacion"`
	Progreso            int    `json:"progreso"`
	FechaAsignacion     string `json:"fecha_asignacion"`
}

func Team(t *entities.Team) TeamRecord {
	r := TeamRecord{
		ID:                       t.ID,
		Nombre:                   t.Name,
		Descripcion:              t.Description,
		HackathonID:              t.HackathonID,
		FechaFormacion:           tz.Format(t.FormedAt),
		Estado:                   t.State,
		MaxIntegrantes:           t.MaxMembers,
		NumeroIntegrantes:        t.MemberCount(),
		EstaCompleto:             t.IsFull(),
		PuedeAceptarIntegrantes:  t.CanAcceptMembers(),
		TieneMentor:              t.HasMentor(),
		TieneLider:               t.HasLeader(),
		EstaBalanceado:           t.IsBalanced(),
		DistribucionRoles:        t.RoleDistribution(),
		HabilidadesEquipo:        t.SkillUnion(),
		NivelExperienciaPromedio: t.AverageExperience(),
		NumeroRetosActivos:       t.ActiveChallengeCount(),
		PuedeTomarMasRetos:       t.CanTakeMoreChallenges(),
		ProgresoPromedio:         t.AverageProgress(),
		Participantes:            make([]MemberRecord, 0, len(t.Members)),
		Retos:                    make([]AssignmentRecord, 0, len(t.Challenges)),
		CreatedAt:                tz.Format(t.CreatedAt),
		UpdatedAt:                tz.Format(t.UpdatedAt),
	}
	for _, m := range t.Members {
		skills := m.Skills
		if skills == nil {
			skills = []string{}
		}
		r.Participantes = append(r.Participantes, MemberRecord{
			ParticipanteID:   m.ParticipantID,
			Nombre:           m.Name,
			RolEnEquipo:      m.Role,
			Habilidades:      skills,
			NivelExperiencia: m.ExperienceLevel,
			FechaUnion:       tz.Format(m.JoinedAt),
		})
	}
	for _, c := range t.Challenges {
		r.Retos = append(r.Retos, AssignmentRecord{
			RetoID:              c.ChallengeID,
			Titulo:              c.Title,
			EstadoParticipacion: c.State,
			Progreso:            c.Progress,
			FechaAsignacion:     tz.Format(c.AssignedAt),
		})
	}
	return r
}

func Teams(list []entities.Team) []TeamRecord {
	out := make([]TeamRecord, 0, len(list))
	for i := range list {
		out = append(out, Team(&list[i]))
	}
	return out
}

// ToEntity rebuilds the team with its member and challenge rows.
func (r TeamRecord) ToEntity() (*entities.Team, error) {
	formed, err := parseTime("fecha_formacion", r.FechaFormacion)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime("updated_at", r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t := &entities.Team{
		ID:          r.ID,
		Name:        r.Nombre,
		Description: r.Descripcion,
		HackathonID: r.HackathonID,
		FormedAt:    formed,
		State:       r.Estado,
		MaxMembers:  r.MaxIntegrantes,
		Members:     make([]entities.TeamMember, 0, len(r.Participantes)),
		Challenges:  make([]entities.TeamChallenge, 0, len(r.Retos)),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
	for _, m := range r.Participantes {
		joined, err := parseTime("fecha_union", m.FechaUnion)
		if err != nil {
			return nil, err
		}
		t.Members = append(t.Members, entities.TeamMember{
			ParticipantID:   m.ParticipanteID,
			Name:            m.Nombre,
			Role:            m.RolEnEquipo,
			Skills:          m.Habilidades,
			ExperienceLevel: m.NivelExperiencia,
			JoinedAt:        joined,
		})
	}
	for _, c := range r.Retos {
		assigned, err := parseTime("fecha_asignacion", c.FechaAsignacion)
		if err != nil {
			return nil, err
		}
		t.Challenges = append(t.Challenges, entities.TeamChallenge{
			ChallengeID: c.RetoID,
			Title:       c.Titulo,
			State:       c.EstadoParticipacion,
			Progress:    c.Progreso,
			AssignedAt:  assigned,
		})
	}
	return t, nil
}

type CompatibilityRecord struct {
	EquipoID       uint    `json:"equipo_id"`
	RetoID         uint    `json:"reto_id"`
	Compatibilidad float64 `json:"compatibilidad"`
	Calidad        string  `json:"calidad"`
	Descripcion    string  `json:"descripcion"`
}

func Compatibility(v View, teamID, challengeID uint, score float64) CompatibilityRecord {
	quality := entities.CompatibilityQuality(score)
	return CompatibilityRecord{
		EquipoID:       teamID,
		RetoID:         challengeID,
		Compatibilidad: score,
		Calidad:        quality,
		Descripcion:    v.t("quality."+quality, nil),
	}
}

type RecommendationRecord struct {
	Reto           ChallengeRecord `json:"reto"`
	Compatibilidad float64         `json:"compatibilidad"`
	Calidad        string          `json:"calidad"`
}

func Recommendations(v View, list []entities.Recommendation, h *entities.Hackathon) []RecommendationRecord {
	out := make([]RecommendationRecord, 0, len(list))
	for _, rec := range list {
		out = append(out, RecommendationRecord{
			Reto:           Challenge(v, rec.Challenge, h),
			Compatibilidad: rec.Score,
			Calidad:        entities.CompatibilityQuality(rec.Score),
		})
	}
	return out
}
