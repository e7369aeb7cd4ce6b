package presenter

import (
	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/pkg/tz"
)

type ParticipantRecord struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Tipo     string `json:"tipo"`

	Grado                   string `json:"grado,omitempty"`
	Institucion             string `json:"institucion,omitempty"`
	TiempoDisponibleSemanal *int   `json:"tiempo_disponible_semanal,omitempty"`

	Especialidad          string `json:"especialidad,omitempty"`
	ExperienciaAnos       *int   `json:"experiencia_anos,omitempty"`
	DisponibilidadHoraria string `json:"disponibilidad_horaria,omitempty"`

	Habilidades      []string `json:"habilidades"`
	NivelExperiencia string   `json:"nivel_experiencia,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func Participant(p *entities.Participant) ParticipantRecord {
	r := ParticipantRecord{
		ID:               p.ID,
		Nombre:           p.Name,
		Email:            p.Email,
		Telefono:         p.Phone,
		Tipo:             p.Kind,
		Habilidades:      p.Skills(),
		NivelExperiencia: p.ExperienceLevel(),
		CreatedAt:        tz.Format(p.CreatedAt),
		UpdatedAt:        tz.Format(p.UpdatedAt),
	}
	if s := p.Student; s != nil {
		hours := s.WeeklyHours
		r.Grado, r.Institucion, r.TiempoDisponibleSemanal = s.Grade, s.Institution, &hours
	}
	if m := p.Mentor; m != nil {
		years := m.YearsExperience
		r.Especialidad, r.ExperienciaAnos, r.DisponibilidadHoraria = m.Specialty, &years, m.Availability
	}
	return r
}

func Participants(list []entities.Participant) []ParticipantRecord {
	out := make([]ParticipantRecord, 0, len(list))
	for i := range list {
		out = append(out, Participant(&list[i]))
	}
	return out
}

// ToEntity rebuilds the participant; tipo selects which profile fields are read.
func (r ParticipantRecord) ToEntity() (*entities.Participant, error) {
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime("updated_at", r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p := &entities.Participant{
		ID:        r.ID,
		Name:      r.Nombre,
		Email:     r.Email,
		Phone:     r.Telefono,
		Kind:      r.Tipo,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	switch r.Tipo {
	case domain.KindStudent:
		p.Student = &entities.StudentProfile{
			Grade:       r.Grado,
			Institution: r.Institucion,
			WeeklyHours: deref(r.TiempoDisponibleSemanal),
		}
	case domain.KindMentor:
		p.Mentor = &entities.MentorProfile{
			Specialty:       r.Especialidad,
			YearsExperience: deref(r.ExperienciaAnos),
			Availability:    r.DisponibilidadHoraria,
		}
	}
	return p, nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
