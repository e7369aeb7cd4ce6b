package entities

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eduhack/internal/domain"
)

var validate = validator.New()

// Participant is a student or a technical mentor. Kind selects which of the
// Student and Mentor payloads is set.
type Participant struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Kind      string
	Student   *StudentProfile
	Mentor    *MentorProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudentProfile holds the attributes specific to students.
type StudentProfile struct {
	Grade       string
	Institution string
	WeeklyHours int
}

// MentorProfile holds the attributes specific to technical mentors.
type MentorProfile struct {
	Specialty       string
	YearsExperience int
	Availability    string
}

// NewStudent builds a student participant.
func NewStudent(name, email, phone string, profile StudentProfile) *Participant {
	now := nowFunc()
	return &Participant{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Kind:      domain.KindStudent,
		Student:   &profile,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMentor builds a technical mentor participant.
func NewMentor(name, email, phone string, profile MentorProfile) *Participant {
	now := nowFunc()
	return &Participant{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Kind:      domain.KindMentor,
		Mentor:    &profile,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the update timestamp after a mutation.
func (p *Participant) Touch() { p.UpdatedAt = nowFunc() }

// Skills derives the participant's capability tags. Never cached.
func (p *Participant) Skills() []string {
	switch {
	case p.Kind == domain.KindStudent && p.Student != nil:
		return StudentSkills(p.Student.Grade)
	case p.Kind == domain.KindMentor && p.Mentor != nil:
		return MentorSkills(p.Mentor.Specialty)
	default:
		return []string{}
	}
}

// ExperienceLevel derives the participant's seniority label.
func (p *Participant) ExperienceLevel() string {
	switch {
	case p.Kind == domain.KindStudent && p.Student != nil:
		return StudentLevel(p.Student.Grade)
	case p.Kind == domain.KindMentor && p.Mentor != nil:
		return MentorLevel(p.Mentor.YearsExperience)
	default:
		return domain.LevelUndetermined
	}
}

// IsMentor reports whether the participant is a technical mentor.
func (p *Participant) IsMentor() bool { return p.Kind == domain.KindMentor }

// Validate returns every violated invariant; an empty slice means valid.
func (p *Participant) Validate() []string {
	errs := []string{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "El nombre es obligatorio")
	}
	if validate.Var(p.Email, "required,email") != nil {
		errs = append(errs, "El email debe ser válido")
	}
	switch p.Kind {
	case domain.KindStudent:
		if p.Student == nil {
			return append(errs, "Faltan los datos del estudiante")
		}
		if strings.TrimSpace(p.Student.Grade) == "" {
			errs = append(errs, "El grado académico es obligatorio")
		}
		if strings.TrimSpace(p.Student.Institution) == "" {
			errs = append(errs, "La institución es obligatoria")
		}
		if validate.Var(p.Student.WeeklyHours, "gt=0,lte=168") != nil {
			errs = append(errs, "El tiempo disponible semanal debe ser un número válido")
		}
	case domain.KindMentor:
		if p.Mentor == nil {
			return append(errs, "Faltan los datos del mentor")
		}
		if strings.TrimSpace(p.Mentor.Specialty) == "" {
			errs = append(errs, "La especialidad es obligatoria")
		}
		if validate.Var(p.Mentor.YearsExperience, "gte=0,lte=80") != nil {
			errs = append(errs, "Los años de experiencia deben ser un número válido")
		}
		if strings.TrimSpace(p.Mentor.Availability) == "" {
			errs = append(errs, "La disponibilidad horaria es obligatoria")
		}
	default:
		errs = append(errs, "El tipo debe ser: "+domain.KindStudent+", "+domain.KindMentor)
	}
	return errs
}
