package database

import (
	"time"

	"github.com/jackc/pgx/v5"

	"eduhack/internal/domain/entities"
)

const hackathonColumns = `id, nombre, descripcion, fecha_inicio, fecha_fin, lugar, estado, created_at, updated_at`

func scanHackathon(row pgx.Row) (entities.Hackathon, error) {
	var (
		h          entities.Hackathon
		id         int64
		start, end time.Time
	)
	err := row.Scan(&id, &h.Name, &h.Description, &start, &end, &h.Location, &h.State, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return entities.Hackathon{}, err
	}
	h.ID = uint(id)
	return *entities.RestoreHackathon(h, start, end), nil
}

const participantColumns = `p.id, p.nombre, p.email, p.telefono, p.tipo, p.created_at, p.updated_at,
	e.grado, e.institucion, e.tiempo_disponible_semanal,
	m.especialidad, m.experiencia_anos, m.disponibilidad_horaria`

const participantFrom = `participantes p
	LEFT JOIN estudiantes e ON e.participante_id = p.id
	LEFT JOIN mentores_tecnicos m ON m.participante_id = p.id`

func scanParticipant(row pgx.Row) (entities.Participant, error) {
	var (
		p                       entities.Participant
		id                      int64
		grade, institution      *string
		hours, years            *int32
		specialty, availability *string
	)
	err := row.Scan(&id, &p.Name, &p.Email, &p.Phone, &p.Kind, &p.CreatedAt, &p.UpdatedAt,
		&grade, &institution, &hours,
		&specialty, &years, &availability)
	if err != nil {
		return entities.Participant{}, err
	}
	p.ID = uint(id)
	if grade != nil {
		p.Student = &entities.StudentProfile{Grade: *grade, Institution: deref(institution), WeeklyHours: int(derefInt(hours))}
	}
	if specialty != nil {
		p.Mentor = &entities.MentorProfile{Specialty: *specialty, YearsExperience: int(derefInt(years)), Availability: deref(availability)}
	}
	return p, nil
}

const challengeColumns = `r.id, r.titulo, r.descripcion, r.dificultad, r.tecnologias_requeridas, r.tipo, r.estado,
	r.hackathon_id, r.created_at, r.updated_at, rr.entidad_colaboradora, re.enfoque_pedagogico`

const challengeFrom = `retos_solucionables r
	LEFT JOIN retos_reales rr ON rr.reto_id = r.id
	LEFT JOIN retos_experimentales re ON re.reto_id = r.id`

func scanChallenge(row pgx.Row) (entities.Challenge, error) {
	var (
		c                 entities.Challenge
		id, hackathonID   int64
		sponsor, approach *string
	)
	err := row.Scan(&id, &c.Title, &c.Description, &c.Difficulty, &c.Technologies, &c.Kind, &c.State,
		&hackathonID, &c.CreatedAt, &c.UpdatedAt, &sponsor, &approach)
	if err != nil {
		return entities.Challenge{}, err
	}
	c.ID, c.HackathonID = uint(id), uint(hackathonID)
	if sponsor != nil {
		c.Real = &entities.RealDetails{Sponsor: *sponsor}
	}
	if approach != nil {
		c.Experimental = &entities.ExperimentalDetails{Approach: *approach}
	}
	return c, nil
}

const teamColumns = `id, nombre, descripcion, hackathon_id, fecha_formacion, estado, max_integrantes, created_at, updated_at`

func scanTeam(row pgx.Row) (entities.Team, error) {
	var (
		t               entities.Team
		id, hackathonID int64
		capacity        int32
	)
	err := row.Scan(&id, &t.Name, &t.Description, &hackathonID, &t.FormedAt, &t.State, &capacity, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return entities.Team{}, err
	}
	t.ID, t.HackathonID, t.MaxMembers = uint(id), uint(hackathonID), int(capacity)
	t.Members = []entities.TeamMember{}
	t.Challenges = []entities.TeamChallenge{}
	return t, nil
}

func scanMember(row pgx.Row) (uint, entities.TeamMember, error) {
	var (
		m                   entities.TeamMember
		teamID, participant int64
	)
	err := row.Scan(&teamID, &participant, &m.Name, &m.Role, &m.Skills, &m.ExperienceLevel, &m.JoinedAt)
	if err != nil {
		return 0, entities.TeamMember{}, err
	}
	m.ParticipantID = uint(participant)
	return uint(teamID), m, nil
}

func scanAssignment(row pgx.Row) (uint, entities.TeamChallenge, error) {
	var (
		c                   entities.TeamChallenge
		teamID, challengeID int64
		progress            int32
	)
	err := row.Scan(&teamID, &challengeID, &c.Title, &c.State, &progress, &c.AssignedAt)
	if err != nil {
		return 0, entities.TeamChallenge{}, err
	}
	c.ChallengeID, c.Progress = uint(challengeID), int(progress)
	return uint(teamID), c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}
