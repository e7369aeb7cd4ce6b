package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/infrastructure/i18n"
	"eduhack/pkg/tz"
)

var start = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

func mustHackathon(t *testing.T, location string, hours int) *entities.Hackathon {
	t.Helper()
	h, err := entities.NewHackathon("EduHack", start, start.Add(time.Duration(hours)*time.Hour))
	require.NoError(t, err)
	h.ID = 1
	h.Location = location
	return h
}

func TestHackathonRecord(t *testing.T) {
	v := View{Now: start.Add(-72 * time.Hour), Locale: "es", T: i18n.NewTranslator("es")}
	r := Hackathon(v, mustHackathon(t, "Campus + Meet", 48))

	assert.Equal(t, "2025-05-10T09:00:00Z", r.FechaInicio)
	assert.Equal(t, "planificacion", r.EstadoCalculado)
	assert.Equal(t, 3, r.DuracionDias)
	assert.Equal(t, 48, r.DuracionHoras)
	assert.Equal(t, "tradicional", r.TipoHackathon)
	assert.Equal(t, "hibrido", r.Modalidad)
	assert.Equal(t, "Evento híbrido (presencial y virtual)", r.DescripcionModalidad)
	assert.True(t, r.NoHaComenzado)
	assert.True(t, r.PermiteInscripciones)
	assert.Equal(t, Remaining{Tipo: "para_inicio", Dias: 3, Mensaje: "Faltan 3 días para el inicio"}, r.TiempoRestante)

	v.Now = start.Add(30 * time.Hour)
	v.Locale = "en"
	r = Hackathon(v, mustHackathon(t, "Campus + Meet", 48))
	assert.True(t, r.EnCurso)
	assert.Equal(t, "0 days and 18 hours left", r.TiempoRestante.Mensaje)
}

func TestChallengeRecordPhase(t *testing.T) {
	h := mustHackathon(t, "", 24)
	c := entities.NewExperimentalChallenge("Robótica", "Brazo", domain.DifficultyBasic, "Arduino, C", h.ID, domain.ApproachSTEAM)

	r := Challenge(View{Now: start.Add(time.Hour)}, c, h)
	assert.Equal(t, "activo", r.Fase)
	assert.Equal(t, []string{"Arduino", "C"}, r.TecnologiasArray)
	assert.Equal(t, "docente", r.Origen)
	assert.Len(t, r.CriteriosEvaluacion, 4)

	r = Challenge(View{Now: start}, c, nil)
	assert.Empty(t, r.Fase)
}

func TestTeamRecord(t *testing.T) {
	team := entities.NewTeam("Los Bits", 1)
	team.State = domain.TeamFull
	team.Members = []entities.TeamMember{
		{ParticipantID: 1, Role: domain.RoleLeader, Skills: []string{"Go"}, ExperienceLevel: domain.LevelSenior},
		{ParticipantID: 2, Role: domain.RoleDeveloper, ExperienceLevel: domain.LevelBeginner},
	}

	r := Team(team)
	assert.Equal(t, 2, r.NumeroIntegrantes)
	assert.True(t, r.EstaBalanceado)
	assert.True(t, r.TieneLider)
	assert.False(t, r.TieneMentor)
	assert.Equal(t, domain.LevelJunior, r.NivelExperienciaPromedio)
	assert.Equal(t, map[string]int{"lider": 1, "desarrollador": 1}, r.DistribucionRoles)
	assert.Equal(t, []string{}, r.Participantes[1].Habilidades)
	assert.True(t, r.PuedeTomarMasRetos)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"esta_completo":false`)
	assert.Contains(t, string(raw), `"distribucion_roles":{"desarrollador":1,"lider":1}`)
}

// Decoding a record must keep exactly the fields that decide validity.
func TestRecordRoundTripPreservesValidity(t *testing.T) {
	v := View{Now: start}
	sameValidity := func(t *testing.T, before []string, record any, decode func([]byte) (interface{ Validate() []string }, error)) {
		t.Helper()
		raw, err := json.Marshal(record)
		require.NoError(t, err)
		decoded, err := decode(raw)
		require.NoError(t, err)
		assert.Equal(t, before, decoded.Validate())
	}

	hackathons := map[string]*entities.Hackathon{
		"valid":     mustHackathon(t, "Online", 24),
		"too short": mustHackathon(t, "", 3),
		"bad state": func() *entities.Hackathon { h := mustHackathon(t, "", 24); h.State = "x"; return h }(),
		"no name":   func() *entities.Hackathon { h := mustHackathon(t, "", 24); h.Name = ""; return h }(),
	}
	for name, h := range hackathons {
		t.Run("hackathon "+name, func(t *testing.T) {
			sameValidity(t, h.Validate(), Hackathon(v, h), func(raw []byte) (interface{ Validate() []string }, error) {
				var r HackathonRecord
				if err := json.Unmarshal(raw, &r); err != nil {
					return nil, err
				}
				return r.ToEntity()
			})
		})
	}

	participants := map[string]*entities.Participant{
		"student":      entities.NewStudent("Ana", "ana@uni.edu", "", entities.StudentProfile{Grade: "2", Institution: "UNI", WeeklyHours: 6}),
		"lazy student": entities.NewStudent("Ana", "ana@uni.edu", "", entities.StudentProfile{Grade: "2", Institution: "UNI"}),
		"mentor":       entities.NewMentor("Luis", "luis@corp.com", "", entities.MentorProfile{Specialty: "IoT", Availability: "noches"}),
		"bad mentor":   entities.NewMentor("Luis", "luis", "", entities.MentorProfile{YearsExperience: -2}),
	}
	for name, p := range participants {
		t.Run("participant "+name, func(t *testing.T) {
			sameValidity(t, p.Validate(), Participant(p), func(raw []byte) (interface{ Validate() []string }, error) {
				var r ParticipantRecord
				if err := json.Unmarshal(raw, &r); err != nil {
					return nil, err
				}
				return r.ToEntity()
			})
		})
	}

	challenges := map[string]*entities.Challenge{
		"real":              entities.NewRealChallenge("Agua", "Sensores", domain.DifficultyAdvanced, "Go", 1, "ONG"),
		"real no sponsor":   entities.NewRealChallenge("Agua", "Sensores", domain.DifficultyAdvanced, "Go", 1, ""),
		"experimental":      entities.NewExperimentalChallenge("Robots", "Brazo", domain.DifficultyBasic, "", 1, domain.ApproachABP),
		"bad approach":      entities.NewExperimentalChallenge("Robots", "Brazo", "facil", "", 0, "Montessori"),
		"missing variant":   {Title: "X", Description: "Y", Difficulty: domain.DifficultyBasic, HackathonID: 1, Kind: domain.KindRealChallenge, State: domain.ChallengeDraft},
		"unknown challenge": {Title: "X", Description: "Y", Difficulty: domain.DifficultyBasic, HackathonID: 1, Kind: "reto_raro", State: domain.ChallengeDraft},
	}
	for name, c := range challenges {
		t.Run("challenge "+name, func(t *testing.T) {
			sameValidity(t, c.Validate(), Challenge(v, c, nil), func(raw []byte) (interface{ Validate() []string }, error) {
				var r ChallengeRecord
				if err := json.Unmarshal(raw, &r); err != nil {
					return nil, err
				}
				return r.ToEntity()
			})
		})
	}

	teams := map[string]*entities.Team{
		"valid":    entities.NewTeam("Los Bits", 1),
		"crowded":  func() *entities.Team { tm := entities.NewTeam("Los Bits", 1); tm.MaxMembers = 12; return tm }(),
		"nameless": entities.NewTeam("", 0),
	}
	for name, tm := range teams {
		t.Run("team "+name, func(t *testing.T) {
			sameValidity(t, tm.Validate(), Team(tm), func(raw []byte) (interface{ Validate() []string }, error) {
				var r TeamRecord
				if err := json.Unmarshal(raw, &r); err != nil {
					return nil, err
				}
				return r.ToEntity()
			})
		})
	}
}

func TestHackathonRoundTripInDaylightSavingZone(t *testing.T) {
	require.NoError(t, tz.Set("America/New_York"))
	t.Cleanup(func() { tz.Location = time.UTC })

	// ends at the second 01:30 of the fall-back night
	end := time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC)
	h, err := entities.NewHackathon("EduHack", end.Add(-4*time.Hour-30*time.Minute), end)
	require.NoError(t, err)
	require.Empty(t, h.Validate())

	raw, err := json.Marshal(Hackathon(View{Now: start}, h))
	require.NoError(t, err)
	var r HackathonRecord
	require.NoError(t, json.Unmarshal(raw, &r))
	got, err := r.ToEntity()
	require.NoError(t, err)

	assert.Empty(t, got.Validate())
	assert.True(t, got.End().Equal(end))
	assert.Equal(t, h.DurationHours(), got.DurationHours())
}

func TestToEntityRejectsBadTimestamps(t *testing.T) {
	_, err := HackathonRecord{FechaInicio: "10/05/2025"}.ToEntity()
	assert.ErrorContains(t, err, "fecha_inicio")

	_, err = TeamRecord{Participantes: []MemberRecord{{FechaUnion: "ayer"}}}.ToEntity()
	assert.ErrorContains(t, err, "fecha_union")
}
