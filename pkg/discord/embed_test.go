package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/infrastructure/i18n"
	"eduhack/internal/presenter"
)

var es = Text{T: i18n.NewTranslator("es"), Locale: "es"}

func fieldValues(e *discordgo.MessageEmbed) map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Name] = f.Value
	}
	return out
}

func TestHackathonEmbed(t *testing.T) {
	start := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
	h, err := entities.NewHackathon("EduHack", start, start.Add(48*time.Hour))
	require.NoError(t, err)
	h.Location = "Online"
	v := presenter.View{Now: start.Add(-72 * time.Hour), Locale: "es", T: es.T}

	embed := HackathonEmbed(es, presenter.Hackathon(v, h))

	assert.Equal(t, "🏁 EduHack", embed.Title)
	fields := fieldValues(embed)
	assert.Equal(t, "Por comenzar", fields["Fase"])
	assert.Equal(t, "10/09/2025 09:00 → 12/09/2025 09:00", fields["Fechas"])
	assert.Equal(t, "3 días (48 h) · Tradicional", fields["Duración"])
	assert.Equal(t, "Evento completamente virtual", fields["Modalidad"])
	assert.Equal(t, "Faltan 3 días para el inicio", fields["Tiempo"])
}

func TestTeamEmbed(t *testing.T) {
	team := entities.NewTeam("Los Bits", 1)
	team.Members = []entities.TeamMember{
		{ParticipantID: 1, Role: domain.RoleLeader, Skills: []string{"Go"}, ExperienceLevel: domain.LevelJunior},
		{ParticipantID: 2, Role: domain.RoleDeveloper, Skills: []string{"SQL"}, ExperienceLevel: domain.LevelJunior},
	}

	fields := fieldValues(TeamEmbed(es, presenter.Team(team)))

	assert.Equal(t, "2/6", fields["Integrantes"])
	assert.Equal(t, "desarrollador ×1, lider ×1", fields["Roles"])
	assert.Equal(t, "Sí", fields["Balanceado"])
	assert.Equal(t, "No", fields["Mentor"])
	assert.Equal(t, "Go, SQL", fields["Habilidades"])
	assert.Equal(t, "0%", fields["Progreso promedio"])
}

func TestCompatibilityEmbed(t *testing.T) {
	v := presenter.View{Locale: "es", T: es.T}
	embed := CompatibilityEmbed(es, "Los Bits", "Agua", []string{"Go"}, presenter.Compatibility(v, 1, 2, 0.767))

	assert.Equal(t, "🧩 Compatibilidad: Los Bits y Agua", embed.Title)
	fields := fieldValues(embed)
	assert.Equal(t, "77%", fields["Puntaje"])
	assert.Equal(t, "Buena", fields["Calidad"])
}

func TestRecommendationsEmbed(t *testing.T) {
	empty := RecommendationsEmbed(es, "Los Bits", nil)
	assert.Equal(t, "No hay retos publicados para este equipo", empty.Description)
	assert.Empty(t, empty.Fields)

	recs := []presenter.RecommendationRecord{
		{Reto: presenter.ChallengeRecord{Titulo: "Agua", Dificultad: domain.DifficultyBasic}, Compatibilidad: 0.9, Calidad: entities.QualityExcellent},
		{Reto: presenter.ChallengeRecord{Titulo: "Robots", Dificultad: domain.DifficultyAdvanced}, Compatibilidad: 0.3, Calidad: entities.QualityLow},
	}
	embed := RecommendationsEmbed(es, "Los Bits", recs)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "1. Agua", embed.Fields[0].Name)
	assert.Equal(t, "90% · Excelente · basico", embed.Fields[0].Value)
	assert.Equal(t, "2. Robots", embed.Fields[1].Name)
}

func TestDomainErrorMessage(t *testing.T) {
	assert.Equal(t, "Equipo no encontrado", DomainErrorMessage(es, domain.ErrTeamNotFound))
	assert.Equal(t, "Error interno del servidor", DomainErrorMessage(es, assert.AnError))
	assert.Equal(t, "Los datos enviados no son válidos: a, b", DomainErrorMessage(es, domain.NewValidationError("a", "b")))
	assert.Empty(t, DomainErrorMessage(es, nil))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "10/09/2025 09:00", FormatDateTime("2025-09-10 09:00:00"))
	assert.Equal(t, "", FormatDateTime(""))
	assert.Equal(t, "pronto", FormatDateTime("pronto"))
}

func TestOptions(t *testing.T) {
	opts := NewOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "equipo", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		{Name: "reto", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(-1)},
		{Name: "nombre", Type: discordgo.ApplicationCommandOptionString, Value: "x"},
	})

	id, ok := opts.ID("equipo")
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)
	_, ok = opts.ID("reto")
	assert.False(t, ok)
	_, ok = opts.ID("nombre")
	assert.False(t, ok)
	_, ok = opts.ID("missing")
	assert.False(t, ok)
}
