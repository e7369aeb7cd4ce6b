package discord

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eduhack/internal/ports/output"
	"eduhack/internal/presenter"
)

const (
	embedColor   = 0x5865F2
	successColor = 0x57F287
	errorColor   = 0xED4245
	emptyValue   = "—"
)

// Text renders catalog keys for one locale.
type Text struct {
	T      output.T
	Locale string
}

func (t Text) get(key string, data map[string]any) string {
	if t.T == nil {
		return key
	}
	return t.T.T(t.Locale, key, data)
}

func (t Text) yesNo(b bool) string {
	if b {
		return t.get("discord.yes", nil)
	}
	return t.get("discord.no", nil)
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	if strings.TrimSpace(value) == "" {
		value = emptyValue
	}
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func list(items []string) string {
	return strings.Join(items, ", ")
}

// HackathonEmbed shows the phase, dates and countdown of a hackathon.
func HackathonEmbed(t Text, h presenter.HackathonRecord) *discordgo.MessageEmbed {
	dates := fmt.Sprintf("%s → %s", FormatDateTime(h.FechaInicio), FormatDateTime(h.FechaFin))
	duration := t.get("discord.duration", map[string]any{"Days": h.DuracionDias, "Hours": h.DuracionHoras})
	return &discordgo.MessageEmbed{
		Title:       "🏁 " + h.Nombre,
		Description: h.Descripcion,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			field(t.get("discord.field.phase", nil), t.get("phase."+h.EstadoCalculado, nil), true),
			field(t.get("discord.field.state", nil), h.Estado, true),
			field(t.get("discord.field.dates", nil), dates, false),
			field(t.get("discord.field.duration", nil), duration+" · "+t.get("event_kind."+h.TipoHackathon, nil), true),
			field(t.get("discord.field.location", nil), h.Lugar, true),
			field(t.get("discord.field.modality", nil), h.DescripcionModalidad, false),
			field(t.get("discord.field.remaining", nil), h.TiempoRestante.Mensaje, false),
		},
	}
}

// TeamEmbed shows the composition and progress of a team.
func TeamEmbed(t Text, r presenter.TeamRecord) *discordgo.MessageEmbed {
	roles := make([]string, 0, len(r.DistribucionRoles))
	for _, role := range slices.Sorted(maps.Keys(r.DistribucionRoles)) {
		roles = append(roles, fmt.Sprintf("%s ×%d", role, r.DistribucionRoles[role]))
	}
	return &discordgo.MessageEmbed{
		Title:       "👥 " + r.Nombre,
		Description: r.Descripcion,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			field(t.get("discord.field.state", nil), r.Estado, true),
			field(t.get("discord.field.members", nil), fmt.Sprintf("%d/%d", r.NumeroIntegrantes, r.MaxIntegrantes), true),
			field(t.get("discord.field.level", nil), r.NivelExperienciaPromedio, true),
			field(t.get("discord.field.roles", nil), list(roles), false),
			field(t.get("discord.field.balanced", nil), t.yesNo(r.EstaBalanceado), true),
			field(t.get("discord.field.mentor", nil), t.yesNo(r.TieneMentor), true),
			field(t.get("discord.field.skills", nil), list(r.HabilidadesEquipo), false),
			field(t.get("discord.field.challenges", nil), fmt.Sprintf("%d", r.NumeroRetosActivos), true),
			field(t.get("discord.field.progress", nil), fmt.Sprintf("%.0f%%", r.ProgresoPromedio), true),
		},
	}
}

// CompatibilityEmbed shows how well a team fits one challenge.
func CompatibilityEmbed(t Text, team, challenge string, technologies []string, r presenter.CompatibilityRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🧩 " + t.get("discord.compat.title", map[string]any{"Team": team, "Challenge": challenge}),
		Color: successColor,
		Fields: []*discordgo.MessageEmbedField{
			field(t.get("discord.field.score", nil), FormatScore(r.Compatibilidad), true),
			field(t.get("discord.field.quality", nil), r.Descripcion, true),
			field(t.get("discord.field.technologies", nil), list(technologies), false),
		},
	}
}

// RecommendationsEmbed lists challenges ranked by compatibility, best first.
func RecommendationsEmbed(t Text, team string, recs []presenter.RecommendationRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "⭐ " + t.get("discord.recommend.title", map[string]any{"Team": team}),
		Color: successColor,
	}
	if len(recs) == 0 {
		embed.Description = t.get("discord.recommend.empty", nil)
		return embed
	}
	for i, rec := range recs {
		name := fmt.Sprintf("%d. %s", i+1, rec.Reto.Titulo)
		value := fmt.Sprintf("%s · %s · %s", FormatScore(rec.Compatibilidad), t.get("quality."+rec.Calidad, nil), rec.Reto.Dificultad)
		embed.Fields = append(embed.Fields, field(name, value, false))
	}
	return embed
}

// ErrorEmbed wraps a user-facing error message.
func ErrorEmbed(t Text, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ " + t.get("discord.error.title", nil),
		Description: message,
		Color:       errorColor,
	}
}

// FormatScore renders a 0..1 score as a percentage.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}
