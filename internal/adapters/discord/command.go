package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/presenter"
	pkgdiscord "eduhack/pkg/discord"
)

const (
	cmdHackathon     = "hackathon"
	cmdTeam          = "equipo"
	cmdCompatibility = "compatibilidad"
	cmdRecommend     = "recomendar"

	optID        = "id"
	optTeam      = "equipo"
	optChallenge = "reto"
)

func idOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    true,
		MinValue:    func() *float64 { v := 1.0; return &v }(),
	}
}

// Commands lists the slash commands registered at startup.
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        cmdHackathon,
		Description: "Estado, fechas y tiempo restante de un hackathon",
		Options:     []*discordgo.ApplicationCommandOption{idOption(optID, "Identificador del hackathon")},
	},
	{
		Name:        cmdTeam,
		Description: "Composición y progreso de un equipo",
		Options:     []*discordgo.ApplicationCommandOption{idOption(optID, "Identificador del equipo")},
	},
	{
		Name:        cmdCompatibility,
		Description: "Compatibilidad entre un equipo y un reto",
		Options: []*discordgo.ApplicationCommandOption{
			idOption(optTeam, "Identificador del equipo"),
			idOption(optChallenge, "Identificador del reto"),
		},
	},
	{
		Name:        cmdRecommend,
		Description: "Retos publicados ordenados por compatibilidad",
		Options:     []*discordgo.ApplicationCommandOption{idOption(optTeam, "Identificador del equipo")},
	},
}

// HandleCommand answers a slash command with an ephemeral embed.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	embed := h.Reply(context.Background(), string(i.Locale), data.Name, pkgdiscord.NewOptions(data.Options))
	if err := respondEmbed(s, i.Interaction, embed); err != nil {
		slog.Error("❌ Discord response failed", "command", data.Name, "error", err)
	}
}

// Reply builds the embed for one command. discordLocale is the user's client locale.
func (h *Handler) Reply(ctx context.Context, discordLocale, command string, opts pkgdiscord.Options) *discordgo.MessageEmbed {
	locale := h.i18n.Match(discordLocale)
	text := pkgdiscord.Text{T: h.i18n, Locale: locale}
	view := presenter.View{Now: h.now(), Locale: locale, T: h.i18n}

	fail := func(err error) *discordgo.MessageEmbed {
		return pkgdiscord.ErrorEmbed(text, pkgdiscord.DomainErrorMessage(text, err))
	}
	badRequest := func() *discordgo.MessageEmbed {
		return pkgdiscord.ErrorEmbed(text, h.i18n.T(locale, "error.bad_request", nil))
	}

	switch command {
	case cmdHackathon:
		id, ok := opts.ID(optID)
		if !ok {
			return badRequest()
		}
		hackathon, err := h.hackathons.GetHackathon(ctx, id)
		if err != nil {
			return fail(err)
		}
		return pkgdiscord.HackathonEmbed(text, presenter.Hackathon(view, hackathon))

	case cmdTeam:
		id, ok := opts.ID(optID)
		if !ok {
			return badRequest()
		}
		team, err := h.teams.GetTeam(ctx, id)
		if err != nil {
			return fail(err)
		}
		return pkgdiscord.TeamEmbed(text, presenter.Team(team))

	case cmdCompatibility:
		teamID, ok := opts.ID(optTeam)
		challengeID, ok2 := opts.ID(optChallenge)
		if !ok || !ok2 {
			return badRequest()
		}
		report, err := h.teams.Compatibility(ctx, teamID, challengeID)
		if err != nil {
			return fail(err)
		}
		return pkgdiscord.CompatibilityEmbed(text, report.Team.Name, report.Challenge.Title,
			report.Challenge.TechnologyList(), presenter.Compatibility(view, teamID, challengeID, report.Score))

	case cmdRecommend:
		teamID, ok := opts.ID(optTeam)
		if !ok {
			return badRequest()
		}
		team, err := h.teams.GetTeam(ctx, teamID)
		if err != nil {
			return fail(err)
		}
		recs, err := h.teams.Recommend(ctx, teamID)
		if err != nil {
			return fail(err)
		}
		return pkgdiscord.RecommendationsEmbed(text, team.Name, presenter.Recommendations(view, recs, h.phaseSource(ctx, team.HackathonID)))
	}
	return badRequest()
}

// phaseSource loads a hackathon for the phase column. It is nil when the
// hackathon is gone or cannot be loaded; the latter is logged.
func (h *Handler) phaseSource(ctx context.Context, id uint) *entities.Hackathon {
	hackathon, err := h.hackathons.GetHackathon(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			slog.WarnContext(ctx, "⚠️ Hackathon lookup failed, phase omitted", "hackathon_id", id, "error", err)
		}
		return nil
	}
	return hackathon
}
