package discord

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/application"
	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/infrastructure/i18n"
	"eduhack/internal/infrastructure/memory"
	"eduhack/internal/ports/input"
	pkgdiscord "eduhack/pkg/discord"
)

var today = time.Date(2025, 9, 7, 9, 0, 0, 0, time.UTC)

type fixture struct {
	handler     *Handler
	hackathonID uint
	challengeID uint
	teamID      uint
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := memory.Open()
	hackathonRepo := memory.NewHackathonRepository(db)
	participantRepo := memory.NewParticipantRepository(db)
	challengeRepo := memory.NewChallengeRepository(db)
	teamRepo := memory.NewTeamRepository(db)

	hackathons := application.NewHackathonService(hackathonRepo, teamRepo, challengeRepo)
	challenges := application.NewChallengeService(challengeRepo, hackathonRepo)
	teams := application.NewTeamService(teamRepo, hackathonRepo, participantRepo, challengeRepo)

	h, err := entities.NewHackathon("EduHack", today.Add(72*time.Hour), today.Add(120*time.Hour))
	require.NoError(t, err)
	h.Location = "Virtual"
	require.NoError(t, hackathons.CreateHackathon(ctx, h))

	c := entities.NewRealChallenge("Reto IA", "Desc", domain.DifficultyBasic, "Go, SQL", h.ID, "ONG")
	require.NoError(t, challenges.CreateChallenge(ctx, c))
	_, err = challenges.ChangeChallengeState(ctx, c.ID, domain.ChallengePublished)
	require.NoError(t, err)

	team := entities.NewTeam("Los Bits", h.ID)
	require.NoError(t, teams.CreateTeam(ctx, team))

	handler := NewHandler(hackathons, teams, i18n.NewTranslator("es"))
	handler.now = func() time.Time { return today }
	return fixture{handler: handler, hackathonID: h.ID, challengeID: c.ID, teamID: team.ID}
}

func opts(pairs ...any) pkgdiscord.Options {
	var list []*discordgo.ApplicationCommandInteractionDataOption
	for i := 0; i+1 < len(pairs); i += 2 {
		list = append(list, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  pairs[i].(string),
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(pairs[i+1].(uint)),
		})
	}
	return pkgdiscord.NewOptions(list)
}

func fieldValues(e *discordgo.MessageEmbed) []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Value)
	}
	return out
}

func TestReply(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		locale     string
		command    string
		opts       pkgdiscord.Options
		wantTitle  string
		wantFields []string
		wantDesc   string
	}{
		{
			name:       "hackathon",
			command:    cmdHackathon,
			opts:       opts(optID, f.hackathonID),
			wantTitle:  "🏁 EduHack",
			wantFields: []string{"Por comenzar", "planificacion", "10/09/2025 09:00 → 12/09/2025 09:00", "Virtual"},
		},
		{
			name:       "team",
			command:    cmdTeam,
			opts:       opts(optID, f.teamID),
			wantTitle:  "👥 Los Bits",
			wantFields: []string{"formandose", "0/6", "0%"},
		},
		{
			name:       "compatibility",
			command:    cmdCompatibility,
			opts:       opts(optTeam, f.teamID, optChallenge, f.challengeID),
			wantTitle:  "🧩 Compatibilidad: Los Bits y Reto IA",
			wantFields: []string{"0%", "Go, SQL"},
		},
		{
			name:       "recommend",
			command:    cmdRecommend,
			opts:       opts(optTeam, f.teamID),
			wantTitle:  "⭐ Retos recomendados para Los Bits",
			wantFields: []string{"0% · Baja · basico"},
		},
		{
			name:      "missing hackathon",
			command:   cmdHackathon,
			opts:      opts(optID, uint(99)),
			wantTitle: "❌ No se pudo completar la consulta",
			wantDesc:  "Hackathon no encontrado",
		},
		{
			name:      "missing option",
			command:   cmdCompatibility,
			opts:      opts(optTeam, f.teamID),
			wantTitle: "❌ No se pudo completar la consulta",
			wantDesc:  "Solicitud mal formada",
		},
		{
			name:     "english client",
			locale:   "en-US",
			command:  cmdTeam,
			opts:     opts(optID, uint(42)),
			wantDesc: "Team not found",
		},
		{
			name:      "unknown command",
			command:   "ping",
			wantTitle: "❌ No se pudo completar la consulta",
			wantDesc:  "Solicitud mal formada",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed := f.handler.Reply(ctx, tt.locale, tt.command, tt.opts)
			require.NotNil(t, embed)
			if tt.wantTitle != "" {
				assert.Equal(t, tt.wantTitle, embed.Title)
			}
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, embed.Description)
			}
			values := fieldValues(embed)
			for _, want := range tt.wantFields {
				assert.Contains(t, values, want)
			}
		})
	}
}

func TestCommands(t *testing.T) {
	names := map[string][]string{}
	for _, cmd := range Commands {
		for _, o := range cmd.Options {
			assert.Equal(t, discordgo.ApplicationCommandOptionInteger, o.Type, cmd.Name)
			assert.True(t, o.Required, cmd.Name)
			names[cmd.Name] = append(names[cmd.Name], o.Name)
		}
	}
	assert.Equal(t, map[string][]string{
		cmdHackathon:     {optID},
		cmdTeam:          {optID},
		cmdCompatibility: {optTeam, optChallenge},
		cmdRecommend:     {optTeam},
	}, names)
}

type failingHackathons struct {
	input.HackathonUseCase
	err error
}

func (f failingHackathons) GetHackathon(context.Context, uint) (*entities.Hackathon, error) {
	return nil, f.err
}

func TestPhaseSource(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{name: "gone", err: domain.ErrHackathonNotFound},
		{name: "store failure", err: errors.New("connection reset"), wantLog: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			h := &Handler{hackathons: failingHackathons{err: tt.err}}
			assert.Nil(t, h.phaseSource(context.Background(), 7))
			if tt.wantLog {
				assert.Contains(t, buf.String(), "connection reset")
				assert.Contains(t, buf.String(), "hackathon_id=7")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
