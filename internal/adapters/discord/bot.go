package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	guildID string
	handler *Handler
}

// NewBot creates a Bot. An empty guildID registers the commands globally.
func NewBot(token, guildID string, handler *Handler) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	bot := &Bot{
		session: s,
		guildID: guildID,
		handler: handler,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case cmdHackathon, cmdTeam, cmdCompatibility, cmdRecommend:
		b.handler.HandleCommand(s, i)
	default:
		respondEphemeral(s, i.Interaction, b.handler.i18n.T(b.handler.i18n.Match(string(i.Locale)), "error.bad_request", nil))
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			slog.Warn("⚠️ Command registration failed", "command", cmd.Name, "error", err)
		}
	}

	slog.Info("🤖 Bot en línea, CTRL+C para salir")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
