package discord

import "github.com/bwmarrin/discordgo"

// Options indexes slash command options by name.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

func NewOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	m := make(Options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// ID returns a positive integer option as an id.
func (o Options) ID(name string) (uint, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	v := opt.IntValue()
	if v <= 0 {
		return 0, false
	}
	return uint(v), true
}
