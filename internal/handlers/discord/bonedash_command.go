package discord

import (
	"context"
	"time"

	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/bwmarrin/discordgo"
	"github.com/decred/slog"
)

const commandTimeout = 5 * time.Second

// BoneDashCommand handles the /bonedash command
type BoneDashCommand struct {
	BaseCommand
	leaderboard leaderboard.Service
	competition competition.Service
	log         slog.Logger
}

// NewBoneDashCommand creates the /bonedash command handler
func NewBoneDashCommand(lb leaderboard.Service, comp competition.Service, log slog.Logger) *BoneDashCommand {
	minTop := 1.0
	return &BoneDashCommand{
		BaseCommand: BaseCommand{
			Name:        "bonedash",
			Description: "Bone Dash standings and competition",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the top scores",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "top",
							Description: "How many ranks to show",
							MinValue:    &minTop,
							MaxValue:    maxEmbedRows,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "competition",
					Description: "Show the time left in the competition",
				},
			},
		},
		leaderboard: lb,
		competition: comp,
		log:         log,
	}
}

// Handle processes a Discord interaction for the bonedash command
func (c *BoneDashCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sub := data.Options[0]
	embed, err := c.embedFor(ctx, sub.Name, intOption(sub.Options, "top"))
	if err != nil {
		c.log.Errorf("Command %s %s failed: %v", c.Name, sub.Name, err)
		return RespondWithError(s, i, "Bone Dash is unavailable right now, try again shortly.")
	}
	if embed == nil {
		return RespondWithError(s, i, "Unknown subcommand: "+sub.Name)
	}
	return RespondWithEmbeds(s, i, embed)
}

// embedFor builds the response for a subcommand; nil for unknown ones
func (c *BoneDashCommand) embedFor(ctx context.Context, sub string, top int) (*discordgo.MessageEmbed, error) {
	switch sub {
	case "leaderboard":
		board, err := c.leaderboard.FetchTopN(ctx, 0)
		if err != nil {
			return nil, err
		}
		if top <= 0 {
			top = c.leaderboard.QualifyingRanks()
		}
		return renderLeaderboard(board, top), nil
	case "competition":
		remaining, err := c.competition.TimeRemaining(ctx)
		if err != nil {
			return nil, err
		}
		return renderCompetition(remaining), nil
	default:
		return nil, nil
	}
}

func intOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionInteger {
			return int(o.IntValue())
		}
	}
	return 0
}
