package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/decred/slog"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	announcer  *Announcer
	config     *Config
	log        slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Channel that receives announcements
	ChannelID string

	Leaderboard leaderboard.Service
	Competition competition.Service

	// Messages is optional flavor text for announcements
	Messages messaging.Service

	// PollInterval for announcements
	PollInterval time.Duration

	// Logger is optional
	Logger slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Leaderboard == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.Competition == nil {
		return nil, errors.New("competition service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	log := logging.OrDisabled(cfg.Logger)
	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        log,
	}

	if cfg.ChannelID != "" {
		bot.announcer, err = NewAnnouncer(&AnnouncerConfig{
			Sender:       session,
			ChannelID:    cfg.ChannelID,
			Leaderboard:  cfg.Leaderboard,
			Competition:  cfg.Competition,
			Messages:     cfg.Messages,
			PollInterval: cfg.PollInterval,
			Logger:       log,
		})
		if err != nil {
			return nil, err
		}
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Run connects, serves commands and announcements until ctx is done
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer func() {
		if err := b.Stop(); err != nil {
			b.log.Errorf("Failed to stop Discord bot: %v", err)
		}
	}()

	if b.announcer == nil {
		b.log.Infof("No announcement channel configured")
		<-ctx.Done()
		return nil
	}
	return b.announcer.Run(ctx)
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewBoneDashCommand(b.config.Leaderboard, b.config.Competition, b.log)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register bonedash command: %w", err)
	}

	b.log.Infof("Discord bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warnf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			b.log.Debugf("Deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Without a guild ID the
// command is registered globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Infof("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction routes slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.log.Errorf("Error handling command %s: %v", name, err)
		}
	}
}
