package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/decred/slog"
)

// Sender is the part of discordgo.Session the announcer uses
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AnnouncerConfig holds configuration for the announcer
type AnnouncerConfig struct {
	Sender    Sender
	ChannelID string

	Leaderboard leaderboard.Service
	Competition competition.Service

	// Messages adds flavor text to leader announcements; optional
	Messages messaging.Service

	// PollInterval for the competition and leaderboard, defaults to a minute
	PollInterval time.Duration

	// Logger is optional
	Logger slog.Logger
}

// Announcer posts to a channel when the leader changes, when players enter
// the qualifying ranks and when the competition closes
type Announcer struct {
	sender      Sender
	channelID   string
	leaderboard leaderboard.Service
	competition competition.Service
	messages    messaging.Service
	interval    time.Duration
	log         slog.Logger

	mu       sync.Mutex
	previous *models.Leaderboard
	seen     bool
	ended    *bool
}

// NewAnnouncer creates an announcer
func NewAnnouncer(cfg *AnnouncerConfig) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.Leaderboard == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.Competition == nil {
		return nil, errors.New("competition service cannot be nil")
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Minute
	}

	return &Announcer{
		sender:      cfg.Sender,
		channelID:   cfg.ChannelID,
		leaderboard: cfg.Leaderboard,
		competition: cfg.Competition,
		messages:    cfg.Messages,
		interval:    interval,
		log:         logging.OrDisabled(cfg.Logger),
	}, nil
}

// Run subscribes to snapshot changes and polls until ctx is done
func (a *Announcer) Run(ctx context.Context) error {
	unsubscribe := a.leaderboard.Subscribe(a.HandleSnapshot)
	defer unsubscribe()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		a.poll(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *Announcer) poll(ctx context.Context) {
	if _, err := a.leaderboard.FetchTopN(ctx, 0); err != nil {
		a.log.Warnf("Leaderboard poll failed: %v", err)
	}
	if err := a.CheckCompetition(ctx); err != nil {
		a.log.Warnf("Competition poll failed: %v", err)
	}
}

// HandleSnapshot compares the view with the previous one. The first view
// only sets the baseline.
func (a *Announcer) HandleSnapshot(board *models.Leaderboard) {
	a.mu.Lock()
	previous, seen := a.previous, a.seen
	a.previous, a.seen = board, true
	a.mu.Unlock()

	if !seen || board == nil {
		return
	}

	leader := board.Leader()
	oldLeader := previous.Leader()
	if leader != nil && (oldLeader == nil || oldLeader.PlayerID != leader.PlayerID) {
		a.send(renderNewLeader(leader, oldLeader, a.leaderQuip(leader, oldLeader)))
	}

	var entered []models.RankedEntry
	for _, r := range board.Ranked() {
		if leader != nil && r.Entry.PlayerID == leader.PlayerID {
			continue
		}
		if e, _ := previous.Find(r.Entry.PlayerID); e == nil {
			entered = append(entered, r)
		}
	}
	if len(entered) > 0 {
		a.send(renderQualified(entered, a.leaderboard.QualifyingRanks()))
	}
}

// leaderQuip is empty when no messaging service is configured
func (a *Announcer) leaderQuip(leader, previous *models.LeaderboardEntry) string {
	if a.messages == nil {
		return ""
	}

	input := &messaging.GetNewLeaderMessageInput{
		LeaderName: leader.Username,
		Score:      leader.Score,
	}
	if previous != nil {
		input.PreviousName = previous.Username
	}

	out, err := a.messages.GetNewLeaderMessage(context.Background(), input)
	if err != nil {
		a.log.Debugf("No leader message: %v", err)
		return ""
	}
	return out.Message
}

// CheckCompetition posts the final standings once the window closes. The
// state seen on the first check is the baseline.
func (a *Announcer) CheckCompetition(ctx context.Context) error {
	ended, err := a.competition.IsEnded(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	wasEnded := a.ended
	a.ended = &ended
	a.mu.Unlock()

	if wasEnded == nil || *wasEnded || !ended {
		return nil
	}

	a.log.Infof("Competition closed, posting final standings")
	a.send(renderCompetitionEnded(a.leaderboard.Snapshot(), a.leaderboard.QualifyingRanks()))
	return nil
}

func (a *Announcer) send(embed *discordgo.MessageEmbed) {
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		a.log.Errorf("Failed to post %q: %v", embed.Title, fmt.Errorf("send: %w", err))
	}
}
