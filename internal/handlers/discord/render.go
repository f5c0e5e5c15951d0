package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorLeaderboard = 0xf5f5dc // bone
	colorLeader      = 0xffd700
	colorQualify     = 0x00ff00
	colorCompetition = 0x8a2be2
	colorError       = 0xff0000

	// maxEmbedRows keeps leaderboard embeds under Discord's description limit
	maxEmbedRows = 28
)

// shortWallet renders 0x1234...abcd
func shortWallet(w string) string {
	if len(w) < 10 {
		return w
	}
	return w[:6] + "..." + w[len(w)-4:]
}

// renderLeaderboard builds the standings embed for the top n entries
func renderLeaderboard(board *models.Leaderboard, n int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "💀 Bone Dash Leaderboard",
		Color: colorLeaderboard,
	}

	if board == nil || len(board.Entries) == 0 {
		embed.Description = "No scores yet. Be the first to dash!"
		return embed
	}

	if n <= 0 || n > maxEmbedRows {
		n = maxEmbedRows
	}

	var sb strings.Builder
	for _, r := range board.Ranked() {
		if r.Rank > n {
			break
		}

		medal := ""
		switch r.Rank {
		case 1:
			medal = "🥇 "
		case 2:
			medal = "🥈 "
		case 3:
			medal = "🥉 "
		}

		fmt.Fprintf(&sb, "%s**#%d** %s: %d", medal, r.Rank, r.Entry.Username, r.Entry.Score)
		if r.Entry.HasWallet() {
			fmt.Fprintf(&sb, " `%s`", shortWallet(r.Entry.Wallet()))
		}
		sb.WriteString("\n")
	}
	embed.Description = sb.String()

	if !board.FetchedAt.IsZero() {
		embed.Timestamp = board.FetchedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return embed
}

// renderNewLeader announces a change at the top
func renderNewLeader(entry *models.LeaderboardEntry, previous *models.LeaderboardEntry, quip string) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("**%s** takes first place with **%d**!", entry.Username, entry.Score)
	if previous != nil && previous.PlayerID != entry.PlayerID {
		desc += fmt.Sprintf("\n%s drops from the top spot (%d).", previous.Username, previous.Score)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "👑 New Bone Dash leader",
		Description: desc,
		Color:       colorLeader,
	}
	if quip != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: quip}
	}
	return embed
}

// renderQualified announces players who entered the qualifying ranks
func renderQualified(ranked []models.RankedEntry, ranks int) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, r := range ranked {
		fmt.Fprintf(&sb, "**%s** enters at #%d with %d\n", r.Entry.Username, r.Rank, r.Entry.Score)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🦴 New in the top %d", ranks),
		Description: sb.String(),
		Color:       colorQualify,
	}
}

// renderCompetition shows the countdown, or the closed state
func renderCompetition(remaining *models.TimeRemaining) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "⏳ Bone Dash competition",
		Color: colorCompetition,
	}

	switch {
	case remaining == nil:
		embed.Description = "No competition is running."
	case remaining.Total <= 0:
		embed.Description = "The competition has ended. Final standings are locked in!"
	default:
		embed.Description = fmt.Sprintf("Ends in **%dd %dh %dm**", remaining.Days, remaining.Hours, remaining.Minutes)
	}
	return embed
}

// renderCompetitionEnded is posted once when the window closes
func renderCompetitionEnded(board *models.Leaderboard, ranks int) *discordgo.MessageEmbed {
	embed := renderLeaderboard(board, ranks)
	embed.Title = "🏁 Competition over: final standings"
	embed.Color = colorCompetition
	return embed
}
