package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderLeaderboardEmpty(t *testing.T) {
	embed := renderLeaderboard(nil, 10)
	assert.Contains(t, embed.Description, "No scores yet")
}

func TestRenderLeaderboardRows(t *testing.T) {
	w := "0x66606C24b4A24b5Fd06BbCA9B85DFcEdaF6A65C2"
	b := &models.Leaderboard{
		Entries: []*models.LeaderboardEntry{
			{PlayerID: "a", Username: "alpha", Score: 30, WalletAddress: &w},
			{PlayerID: "b", Username: "beta", Score: 20},
			{PlayerID: "c", Username: "gamma", Score: 10},
		},
		FetchedAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
	}

	embed := renderLeaderboard(b, 2)
	lines := strings.Split(strings.TrimSpace(embed.Description), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "🥇 **#1** alpha: 30 `0x6660...65C2`", lines[0])
	assert.Equal(t, "🥈 **#2** beta: 20", lines[1])
	assert.Equal(t, "2025-04-19T12:00:00Z", embed.Timestamp)
}

func TestRenderCompetition(t *testing.T) {
	assert.Contains(t, renderCompetition(nil).Description, "No competition")
	assert.Contains(t, renderCompetition(&models.TimeRemaining{}).Description, "ended")
	assert.Contains(t, renderCompetition(&models.TimeRemaining{
		Days:    1,
		Hours:   2,
		Minutes: 3,
		Total:   26*time.Hour + 3*time.Minute,
	}).Description, "1d 2h 3m")
}

func TestShortWallet(t *testing.T) {
	assert.Equal(t, "0x1234...abcd", shortWallet("0x1234567890abcd"))
	assert.Equal(t, "short", shortWallet("short"))
}
