package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardEntryWallet(t *testing.T) {
	var nilEntry *LeaderboardEntry
	assert.False(t, nilEntry.HasWallet())

	blank := "  "
	assert.False(t, (&LeaderboardEntry{WalletAddress: &blank}).HasWallet())

	wallet := "0x66606C24b4A24b5Fd06BbCA9B85DFcEdaF6A65C2"
	e := &LeaderboardEntry{WalletAddress: &wallet}
	assert.True(t, e.HasWallet())
	assert.Equal(t, wallet, e.Wallet())
}

func TestLeaderboardFind(t *testing.T) {
	lb := &Leaderboard{Entries: []*LeaderboardEntry{
		{PlayerID: "a", Score: 10},
		{PlayerID: "b", Score: 5},
	}}

	e, rank := lb.Find("b")
	assert.Equal(t, 2, rank)
	assert.Equal(t, 5, e.Score)

	e, rank = lb.Find("missing")
	assert.Nil(t, e)
	assert.Zero(t, rank)

	assert.Equal(t, "a", lb.Leader().PlayerID)
	assert.Equal(t, 1, lb.Ranked()[0].Rank)
}

func TestCompetitionWindowRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := &CompetitionWindow{EndTimestamp: now.Add(24*time.Hour - time.Minute)}

	left := w.Remaining(now)
	assert.Equal(t, 0, left.Days)
	assert.Equal(t, 23, left.Hours)
	assert.Equal(t, 59, left.Minutes)
	assert.False(t, w.Ended(now))

	later := now.Add(25 * time.Hour)
	assert.True(t, w.Ended(later))
	assert.Equal(t, TimeRemaining{}, w.Remaining(later))

	var none *CompetitionWindow
	assert.False(t, none.Ended(now))
}

func TestNormalizeUsername(t *testing.T) {
	name, err := NormalizeUsername("  bones  ")
	assert.NoError(t, err)
	assert.Equal(t, "bones", name)

	_, err = NormalizeUsername("   ")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = NormalizeUsername("abcdefghijklmnopqrstu")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	// Twenty multi-byte characters still fit
	name, err = NormalizeUsername("☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠☠")
	assert.NoError(t, err)
	assert.Equal(t, 20, len([]rune(name)))
}
