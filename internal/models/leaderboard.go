package models

import (
	"strings"
	"time"
)

// LeaderboardEntry is one player's best run in the remote ranked store
type LeaderboardEntry struct {
	// PlayerID is the unique key of the entry
	PlayerID string `json:"playerId"`

	// Username is the display name at the time of the best run
	Username string `json:"username"`

	// Score is the best score the player has reached
	Score int `json:"score"`

	// Timestamp is when the best score was recorded
	Timestamp time.Time `json:"timestamp"`

	// GameDuration is the wall-clock length of the best run in seconds
	GameDuration float64 `json:"gameDuration"`

	// SessionID identifies the run that produced the score
	SessionID string `json:"sessionId,omitempty"`

	// WalletAddress is nil until the player submits one
	WalletAddress *string `json:"walletAddress,omitempty"`
}

// HasWallet reports whether a wallet address is on file
func (e *LeaderboardEntry) HasWallet() bool {
	return e != nil && e.WalletAddress != nil && strings.TrimSpace(*e.WalletAddress) != ""
}

// Wallet returns the wallet address or an empty string
func (e *LeaderboardEntry) Wallet() string {
	if !e.HasWallet() {
		return ""
	}
	return *e.WalletAddress
}

// RankedEntry pairs an entry with its 1-based position in a ranked view
type RankedEntry struct {
	Rank  int
	Entry *LeaderboardEntry
}

// Leaderboard is a ranked view fetched from the store
type Leaderboard struct {
	// Entries are ordered by score descending
	Entries []*LeaderboardEntry

	// FetchedAt is when the view was read
	FetchedAt time.Time
}

// Find returns the entry and 1-based rank for a player, or nil and 0
func (l *Leaderboard) Find(playerID string) (*LeaderboardEntry, int) {
	if l == nil {
		return nil, 0
	}
	for i, e := range l.Entries {
		if e.PlayerID == playerID {
			return e, i + 1
		}
	}
	return nil, 0
}

// Leader returns the top entry or nil
func (l *Leaderboard) Leader() *LeaderboardEntry {
	if l == nil || len(l.Entries) == 0 {
		return nil
	}
	return l.Entries[0]
}

// Ranked returns the view as rank/entry pairs
func (l *Leaderboard) Ranked() []RankedEntry {
	if l == nil {
		return nil
	}
	out := make([]RankedEntry, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = RankedEntry{Rank: i + 1, Entry: e}
	}
	return out
}
