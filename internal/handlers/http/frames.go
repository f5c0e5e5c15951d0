package http

import (
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
)

// Frame types pushed over the feed
const (
	frameLeaderboard = "leaderboard"
)

type rankedRow struct {
	Rank      int       `json:"rank" msgpack:"rank"`
	PlayerID  string    `json:"playerId" msgpack:"playerId"`
	Username  string    `json:"username" msgpack:"username"`
	Score     int       `json:"score" msgpack:"score"`
	Timestamp time.Time `json:"timestamp" msgpack:"timestamp"`
	HasWallet bool      `json:"hasWallet" msgpack:"hasWallet"`
}

type leaderboardFrame struct {
	Type      string      `json:"type" msgpack:"type"`
	FetchedAt time.Time   `json:"fetchedAt" msgpack:"fetchedAt"`
	Entries   []rankedRow `json:"entries" msgpack:"entries"`
}

func newLeaderboardFrame(board *models.Leaderboard) *leaderboardFrame {
	frame := &leaderboardFrame{
		Type:    frameLeaderboard,
		Entries: make([]rankedRow, 0),
	}
	if board == nil {
		return frame
	}

	frame.FetchedAt = board.FetchedAt
	for _, r := range board.Ranked() {
		frame.Entries = append(frame.Entries, rankedRow{
			Rank:      r.Rank,
			PlayerID:  r.Entry.PlayerID,
			Username:  r.Entry.Username,
			Score:     r.Entry.Score,
			Timestamp: r.Entry.Timestamp,
			HasWallet: r.Entry.HasWallet(),
		})
	}
	return frame
}

type submitScoreRequest struct {
	PlayerID     string  `json:"playerId"`
	Username     string  `json:"username"`
	Score        int     `json:"score"`
	GameDuration float64 `json:"gameDuration"`
	SessionID    string  `json:"sessionId"`
}

type submitScoreResponse struct {
	Updated   bool `json:"updated"`
	Valid     bool `json:"valid"`
	BestScore int  `json:"bestScore"`
	Rank      int  `json:"rank"`
	Eligible  bool `json:"eligible"`
}

type submitWalletRequest struct {
	PlayerID string `json:"playerId"`
	Wallet   string `json:"wallet"`
}

type submitWalletResponse struct {
	PlayerID string `json:"playerId"`
	Rank     int    `json:"rank"`
}

type remainingBody struct {
	Days    int   `json:"days"`
	Hours   int   `json:"hours"`
	Minutes int   `json:"minutes"`
	TotalMs int64 `json:"totalMs"`
}

type competitionResponse struct {
	Active       bool           `json:"active"`
	Ended        bool           `json:"ended"`
	EndTimestamp *time.Time     `json:"endTimestamp,omitempty"`
	Remaining    *remainingBody `json:"remaining,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
