package messaging

import (
	"github.com/KirkDiggler/bonedash/internal/rng"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is used for short runs
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is used for near misses
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is used for new bests and qualifying runs
	ToneCelebration MessageTone = "celebration"
)

// shortRunScore is the score below which a run gets roasted
const shortRunScore = 120

// Config holds configuration for the messaging service
type Config struct {
	// Random defaults to a time seeded source
	Random rng.Source
}

// GetGameOverMessageInput describes the run that just ended
type GetGameOverMessageInput struct {
	PlayerName string
	Score      int

	// NewBest is true when the run beat the player's stored score
	NewBest bool

	// Rank is the player's place in the qualifying view, 0 when outside it
	Rank int

	// Qualified is true when the player is being prompted for a wallet
	Qualified bool
}

// GetGameOverMessageOutput contains the chosen line
type GetGameOverMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetNewLeaderMessageInput describes a change of leader
type GetNewLeaderMessageInput struct {
	LeaderName string
	Score      int

	// PreviousName is empty when the board had no leader
	PreviousName string
}

// GetNewLeaderMessageOutput contains the chosen line
type GetNewLeaderMessageOutput struct {
	Message string
	Tone    MessageTone
}
