package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/bonedash/internal/rng"
)

// service implements the Service interface
type service struct {
	random rng.Source
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	random := cfg.Random
	if random == nil {
		random = rng.New(nil)
	}

	return &service{
		random: random,
	}, nil
}

// GetGameOverMessage returns a line for the game over screen
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Qualified:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("#%d! The skeleton crew salutes you, %s.", input.Rank, input.PlayerName),
			"You made the cut! Drop a wallet before the bones settle.",
			fmt.Sprintf("Top %d material. The moon is jealous.", input.Rank),
			"Qualified! Somewhere a femur is weeping with pride.",
		}
	case input.NewBest:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("New personal best: %d. Your bones have never been so dashing.", input.Score),
			"A new record! Frame it. Or at least screenshot it.",
			fmt.Sprintf("%d! You outran your own ghost.", input.Score),
		}
	case input.Score < shortRunScore:
		tone = ToneSarcastic
		messages = []string{
			"That bone came out of nowhere. Right?",
			"Blink and you missed it. You did miss it.",
			fmt.Sprintf("%d points. The obstacles send their regards.", input.Score),
			"Gravity: 1, you: 0.",
			"Have you tried jumping? Space bar. Big one.",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"So close to glory. One more run?",
			"Solid dash. The leaderboard is watching.",
			"Double jump earlier, thank us later.",
			fmt.Sprintf("%d is respectable. Respectable is not first.", input.Score),
		}
	}

	return &GetGameOverMessageOutput{
		Message: messages[s.random.Intn(len(messages))],
		Tone:    tone,
	}, nil
}

// GetNewLeaderMessage returns a line for a change at the top of the board
func (s *service) GetNewLeaderMessage(ctx context.Context, input *GetNewLeaderMessageInput) (*GetNewLeaderMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.PreviousName == "" {
		messages = []string{
			fmt.Sprintf("%s plants the first flag at %d.", input.LeaderName, input.Score),
			fmt.Sprintf("The board is open and %s got there first.", input.LeaderName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s has been dethroned. Long live %s!", input.PreviousName, input.LeaderName),
			fmt.Sprintf("%s just dusted %s. Literally, there were bones.", input.LeaderName, input.PreviousName),
			fmt.Sprintf("Sorry %s, the crown belongs to %s now.", input.PreviousName, input.LeaderName),
			fmt.Sprintf("%s leaps over %s and into first.", input.LeaderName, input.PreviousName),
		}
	}

	return &GetNewLeaderMessageOutput{
		Message: messages[s.random.Intn(len(messages))],
		Tone:    ToneCelebration,
	}, nil
}
