package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bonedash/internal/services/messaging Service

// Service picks flavor text for game events
type Service interface {
	// GetGameOverMessage returns a line for the game over screen
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetNewLeaderMessage returns a line for a change at the top of the board
	GetNewLeaderMessage(ctx context.Context, input *GetNewLeaderMessageInput) (*GetNewLeaderMessageOutput, error)
}
