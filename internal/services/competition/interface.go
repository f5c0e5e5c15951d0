package competition

import (
	"context"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bonedash/internal/services/competition Service

// Service defines the competition clock operations
type Service interface {
	// Start opens a window ending days from now and returns its end
	Start(ctx context.Context, days float64) (time.Time, error)

	// IsEnded is true when a window exists and now is past its end
	IsEnded(ctx context.Context) (bool, error)

	// TimeRemaining returns nil when no window is set
	TimeRemaining(ctx context.Context) (*models.TimeRemaining, error)

	// EndNow sets the end of the window to now
	EndNow(ctx context.Context) error

	// Window returns the current window, or nil when none is set
	Window(ctx context.Context) (*models.CompetitionWindow, error)
}
