package leaderboard

import (
	"context"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/decred/slog"
)

// DefaultPollInterval is how often Poll refreshes the qualifying view
const DefaultPollInterval = 10 * time.Second

// Poll refreshes the qualifying view right away and then on every interval,
// so listeners see entries written by other players. It returns nil when ctx
// is done; fetch errors are logged and the last snapshot is kept.
func Poll(ctx context.Context, svc Service, interval time.Duration, log slog.Logger) error {
	log = logging.OrDisabled(log)
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := svc.FetchTopN(ctx, 0); err != nil && ctx.Err() == nil {
			log.Warnf("Leaderboard poll failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
