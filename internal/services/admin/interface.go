package admin

import (
	"context"
	"io"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bonedash/internal/services/admin Service

// Service gates competition control and the wallet export behind the allow-list
type Service interface {
	// IsAdmin is true when the player's own entry carries an allow-listed wallet
	IsAdmin(ctx context.Context, playerID string) (bool, error)

	StartCompetition(ctx context.Context, playerID string, days float64) (time.Time, error)

	EndCompetition(ctx context.Context, playerID string) error

	// ExportQualifyingWallets lists every entry with a wallet on file
	ExportQualifyingWallets(ctx context.Context, playerID string) (*models.WalletExport, error)

	// WriteExport writes the export as indented JSON
	WriteExport(ctx context.Context, playerID string, w io.Writer) error

	// ExportFileName names the export file for the given day
	ExportFileName(now time.Time) string
}
