package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/decred/slog"
)

// service implements the Service interface
type service struct {
	leaderboard leaderboard.Service
	competition competition.Service
	clock       clock.Clock
	allowList   map[string]bool
	log         slog.Logger
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}

	if cfg.Competition == nil {
		return nil, ErrNilCompetition
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	allowList := make(map[string]bool, len(cfg.AllowList))
	for _, w := range cfg.AllowList {
		if w = strings.TrimSpace(w); w != "" {
			allowList[strings.ToLower(w)] = true
		}
	}

	return &service{
		leaderboard: cfg.Leaderboard,
		competition: cfg.Competition,
		clock:       cfg.Clock,
		allowList:   allowList,
		log:         logging.OrDisabled(cfg.Logger),
	}, nil
}

// IsAdmin looks up the player's own entry. No entry or no wallet means false.
func (s *service) IsAdmin(ctx context.Context, playerID string) (bool, error) {
	if playerID == "" {
		return false, nil
	}

	entry, err := s.leaderboard.GetEntry(ctx, playerID)
	if err != nil {
		if errors.Is(err, leaderboard.ErrEntryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check admin status: %w", err)
	}

	if !entry.HasWallet() {
		return false, nil
	}
	return s.allowList[strings.ToLower(entry.Wallet())], nil
}

func (s *service) StartCompetition(ctx context.Context, playerID string, days float64) (time.Time, error) {
	if err := s.requireAdmin(ctx, playerID); err != nil {
		return time.Time{}, err
	}

	end, err := s.competition.Start(ctx, days)
	if err != nil {
		return time.Time{}, err
	}

	s.log.Infof("Admin %s started a %.2f day competition", playerID, days)
	return end, nil
}

func (s *service) EndCompetition(ctx context.Context, playerID string) error {
	if err := s.requireAdmin(ctx, playerID); err != nil {
		return err
	}

	if err := s.competition.EndNow(ctx); err != nil {
		return err
	}

	s.log.Infof("Admin %s ended the competition", playerID)
	return nil
}

// ExportQualifyingWallets keeps the wallet holders among the qualifying ranks
func (s *service) ExportQualifyingWallets(ctx context.Context, playerID string) (*models.WalletExport, error) {
	if err := s.requireAdmin(ctx, playerID); err != nil {
		return nil, err
	}

	entries, err := s.leaderboard.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	limit := s.leaderboard.QualifyingRanks()
	rows := make([]models.WalletExportRow, 0)
	for i, e := range entries {
		if i >= limit {
			break
		}
		if !e.HasWallet() {
			continue
		}
		rows = append(rows, models.WalletExportRow{
			Rank:      i + 1,
			Username:  e.Username,
			Wallet:    e.Wallet(),
			Score:     e.Score,
			Timestamp: e.Timestamp,
		})
	}

	s.log.Infof("Admin %s exported %d wallets", playerID, len(rows))
	return &models.WalletExport{
		GeneratedAt: s.clock.Now(),
		Rows:        rows,
	}, nil
}

func (s *service) WriteExport(ctx context.Context, playerID string, w io.Writer) error {
	export, err := s.ExportQualifyingWallets(ctx, playerID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFileName is bone-dash-top<N>-wallets-<YYYY-MM-DD>.json in UTC
func (s *service) ExportFileName(now time.Time) string {
	return fmt.Sprintf("bone-dash-top%d-wallets-%s.json", s.leaderboard.QualifyingRanks(), now.UTC().Format("2006-01-02"))
}

func (s *service) requireAdmin(ctx context.Context, playerID string) error {
	ok, err := s.IsAdmin(ctx, playerID)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Warnf("Refused admin action for %s", playerID)
		return ErrNotAdmin
	}
	return nil
}
