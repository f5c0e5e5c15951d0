package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	leaderboardRepo "github.com/KirkDiggler/bonedash/internal/repositories/leaderboard"
	"github.com/decred/slog"
)

var walletPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidWallet reports whether s is a syntactically valid Ethereum address
func ValidWallet(s string) bool {
	return walletPattern.MatchString(s)
}

// service implements the Service interface
type service struct {
	repo            leaderboardRepo.Repository
	clock           clock.Clock
	log             slog.Logger
	ranks           int
	unitsPerSecond  float64
	allowUnverified bool

	mu        sync.RWMutex
	snapshot  *models.Leaderboard
	listeners map[int]Listener
	nextID    int
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	ranks := cfg.QualifyingRanks
	if ranks <= 0 {
		ranks = DefaultQualifyingRanks
	}

	units := cfg.ScoreUnitsPerSecond
	if units <= 0 {
		units = 1
	}

	return &service{
		repo:            cfg.Repository,
		clock:           cfg.Clock,
		log:             logging.OrDisabled(cfg.Logger),
		ranks:           ranks,
		unitsPerSecond:  units,
		allowUnverified: cfg.AllowUnverifiedEligibility,
		listeners:       make(map[int]Listener),
	}, nil
}

// QualifyingRanks is the size of the qualifying view
func (s *service) QualifyingRanks() int {
	return s.ranks
}

// ValidateScore checks the score against the run length. The duration must
// be between one second and ten minutes.
func (s *service) ValidateScore(score int, durationSeconds float64) bool {
	if math.IsNaN(durationSeconds) || durationSeconds < MinGameSeconds || durationSeconds > MaxGameSeconds {
		return false
	}

	expected := math.Floor(durationSeconds * s.unitsPerSecond)
	return math.Abs(float64(score)-expected) <= ScoreTolerance*s.unitsPerSecond
}

// SubmitScore records a finished run. A lower or equal score leaves the stored entry alone.
func (s *service) SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, ErrInvalidPlayerID
	}

	if input.Score < 0 {
		return nil, ErrInvalidScore
	}

	username, err := models.NormalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	valid := s.ValidateScore(input.Score, input.GameDuration)
	if !valid {
		s.log.Warnf("Suspicious score from %s: %d after %.2fs", input.PlayerID, input.Score, input.GameDuration)
	}

	now := s.clock.Now()
	updated, err := s.repo.UpdateEntry(ctx, &leaderboardRepo.UpdateEntryInput{
		PlayerID: input.PlayerID,
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			if existing != nil && existing.Score >= input.Score {
				return nil, nil
			}

			entry := &models.LeaderboardEntry{
				PlayerID:     input.PlayerID,
				Username:     username,
				Score:        input.Score,
				Timestamp:    now,
				GameDuration: input.GameDuration,
				SessionID:    input.SessionID,
			}
			if existing != nil {
				entry.WalletAddress = existing.WalletAddress
			}
			return entry, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit score: %w", err)
	}

	if updated.Changed {
		s.log.Infof("New best for %s (%s): %d", username, input.PlayerID, input.Score)
	} else {
		s.log.Debugf("Score %d for %s does not beat stored %d", input.Score, input.PlayerID, updated.Entry.Score)
	}

	board := s.refresh(ctx)

	return &SubmitScoreOutput{
		Entry:       updated.Entry,
		Updated:     updated.Changed,
		Valid:       valid,
		Leaderboard: board,
		Eligibility: s.eligibility(board, &CheckEligibilityInput{
			PlayerID: input.PlayerID,
			Score:    input.Score,
			Valid:    valid,
			Entry:    updated.Entry,
		}),
	}, nil
}

// SubmitWallet attaches a wallet to an existing entry. Resubmitting overwrites.
func (s *service) SubmitWallet(ctx context.Context, input *SubmitWalletInput) (*SubmitWalletOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, ErrInvalidPlayerID
	}

	wallet := strings.TrimSpace(input.Wallet)
	if !ValidWallet(wallet) {
		return nil, ErrInvalidWallet
	}

	updated, err := s.repo.UpdateEntry(ctx, &leaderboardRepo.UpdateEntryInput{
		PlayerID: input.PlayerID,
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			if existing == nil {
				return nil, ErrEntryNotFound
			}
			entry := *existing
			entry.WalletAddress = &wallet
			return &entry, nil
		},
	})
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to submit wallet: %w", err)
	}

	s.log.Infof("Wallet on file for %s", input.PlayerID)

	return &SubmitWalletOutput{
		Entry:       updated.Entry,
		Leaderboard: s.refresh(ctx),
	}, nil
}

// FetchTopN reads the top n entries. Fetching the qualifying ranks also
// replaces the snapshot and notifies listeners when it changed.
func (s *service) FetchTopN(ctx context.Context, n int) (*models.Leaderboard, error) {
	if n <= 0 {
		n = s.ranks
	}

	out, err := s.repo.GetTopEntries(ctx, &leaderboardRepo.GetTopEntriesInput{
		Limit: n,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	board := &models.Leaderboard{
		Entries:   out.Entries,
		FetchedAt: s.clock.Now(),
	}

	if n == s.ranks {
		s.publish(board)
	}
	return board, nil
}

// GetEntry returns one player's entry
func (s *service) GetEntry(ctx context.Context, playerID string) (*models.LeaderboardEntry, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, ErrInvalidPlayerID
	}

	entry, err := s.repo.GetEntry(ctx, &leaderboardRepo.GetEntryInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, leaderboardRepo.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// GetAllEntries returns every entry in rank order
func (s *service) GetAllEntries(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	out, err := s.repo.GetAllEntries(ctx, &leaderboardRepo.GetAllEntriesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return out.Entries, nil
}

// Snapshot returns the last fetched qualifying view
func (s *service) Snapshot() *models.Leaderboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers fn for snapshot changes
func (s *service) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// CheckWalletEligibility evaluates the prompt rule against the snapshot
func (s *service) CheckWalletEligibility(input *CheckEligibilityInput) *CheckEligibilityOutput {
	return s.eligibility(s.Snapshot(), input)
}

// eligibility: score above zero, validated (unless allowed), no wallet on
// file, and ranked within the qualifying view
func (s *service) eligibility(board *models.Leaderboard, input *CheckEligibilityInput) *CheckEligibilityOutput {
	if input == nil || input.Score <= 0 {
		return &CheckEligibilityOutput{Reason: "no score"}
	}

	if !input.Valid && !s.allowUnverified {
		return &CheckEligibilityOutput{Reason: "score failed validation"}
	}

	if input.Entry.HasWallet() {
		return &CheckEligibilityOutput{Reason: "wallet already on file"}
	}

	rank := qualifyingRank(board, input.PlayerID, input.Score)
	if rank == 0 || rank > s.ranks {
		return &CheckEligibilityOutput{Reason: fmt.Sprintf("outside the top %d", s.ranks)}
	}

	if entry, _ := board.Find(input.PlayerID); entry.HasWallet() {
		return &CheckEligibilityOutput{Rank: rank, Reason: "wallet already on file"}
	}

	return &CheckEligibilityOutput{Eligible: true, Rank: rank}
}

// qualifyingRank is the player's rank in the view when present. Otherwise it
// is where score would land, behind every entry with an equal or higher score.
func qualifyingRank(board *models.Leaderboard, playerID string, score int) int {
	if _, rank := board.Find(playerID); rank > 0 {
		return rank
	}

	rank := 1
	if board != nil {
		for _, e := range board.Entries {
			if e.Score >= score {
				rank++
			}
		}
	}
	return rank
}

// refresh re-fetches the qualifying view, keeping the last known one on failure
func (s *service) refresh(ctx context.Context) *models.Leaderboard {
	board, err := s.FetchTopN(ctx, s.ranks)
	if err != nil {
		s.log.Warnf("Leaderboard refresh failed, keeping last snapshot: %v", err)
		return s.Snapshot()
	}
	return board
}

// publish stores the view and notifies listeners outside the lock
func (s *service) publish(board *models.Leaderboard) {
	s.mu.Lock()
	changed := s.snapshot == nil || !reflect.DeepEqual(s.snapshot.Entries, board.Entries)
	s.snapshot = board

	var listeners []Listener
	if changed {
		listeners = make([]Listener, 0, len(s.listeners))
		for _, fn := range s.listeners {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(board)
	}
}
