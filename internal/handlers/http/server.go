package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/decred/slog"
)

const (
	// DefaultPingInterval keeps idle feed connections alive
	DefaultPingInterval = 25 * time.Second

	// DefaultSubmitRatePerMin bounds score and wallet posts per client
	DefaultSubmitRatePerMin = 30

	maxBodyBytes = 4 << 10

	// maxBoardSize caps ?n= on the leaderboard route
	maxBoardSize = 100
)

// Config holds configuration for the HTTP server
type Config struct {
	Addr        string
	Leaderboard leaderboard.Service
	Competition competition.Service
	Clock       clock.Clock

	// SubmitRatePerMin is per remote IP; zero means DefaultSubmitRatePerMin,
	// negative disables the limit
	SubmitRatePerMin int

	// PingInterval defaults to DefaultPingInterval
	PingInterval time.Duration

	// Logger is optional
	Logger slog.Logger
}

// Server exposes the leaderboard and competition over HTTP and a websocket feed
type Server struct {
	addr        string
	leaderboard leaderboard.Service
	competition competition.Service
	clock       clock.Clock
	log         slog.Logger
	limiter     *clientLimiter
	hub         *hub
}

// NewServer creates a new server
func NewServer(cfg *Config) (*Server, error) {
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

	rate := cfg.SubmitRatePerMin
	if rate == 0 {
		rate = DefaultSubmitRatePerMin
	}

	ping := cfg.PingInterval
	if ping <= 0 {
		ping = DefaultPingInterval
	}

	log := logging.OrDisabled(cfg.Logger)

	return &Server{
		addr:        cfg.Addr,
		leaderboard: cfg.Leaderboard,
		competition: cfg.Competition,
		clock:       cfg.Clock,
		log:         log,
		limiter:     newClientLimiter(rate),
		hub:         newHub(log, ping),
	}, nil
}

// Handler returns the routed handler
func (s *Server) Handler() nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /scores", s.handleSubmitScore)
	mux.HandleFunc("POST /wallets", s.handleSubmitWallet)
	mux.HandleFunc("GET /competition", s.handleCompetition)
	mux.HandleFunc("GET /ws", s.handleFeed)
	return mux
}

// Run serves until ctx is done. Snapshot changes are pushed to feed clients.
func (s *Server) Run(ctx context.Context) error {
	unsubscribe := s.leaderboard.Subscribe(s.hub.Broadcast)
	defer unsubscribe()

	srv := &nethttp.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLeaderboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxBoardSize {
			s.httpError(w, nethttp.StatusBadRequest, fmt.Sprintf("n must be between 1 and %d", maxBoardSize))
			return
		}
		n = v
	}

	board, err := s.leaderboard.FetchTopN(r.Context(), n)
	if err != nil {
		s.log.Errorf("Leaderboard fetch failed: %v", err)
		if board = s.leaderboard.Snapshot(); board == nil {
			s.httpError(w, nethttp.StatusServiceUnavailable, "leaderboard unavailable")
			return
		}
	}

	writeJSON(w, nethttp.StatusOK, newLeaderboardFrame(board))
}

func (s *Server) handleSubmitScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !s.limiter.allow(r) {
		s.httpError(w, nethttp.StatusTooManyRequests, "too many requests")
		return
	}

	var req submitScoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.httpError(w, nethttp.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.leaderboard.SubmitScore(r.Context(), &leaderboard.SubmitScoreInput{
		PlayerID:     req.PlayerID,
		Username:     req.Username,
		Score:        req.Score,
		GameDuration: req.GameDuration,
		SessionID:    req.SessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, leaderboard.ErrInvalidPlayerID),
			errors.Is(err, leaderboard.ErrInvalidScore),
			errors.Is(err, models.ErrInvalidUsername):
			s.httpError(w, nethttp.StatusBadRequest, err.Error())
		default:
			s.log.Errorf("Score submission failed for %s: %v", req.PlayerID, err)
			s.httpError(w, nethttp.StatusInternalServerError, "score submission failed")
		}
		return
	}

	resp := submitScoreResponse{
		Updated:   out.Updated,
		Valid:     out.Valid,
		BestScore: out.Entry.Score,
	}
	if _, rank := out.Leaderboard.Find(req.PlayerID); rank > 0 {
		resp.Rank = rank
	}
	if out.Eligibility != nil {
		resp.Eligible = out.Eligibility.Eligible
	}

	writeJSON(w, nethttp.StatusOK, resp)
}

func (s *Server) handleSubmitWallet(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !s.limiter.allow(r) {
		s.httpError(w, nethttp.StatusTooManyRequests, "too many requests")
		return
	}

	var req submitWalletRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.httpError(w, nethttp.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.leaderboard.SubmitWallet(r.Context(), &leaderboard.SubmitWalletInput{
		PlayerID: req.PlayerID,
		Wallet:   req.Wallet,
	})
	if err != nil {
		switch {
		case errors.Is(err, leaderboard.ErrInvalidPlayerID),
			errors.Is(err, leaderboard.ErrInvalidWallet):
			s.httpError(w, nethttp.StatusBadRequest, err.Error())
		case errors.Is(err, leaderboard.ErrEntryNotFound):
			s.httpError(w, nethttp.StatusNotFound, err.Error())
		default:
			s.log.Errorf("Wallet submission failed for %s: %v", req.PlayerID, err)
			s.httpError(w, nethttp.StatusInternalServerError, "wallet submission failed")
		}
		return
	}

	_, rank := out.Leaderboard.Find(req.PlayerID)
	writeJSON(w, nethttp.StatusOK, submitWalletResponse{
		PlayerID: out.Entry.PlayerID,
		Rank:     rank,
	})
}

func (s *Server) handleCompetition(w nethttp.ResponseWriter, r *nethttp.Request) {
	window, err := s.competition.Window(r.Context())
	if err != nil {
		s.log.Errorf("Competition read failed: %v", err)
		s.httpError(w, nethttp.StatusInternalServerError, "competition unavailable")
		return
	}

	resp := competitionResponse{}
	if window != nil {
		now := s.clock.Now()
		end := window.EndTimestamp.UTC()
		left := window.Remaining(now)

		resp.EndTimestamp = &end
		resp.Ended = window.Ended(now)
		resp.Active = !resp.Ended
		resp.Remaining = &remainingBody{
			Days:    left.Days,
			Hours:   left.Hours,
			Minutes: left.Minutes,
			TotalMs: left.Total.Milliseconds(),
		}
	}

	writeJSON(w, nethttp.StatusOK, resp)
}

func (s *Server) handleFeed(w nethttp.ResponseWriter, r *nethttp.Request) {
	board := s.leaderboard.Snapshot()
	if board == nil {
		fetched, err := s.leaderboard.FetchTopN(r.Context(), 0)
		if err != nil {
			s.log.Warnf("Initial feed fetch failed: %v", err)
		}
		board = fetched
	}
	s.hub.serve(w, r, board)
}

func (s *Server) httpError(w nethttp.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, v any) error {
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w nethttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
