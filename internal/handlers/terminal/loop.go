package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/common/uuid"
	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/admin"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/identity"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/decred/slog"
	"github.com/gdamore/tcell/v2"
)

// Loop drives one terminal client: input, simulation and drawing all
// happen on the goroutine that calls Run.
type Loop struct {
	screen        tcell.Screen
	session       *engine.Session
	identity      identity.Service
	leaderboard   leaderboard.Service
	competition   competition.Service
	admin         admin.Service
	messages      messaging.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	sprites       *Sprites
	exportDir     string
	log           slog.Logger

	frameInterval   time.Duration
	competitionPoll time.Duration
	adminPoll       time.Duration

	// loop goroutine state
	mode      mode
	dirty     bool
	playerID  string
	username  string
	input     []rune
	notice    string
	lastTick  time.Time
	mouseDown bool

	sessionID    string
	finalScore   int
	submitting   bool
	result       *leaderboard.SubmitScoreOutput
	quip         string
	walletPrompt bool
	wallet       []rune

	board   *models.Leaderboard
	window  *models.CompetitionWindow
	isAdmin bool

	// background results, read by Run
	results  chan any
	done     chan struct{}
	doneOnce sync.Once
}

// NewLoop creates a render loop. Sprites must already be loaded.
func NewLoop(cfg *Config) (*Loop, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Screen == nil {
		return nil, ErrNilScreen
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.Identity == nil {
		return nil, ErrNilIdentity
	}

	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}

	if cfg.Competition == nil {
		return nil, ErrNilCompetition
	}

	if cfg.Admin == nil {
		return nil, ErrNilAdmin
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Sprites == nil {
		return nil, ErrNilSprites
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	messages := cfg.Messages
	if messages == nil {
		svc, err := messaging.New(&messaging.Config{})
		if err != nil {
			return nil, err
		}
		messages = svc
	}

	l := &Loop{
		screen:          cfg.Screen,
		session:         cfg.Session,
		identity:        cfg.Identity,
		leaderboard:     cfg.Leaderboard,
		competition:     cfg.Competition,
		admin:           cfg.Admin,
		messages:        messages,
		clock:           cfg.Clock,
		uuidGenerator:   gen,
		sprites:         cfg.Sprites,
		exportDir:       cfg.ExportDir,
		log:             logging.OrDisabled(cfg.Logger),
		frameInterval:   orDefault(cfg.FrameInterval, DefaultFrameInterval),
		competitionPoll: orDefault(cfg.CompetitionPoll, DefaultCompetitionPoll),
		adminPoll:       orDefault(cfg.AdminPoll, DefaultAdminPoll),
		mode:            modeUsername,
		dirty:           true,
		results:         make(chan any, resultBuffer),
		done:            make(chan struct{}),
	}
	if l.exportDir == "" {
		l.exportDir = "."
	}
	return l, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Run loads the player identity and drives the loop until the player quits
// or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.loadIdentity(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer l.doneOnce.Do(func() { close(l.done) })

	unsubscribe := l.leaderboard.Subscribe(func(board *models.Leaderboard) {
		l.post(snapshotChanged{board: board})
	})
	defer unsubscribe()

	l.screen.EnableMouse(tcell.MouseButtonEvents)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frames := time.NewTicker(l.frameInterval)
	defer frames.Stop()
	compTicker := time.NewTicker(l.competitionPoll)
	defer compTicker.Stop()
	adminTicker := time.NewTicker(l.adminPoll)
	defer adminTicker.Stop()

	l.board = l.leaderboard.Snapshot()
	l.refreshCompetition(ctx)
	l.refreshAdmin(ctx)
	l.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !l.handleEvent(ctx, ev) {
				l.log.Info("Player quit")
				return nil
			}
		case data := <-l.results:
			l.handleResult(ctx, data)
		case <-frames.C:
			l.tick(ctx)
		case <-compTicker.C:
			l.refreshCompetition(ctx)
		case <-adminTicker.C:
			l.refreshAdmin(ctx)
		}
	}
}

func (l *Loop) loadIdentity(ctx context.Context) error {
	ident, err := l.identity.Identity(ctx)
	if err != nil {
		return fmt.Errorf("failed to load identity: %w", err)
	}
	if l.identity.Degraded() {
		l.notice = "Local storage unavailable, progress is for this session only"
	}

	l.playerID = ident.PlayerID
	l.username = ident.Username
	l.input = []rune(ident.Username)
	l.log.Infof("Playing as %s", l.playerID)
	return nil
}

// frameDelta converts wall time to frame units, capped at maxFrameDelta
func frameDelta(elapsed time.Duration) float64 {
	dt := float64(elapsed) / float64(time.Millisecond) / engine.FrameMillis
	if dt <= 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// tick advances the running session and redraws. Physics resolves first so
// the frame drawn always matches the collision decision.
func (l *Loop) tick(ctx context.Context) {
	now := l.clock.Now()
	dt := frameDelta(now.Sub(l.lastTick))
	l.lastTick = now

	if l.mode == modePlaying {
		if dt > 0 {
			res := l.session.Advance(dt)
			if res.Status == engine.StatusEnded {
				l.gameOver(ctx, res)
			}
		}
		l.dirty = true
	}

	if l.dirty {
		l.draw()
	}
}

func (l *Loop) handleEvent(ctx context.Context, ev tcell.Event) bool {
	l.dirty = true

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch l.mode {
		case modeUsername:
			return l.handleUsernameKey(ctx, ev)
		case modePlaying:
			return l.handlePlayKey(ev)
		case modeGameOver:
			return l.handleGameOverKey(ctx, ev)
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !l.mouseDown && l.mode == modePlaying {
			l.session.Jump()
		}
		l.mouseDown = pressed

	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *Loop) handleUsernameKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		name, err := l.identity.SetStoredUsername(ctx, string(l.input))
		if err != nil {
			l.notice = err.Error()
			return true
		}
		l.username = name
		l.startRun()
	default:
		l.input = editText(l.input, ev, models.MaxUsernameLength)
	}
	return true
}

func (l *Loop) handlePlayKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape:
		return false
	case ev.Key() == tcell.KeyUp,
		ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'w'):
		l.session.Jump()
	}
	return true
}

func (l *Loop) handleGameOverKey(ctx context.Context, ev *tcell.EventKey) bool {
	if l.walletPrompt {
		switch ev.Key() {
		case tcell.KeyEscape:
			l.walletPrompt = false
			l.notice = "Wallet skipped"
		case tcell.KeyEnter:
			l.submitWallet(ctx)
		default:
			l.wallet = editText(l.wallet, ev, maxWalletLength)
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		l.startRun()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case ' ':
		l.startRun()
	case 'u':
		l.mode = modeUsername
		l.input = []rune(l.username)
		l.notice = ""
	case '1', '7', 'e', 'x':
		if l.isAdmin {
			l.adminAction(ctx, ev.Rune())
		}
	}
	return true
}

// editText applies a text-editing key to buf
func editText(buf []rune, ev *tcell.EventKey, max int) []rune {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(buf) > 0 {
			buf = buf[:len(buf)-1]
		}
	case tcell.KeyRune:
		if len(buf) < max {
			buf = append(buf, ev.Rune())
		}
	}
	return buf
}

func (l *Loop) startRun() {
	if err := l.session.Start(l.username); err != nil {
		l.notice = err.Error()
		l.mode = modeUsername
		return
	}

	l.mode = modePlaying
	l.sessionID = l.uuidGenerator.NewUUID()
	l.lastTick = l.clock.Now()
	l.result = nil
	l.quip = ""
	l.submitting = false
	l.walletPrompt = false
	l.wallet = nil
	l.notice = ""
	l.mouseDown = false
}

// gameOver submits the run in the background; the prompt waits for the result
func (l *Loop) gameOver(ctx context.Context, res engine.FrameResult) {
	l.mode = modeGameOver
	l.finalScore = res.Score
	l.submitting = true

	input := &leaderboard.SubmitScoreInput{
		PlayerID:     l.playerID,
		Username:     l.session.Username(),
		Score:        res.Score,
		GameDuration: l.session.Duration().Seconds(),
		SessionID:    l.sessionID,
	}
	l.log.Infof("Run over: score %d after %.1fs", input.Score, input.GameDuration)

	go func() {
		out, err := l.leaderboard.SubmitScore(ctx, input)
		l.post(submitDone{sessionID: input.SessionID, out: out, err: err})
	}()
}

func (l *Loop) submitWallet(ctx context.Context) {
	wallet := string(l.wallet)
	if !leaderboard.ValidWallet(wallet) {
		l.notice = "Wallet must be 0x followed by 40 hex characters"
		return
	}

	l.notice = "Saving wallet..."
	input := &leaderboard.SubmitWalletInput{
		PlayerID: l.playerID,
		Wallet:   wallet,
	}
	go func() {
		out, err := l.leaderboard.SubmitWallet(ctx, input)
		l.post(walletDone{out: out, err: err})
	}()
}

func (l *Loop) refreshCompetition(ctx context.Context) {
	go func() {
		window, err := l.competition.Window(ctx)
		l.post(competitionLoaded{window: window, err: err})
	}()
}

func (l *Loop) refreshAdmin(ctx context.Context) {
	playerID := l.playerID
	go func() {
		ok, err := l.admin.IsAdmin(ctx, playerID)
		l.post(adminLoaded{isAdmin: ok, err: err})
	}()
}

func (l *Loop) adminAction(ctx context.Context, key rune) {
	playerID := l.playerID
	now := l.clock.Now()

	go func() {
		var done adminDone
		switch key {
		case '1', '7':
			days := 1.0
			if key == '7' {
				days = 7
			}
			end, err := l.admin.StartCompetition(ctx, playerID, days)
			done = adminDone{message: "Competition ends " + end.Local().Format("Jan 2 15:04"), err: err}
		case 'e':
			err := l.admin.EndCompetition(ctx, playerID)
			done = adminDone{message: "Competition ended", err: err}
		case 'x':
			path, err := l.export(ctx, playerID, now)
			done = adminDone{message: "Exported " + path, err: err}
		}
		l.post(done)
	}()
}

// export writes the wallet document to ExportDir, only once it rendered
func (l *Loop) export(ctx context.Context, playerID string, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := l.admin.WriteExport(ctx, playerID, &buf); err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(l.exportDir, l.admin.ExportFileName(now))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func (l *Loop) handleResult(ctx context.Context, data any) {
	switch r := data.(type) {
	case submitDone:
		if r.err != nil {
			l.log.Errorf("Score submission failed: %v", r.err)
		}
		if r.sessionID != l.sessionID {
			if r.err == nil {
				l.board = r.out.Leaderboard
			}
			return
		}
		l.submitting = false
		if r.err != nil {
			l.notice = "Score not saved, check your connection"
			return
		}
		l.result = r.out
		l.board = r.out.Leaderboard
		if l.mode == modeGameOver && r.out.Eligibility != nil && r.out.Eligibility.Eligible {
			l.walletPrompt = true
		}
		l.quip = l.gameOverQuip(ctx, r.out)

	case walletDone:
		if r.err != nil {
			l.log.Warnf("Wallet submission failed: %v", r.err)
			if errors.Is(r.err, leaderboard.ErrInvalidWallet) {
				l.notice = "Wallet must be 0x followed by 40 hex characters"
			} else {
				l.notice = "Wallet not saved, try again"
			}
			return
		}
		l.walletPrompt = false
		l.notice = "Wallet saved"
		l.board = r.out.Leaderboard
		l.refreshAdmin(ctx)

	case snapshotChanged:
		l.board = r.board
		l.refreshCompetition(ctx)
		l.refreshAdmin(ctx)

	case competitionLoaded:
		if r.err != nil {
			l.log.Warnf("Competition status unavailable: %v", r.err)
			return
		}
		l.window = r.window

	case adminLoaded:
		if r.err != nil {
			l.log.Debugf("Admin check failed: %v", r.err)
			return
		}
		if r.isAdmin != l.isAdmin {
			l.log.Infof("Admin status now %v", r.isAdmin)
		}
		l.isAdmin = r.isAdmin

	case adminDone:
		if r.err != nil {
			l.log.Warnf("Admin action failed: %v", r.err)
			if errors.Is(r.err, admin.ErrNotAdmin) {
				l.isAdmin = false
			}
			l.notice = "Admin action failed: " + r.err.Error()
			return
		}
		l.log.Info(r.message)
		l.notice = r.message
		l.refreshCompetition(ctx)
	}
}

func (l *Loop) gameOverQuip(ctx context.Context, out *leaderboard.SubmitScoreOutput) string {
	input := &messaging.GetGameOverMessageInput{
		PlayerName: l.session.Username(),
		Score:      l.finalScore,
		NewBest:    out.Updated,
		Qualified:  l.walletPrompt,
	}
	if out.Eligibility != nil {
		input.Rank = out.Eligibility.Rank
	}

	msg, err := l.messages.GetGameOverMessage(ctx, input)
	if err != nil {
		l.log.Debugf("No game over message: %v", err)
		return ""
	}
	return msg.Message
}

// post hands background results to the loop goroutine. It blocks while
// the buffer is full and gives up only once Run has returned.
func (l *Loop) post(data any) {
	select {
	case l.results <- data:
	case <-l.done:
		l.log.Debugf("Loop stopped, dropping %T", data)
	}
}
