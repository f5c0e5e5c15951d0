package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault  = tcell.StyleDefault
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBone     = tcell.StyleDefault.Foreground(tcell.ColorAntiqueWhite)
	styleMoon     = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleNotice   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleAdmin    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHighlite = tcell.StyleDefault.Reverse(true)
)

// field maps play-field coordinates onto a block of terminal cells
type field struct {
	top, width, height int
	sx, sy             float64
}

func newField(tuning engine.Config, top, width, height int) field {
	return field{
		top:    top,
		width:  width,
		height: height,
		sx:     float64(width) / tuning.FieldWidth,
		sy:     float64(height) / tuning.FieldHeight,
	}
}

// cells returns the clamped cell rectangle [c0,c1) x [r0,r1) covering a field box
func (f field) cells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0 = clamp(int(math.Floor(x*f.sx)), 0, f.width)
	c1 = clamp(int(math.Ceil((x+w)*f.sx)), 0, f.width)
	r0 = clamp(int(math.Floor(y*f.sy)), 0, f.height)
	r1 = clamp(int(math.Ceil((y+h)*f.sy)), 0, f.height)
	return c0, f.top + r0, c1, f.top + r1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (l *Loop) draw() {
	l.dirty = false
	l.screen.Clear()
	w, h := l.screen.Size()
	if w <= 0 || h <= 3 {
		l.screen.Show()
		return
	}

	switch l.mode {
	case modeUsername:
		l.drawUsername(w, h)
	case modePlaying:
		l.drawHUD(w)
		l.drawField(w, h)
	case modeGameOver:
		l.drawHUD(w)
		l.drawField(w, h)
		l.drawGameOver(w, h)
	}

	l.drawFooter(w, h)
	l.screen.Show()
}

func (l *Loop) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		l.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (l *Loop) drawCentered(w, y int, style tcell.Style, s string) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	l.drawText(x, y, style, s)
}

func (l *Loop) drawUsername(w, h int) {
	y := h/2 - 3
	l.drawCentered(w, y, styleTitle, "BONE DASH")
	l.drawCentered(w, y+2, styleDefault, "Enter your name:")

	box := fmt.Sprintf("[%-20s]", string(l.input))
	l.drawCentered(w, y+3, styleHighlite, box)
	l.drawCentered(w, y+5, styleDefault, "Space, Up or w to jump. Click to jump.")
	l.drawCentered(w, y+6, styleDefault, "[Enter] play  [Esc] quit")
}

func (l *Loop) drawHUD(w int) {
	state := l.session.State()
	if state == nil {
		return
	}
	tuning := l.session.Tuning()

	jumps := tuning.MaxJumps - state.JumpsUsed
	if jumps < 0 {
		jumps = 0
	}
	budget := strings.Repeat("●", jumps) + strings.Repeat("○", tuning.MaxJumps-jumps)

	l.drawText(0, 0, styleHUD, fmt.Sprintf("Score %d  Speed %.1f  Jumps %s", state.Score(), state.Speed, budget))

	name := l.session.Username()
	l.drawText(w-len([]rune(name))-1, 0, styleDefault, name)
}

func (l *Loop) drawField(w, h int) {
	state := l.session.State()
	if state == nil {
		return
	}
	tuning := l.session.Tuning()
	f := newField(tuning, 1, w, h-2)

	_, groundRow, _, _ := f.cells(0, tuning.GroundY, 0, 0)
	for x := 0; x < w; x++ {
		l.screen.SetContent(x, groundRow, '▔', nil, styleGround)
	}

	for _, o := range state.Obstacles {
		style := styleBone
		if o.Kind == engine.ObstacleMoon {
			style = styleMoon
		}
		l.drawSprite(f, l.sprites.Obstacles[o.Kind], o.X, o.Y, o.Width, o.Height, style)
	}

	l.drawSprite(f, l.sprites.Player, tuning.PlayerX, state.PlayerY, tuning.PlayerSize, tuning.PlayerSize, stylePlayer)
}

func (l *Loop) drawSprite(f field, sprite *Sprite, x, y, w, h float64, style tcell.Style) {
	c0, r0, c1, r1 := f.cells(x, y, w, h)
	for cy := r0; cy < r1; cy++ {
		for cx := c0; cx < c1; cx++ {
			r := sprite.At(cx-c0, cy-r0, c1-c0, r1-r0)
			if r == ' ' {
				continue
			}
			l.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func (l *Loop) drawGameOver(w, h int) {
	y := 3
	l.drawCentered(w, y, styleTitle, "GAME OVER")
	l.drawCentered(w, y+1, styleHUD, fmt.Sprintf("Score %d", l.finalScore))
	y += 3

	switch {
	case l.submitting:
		l.drawCentered(w, y, styleDefault, "Submitting score...")
		y++
	case l.result != nil:
		rank := "unranked"
		if _, r := l.result.Leaderboard.Find(l.playerID); r > 0 {
			rank = fmt.Sprintf("#%d", r)
		}
		l.drawCentered(w, y, styleDefault, fmt.Sprintf("Best %d  Rank %s", l.result.Entry.Score, rank))
		y++
		if !l.result.Valid {
			l.drawCentered(w, y, styleNotice, "This run could not be verified")
			y++
		}
		if l.quip != "" {
			l.drawCentered(w, y, styleDefault, l.quip)
			y++
		}
	}
	y++

	if l.walletPrompt {
		rank := 0
		if l.result != nil && l.result.Eligibility != nil {
			rank = l.result.Eligibility.Rank
		}
		l.drawCentered(w, y, styleHUD, fmt.Sprintf("You placed #%d! Enter a wallet to qualify:", rank))
		l.drawCentered(w, y+1, styleHighlite, fmt.Sprintf("[%-42s]", string(l.wallet)))
		l.drawCentered(w, y+2, styleDefault, "[Enter] submit  [Esc] skip")
		y += 4
	} else {
		l.drawCentered(w, y, styleDefault, "[Enter] play again  [u] change name  [Esc] quit")
		y += 2
	}

	l.drawBoard(w, h, y)
}

func (l *Loop) drawBoard(w, h, y int) {
	if l.board == nil || len(l.board.Entries) == 0 {
		return
	}

	l.drawCentered(w, y, styleHUD, "Leaderboard")
	for _, r := range l.board.Ranked() {
		y++
		if r.Rank > boardRows || y >= h-1 {
			return
		}
		style := styleDefault
		if r.Entry.PlayerID == l.playerID {
			style = styleHighlite
		}
		line := fmt.Sprintf("%2d. %-20s %6d", r.Rank, r.Entry.Username, r.Entry.Score)
		l.drawCentered(w, y, style, line)
	}
}

func (l *Loop) drawFooter(w, h int) {
	y := h - 1
	l.drawText(0, y, styleDefault, l.competitionText())

	if l.isAdmin && l.mode != modePlaying {
		hint := "ADMIN [1] 1 day [7] 7 days [e] end [x] export"
		l.drawText(w-len(hint)-1, y, styleAdmin, hint)
	}

	if l.notice != "" {
		l.drawText(0, y-1, styleNotice, l.notice)
	}
}

func (l *Loop) competitionText() string {
	if l.window == nil {
		return "No competition running"
	}

	now := l.clock.Now()
	if l.window.Ended(now) {
		return "Competition ended"
	}

	left := l.window.Remaining(now)
	return fmt.Sprintf("Competition ends in %dd %dh %dm", left.Days, left.Hours, left.Minutes)
}
