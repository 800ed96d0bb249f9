package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"alien-descent/game"
)

var (
	styleAlien     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDetached  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBot       = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShot      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEnemyFire = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// viewport maps world units onto terminal cells. The last row is the HUD.
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

func (vp viewport) fieldRows() int {
	return max(vp.rows-1, 1)
}

func (vp viewport) toCell(p game.Point) (int, int) {
	x := math.Floor(p.X / vp.worldW * float64(vp.cols))
	y := math.Floor(p.Y / vp.worldH * float64(vp.fieldRows()))
	return int(x), int(y)
}

// toWorld returns the world position at the centre of a cell
func (vp viewport) toWorld(col, row int) game.Point {
	return game.Point{
		X: (float64(col) + 0.5) * vp.worldW / float64(vp.cols),
		Y: (float64(row) + 0.5) * vp.worldH / float64(vp.fieldRows()),
	}
}

func (vp viewport) inField(x, y int) bool {
	return x >= 0 && x < vp.cols && y >= 0 && y < vp.fieldRows()
}

// terminalView renders snapshots with tcell and turns keys and mouse drags
// into commands for the attached runner
type terminalView struct {
	mu      sync.Mutex
	screen  tcell.Screen
	worldW  float64
	runner  *Runner
	restart chan struct{}
	snap    game.Snapshot
	rec     game.PathRecorder
	drawing bool
	paused  bool
	over    bool
}

func newTerminalView(worldW float64) (*terminalView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return newTerminalViewOn(screen, worldW)
}

func newTerminalViewOn(screen tcell.Screen, worldW float64) (*terminalView, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &terminalView{
		screen:  screen,
		worldW:  worldW,
		restart: make(chan struct{}, 1),
	}, nil
}

// Close restores the terminal
func (v *terminalView) Close() {
	v.screen.Fini()
}

// Attach points input at a new session's runner and clears the previous
// session's overlay
func (v *terminalView) Attach(r *Runner) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.runner = r
	v.over = false
	v.drawing = false
	v.paused = r.Paused()
	v.rec.Reset()
}

// Restarts delivers a value each time the player asks for a new game
func (v *terminalView) Restarts() <-chan struct{} {
	return v.restart
}

func (v *terminalView) current() *Runner {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.runner
}

// Frame stores and draws the latest snapshot
func (v *terminalView) Frame(snap game.Snapshot) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap = snap
	if v.runner != nil {
		v.paused = v.runner.Paused()
	}
	v.draw()
	return nil
}

// ShowGameOver switches the view to the final banner
func (v *terminalView) ShowGameOver(score int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.over = true
	v.snap.Score = score
	v.draw()
}

// Input polls terminal events until the player quits or the screen closes
func (v *terminalView) Input() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.handle(ev) {
			v.current().Stop()
			return
		}
	}
}

// handle applies one event and reports whether input should continue.
// Runner calls are made without holding mu, since the runner publishes
// frames back into the view.
func (v *terminalView) handle(ev tcell.Event) bool {
	r := v.current()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if v.isOver() {
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
				v.requestRestart()
				return true
			}
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			r.Shift(-1)
		case tcell.KeyRight:
			r.Shift(1)
		case tcell.KeyEnter:
			v.finishDrawing(r)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				r.Shift(-1)
			case 'l':
				r.Shift(1)
			case 'p', ' ':
				if !v.isDrawing() {
					r.TogglePause()
				}
			case 'd':
				v.startDrawing(r)
			case 'c':
				v.finishDrawing(r)
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			v.record(x, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}

	v.mu.Lock()
	v.paused = r.Paused()
	v.draw()
	v.mu.Unlock()
	return true
}

func (v *terminalView) requestRestart() {
	select {
	case v.restart <- struct{}{}:
	default:
	}
}

func (v *terminalView) isOver() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.over
}

func (v *terminalView) isDrawing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drawing
}

// record adds a dragged cell to the path being drawn
func (v *terminalView) record(x, y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.drawing {
		return
	}
	vp := v.viewport()
	if vp.inField(x, y) {
		v.rec.Add(vp.toWorld(x, y))
	}
}

// startDrawing pauses the game and begins a fresh path
func (v *terminalView) startDrawing(r *Runner) {
	v.mu.Lock()
	if v.drawing {
		v.mu.Unlock()
		return
	}
	v.rec.Reset()
	v.drawing = true
	v.mu.Unlock()
	r.Pause()
}

// finishDrawing hands the recorded samples to the game, which resumes once
// the path is in place
func (v *terminalView) finishDrawing(r *Runner) {
	v.mu.Lock()
	if !v.drawing {
		v.mu.Unlock()
		return
	}
	v.drawing = false
	points := v.rec.Points()
	v.mu.Unlock()

	r.ResumeWithPath(points)
}

func (v *terminalView) viewport() viewport {
	cols, rows := v.screen.Size()
	w, h := v.snap.Width, v.snap.Height
	if w <= 0 {
		w = v.worldW
	}
	if h <= 0 {
		h = game.BottomBoundary
	}
	return viewport{cols: cols, rows: rows, worldW: w, worldH: h}
}

func (v *terminalView) draw() {
	vp := v.viewport()
	v.screen.Clear()

	path := v.snap.Path
	if v.drawing {
		path = v.rec.Points()
	}
	for _, p := range path {
		v.plot(vp, p, '·', stylePath)
	}

	for _, a := range v.snap.Aliens {
		center := game.Point{X: a.X + game.AlienSize/2, Y: a.Y + game.AlienSize/2}
		if a.Detached {
			v.plot(vp, center, 'V', styleDetached)
		} else {
			v.plot(vp, center, 'W', styleAlien)
		}
	}
	for _, p := range v.snap.Projectiles {
		if p.Alien {
			v.plot(vp, game.Point{X: p.X, Y: p.Y}, '!', styleEnemyFire)
		} else {
			v.plot(vp, game.Point{X: p.X, Y: p.Y}, '|', styleShot)
		}
	}
	bot := v.snap.Bot
	v.plot(vp, game.Point{X: bot.X + game.BotWidth/2, Y: bot.Y}, 'A', styleBot)

	v.drawHUD(vp)
	if v.over {
		msg := fmt.Sprintf(" GAME OVER  score %d  (r restart, any key quits) ", v.snap.Score)
		v.text((vp.cols-len(msg))/2, vp.fieldRows()/2, msg, styleBanner)
	}
	v.screen.Show()
}

func (v *terminalView) drawHUD(vp viewport) {
	row := vp.rows - 1
	for x := 0; x < vp.cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, styleHUD)
	}
	mode := ""
	switch {
	case v.drawing:
		mode = "[DRAW: drag, c to continue] "
	case v.paused:
		mode = "[PAUSED] "
	}
	hud := fmt.Sprintf(" Score %d  Turn %d  Aliens %d  %s←/→ shift  d draw  p pause  q quit",
		v.snap.Score, v.snap.Turn, len(v.snap.Aliens), mode)
	v.text(0, row, hud, styleHUD)
}

func (v *terminalView) plot(vp viewport, p game.Point, r rune, style tcell.Style) {
	x, y := vp.toCell(p)
	if vp.inField(x, y) {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *terminalView) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
