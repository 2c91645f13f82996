package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"snake-classic/constants"
	"snake-classic/models"
)

// Sound is the optional effects sink. *audio.Player satisfies it.
type Sound interface {
	Eat()
	Crash()
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	pauseStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Each board tile is drawn two columns wide so it looks square.
const (
	cellWidth = 2
	boardCols = constants.GRID_SIZE * cellWidth
	boardRows = constants.GRID_SIZE
	originX   = 1
	originY   = 2
	blockRune = '█'
)

// View draws game snapshots on a tcell screen. Render and Redraw may be
// called from different goroutines.
type View struct {
	screen tcell.Screen
	sound  Sound

	mu   sync.Mutex
	last models.GameState
	seen bool
}

func NewView(screen tcell.Screen, sound Sound) *View {
	return &View{screen: screen, sound: sound}
}

func (v *View) Render(state models.GameState) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seen && v.sound != nil {
		if state.Score > v.last.Score {
			v.sound.Eat()
		}
		if state.Phase == models.PhaseGameOver && v.last.Phase != models.PhaseGameOver {
			v.sound.Crash()
		}
	}
	v.last = state
	v.seen = true
	v.draw()
}

// Redraw repaints the last snapshot, e.g. after a resize.
func (v *View) Redraw() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seen {
		v.draw()
	}
}

func (v *View) draw() {
	s := v.last
	v.screen.Clear()

	v.text(originX, 0, fmt.Sprintf("Score: %d   Speed: %dms", s.Score, s.PeriodMS), textStyle)
	v.border()

	switch s.Phase {
	case models.PhaseNotStarted:
		v.startScreen()
	case models.PhaseGameOver:
		v.gameOverScreen(s)
	default:
		v.board(s)
		if s.Phase == models.PhasePaused {
			v.centered(boardRows/2-1, "PAUSED", pauseStyle)
			v.centered(boardRows/2+1, "Press SPACE to Resume", pauseStyle)
		}
	}

	v.screen.Show()
}

func (v *View) board(s models.GameState) {
	v.tile(s.Food.Position, foodStyle)
	for i := len(s.Snake.Body) - 1; i >= 0; i-- {
		style := bodyStyle
		if i == 0 {
			style = headStyle
		}
		v.tile(s.Snake.Body[i], style)
	}
}

func (v *View) startScreen() {
	v.centered(boardRows/2-4, "Snake Game", titleStyle)
	v.centered(boardRows/2-1, "Press ENTER to Start", textStyle)
	v.centered(boardRows/2+1, "Use Arrow Keys to Move", textStyle)
	v.centered(boardRows/2+2, "SPACE to Pause", textStyle)
	v.centered(boardRows/2+3, "R to Restart (after Game Over)", textStyle)
	v.centered(boardRows/2+5, "ESC to Quit", textStyle)
}

func (v *View) gameOverScreen(s models.GameState) {
	title := "Game Over"
	if s.Cleared {
		title = "Board Cleared!"
	}
	v.centered(2, title, titleStyle)
	v.centered(4, fmt.Sprintf("Final Score: %d", s.Score), textStyle)
	v.centered(7, "Leaderboard", titleStyle)

	switch {
	case !s.LeaderboardLoaded:
		v.centered(9, "Loading...", textStyle)
	case len(s.Leaderboard) == 0:
		v.centered(9, "No data", textStyle)
	default:
		for i, entry := range s.Leaderboard {
			v.centered(9+i, fmt.Sprintf("%d. %g", i+1, entry.Score), textStyle)
		}
	}

	v.centered(boardRows-2, "Press R to Restart", textStyle)
}

func (v *View) tile(p models.Position, style tcell.Style) {
	x := originX + (p.X/constants.TILE_SIZE)*cellWidth
	y := originY + p.Y/constants.TILE_SIZE
	for dx := 0; dx < cellWidth; dx++ {
		v.screen.SetContent(x+dx, y, blockRune, nil, style)
	}
}

func (v *View) border() {
	left, right := originX-1, originX+boardCols
	top, bottom := originY-1, originY+boardRows
	for x := left + 1; x < right; x++ {
		v.screen.SetContent(x, top, '─', nil, borderStyle)
		v.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		v.screen.SetContent(left, y, '│', nil, borderStyle)
		v.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	v.screen.SetContent(left, top, '┌', nil, borderStyle)
	v.screen.SetContent(right, top, '┐', nil, borderStyle)
	v.screen.SetContent(left, bottom, '└', nil, borderStyle)
	v.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

// centered writes msg on board row y, centred horizontally.
func (v *View) centered(y int, msg string, style tcell.Style) {
	x := originX + (boardCols-len([]rune(msg)))/2
	if x < originX {
		x = originX
	}
	v.text(x, originY+y, msg, style)
}

func (v *View) text(x, y int, msg string, style tcell.Style) {
	for i, r := range []rune(msg) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
