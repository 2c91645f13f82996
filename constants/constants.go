package constants

import (
	"fmt"
	"time"
)

const (
	// Board constants
	TILE_SIZE   = 20
	CANVAS_SIZE = 400
	GRID_SIZE   = CANVAS_SIZE / TILE_SIZE

	// Speed ramp
	INITIAL_PERIOD  = 200 * time.Millisecond
	PERIOD_STEP     = 20 * time.Millisecond
	PERIOD_FLOOR    = 50 * time.Millisecond
	SPEEDUP_EVERY   = 5
	LEADERBOARD_TOP = 5

	// Message types
	MSG_CONNECTED   = "connected"
	MSG_KEY         = "key"
	MSG_GAME_UPDATE = "game_update"
	MSG_GAME_OVER   = "game_over"
	MSG_LEADERBOARD = "leaderboard"
	MSG_ERROR       = "error"

	// Keys, named after the browser KeyboardEvent.key values
	KEY_ENTER   = "Enter"
	KEY_SPACE   = " "
	KEY_UP      = "ArrowUp"
	KEY_DOWN    = "ArrowDown"
	KEY_LEFT    = "ArrowLeft"
	KEY_RIGHT   = "ArrowRight"
	KEY_RESTART = "r"
)

type Direction int

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
)

var opposites = map[Direction]Direction{
	UP:    DOWN,
	DOWN:  UP,
	LEFT:  RIGHT,
	RIGHT: LEFT,
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the pixel offset of one tile step in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case UP:
		return 0, -TILE_SIZE
	case DOWN:
		return 0, TILE_SIZE
	case LEFT:
		return -TILE_SIZE, 0
	case RIGHT:
		return TILE_SIZE, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	}
	return "UNKNOWN"
}

// DirectionForKey maps an arrow key to its direction.
func DirectionForKey(key string) (Direction, bool) {
	switch key {
	case KEY_UP:
		return UP, true
	case KEY_DOWN:
		return DOWN, true
	case KEY_LEFT:
		return LEFT, true
	case KEY_RIGHT:
		return RIGHT, true
	}
	return 0, false
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "UP":
		*d = UP
	case "DOWN":
		*d = DOWN
	case "LEFT":
		*d = LEFT
	case "RIGHT":
		*d = RIGHT
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}
