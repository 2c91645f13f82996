package models

import (
	"time"

	"snake-classic/constants"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Snake struct {
	Body      []Position          `json:"body"`
	Direction constants.Direction `json:"direction"`
	NextDir   constants.Direction `json:"-"`
}

// Head returns the first body cell.
func (s Snake) Head() Position {
	return s.Body[0]
}

// Occupies reports whether p is any body cell.
func (s Snake) Occupies(p Position) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

type Food struct {
	Position Position `json:"position"`
}

type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseRunning    Phase = "running"
	PhasePaused     Phase = "paused"
	PhaseGameOver   Phase = "game_over"
)

// GameState is the renderable view of a game.
type GameState struct {
	ID                string        `json:"id,omitempty"`
	Phase             Phase         `json:"phase"`
	Snake             Snake         `json:"snake"`
	Food              Food          `json:"food"`
	Score             int           `json:"score"`
	PeriodMS          int64         `json:"period_ms"`
	Cleared           bool          `json:"cleared,omitempty"`
	Leaderboard       []ScoreRecord `json:"leaderboard"`
	LeaderboardLoaded bool          `json:"leaderboard_loaded"`
}

type ScoreRecord struct {
	ID        string    `json:"id,omitempty"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
