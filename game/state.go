package game

import (
	"time"

	"snake-classic/constants"
	"snake-classic/models"
)

// State is everything one game needs between ticks.
type State struct {
	Phase             models.Phase
	Snake             models.Snake
	Food              models.Position
	Score             int
	Period            time.Duration
	Cleared           bool
	Leaderboard       []models.ScoreRecord
	LeaderboardLoaded bool
}

// NewState returns a not-started game with fresh food.
func NewState(food *FoodPlacer) State {
	snake := NewSnake()
	pos, _ := food.Place(snake)
	return State{
		Phase:  models.PhaseNotStarted,
		Snake:  snake,
		Food:   pos,
		Period: constants.INITIAL_PERIOD,
	}
}

// View converts the state into its serialisable form.
func (s State) View(id string) models.GameState {
	body := make([]models.Position, len(s.Snake.Body))
	copy(body, s.Snake.Body)
	snake := s.Snake
	snake.Body = body

	leaderboard := make([]models.ScoreRecord, len(s.Leaderboard))
	copy(leaderboard, s.Leaderboard)

	return models.GameState{
		ID:                id,
		Phase:             s.Phase,
		Snake:             snake,
		Food:              models.Food{Position: s.Food},
		Score:             s.Score,
		PeriodMS:          s.Period.Milliseconds(),
		Cleared:           s.Cleared,
		Leaderboard:       leaderboard,
		LeaderboardLoaded: s.LeaderboardLoaded,
	}
}
