package game

import (
	"golang.org/x/exp/rand"

	"snake-classic/constants"
	"snake-classic/models"
)

const maxFoodSamples = 256

// FoodPlacer picks food cells off the snake. It is not safe for concurrent use.
type FoodPlacer struct {
	rng *rand.Rand
}

func NewFoodPlacer(seed uint64) *FoodPlacer {
	return &FoodPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place samples uniformly random tiles until one is free of the snake. After
// maxFoodSamples misses it picks among the enumerated free tiles instead, and
// reports false only when the snake covers the whole board.
func (fp *FoodPlacer) Place(snake models.Snake) (models.Position, bool) {
	for i := 0; i < maxFoodSamples; i++ {
		food := models.Position{
			X: fp.rng.Intn(constants.GRID_SIZE) * constants.TILE_SIZE,
			Y: fp.rng.Intn(constants.GRID_SIZE) * constants.TILE_SIZE,
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}

	free := FreeCells(snake)
	if len(free) == 0 {
		return models.Position{}, false
	}
	return free[fp.rng.Intn(len(free))], true
}
