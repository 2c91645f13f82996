package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/constants"
	"snake-classic/models"
)

var farFood = models.Position{X: 0, Y: 0}

func snakeOf(dir constants.Direction, cells ...models.Position) models.Snake {
	return models.Snake{Body: cells, Direction: dir, NextDir: dir}
}

func TestAdvanceMovesHeadOneTile(t *testing.T) {
	tests := []struct {
		name string
		dir  constants.Direction
		want models.Position
	}{
		{"up", constants.UP, models.Position{X: 200, Y: 180}},
		{"down", constants.DOWN, models.Position{X: 200, Y: 220}},
		{"right", constants.RIGHT, models.Position{X: 220, Y: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := Advance(NewSnake(), tt.dir, farFood)
			require.Equal(t, CollisionNone, step.Collision)
			assert.False(t, step.Ate)
			assert.Equal(t, tt.want, step.Snake.Head())
			assert.Len(t, step.Snake.Body, 3)
			assert.Equal(t, tt.dir, step.Snake.Direction)
		})
	}
}

func TestAdvanceDropsTail(t *testing.T) {
	step := Advance(NewSnake(), constants.RIGHT, farFood)
	assert.Equal(t, []models.Position{{X: 220, Y: 200}, {X: 200, Y: 200}, {X: 180, Y: 200}}, step.Snake.Body)
}

func TestAdvanceDoesNotModifyInput(t *testing.T) {
	snake := NewSnake()
	before := append([]models.Position(nil), snake.Body...)
	Advance(snake, constants.UP, farFood)
	Advance(snake, constants.RIGHT, models.Position{X: 220, Y: 200})
	assert.Equal(t, before, snake.Body)
}

func TestAdvanceEatingGrows(t *testing.T) {
	food := models.Position{X: 220, Y: 200}
	step := Advance(NewSnake(), constants.RIGHT, food)
	require.Equal(t, CollisionNone, step.Collision)
	assert.True(t, step.Ate)
	assert.Len(t, step.Snake.Body, 4)
	assert.Equal(t, food, step.Snake.Head())
	assert.Equal(t, models.Position{X: 160, Y: 200}, step.Snake.Body[3])
}

func TestAdvanceWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head models.Position
		dir  constants.Direction
	}{
		{"left edge", models.Position{X: 0, Y: 100}, constants.LEFT},
		{"top edge", models.Position{X: 100, Y: 0}, constants.UP},
		{"right edge", models.Position{X: 380, Y: 100}, constants.RIGHT},
		{"bottom edge", models.Position{X: 100, Y: 380}, constants.DOWN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := snakeOf(tt.dir, tt.head)
			step := Advance(snake, tt.dir, farFood)
			assert.Equal(t, CollisionWall, step.Collision)
			assert.Equal(t, snake, step.Snake)
		})
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	snake := snakeOf(constants.LEFT,
		models.Position{X: 40, Y: 40},
		models.Position{X: 60, Y: 40},
		models.Position{X: 60, Y: 60},
		models.Position{X: 40, Y: 60},
		models.Position{X: 20, Y: 60},
	)
	step := Advance(snake, constants.DOWN, farFood)
	assert.Equal(t, CollisionSelf, step.Collision)
	assert.Equal(t, snake.Body, step.Snake.Body)
}

func TestAdvanceIntoTailCollides(t *testing.T) {
	snake := snakeOf(constants.LEFT,
		models.Position{X: 40, Y: 40},
		models.Position{X: 60, Y: 40},
		models.Position{X: 60, Y: 60},
		models.Position{X: 40, Y: 60},
	)
	step := Advance(snake, constants.DOWN, farFood)
	assert.Equal(t, CollisionSelf, step.Collision)
}

func TestAdvanceReversingHitsNeck(t *testing.T) {
	step := Advance(NewSnake(), constants.LEFT, farFood)
	assert.Equal(t, CollisionSelf, step.Collision)
}

func TestSingleCellSnakeMoves(t *testing.T) {
	snake := snakeOf(constants.RIGHT, models.Position{X: 100, Y: 100})
	step := Advance(snake, constants.LEFT, farFood)
	require.Equal(t, CollisionNone, step.Collision)
	assert.Equal(t, []models.Position{{X: 80, Y: 100}}, step.Snake.Body)
}
