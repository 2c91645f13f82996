package game

import (
	"snake-classic/constants"
	"snake-classic/models"
)

type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return "none"
}

// Step is the outcome of moving the snake by one tile.
type Step struct {
	Snake     models.Snake
	Collision Collision
	Ate       bool
}

// NewSnake returns the three-segment starting snake heading right.
func NewSnake() models.Snake {
	return models.Snake{
		Body: []models.Position{
			{X: 200, Y: 200},
			{X: 180, Y: 200},
			{X: 160, Y: 200},
		},
		Direction: constants.RIGHT,
		NextDir:   constants.RIGHT,
	}
}

// Advance moves snake one tile in dir. On a collision the snake is returned
// unchanged. The input body is never modified.
func Advance(snake models.Snake, dir constants.Direction, food models.Position) Step {
	head := snake.Head()
	dx, dy := dir.Delta()
	newHead := models.Position{X: head.X + dx, Y: head.Y + dy}

	if !InBounds(newHead) {
		return Step{Snake: snake, Collision: CollisionWall}
	}
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i] == newHead {
			return Step{Snake: snake, Collision: CollisionSelf}
		}
	}

	ate := newHead == food
	size := len(snake.Body)
	if ate {
		size++
	}
	body := make([]models.Position, size)
	body[0] = newHead
	copy(body[1:], snake.Body)

	moved := snake
	moved.Body = body
	moved.Direction = dir
	return Step{Snake: moved, Ate: ate}
}
