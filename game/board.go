package game

import (
	"snake-classic/constants"
	"snake-classic/models"
)

// InBounds reports whether p lies on the board.
func InBounds(p models.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < constants.CANVAS_SIZE && p.Y < constants.CANVAS_SIZE
}

// FreeCells lists every tile not covered by the snake, row by row.
func FreeCells(snake models.Snake) []models.Position {
	occupied := make(map[models.Position]struct{}, len(snake.Body))
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}

	free := make([]models.Position, 0, constants.GRID_SIZE*constants.GRID_SIZE-len(occupied))
	for y := 0; y < constants.CANVAS_SIZE; y += constants.TILE_SIZE {
		for x := 0; x < constants.CANVAS_SIZE; x += constants.TILE_SIZE {
			p := models.Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
