package engine

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when food placement finds no free cell. Normal
// play cannot reach this state: the snake collides with itself before it can
// cover the board, so Step ends the game first.
var ErrBoardFull = errors.New("no free cell for food")

// Step advances the simulation by exactly one cell along the current
// direction. Once the game is over it is a no-op.
//
// The decision order is fixed: bounds check, then self-collision against the
// full pre-move body (including the current tail), then eat-or-move. An
// out-of-bounds or colliding head is never stored.
func (gs *GameState) Step(rng *rand.Rand) error {
	if gs.GameOver {
		return nil
	}

	newHead := gs.Direction.Offset(gs.Head())

	// Wall collision
	if !gs.InBounds(newHead) {
		gs.GameOver = true
		return nil
	}

	// Self collision. The tail has not been removed yet, so biting the
	// current tail cell is fatal as well.
	if gs.OnSnake(newHead) {
		gs.GameOver = true
		return nil
	}

	gs.Snake = append([]Point{newHead}, gs.Snake...)

	if newHead == gs.Food {
		gs.Score++
		return gs.PlaceFood(rng)
	}

	// No food eaten: drop the tail to keep the body length constant.
	gs.Snake = gs.Snake[:len(gs.Snake)-1]
	return nil
}

// PlaceFood places food on a uniformly random cell not occupied by the
// snake. Draws are capped at MaxFoodAttempts; after that a linear scan picks
// among the remaining free cells so the call stays bounded even on a nearly
// full board.
func (gs *GameState) PlaceFood(rng *rand.Rand) error {
	for i := 0; i < MaxFoodAttempts; i++ {
		candidate := Point{X: rng.Intn(gs.Width), Y: rng.Intn(gs.Height)}
		if !gs.OnSnake(candidate) {
			gs.Food = candidate
			return nil
		}
	}

	var free []Point
	for y := 0; y < gs.Height; y++ {
		for x := 0; x < gs.Width; x++ {
			p := Point{X: x, Y: y}
			if !gs.OnSnake(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	gs.Food = free[rng.Intn(len(free))]
	return nil
}
