package engine

import "testing"

func TestAIMovesTowardFood(t *testing.T) {
	// Food directly below the head with all four neighbors free: down is
	// strictly closest.
	state := &GameState{
		Snake:     []Point{{X: 2, Y: 2}},
		Food:      Point{X: 2, Y: 4},
		Direction: Right,
		Width:     5,
		Height:    5,
	}

	if dir := state.ChooseAIDirection(); dir != Down {
		t.Fatalf("Expected down, got %q", dir)
	}

	// Applying the choice and ticking moves the head down without ending
	// the game.
	state.Direction = Down
	if err := state.Step(testRNG()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if state.GameOver {
		t.Error("Game should not be over")
	}
	if state.Head() != (Point{X: 2, Y: 3}) {
		t.Errorf("Expected head at (2,3), got %v", state.Head())
	}
}

func TestAITieBreakKeepsEvaluationOrder(t *testing.T) {
	// Head at (2,2), food at (2,2)'s diagonal (3,3): down and right are
	// equally close. The strict less-than comparison keeps the earlier
	// candidate in up, down, left, right order.
	state := &GameState{
		Snake:     []Point{{X: 2, Y: 2}},
		Food:      Point{X: 3, Y: 3},
		Direction: Left,
		Width:     5,
		Height:    5,
	}

	if dir := state.ChooseAIDirection(); dir != Down {
		t.Errorf("Expected tie to resolve to down, got %q", dir)
	}
}

func TestAIAvoidsBodyAndWalls(t *testing.T) {
	// Head in the corner with the body blocking the right: only down is
	// survivable even though right is closer to the food.
	state := &GameState{
		Snake:     []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		Food:      Point{X: 4, Y: 0},
		Direction: Left,
		Width:     5,
		Height:    5,
	}

	if dir := state.ChooseAIDirection(); dir != Down {
		t.Errorf("Expected down (only valid move), got %q", dir)
	}
}

func TestAITrappedKeepsDirection(t *testing.T) {
	// Head boxed in by walls and its own body: no candidate is valid, the
	// current direction is kept and the next tick ends the game.
	state := &GameState{
		Snake: []Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Food:      Point{X: 3, Y: 3},
		Direction: Left,
		Width:     5,
		Height:    5,
	}

	if dir := state.ChooseAIDirection(); dir != Left {
		t.Errorf("Expected unchanged direction left, got %q", dir)
	}

	if err := state.Step(testRNG()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !state.GameOver {
		t.Error("Trapped snake should die on the next tick")
	}
}

func TestAIGameOverIsNoOp(t *testing.T) {
	state := &GameState{
		Snake:     []Point{{X: 2, Y: 2}},
		Food:      Point{X: 2, Y: 4},
		Direction: Right,
		GameOver:  true,
		Width:     5,
		Height:    5,
	}

	if dir := state.ChooseAIDirection(); dir != Right {
		t.Errorf("Expected unchanged direction right, got %q", dir)
	}
}
