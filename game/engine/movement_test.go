package engine

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestStepEatsFood(t *testing.T) {
	// 5x5 board, snake at (2,2) heading right, food at (4,2).
	state := &GameState{
		Snake:     []Point{{X: 2, Y: 2}},
		Food:      Point{X: 4, Y: 2},
		Direction: Right,
		Width:     5,
		Height:    5,
	}
	rng := testRNG()

	if err := state.Step(rng); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if state.Head() != (Point{X: 3, Y: 2}) {
		t.Errorf("Expected head at (3,2), got %v", state.Head())
	}
	if len(state.Snake) != 1 {
		t.Errorf("Expected length 1 before eating, got %d", len(state.Snake))
	}

	if err := state.Step(rng); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if state.Head() != (Point{X: 4, Y: 2}) {
		t.Errorf("Expected head at (4,2), got %v", state.Head())
	}
	if state.Score != 1 {
		t.Errorf("Expected score 1, got %d", state.Score)
	}
	if len(state.Snake) != 2 {
		t.Errorf("Expected length 2 after eating, got %d", len(state.Snake))
	}
	if state.OnSnake(state.Food) {
		t.Errorf("Respawned food %v is on the snake", state.Food)
	}
}

func TestStepWallCollision(t *testing.T) {
	// 3x3 board, snake at (1,1) heading up: one step to (1,0) is fine, the
	// next would leave the board.
	state := &GameState{
		Snake:     []Point{{X: 1, Y: 1}},
		Food:      Point{X: 0, Y: 2},
		Direction: Up,
		Width:     3,
		Height:    3,
	}
	rng := testRNG()

	if err := state.Step(rng); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if state.Head() != (Point{X: 1, Y: 0}) {
		t.Errorf("Expected head at (1,0), got %v", state.Head())
	}
	if state.GameOver {
		t.Fatal("Game should not be over yet")
	}

	foodBefore := state.Food
	scoreBefore := state.Score

	if err := state.Step(rng); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !state.GameOver {
		t.Fatal("Game should be over after leaving the board")
	}

	// Everything except the terminal flag is unchanged by the failed step.
	if state.Head() != (Point{X: 1, Y: 0}) {
		t.Errorf("Out-of-bounds head must not be stored, head is %v", state.Head())
	}
	if len(state.Snake) != 1 {
		t.Errorf("Body must be unchanged, length is %d", len(state.Snake))
	}
	if state.Food != foodBefore || state.Score != scoreBefore {
		t.Error("Food and score must be unchanged by a fatal step")
	}
}

func TestStepSelfCollision(t *testing.T) {
	// Snake occupying (1,1),(1,2),(1,3) with the head at (1,1), forced into
	// an immediate reversal: the new head (1,2) is the snake's own neck.
	state := &GameState{
		Snake:     []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
		Food:      Point{X: 4, Y: 4},
		Direction: Down,
		Width:     5,
		Height:    5,
	}

	if err := state.Step(testRNG()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !state.GameOver {
		t.Fatal("Reversal into the body should end the game")
	}
	if len(state.Snake) != 3 {
		t.Errorf("Body must be unchanged by a fatal step, length is %d", len(state.Snake))
	}
}

func TestStepTailIsFatal(t *testing.T) {
	// The tail has not moved out of the way when the head arrives, so a
	// head-to-current-tail move is a collision.
	state := &GameState{
		Snake: []Point{
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3},
		},
		Food:      Point{X: 0, Y: 0},
		Direction: Down, // new head (2,3) is the current tail
		Width:     5,
		Height:    5,
	}

	if err := state.Step(testRNG()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !state.GameOver {
		t.Error("Moving onto the current tail cell should end the game")
	}
}

func TestStepGameOverIsIdempotent(t *testing.T) {
	state := &GameState{
		Snake:     []Point{{X: 0, Y: 0}},
		Food:      Point{X: 2, Y: 2},
		Direction: Left,
		Width:     3,
		Height:    3,
	}
	rng := testRNG()

	if err := state.Step(rng); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !state.GameOver {
		t.Fatal("Game should be over")
	}

	snapshot, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := state.Step(rng); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		state.ChooseAIDirection()
	}

	after, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(snapshot) != string(after) {
		t.Errorf("Terminal state mutated:\n before %s\n after  %s", snapshot, after)
	}
}

func TestStepInvariants(t *testing.T) {
	// Run a long random-ish game and check the body invariants after every
	// step while the game is active.
	engine, err := NewEngineWithSeed(&GameConfig{Name: "inv", Width: 8, Height: 8}, 7)
	if err != nil {
		t.Fatalf("NewEngineWithSeed failed: %v", err)
	}

	prevLen := len(engine.GetState().Snake)
	prevScore := engine.GetScore()

	for i := 0; i < 500 && !engine.IsGameOver(); i++ {
		engine.SetDirection(engine.AIDirection())
		if err := engine.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		state := engine.GetState()
		if state.GameOver {
			break
		}

		seen := make(map[Point]bool)
		for _, seg := range state.Snake {
			if !state.InBounds(seg) {
				t.Fatalf("Segment %v out of bounds at tick %d", seg, i)
			}
			if seen[seg] {
				t.Fatalf("Duplicate segment %v at tick %d", seg, i)
			}
			seen[seg] = true
		}
		if state.OnSnake(state.Food) {
			t.Fatalf("Food %v on snake at tick %d", state.Food, i)
		}

		// Growth law: length never decreases; eating grows body and
		// score by exactly one, together.
		growth := len(state.Snake) - prevLen
		scored := state.Score - prevScore
		if growth != scored || growth < 0 || growth > 1 {
			t.Fatalf("Growth law violated at tick %d: length delta %d, score delta %d",
				i, growth, scored)
		}
		prevLen = len(state.Snake)
		prevScore = state.Score
	}
}

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	// 2x2 board with three cells occupied: only (1,1) is free.
	state := &GameState{
		Snake:  []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Width:  2,
		Height: 2,
	}

	if err := state.PlaceFood(testRNG()); err != nil {
		t.Fatalf("PlaceFood failed: %v", err)
	}
	if state.Food != (Point{X: 1, Y: 1}) {
		t.Errorf("Expected food at the only free cell (1,1), got %v", state.Food)
	}
}

func TestPlaceFoodBoardFull(t *testing.T) {
	state := &GameState{
		Snake:  []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Width:  2,
		Height: 2,
	}

	err := state.PlaceFood(testRNG())
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}
