package engine

// ChooseAIDirection selects the heading a greedy single-step player would
// take: among the in-bounds, collision-free neighbor cells, the one closest
// to the food by Euclidean distance. Candidates are evaluated in the order
// up, down, left, right and ties keep the earlier candidate (strict
// less-than comparison).
//
// The current direction is returned unchanged when the game is over or when
// no neighbor is survivable; in the latter case the next Step legitimately
// ends the game. Selection does not advance the simulation - callers apply
// the result via SetDirection and a Step/Tick of their own.
func (gs *GameState) ChooseAIDirection() Direction {
	if gs.GameOver {
		return gs.Direction
	}

	head := gs.Head()
	best := gs.Direction
	bestDistance := -1

	for _, dir := range Directions {
		candidate := dir.Offset(head)
		if !gs.InBounds(candidate) || gs.OnSnake(candidate) {
			continue
		}
		// Squared distance preserves the Euclidean ordering and keeps
		// the comparison in integers.
		distance := squaredDistance(candidate, gs.Food)
		if bestDistance == -1 || distance < bestDistance {
			bestDistance = distance
			best = dir
		}
	}

	return best
}

func squaredDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
