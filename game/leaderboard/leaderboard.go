// Package leaderboard keeps the process-wide top-10 score table. Scores live
// only in process memory; the board is empty again after a restart.
package leaderboard

import (
	"sort"
	"sync"
)

// Capacity is the number of entries the board retains.
const Capacity = 10

// Entry represents a player's score submission
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board is a mutex-guarded top-N score table
type Board struct {
	entries []Entry
	mu      sync.Mutex
}

// NewBoard creates an empty leaderboard
func NewBoard() *Board {
	return &Board{}
}

// Submit records a score, keeps the board sorted by score descending, and
// truncates it to Capacity. It returns the resulting board.
func (b *Board) Submit(name string, score int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{Name: name, Score: score})

	// Stable sort keeps earlier submissions ahead on equal scores.
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})

	if len(b.entries) > Capacity {
		b.entries = b.entries[:Capacity]
	}

	return b.snapshot()
}

// Top returns a copy of the current board, best score first.
func (b *Board) Top() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshot()
}

func (b *Board) snapshot() []Entry {
	result := make([]Entry, len(b.entries))
	copy(result, b.entries)
	return result
}
