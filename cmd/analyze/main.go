// Command analyze runs seeded AI self-play games against each board
// configuration in the configs directory and prints score and survival
// statistics. It is a quick way to compare board difficulty and to sanity
// check the greedy heuristic after engine changes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mtmal/snake-server/game/engine"
)

var (
	configDir = flag.String("config-dir", "configs", "Directory containing board configurations")
	games     = flag.Int("games", 20, "Number of self-play games per board")
	maxTicks  = flag.Int("max-ticks", 10000, "Tick budget per game before it is cut off")
)

// GameResult captures one finished self-play game.
type GameResult struct {
	Score  int
	Length int
	Ticks  int
}

// BoardStats aggregates self-play results for one board configuration.
type BoardStats struct {
	Config   *engine.GameConfig
	Games    int
	Results  []GameResult
	AvgScore float64
	MaxScore int
	AvgTicks float64
}

func main() {
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Printf("No board configurations found in %s\n", *configDir)
		os.Exit(1)
	}

	for _, file := range files {
		config, err := loadConfig(file)
		if err != nil {
			fmt.Printf("\n=== %s ===\nError: %v\n", filepath.Base(file), err)
			continue
		}

		fmt.Printf("\n=== Analyzing %s (%dx%d) ===\n", config.Name, config.Width, config.Height)
		stats := analyzeBoard(config, *games, *maxTicks)
		printStats(stats)
	}
}

func loadConfig(path string) (*engine.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// analyzeBoard runs games seeded self-play matches on the board and
// aggregates the outcomes. Seeds are sequential so runs are reproducible.
func analyzeBoard(config *engine.GameConfig, games, maxTicks int) BoardStats {
	stats := BoardStats{
		Config: config,
		Games:  games,
	}

	totalScore := 0
	totalTicks := 0

	for seed := 0; seed < games; seed++ {
		result := playGame(config, int64(seed), maxTicks)
		stats.Results = append(stats.Results, result)

		totalScore += result.Score
		totalTicks += result.Ticks
		if result.Score > stats.MaxScore {
			stats.MaxScore = result.Score
		}
	}

	if games > 0 {
		stats.AvgScore = float64(totalScore) / float64(games)
		stats.AvgTicks = float64(totalTicks) / float64(games)
	}

	return stats
}

// playGame runs one self-play game: each tick the engine's heuristic picks
// a direction and the simulation advances, until game over or the tick
// budget runs out.
func playGame(config *engine.GameConfig, seed int64, maxTicks int) GameResult {
	eng, err := engine.NewEngineWithSeed(config, seed)
	if err != nil {
		return GameResult{}
	}

	ticks := 0
	for !eng.IsGameOver() && ticks < maxTicks {
		eng.SetDirection(eng.AIDirection())
		if err := eng.Tick(); err != nil {
			break
		}
		ticks++
	}

	state := eng.GetState()
	return GameResult{
		Score:  state.Score,
		Length: len(state.Snake),
		Ticks:  ticks,
	}
}

func printStats(stats BoardStats) {
	fmt.Printf("Games: %d\n", stats.Games)
	fmt.Printf("Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("Max score: %d\n", stats.MaxScore)
	fmt.Printf("Average survival: %.0f ticks\n", stats.AvgTicks)

	// Distribution of final lengths helps spot boards where the greedy
	// heuristic traps itself early.
	lengths := make([]int, len(stats.Results))
	for i, r := range stats.Results {
		lengths[i] = r.Length
	}
	sort.Ints(lengths)
	if len(lengths) > 0 {
		fmt.Printf("Final length: min=%d median=%d max=%d\n",
			lengths[0], lengths[len(lengths)/2], lengths[len(lengths)-1])
	}
}
