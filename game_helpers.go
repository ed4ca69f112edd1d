package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-world/model"
	"github.com/sheikhrachel/go-gol-world/utils"
	"github.com/sheikhrachel/go-gol-world/zoo"
)

// periodicRefresh restarts long running games every this many generations
const periodicRefresh = 200

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	*model.World,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seed, err := seedGrid(config, rng)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	world := model.NewWorldFromGrid(seed, worldOptions(config, pool)...)

	return world, pool, model.NewTerminalRenderer(), utils.NewStats(), nil
}

func worldOptions(config utils.Config, pool *model.GridPool) []model.Option {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if pool != nil {
		opts = append(opts, model.WithPool(pool))
	}
	return opts
}

// seedGrid builds the starting grid from a seed file, a named pattern or random life
func seedGrid(config utils.Config, rng *rand.Rand) (*model.Grid, error) {
	if config.SeedFile != "" {
		if config.SeedFormat == utils.SeedFormatBinary {
			return zoo.LoadBinary(config.SeedFile)
		}
		return zoo.LoadASCII(config.SeedFile)
	}

	if config.Pattern == zoo.PatternRandom || config.Pattern == "" {
		return zoo.Random(config.Width, config.Height, config.RandomDensity, rng)
	}

	pattern, err := zoo.Lookup(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[seedGrid]")
	}
	return centered(pattern, config.Width, config.Height)
}

// centered places pattern in the middle of a width x height grid, growing
// the grid when the pattern does not fit.
func centered(pattern *model.Grid, width, height int) (*model.Grid, error) {
	width, height = max(width, pattern.Width()), max(height, pattern.Height())
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[centered]")
	}
	x0, y0 := (width-pattern.Width())/2, (height-pattern.Height())/2
	if err = grid.Merge(pattern, x0, y0, false); err != nil {
		return nil, errors.Wrap(err, "[centered]")
	}
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Features: Memory Pool: %v, Toroidal: %v, Workers: %d\n",
		config.UseMemoryPool, config.Toroidal, config.Workers)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		world.Width(), world.Height(), world.AliveCount())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(
	state *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *model.History,
) (int, float64, string, bool) {
	livingCells := state.AliveCount()
	density := 0.0
	if total := state.TotalCells(); total > 0 {
		density = float64(livingCells) / float64(total) * 100
	}

	stats.Update(generation, state, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(state)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, density, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a fresh world from the configured seed, handing the old
// world's buffers back to the pool once the new seed is ready
func restartGame(old *model.World, config utils.Config, pool *model.GridPool, rng *rand.Rand) (*model.World, error) {
	fmt.Printf("\n🔄 Restarting...\n")

	seed, err := seedGrid(config, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame]")
	}

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", seed.AliveCount())
	old.Release()
	return model.NewWorldFromGrid(seed, worldOptions(config, pool)...), nil
}

// injectRandomLife brings count random cells to life to break stagnation
func injectRandomLife(world *model.World, count int, rng *rand.Rand) {
	if world.TotalCells() == 0 {
		return
	}
	for range count {
		// coordinates are drawn inside the world
		_ = world.Set(rng.Intn(world.Width()), rng.Intn(world.Height()), model.Alive)
	}
}

// saveState writes the final generation to the configured save file
func saveState(config utils.Config, state *model.Grid) error {
	if config.SaveFile == "" {
		return nil
	}
	if config.SeedFormat == utils.SeedFormatBinary {
		return zoo.SaveBinary(config.SaveFile, state)
	}
	return zoo.SaveASCII(config.SaveFile, state)
}
