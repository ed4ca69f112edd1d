package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-world/model"
	"github.com/sheikhrachel/go-gol-world/utils"
)

var (
	configFile = flag.String("config", "config.json", "Path to the JSON configuration file")
	seedFile   = flag.String("seed", "", "Grid file to start from, overrides the configured pattern")
	steps      = flag.Int("steps", -1, "Stop after this many generations, overrides max_generations")
	toroidal   = flag.Bool("toroidal", true, "Wrap neighbours around the grid edges")
	saveFile   = flag.String("save", "", "Write the final generation to this file")
	quiet      = flag.Bool("quiet", false, "Only print the final generation, without frame delays")
)

// applyFlags overrides configuration values with flags set on the command line
func applyFlags(config utils.Config) utils.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.SeedFile = *seedFile
			config.AutoRestart = false
		case "steps":
			config.MaxGenerations = *steps
		case "toroidal":
			config.Toroidal = *toroidal
		case "save":
			config.SaveFile = *saveFile
		}
	})
	return config
}

func main() {
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	config = applyFlags(config)
	if err = config.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %+v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	world, pool, renderer, stats, err := initializeGame(config, rng)
	if err != nil {
		fmt.Printf("Failed to start: %+v\n", err)
		os.Exit(1)
	}

	if *quiet {
		if err = world.Advance(config.MaxGenerations, config.Toroidal); err != nil {
			fmt.Printf("Failed to advance: %+v\n", err)
			os.Exit(1)
		}
		finish(config, world, renderer)
		return
	}

	displayGameInfo(config, world)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		history        = model.NewHistory(model.DefaultHistoryDepth)
	)

loop:
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			break loop
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		state := world.State()
		livingCells, density, status, isStagnant := updateGameState(state, generation, lastFrameTime, stats, history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(state)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			restarted, err := restartGame(world, config, pool, rng)
			if err != nil {
				fmt.Printf("Failed to restart: %+v\n", err)
				break
			}
			world = restarted
			history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			injectRandomLife(world, config.InjectionCount, rng)
		}

		world.Step(config.Toroidal)
		generation++

		time.Sleep(config.FrameRate)
	}

	finish(config, world, nil)
}

// finish prints the last generation when asked and saves it if configured
func finish(config utils.Config, world *model.World, renderer *model.TerminalRenderer) {
	state := world.State()
	if renderer != nil {
		renderer.Display(state)
	}
	if err := saveState(config, state); err != nil {
		fmt.Printf("Failed to save final state: %+v\n", err)
		os.Exit(1)
	}
}
