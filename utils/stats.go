package utils

import (
	"time"

	"github.com/sheikhrachel/go-gol-world/model"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	BoundingBoxSize      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a rendered generation and how long its frame took
func (s *Stats) Update(generation int, state *model.Grid, duration time.Duration) {
	s.TotalGenerations = generation
	population := state.AliveCount()
	if x0, y0, x1, y1, ok := state.BoundingBox(); ok {
		s.BoundingBoxSize = (x1 - x0) * (y1 - y0)
	} else {
		s.BoundingBoxSize = 0
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
