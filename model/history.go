package model

import (
	"crypto/md5"
	"fmt"
)

// DefaultHistoryDepth is how many past states History remembers by default
const DefaultHistoryDepth = 5

// History remembers hashes of recent grid states to detect still lifes and
// short oscillators.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a history keeping the last depth states
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Hash returns an MD5 hash of the grid shape and state
func Hash(g *Grid) string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for _, c := range g.cells {
		if c.IsAlive() {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// IsStagnant reports whether g repeats one of the remembered states, then
// records it. Oscillators with a period up to the history depth are caught.
func (h *History) IsStagnant(g *Grid) bool {
	current := Hash(g)

	stagnant := false
	for _, seen := range h.hashes {
		if seen == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets every remembered state
func (h *History) Reset() {
	h.hashes = nil
}
