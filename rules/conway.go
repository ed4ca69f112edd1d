package rules

// BirthCount is the exact number of living neighbours that brings a dead cell to life.
const BirthCount = 3

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A living cell survives with two or three living neighbours, a dead cell is born with exactly three.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == BirthCount
}
