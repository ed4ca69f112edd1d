package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	borderCorner     = '+'
	borderHorizontal = '-'
	borderVertical   = '|'

	macosClearCmd = "clear"
)

// Render draws the grid inside a +-| border, '#' for living cells and ' ' for dead ones.
func Render(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.width + 3) * (g.height + 2))

	writeBorder(&sb, g.width)
	for y := range g.height {
		sb.WriteByte(borderVertical)
		for _, c := range g.cells[g.index(0, y):g.index(g.width, y)] {
			sb.WriteByte(c.Char())
		}
		sb.WriteByte(borderVertical)
		sb.WriteByte('\n')
	}
	writeBorder(&sb, g.width)

	return sb.String()
}

func writeBorder(sb *strings.Builder, width int) {
	sb.WriteByte(borderCorner)
	for range width {
		sb.WriteByte(borderHorizontal)
	}
	sb.WriteByte(borderCorner)
	sb.WriteByte('\n')
}

// TerminalRenderer prints rendered grids to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.Out, Render(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
