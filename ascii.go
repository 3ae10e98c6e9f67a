package maze

import (
	"strings"
)

// Returns a plain-text drawing of the maze, using '+' for corners, '-' and
// '|' for walls, with one text row per row of cells plus one for the walls
// beneath it.
func (g *Grid) String() string {
	return g.ASCII(nil, nil)
}

// Like String, but cells on the given path are marked with a '*'. If
// highlight is non-nil, it's applied to each marker, e.g. to add terminal
// colors.
func (g *Grid) ASCII(path Path, highlight func(string) string) string {
	onPath := make(map[Coordinate]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	marker := " * "
	if highlight != nil {
		marker = " " + highlight("*") + " "
	}

	var sb strings.Builder
	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for row := 0; row < g.height; row++ {
		// Cell row
		sb.WriteString("|")
		for col := 0; col < g.width; col++ {
			c := Coordinate{col, row}
			if onPath[c] {
				sb.WriteString(marker)
			} else {
				sb.WriteString("   ")
			}
			if g.cell(c).Right == Passage {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		// Wall row
		sb.WriteString("+")
		for col := 0; col < g.width; col++ {
			if g.cell(Coordinate{col, row}).Bottom == Passage {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
