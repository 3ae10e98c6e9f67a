package maze

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Selects the algorithm used to carve a maze.
type Algorithm uint8

const (
	// Wilson's algorithm: loop-erased random walks, producing a spanning tree
	// chosen uniformly at random among all spanning trees of the grid.
	Wilson Algorithm = iota
	// Reserved for a second generator. Not implemented yet.
	Other
)

func (a Algorithm) String() string {
	switch a {
	case Wilson:
		return "wilson"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Unknown Algorithm: %d", uint8(a))
}

// Converts a name such as "wilson" to an Algorithm. Case-insensitive; the
// empty string selects Wilson.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wilson":
		return Wilson, nil
	case "other":
		return Other, nil
	}
	return Wilson, NewError(ErrCodeUnsupported, "unknown algorithm %q", name)
}

// Carves passages into a freshly created grid until every cell is part of a
// single spanning tree. The grid must not have been generated before. All
// randomness is drawn from rng.
func (a Algorithm) Generate(g *Grid, rng *rand.Rand) error {
	if g.cell(g.start).InMaze {
		return NewError(ErrCodeGenerationInvariant,
			"the grid has already been generated")
	}
	switch a {
	case Wilson:
		return generateWilson(g, rng)
	case Other:
		return NewError(ErrCodeUnsupported, "the %s algorithm is reserved "+
			"but not implemented", a)
	}
	return NewError(ErrCodeUnsupported, "unknown algorithm %d", uint8(a))
}

// Generates a Wilson's-algorithm maze. If the given RNG seed is not positive,
// a new seed will be selected based on the current time in nanoseconds. The
// seed actually used is returned alongside the grid.
func NewMaze(width, height int, seed int64) (*Grid, int64, error) {
	return NewMazeWithAlgorithm(width, height, seed, Wilson)
}

// Same as NewMaze, but using the given algorithm.
func NewMazeWithAlgorithm(width, height int, seed int64,
	a Algorithm) (*Grid, int64, error) {
	g, e := NewGrid(width, height)
	if e != nil {
		return nil, 0, e
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	e = a.Generate(g, rand.New(rand.NewSource(seed)))
	if e != nil {
		return nil, seed, fmt.Errorf("error generating maze: %w", e)
	}
	return g, seed, nil
}

// Records, for each cell visited by the current random walk, the direction
// most recently taken out of it. Revisiting a cell overwrites its entry, which
// is what erases loops. Discarded once the walk has been committed.
type walkDirections map[Coordinate]Direction

func generateWilson(g *Grid, rng *rand.Rand) error {
	remaining := g.width*g.height - 1
	g.cell(g.start).InMaze = true
	next := g.start
	for remaining > 0 {
		// Find the next cell, in row-major order, that isn't in the tree.
		for {
			if next.Y >= g.height {
				return NewError(ErrCodeGenerationInvariant, "exceeded maze "+
					"range with %d cells still remaining", remaining)
			}
			if !g.cell(next).InMaze {
				break
			}
			next.X++
			if next.X >= g.width {
				next.X = 0
				next.Y++
			}
		}
		walk := randomWalk(g, next, rng)
		count, e := commitWalk(g, next, walk)
		if e != nil {
			return e
		}
		remaining -= count
	}
	return nil
}

// Walks randomly from start until reaching any cell already in the maze.
func randomWalk(g *Grid, start Coordinate, rng *rand.Rand) walkDirections {
	walk := make(walkDirections)
	current := start
	for !g.cell(current).InMaze {
		possible := g.PossibleDirections(current)
		d := possible[rng.Intn(len(possible))]
		walk[current] = d
		current = current.Step(d)
	}
	return walk
}

// Follows the recorded directions from start, carving passages and adding
// each cell to the maze, until reaching a cell that was already in the maze.
// Returns the number of cells added.
func commitWalk(g *Grid, start Coordinate, walk walkDirections) (int, error) {
	current := start
	count := 0
	for !g.cell(current).InMaze {
		d := walk[current]
		if d == Blank {
			return count, NewError(ErrCodeGenerationInvariant,
				"no direction recorded for cell %s", current)
		}
		e := g.Carve(current, d)
		if e != nil {
			return count, WrapError(ErrCodeGenerationInvariant, e,
				"failed following walk")
		}
		g.cell(current).InMaze = true
		current = current.Step(d)
		count++
	}
	return count, nil
}
