package maze

import (
	"fmt"
)

// An ordered list of cells leading from a maze's start to its end, both
// included.
type Path []Coordinate

// Finds the shortest path from the grid's start to its end using a
// breadth-first search. In a perfect maze this is also the only path. Does
// not modify the grid.
func Solve(g *Grid) (Path, error) {
	start := g.Start()
	end := g.End()
	// Maps each discovered cell to the cell it was discovered from.
	parents := make(map[Coordinate]Coordinate, len(g.cells))
	parents[start] = start
	queue := make([]Coordinate, 0, len(g.cells))
	queue = append(queue, start)
	for len(queue) != 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.PossibleMoves(current) {
			if _, seen := parents[next]; seen {
				continue
			}
			parents[next] = current
			queue = append(queue, next)
		}
	}
	if _, found := parents[end]; !found {
		return nil, NewError(ErrCodePathNotFound, "end %s is not reachable "+
			"from start %s", end, start)
	}

	// Follow the chain of parents back from the end, then reverse it.
	toReturn := make(Path, 0, 16)
	current := end
	for current != start {
		toReturn = append(toReturn, current)
		current = parents[current]
	}
	toReturn = append(toReturn, start)
	for i, j := 0, len(toReturn)-1; i < j; i, j = i+1, j-1 {
		toReturn[i], toReturn[j] = toReturn[j], toReturn[i]
	}
	return toReturn, nil
}

// Returns true if the path visits c.
func (p Path) Contains(c Coordinate) bool {
	for _, v := range p {
		if v == c {
			return true
		}
	}
	return false
}

// Checks that p is a valid solution of g: it runs from start to end without
// repeating a cell, and each step goes through an open passage. Intended for
// paths loaded from outside the solver.
func (p Path) Validate(g *Grid) error {
	if len(p) == 0 {
		return NewError(ErrCodeInvalidEncoding, "the path is empty")
	}
	if p[0] != g.Start() {
		return NewError(ErrCodeInvalidEncoding, "the path starts at %s, not "+
			"%s", p[0], g.Start())
	}
	if p[len(p)-1] != g.End() {
		return NewError(ErrCodeInvalidEncoding, "the path ends at %s, not %s",
			p[len(p)-1], g.End())
	}
	visited := make(map[Coordinate]bool, len(p))
	for i, c := range p {
		if !g.InBounds(c) {
			return NewError(ErrCodeInvalidEncoding, "step %d: %s is out of "+
				"bounds", i, c)
		}
		if visited[c] {
			return NewError(ErrCodeInvalidEncoding, "step %d: %s repeats an "+
				"earlier step", i, c)
		}
		visited[c] = true
		if i == 0 {
			continue
		}
		e := checkStep(g, p[i-1], c)
		if e != nil {
			return WrapError(ErrCodeInvalidEncoding, e, "step %d", i)
		}
	}
	return nil
}

// Returns an error unless a and b are adjacent and joined by a passage.
func checkStep(g *Grid, a, b Coordinate) error {
	if !a.Adjacent(b) {
		return fmt.Errorf("%s and %s aren't adjacent", a, b)
	}
	for _, d := range g.PossibleDirections(a) {
		if a.Step(d) != b {
			continue
		}
		if g.cell(a).Side(d) != Passage {
			return fmt.Errorf("a wall separates %s and %s", a, b)
		}
		return nil
	}
	return fmt.Errorf("%s and %s aren't adjacent", a, b)
}
