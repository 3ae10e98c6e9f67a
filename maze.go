// This defines a library for generating 2D "perfect" mazes: rectangular grids
// in which every cell is reachable from every other cell along exactly one
// route. Mazes are carved using Wilson's algorithm, can be solved with a
// breadth-first search, and can be rasterized using the raster subpackage.
package maze

import (
	"fmt"
)

// Indicates whether one side of a cell is closed off or open to its neighbor.
type WallState uint8

const (
	Wall WallState = iota
	Passage
)

func (s WallState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "path"
	}
	return fmt.Sprintf("Unknown WallState: %d", uint8(s))
}

// One of the four cardinal directions. Blank is the zero value, and is never
// a valid direction to move in.
type Direction uint8

const (
	Blank Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Blank:
		return "blank"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Unknown Direction: %d", uint8(d))
}

// Returns the direction pointing the other way. Blank stays Blank.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return Blank
}

// A cell position in the grid. X is the column and Y is the row, both
// 0-indexed starting from the top-left corner.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Returns the coordinate one step away in the given direction. Does not check
// any bounds.
func (c Coordinate) Step(d Direction) Coordinate {
	switch d {
	case Up:
		c.Y--
	case Right:
		c.X++
	case Down:
		c.Y++
	case Left:
		c.X--
	}
	return c
}

// Returns true if other is exactly one step away from c along a single axis.
func (c Coordinate) Adjacent(other Coordinate) bool {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return (dx + dy) == 1
}

// A single cell of the grid. A side's state must always match the facing side
// of the neighboring cell; use Grid.Carve to open passages so this holds.
type Cell struct {
	Top    WallState `json:"top"`
	Right  WallState `json:"right"`
	Bottom WallState `json:"bottom"`
	Left   WallState `json:"left"`
	// Set once the cell has been joined to the spanning tree.
	InMaze bool `json:"in_maze"`
}

// Returns the state of the cell's side facing the given direction. Blank is
// always reported as a Wall.
func (c *Cell) Side(d Direction) WallState {
	switch d {
	case Up:
		return c.Top
	case Right:
		return c.Right
	case Down:
		return c.Bottom
	case Left:
		return c.Left
	}
	return Wall
}

func (c *Cell) setSide(d Direction, s WallState) {
	switch d {
	case Up:
		c.Top = s
	case Right:
		c.Right = s
	case Down:
		c.Bottom = s
	case Left:
		c.Left = s
	}
}

// Holds the cells of a width x height maze, stored in row-major order. The
// dimensions never change after NewGrid returns. Create using NewGrid.
type Grid struct {
	// Width and height are numbers of cells
	width  int
	height int
	cells  []Cell
	start  Coordinate
	end    Coordinate
}

// Returns a grid in which every side of every cell is a wall and no cell is
// part of the maze yet. Start is the top-left cell and end is the bottom-right
// one.
func NewGrid(width, height int) (*Grid, error) {
	if (width < 1) || (height < 1) {
		return nil, NewError(ErrCodeInvalidDimensions,
			"width and height must be at least 1, got %dx%d", width, height)
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || ((cellCount / width) != height) {
		return nil, NewError(ErrCodeInvalidDimensions,
			"the maze's size (%dx%d) was too big", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, cellCount),
		start:  Coordinate{0, 0},
		end:    Coordinate{width - 1, height - 1},
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Start() Coordinate {
	return g.start
}

func (g *Grid) End() Coordinate {
	return g.end
}

// Returns true if the coordinate refers to a cell in the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return (c.X >= 0) && (c.Y >= 0) && (c.X < g.width) && (c.Y < g.height)
}

// Returns a mutable pointer to the cell at c. The coordinate must be in
// bounds.
func (g *Grid) cell(c Coordinate) *Cell {
	return &(g.cells[c.Y*g.width+c.X])
}

// Returns a copy of the cell at the given coordinate. Panics if the
// coordinate is out of bounds, like a slice index would.
func (g *Grid) Cell(c Coordinate) Cell {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: cell %s out of bounds for %dx%d grid", c,
			g.width, g.height))
	}
	return *g.cell(c)
}

// Returns the directions that stay inside the grid when stepping from c. The
// order is always left, up, right, down, skipping any that leave the grid.
func (g *Grid) PossibleDirections(c Coordinate) []Direction {
	toReturn := make([]Direction, 0, 4)
	if c.X > 0 {
		toReturn = append(toReturn, Left)
	}
	if c.Y > 0 {
		toReturn = append(toReturn, Up)
	}
	if c.X < (g.width - 1) {
		toReturn = append(toReturn, Right)
	}
	if c.Y < (g.height - 1) {
		toReturn = append(toReturn, Down)
	}
	return toReturn
}

// Returns every neighbor that can be reached from c through an open passage.
func (g *Grid) PossibleMoves(c Coordinate) []Coordinate {
	cell := g.cell(c)
	toReturn := make([]Coordinate, 0, 4)
	for _, d := range g.PossibleDirections(c) {
		if cell.Side(d) == Passage {
			toReturn = append(toReturn, c.Step(d))
		}
	}
	return toReturn
}

// Opens the passage between c and its neighbor in direction d, on both sides
// of the shared edge.
func (g *Grid) Carve(c Coordinate, d Direction) error {
	if !g.InBounds(c) {
		return fmt.Errorf("can't carve from %s: out of bounds", c)
	}
	if d == Blank {
		return fmt.Errorf("can't carve from %s: no direction given", c)
	}
	dst := c.Step(d)
	if !g.InBounds(dst) {
		return fmt.Errorf("can't carve %s from %s: leaves the grid", d, c)
	}
	g.cell(c).setSide(d, Passage)
	g.cell(dst).setSide(d.Opposite(), Passage)
	return nil
}

// Returns the number of open passages between pairs of cells. A fully
// generated maze has exactly width*height - 1.
func (g *Grid) PassageCount() int {
	count := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			// Only count right and bottom sides so each edge is seen once.
			cell := g.cell(Coordinate{col, row})
			if (col < (g.width - 1)) && (cell.Right == Passage) {
				count++
			}
			if (row < (g.height - 1)) && (cell.Bottom == Passage) {
				count++
			}
		}
	}
	return count
}

// Returns true once every cell has been joined to the maze.
func (g *Grid) Complete() bool {
	for i := range g.cells {
		if !g.cells[i].InMaze {
			return false
		}
	}
	return true
}

// Returns a human-readable summary of the grid, for debug output.
func (g *Grid) GetInfo() string {
	return fmt.Sprintf("%dx%d grid maze with %d passages, start %s, end %s",
		g.width, g.height, g.PassageCount(), g.start, g.end)
}

// Checks that every shared edge has the same state on both sides and that no
// passage leads off the edge of the grid.
func (g *Grid) checkWalls() error {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Coordinate{col, row}
			cell := g.cell(c)
			for _, d := range []Direction{Up, Right, Down, Left} {
				dst := c.Step(d)
				if !g.InBounds(dst) {
					if cell.Side(d) != Wall {
						return fmt.Errorf("cell %s has an open %s side on "+
							"the edge of the grid", c, d)
					}
					continue
				}
				if cell.Side(d) != g.cell(dst).Side(d.Opposite()) {
					return fmt.Errorf("cell %s %s side doesn't match "+
						"neighbor %s", c, d, dst)
				}
			}
		}
	}
	return nil
}
