package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	maze "github.com/yalue/wilson_maze"
)

var (
	WallColor       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	BackgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	SolutionColor   = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Controls how a grid is drawn.
type Config struct {
	// The size of each cell in pixels, including its border pixels.
	// Neighboring cells share their border column or row.
	CellWidth  int
	CellHeight int
	// If set, the solution is drawn over the maze.
	DrawSolution bool
}

// Returns an error if the cell dimensions are below 1.
func (c Config) Validate() error {
	if (c.CellWidth < 1) || (c.CellHeight < 1) {
		return maze.NewError(maze.ErrCodeInvalidConfig, "cell size must be "+
			"at least 1x1, got %dx%d", c.CellWidth, c.CellHeight)
	}
	return nil
}

// Returns the size, in pixels, of the image Render produces for g.
func ImageSize(g *maze.Grid, c Config) (int, int) {
	return g.Width()*(c.CellWidth-1) + 1, g.Height()*(c.CellHeight-1) + 1
}

// Returns round(size * fraction), but never less than 1.
func thickness(size int, fraction float64) int {
	toReturn := int(math.Round(float64(size) * fraction))
	if toReturn < 1 {
		return 1
	}
	return toReturn
}

// Draws a single generated grid. Create using NewRenderer.
type Renderer struct {
	config Config
	grid   *maze.Grid
}

func NewRenderer(g *maze.Grid, c Config) (*Renderer, error) {
	e := c.Validate()
	if e != nil {
		return nil, e
	}
	return &Renderer{
		config: c,
		grid:   g,
	}, nil
}

// Returns the top-left pixel of the cell at the given coordinate. The
// bottom-right pixel is offset by (CellWidth - 1, CellHeight - 1).
func (r *Renderer) cellOrigin(c maze.Coordinate) image.Point {
	return image.Pt(c.X*(r.config.CellWidth-1), c.Y*(r.config.CellHeight-1))
}

// Returns the pixel at the middle of the cell at the given coordinate.
func (r *Renderer) cellCenter(c maze.Coordinate) image.Point {
	return r.cellOrigin(c).Add(image.Pt((r.config.CellWidth-1)/2,
		(r.config.CellHeight-1)/2))
}

func (r *Renderer) drawCell(canvas Canvas, c maze.Coordinate) {
	cell := r.grid.Cell(c)
	// Vertical walls scale with the cell's width, horizontal ones with its
	// height.
	verticalThickness := thickness(r.config.CellWidth, 0.1)
	horizontalThickness := thickness(r.config.CellHeight, 0.1)
	topLeft := r.cellOrigin(c)
	bottomRight := topLeft.Add(image.Pt(r.config.CellWidth-1,
		r.config.CellHeight-1))
	topRight := image.Pt(bottomRight.X, topLeft.Y)
	bottomLeft := image.Pt(topLeft.X, bottomRight.Y)
	if cell.Top == maze.Wall {
		DrawThickLine(canvas, topLeft, topRight, horizontalThickness,
			WallColor)
	}
	if cell.Left == maze.Wall {
		DrawThickLine(canvas, topLeft, bottomLeft, verticalThickness,
			WallColor)
	}
	if cell.Right == maze.Wall {
		DrawThickLine(canvas, topRight, bottomRight, verticalThickness,
			WallColor)
	}
	if cell.Bottom == maze.Wall {
		DrawThickLine(canvas, bottomLeft, bottomRight, horizontalThickness,
			WallColor)
	}
}

// Draws the path as a line through the centers of its cells.
func (r *Renderer) drawPath(canvas Canvas, path maze.Path) {
	size := thickness(r.config.CellWidth, 0.2)
	tmp := thickness(r.config.CellHeight, 0.2)
	if tmp > size {
		size = tmp
	}
	for i := 1; i < len(path); i++ {
		DrawThickLine(canvas, r.cellCenter(path[i-1]), r.cellCenter(path[i]),
			size, SolutionColor)
	}
}

// Rasterizes the grid. If the config asks for the solution, the maze is
// solved and the path drawn on top. If solving fails, the image of the maze
// without a solution is still returned, along with the solver's error. The
// grid must be fully generated.
func (r *Renderer) Build() (*image.RGBA, error) {
	w, h := ImageSize(r.grid, r.config)
	toReturn := image.NewRGBA(image.Rect(0, 0, w, h))
	canvas := RGBACanvas{toReturn}
	draw.Draw(toReturn, toReturn.Bounds(), image.NewUniform(BackgroundColor),
		image.Point{}, draw.Src)
	for row := 0; row < r.grid.Height(); row++ {
		for col := 0; col < r.grid.Width(); col++ {
			r.drawCell(canvas, maze.Coordinate{X: col, Y: row})
		}
	}
	if !r.config.DrawSolution {
		return toReturn, nil
	}
	path, e := maze.Solve(r.grid)
	if e != nil {
		return toReturn, fmt.Errorf("error drawing solution: %w", e)
	}
	r.drawPath(canvas, path)
	return toReturn, nil
}

// Shorthand for NewRenderer followed by Build.
func Render(g *maze.Grid, c Config) (*image.RGBA, error) {
	r, e := NewRenderer(g, c)
	if e != nil {
		return nil, e
	}
	return r.Build()
}

// Draws the given path on top of an image produced by Render with the same
// config. Used for paths computed or loaded separately from rendering.
func DrawSolution(pic *image.RGBA, g *maze.Grid, c Config, path maze.Path) error {
	r, e := NewRenderer(g, c)
	if e != nil {
		return e
	}
	r.drawPath(RGBACanvas{pic}, path)
	return nil
}
