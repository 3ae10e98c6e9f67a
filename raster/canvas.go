// Package raster draws maze grids into pixel images. The line-drawing code
// works on anything satisfying Canvas, so it isn't tied to a particular image
// type.
package raster

import (
	"image"
	"image/color"
)

// Anything that can have individual pixels set by integer coordinate.
type Canvas interface {
	InBounds(x, y int) bool
	SetPixel(x, y int, c color.Color)
}

// Adapts an *image.RGBA to the Canvas interface.
type RGBACanvas struct {
	*image.RGBA
}

func (c RGBACanvas) InBounds(x, y int) bool {
	return image.Pt(x, y).In(c.Bounds())
}

func (c RGBACanvas) SetPixel(x, y int, col color.Color) {
	c.Set(x, y, col)
}

// Draws a one-pixel line from a to b, both endpoints included, using
// Bresenham's algorithm. Does nothing if either endpoint is outside the
// canvas.
func DrawLine(c Canvas, a, b image.Point, col color.Color) {
	bresenham(c, a, b, func(p image.Point) {
		c.SetPixel(p.X, p.Y, col)
	})
}

// Like DrawLine, but stamps a filled square with sides of the given
// thickness at every pixel along the line. Parts of squares falling outside
// the canvas are skipped, but the endpoints themselves must be inside it.
func DrawThickLine(c Canvas, a, b image.Point, thickness int,
	col color.Color) {
	bresenham(c, a, b, func(p image.Point) {
		FillSquare(c, p, thickness, col)
	})
}

// Fills a square with sides of length size centered on center. An even size
// can't be centered exactly, so the extra pixel goes on the positive side:
// offsets run from -size/2+1 to size/2. Sizes below 1 are treated as 1.
func FillSquare(c Canvas, center image.Point, size int, col color.Color) {
	if size < 1 {
		size = 1
	}
	maxOffset := size / 2
	minOffset := -maxOffset
	if (size % 2) == 0 {
		minOffset++
	}
	for dy := minOffset; dy <= maxOffset; dy++ {
		for dx := minOffset; dx <= maxOffset; dx++ {
			x := center.X + dx
			y := center.Y + dy
			if !c.InBounds(x, y) {
				continue
			}
			c.SetPixel(x, y, col)
		}
	}
}

// Calls plot for every pixel on the 8-connected line from a to b, in order.
func bresenham(c Canvas, a, b image.Point, plot func(image.Point)) {
	if !c.InBounds(a.X, a.Y) || !c.InBounds(b.X, b.Y) {
		return
	}
	dx := b.X - a.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Y - a.Y
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	p := a
	for {
		plot(p)
		if p == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}
