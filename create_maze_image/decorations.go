package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	maze "github.com/yalue/wilson_maze"
	"github.com/yalue/wilson_maze/raster"
)

const arrowLength = 16

func getArrowForDirection(dir maze.Direction,
	arrowColor color.Color) image.Image {
	switch dir {
	case maze.Up:
		return image_utils.UpArrow(arrowColor)
	case maze.Left:
		return image_utils.LeftArrow(arrowColor)
	case maze.Down:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the given direction, with a white center.
func getOutlinedArrow(dir maze.Direction, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForDirection(dir,
		arrowColor), arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForDirection(dir,
		color.White), arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, dir maze.Direction,
	away bool) image.Point {
	halfLength := arrowLength / 2
	switch dir {
	case maze.Left:
		if away {
			// The arrow's tail is at pt, but it's pointing to the left, so it
			// needs to be shifted so the whole arrow is to the left of pt.
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case maze.Up:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case maze.Down:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	// Pointing right
	if away {
		return image.Pt(pt.X+1, pt.Y-halfLength)
	}
	return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
}

// Adds "decorations" to the rendered maze: a background-colored border, and
// optionally arrows leading into the start cell and out of the end cell. The
// border is widened to fit the arrows if needed.
func drawMazeDecorations(g *maze.Grid, pic *image.RGBA, c raster.Config,
	border int, arrows bool) (*image.RGBA, error) {
	if arrows && (border < (arrowLength + 2)) {
		border = arrowLength + 2
	}
	framed := raster.AddImageBorder(pic, border)
	if !arrows {
		return framed, nil
	}
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(framed, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}
	halfCell := (c.CellHeight - 1) / 2

	// The start arrow points right, into the left edge of the start cell.
	startPoint := image.Pt(border,
		border+g.Start().Y*(c.CellHeight-1)+halfCell)
	startArrow := getOutlinedArrow(maze.Right, greenColor)
	e = decorated.AddImage(startArrow, getArrowTopLeft(startPoint, maze.Right,
		false))
	if e != nil {
		return nil, fmt.Errorf("error adding start arrow: %w", e)
	}

	// The end arrow points right, away from the right edge of the end cell.
	endPoint := image.Pt(border+pic.Bounds().Dx()-1,
		border+g.End().Y*(c.CellHeight-1)+halfCell)
	endArrow := getOutlinedArrow(maze.Right, blueColor)
	e = decorated.AddImage(endArrow, getArrowTopLeft(endPoint, maze.Right,
		true))
	if e != nil {
		return nil, fmt.Errorf("error adding end arrow: %w", e)
	}

	return image_utils.ToRGBA(decorated), nil
}
