package raster

import (
	"image"
	"image/color"

	"github.com/yalue/image_utils"
)

// Satisfies the Image interface, surrounds an image with a solid-color border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	tmp := b.picBounds
	w := b.borderWidth * 2
	return image.Rect(0, 0, tmp.Dx()+w, tmp.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a
// background-colored border with the given width in pixels. The result's
// top-left corner is at (0, 0). A width below 1 just copies the image.
func AddImageBorder(pic image.Image, width int) *image.RGBA {
	if width < 0 {
		width = 0
	}
	return image_utils.ToRGBA(&imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   BackgroundColor,
	})
}
