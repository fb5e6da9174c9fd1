// Package media holds the pixel containers the canvas blits: still images and
// cyclic frame sequences, plus loaders from common image files.
package media

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
)

// ErrRawSize is returned when raw RGBA bytes don't match the declared size
var ErrRawSize = errors.New("media: raw pixel data does not match size")

// Image is a row-major block of RGBA pixels
type Image struct {
	Pixels []color.RGBA
	Size   geom.Point
}

// NewImage builds an image from tightly packed RGBA bytes, 4 per pixel
func NewImage(w, h int, raw []byte) (Image, error) {
	need, ok := rawLen(w, h)
	if !ok {
		return Image{}, fmt.Errorf("%w: %dx%d is not addressable", ErrRawSize, w, h)
	}
	if len(raw) != need {
		return Image{}, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrRawSize, w, h, need, len(raw))
	}
	px := make([]color.RGBA, w*h)
	for i := range px {
		o := i * 4
		px[i] = color.RGBA{R: raw[o], G: raw[o+1], B: raw[o+2], A: raw[o+3]}
	}
	return Image{Pixels: px, Size: geom.Point{X: w, Y: h}}, nil
}

// rawLen is the byte length of a w x h RGBA buffer, false when negative or
// too large for an int
func rawLen(w, h int) (int, bool) {
	if w < 0 || h < 0 || (w > 0 && h > math.MaxInt/4/w) {
		return 0, false
	}
	return w * h * 4, true
}

// Blank returns a fully transparent image
func Blank(w, h int) Image {
	w, h = max(w, 0), max(h, 0)
	return Image{Pixels: make([]color.RGBA, w*h), Size: geom.Point{X: w, Y: h}}
}

// FromImage converts any image.Image to non-premultiplied RGBA
func FromImage(src image.Image) Image {
	b := src.Bounds()
	img := Blank(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pixels[i] = color.FromStd(src.At(x, y))
			i++
		}
	}
	return img
}

func (img Image) Width() int  { return img.Size.X }
func (img Image) Height() int { return img.Size.Y }

// Empty reports whether the image has no pixels
func (img Image) Empty() bool { return len(img.Pixels) == 0 }

// At returns the pixel at (x,y); out of range is Transparent
func (img Image) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= img.Size.X || y >= img.Size.Y {
		return color.Transparent
	}
	return img.Pixels[y*img.Size.X+x]
}

// FlipHorizontal returns a left-right mirrored copy
func (img Image) FlipHorizontal() Image {
	out := Blank(img.Size.X, img.Size.Y)
	w := img.Size.X
	for y := 0; y < img.Size.Y; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			out.Pixels[row+x] = img.Pixels[row+w-1-x]
		}
	}
	return out
}

// Std converts to a standard library NRGBA image for encoders and scalers
func (img Image) Std() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Size.X, img.Size.Y))
	for i, c := range img.Pixels {
		o := i * 4
		out.Pix[o] = c.R
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.B
		out.Pix[o+3] = c.A
	}
	return out
}
