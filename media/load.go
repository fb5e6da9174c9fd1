package media

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a still image; png, jpeg, gif (first frame), bmp and webp are registered
func LoadImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// LoadGIF decodes every frame of an animated GIF, compositing each onto the logical
// screen so partial frames come out whole
func LoadGIF(path string) (*Video, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return composeGIF(g), nil
}

// Load returns a GIF as an animated video and any other image as a single-frame video
func Load(path string) (*Video, error) {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return LoadGIF(path)
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewVideo(img), nil
}

func composeGIF(g *gif.GIF) *Video {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, fr := range g.Image {
			bounds = bounds.Union(fr.Bounds())
		}
	}

	canvas := image.NewNRGBA(bounds)
	frames := make([]Image, 0, len(g.Image))

	for i, fr := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.NRGBA
		if disposal == gif.DisposalPrevious {
			saved = image.NewNRGBA(bounds)
			draw.Draw(saved, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, fr.Bounds(), fr, fr.Bounds().Min, draw.Over)
		frames = append(frames, FromImage(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, fr.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			draw.Draw(canvas, bounds, saved, bounds.Min, draw.Src)
		}
	}
	return NewVideo(frames...)
}

// Scale resamples img to w x h with approximate bilinear filtering
func Scale(img Image, w, h int) Image {
	if w <= 0 || h <= 0 || img.Empty() {
		return Blank(w, h)
	}
	if w == img.Size.X && h == img.Size.Y {
		return img
	}
	src := img.Std()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// Fit scales img to the largest size within maxW x maxH that keeps its aspect ratio
func Fit(img Image, maxW, maxH int) Image {
	w, h := img.Size.X, img.Size.Y
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return Blank(0, 0)
	}
	// Try full width first, fall back to full height
	tw, th := maxW, h*maxW/w
	if th > maxH {
		tw, th = w*maxH/h, maxH
	}
	return Scale(img, max(tw, 1), max(th, 1))
}

// FitVideo applies Fit to every frame, keeping the index
func FitVideo(v *Video, maxW, maxH int) *Video {
	frames := make([]Image, len(v.frames))
	for i, f := range v.frames {
		frames[i] = Fit(f, maxW, maxH)
	}
	return &Video{frames: frames, index: v.index}
}
