// Package color provides the RGBA8 value type used by every layer of the renderer,
// along with over-compositing and fade helpers.
package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit per channel color. A=0 is fully transparent, A=255 fully opaque
type RGBA struct {
	R, G, B, A uint8
}

// Pair is the resolved foreground/background color of one terminal cell
type Pair struct {
	Fg RGBA
	Bg RGBA
}

// Named colors
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Red         = RGBA{255, 0, 0, 255}
	Green       = RGBA{0, 255, 0, 255}
	Blue        = RGBA{0, 0, 255, 255}
	Yellow      = RGBA{255, 255, 0, 255}
	Cyan        = RGBA{0, 255, 255, 255}
	Violet      = RGBA{255, 0, 255, 255}
	Orange      = RGBA{255, 128, 0, 255}

	// TextFg is the default foreground for plain text
	TextFg = RGBA{200, 200, 200, 255}
)

// New returns an opaque color
func New(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// WithAlpha returns a copy of c with the given alpha
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// SameRGB reports whether the color channels match, ignoring alpha
func (c RGBA) SameRGB(o RGBA) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Std converts to the standard library color type (non-premultiplied)
func (c RGBA) Std() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStd converts any standard library color, un-premultiplying alpha
func FromStd(c stdcolor.Color) RGBA {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGBA{n.R, n.G, n.B, n.A}
}

// String formats as #rrggbbaa
func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// TextPair returns the default text colors: light gray on the default background
func TextPair() Pair {
	return Pair{Fg: TextFg, Bg: Black}
}

// FromHex parses "rrggbb" or "#rrggbb" into an opaque color
func FromHex(hex string) (RGBA, error) {
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBA{r, g, b, 255}, nil
}

// MustHex is FromHex for package-level palettes; panics on malformed input
func MustHex(hex string) RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSV builds an opaque color from hue [0,360), saturation and value [0,1]
func FromHSV(h, s, v float64) RGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGBA{r, g, b, 255}
}
