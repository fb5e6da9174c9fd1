package color

// Blend composites src over dst.
// Alpha 0 returns dst and alpha 255 returns src unchanged. Anything in between is
// interpolated per channel in integer math and the result is opaque, since cells keep
// no persistent transparency once written.
func Blend(src, dst RGBA) RGBA {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return src
	}

	a := int(src.A)
	inv := 255 - a
	return RGBA{
		R: uint8((a*int(src.R) + inv*int(dst.R)) / 255),
		G: uint8((a*int(src.G) + inv*int(dst.G)) / 255),
		B: uint8((a*int(src.B) + inv*int(dst.B)) / 255),
		A: 255,
	}
}

// Over blends both channels of a pair over another pair independently
func (p Pair) Over(dst Pair) Pair {
	return Pair{
		Fg: Blend(p.Fg, dst.Fg),
		Bg: Blend(p.Bg, dst.Bg),
	}
}

// Fade moves each color channel of current toward target by at most speed.
// Never overshoots or reverses; alpha is kept from current. Callers persist the result
func Fade(current, target RGBA, speed int) RGBA {
	if speed <= 0 {
		return current
	}
	return RGBA{
		R: fadeChannel(current.R, target.R, speed),
		G: fadeChannel(current.G, target.G, speed),
		B: fadeChannel(current.B, target.B, speed),
		A: current.A,
	}
}

func fadeChannel(cur, target uint8, speed int) uint8 {
	delta := int(target) - int(cur)
	switch {
	case delta < 0:
		return uint8(int(cur) + max(-speed, delta))
	case delta > 0:
		return uint8(int(cur) + min(speed, delta))
	}
	return cur
}

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp linearly interpolates between two colors, including alpha
// t=0 returns a, t=1 returns b
func Lerp(a, b RGBA, t float64) RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBA{
		R: clamp(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: clamp(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: clamp(float64(a.B) + t*float64(int(b.B)-int(a.B))),
		A: clamp(float64(a.A) + t*float64(int(b.A)-int(a.A))),
	}
}

// Scale multiplies the color channels by factor, alpha untouched
func Scale(c RGBA, factor float64) RGBA {
	// Clamp so factor > 1.0 saturates instead of wrapping
	return RGBA{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
		A: c.A,
	}
}
