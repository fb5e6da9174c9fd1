package media

import "fmt"

// RawFrame is one frame of tightly packed RGBA bytes
type RawFrame struct {
	Width  int
	Height int
	Data   []byte
}

// Video is a cyclic sequence of frames with a current index.
// The zero value is an empty video
type Video struct {
	frames []Image
	index  int
}

// NewVideo creates a video positioned on the first frame
func NewVideo(frames ...Image) *Video {
	return &Video{frames: frames}
}

// NewVideoRaw converts every raw frame, failing on the first size mismatch
func NewVideoRaw(raw []RawFrame) (*Video, error) {
	frames := make([]Image, 0, len(raw))
	for i, r := range raw {
		img, err := NewImage(r.Width, r.Height, r.Data)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, img)
	}
	return NewVideo(frames...), nil
}

func (v *Video) Len() int   { return len(v.frames) }
func (v *Video) Index() int { return v.index }

// Frame returns the current frame, an empty Image when the video has none
func (v *Video) Frame() Image {
	if len(v.frames) == 0 {
		return Image{}
	}
	return v.frames[v.index]
}

// SetIndex moves to frame i modulo Len, negative values wrap from the end
func (v *Video) SetIndex(i int) {
	n := len(v.frames)
	if n == 0 {
		v.index = 0
		return
	}
	v.index = ((i % n) + n) % n
}

// Advance steps to the next frame, wrapping after the last
func (v *Video) Advance() {
	if len(v.frames) == 0 {
		return
	}
	v.index = (v.index + 1) % len(v.frames)
}

// FlipHorizontal returns a mirrored copy sharing the current index
func (v *Video) FlipHorizontal() *Video {
	frames := make([]Image, len(v.frames))
	for i, f := range v.frames {
		frames[i] = f.FlipHorizontal()
	}
	return &Video{frames: frames, index: v.index}
}
