package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/media"
	"github.com/lixenwraith/term2d/terminal"
)

// solid builds a w x h frame with a red left column and the rest blue
func solid(w, h int) media.Image {
	img := media.Blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.Blue
			if x == 0 {
				c = color.Red
			}
			img.Pixels[y*w+x] = c
		}
	}
	return img
}

func TestPlayerAdvancesOnTick(t *testing.T) {
	p := newPlayer(media.NewVideo(solid(4, 4), solid(4, 4), solid(4, 4)), "clip")
	cv := canvas.NewFullBlock(nil, 8, 4)

	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindResize, Width: 8, Height: 4}))
	assert.Equal(t, 0, p.video.Index(), "resize redraws without advancing")

	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindTick}))
	assert.Equal(t, 1, p.video.Index())
	assert.Equal(t, 1, p.mirror.Index())

	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindKey, Key: terminal.KeyRune, Rune: ' '}))
	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindTick}))
	assert.Equal(t, 1, p.video.Index(), "paused")
}

func TestPlayerMirror(t *testing.T) {
	p := newPlayer(media.NewVideo(solid(4, 4)), "still")
	cv := canvas.NewFullBlock(nil, 8, 4)
	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindResize, Width: 8, Height: 4}))

	left, ok := cv.Surface().Cell(geom.Pt(0, 1))
	require.True(t, ok)
	assert.Equal(t, color.Red, left.Bg)

	right, ok := cv.Surface().Cell(geom.Pt(7, 1))
	require.True(t, ok)
	assert.Equal(t, color.Red, right.Bg, "mirrored copy puts the red column on the far edge")
}

func TestPlayerKeepsFrameOnResize(t *testing.T) {
	p := newPlayer(media.NewVideo(solid(2, 2), solid(2, 2), solid(2, 2)), "clip")
	cv := canvas.NewFullBlock(nil, 8, 4)
	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindResize, Width: 8, Height: 4}))
	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindTick}))
	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindTick}))

	require.NoError(t, p.Update(cv, app.Event{Kind: app.KindResize, Width: 12, Height: 6}))
	assert.Equal(t, 2, p.video.Index())
	assert.Equal(t, 2, p.mirror.Index())
}

func TestPlayerQuit(t *testing.T) {
	p := newPlayer(media.NewVideo(solid(1, 1)), "x")
	err := p.Update(canvas.NewFullBlock(nil, 2, 2), app.Event{Kind: app.KindKey, Key: terminal.KeyCtrlC})
	assert.ErrorIs(t, err, app.ErrQuit)
}
