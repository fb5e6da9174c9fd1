package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/audio"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/terminal"
)

func testGame(w, h int) *game {
	return newGame(geom.Pt(w, h), rand.New(rand.NewSource(1)))
}

func TestNewGame(t *testing.T) {
	g := testGame(10, 6)
	assert.Equal(t, []geom.Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, g.body)
	assert.Equal(t, dirRight, g.dir)
	assert.False(t, g.over)
	assert.True(t, g.food.In(g.size))
	assert.False(t, g.occupied(g.food, false))
}

func TestStepMoves(t *testing.T) {
	g := testGame(10, 6)
	g.food = geom.Pt(0, 0)

	g.step()
	assert.Equal(t, []geom.Point{{X: 6, Y: 3}, {X: 5, Y: 3}, {X: 4, Y: 3}}, g.body)
	assert.Empty(t, g.drainSounds())
}

func TestTurn(t *testing.T) {
	g := testGame(10, 6)
	g.food = geom.Pt(0, 0)

	g.turn(dirLeft)
	assert.Equal(t, dirRight, g.next, "reversing is ignored")

	g.turn(dirUp)
	assert.Equal(t, dirUp, g.next)
	assert.Equal(t, []audio.Sound{audio.SoundBlip}, g.drainSounds())

	g.turn(dirUp)
	assert.Empty(t, g.drainSounds(), "repeating a queued turn is silent")

	g.step()
	assert.Equal(t, geom.Pt(5, 2), g.body[0])
}

func TestEat(t *testing.T) {
	g := testGame(10, 6)
	g.food = geom.Pt(6, 3)

	g.step()
	assert.Len(t, g.body, 4)
	assert.Equal(t, 1, g.score)
	assert.Equal(t, []audio.Sound{audio.SoundBell}, g.drainSounds())
	assert.NotEqual(t, geom.Pt(6, 3), g.food)
	assert.False(t, g.occupied(g.food, false))
}

func TestCollisions(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		g := testGame(10, 6)
		g.food = geom.Pt(0, 0)
		for i := 0; i < 4; i++ {
			g.step()
		}
		assert.False(t, g.over)
		g.step()
		assert.True(t, g.over)
		assert.Equal(t, []audio.Sound{audio.SoundBuzz}, g.drainSounds())

		head := g.body[0]
		g.step()
		assert.Equal(t, head, g.body[0], "no movement after game over")
	})

	t.Run("self", func(t *testing.T) {
		g := testGame(10, 6)
		g.food = geom.Pt(0, 0)
		g.body = []geom.Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2}}
		g.turn(dirUp)
		g.step()
		assert.True(t, g.over)
	})

	t.Run("chasing the tail is allowed", func(t *testing.T) {
		g := testGame(10, 6)
		g.food = geom.Pt(0, 0)
		g.body = []geom.Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 2}, {X: 5, Y: 2}}
		g.turn(dirUp)
		g.step()
		assert.False(t, g.over)
		assert.Equal(t, geom.Pt(5, 2), g.body[0])
	})
}

func TestTinyBoard(t *testing.T) {
	g := testGame(0, 0)
	assert.True(t, g.over)
	assert.NotPanics(t, g.step)
}

func TestControllerFrames(t *testing.T) {
	player := audio.NewPlayer(audio.Config{})
	ctrl := newController(player, rand.New(rand.NewSource(1)))
	cv := canvas.NewFullBlock(nil, 20, 10)

	require.NoError(t, ctrl.Update(cv, app.Event{Kind: app.KindResize, Width: 20, Height: 10}))
	assert.Equal(t, geom.Pt(18, 7), ctrl.game.size)
	assert.Equal(t, geom.Pt(1, 2), ctrl.offset)

	head := ctrl.game.body[0]
	cell, ok := cv.Surface().Cell(head.Add(ctrl.offset))
	require.True(t, ok)
	assert.Equal(t, headColor, cell.Bg)

	require.NoError(t, ctrl.Update(cv, app.Event{Kind: app.KindKey, Key: terminal.KeyDown}))
	require.NoError(t, ctrl.Update(cv, app.Event{Kind: app.KindTick}))
	assert.Equal(t, head.Down(), ctrl.game.body[0])

	err := ctrl.Update(cv, app.Event{Kind: app.KindKey, Key: terminal.KeyRune, Rune: 'q'})
	assert.ErrorIs(t, err, app.ErrQuit)
}

func TestControllerHalfBlockOffset(t *testing.T) {
	ctrl := newController(audio.NewPlayer(audio.Config{}), rand.New(rand.NewSource(1)))
	cv := canvas.NewHalfBlock(nil, 20, 10)

	require.NoError(t, ctrl.Update(cv, app.Event{Kind: app.KindResize, Width: 20, Height: 10}))
	assert.Equal(t, geom.Pt(1, 3), ctrl.offset)
	assert.Equal(t, geom.Pt(18, 16), ctrl.game.size)
}
