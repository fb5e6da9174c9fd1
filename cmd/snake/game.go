package main

import (
	"math/rand"

	"github.com/lixenwraith/term2d/audio"
	"github.com/lixenwraith/term2d/geom"
)

// direction is a unit step on the pixel grid
type direction geom.Point

var (
	dirUp    = direction{X: 0, Y: -1}
	dirDown  = direction{X: 0, Y: 1}
	dirLeft  = direction{X: -1, Y: 0}
	dirRight = direction{X: 1, Y: 0}
)

func (d direction) opposite(o direction) bool {
	return d.X == -o.X && d.Y == -o.Y
}

// game is the rules, independent of drawing. Coordinates are virtual pixels
type game struct {
	size  geom.Point
	body  []geom.Point // head first
	dir   direction
	next  direction
	food  geom.Point
	score int
	over  bool
	rng   *rand.Rand

	// sounds raised by the last call, drained by the caller
	sounds []audio.Sound
}

func newGame(size geom.Point, rng *rand.Rand) *game {
	g := &game{rng: rng}
	g.reset(size)
	return g
}

// reset starts a three-segment snake heading right from the center
func (g *game) reset(size geom.Point) {
	g.size = size
	head := size.Half()
	g.body = []geom.Point{head, head.Left(), head.Left().Left()}
	g.dir, g.next = dirRight, dirRight
	g.score = 0
	g.over = false
	g.placeFood()
}

// turn queues a direction for the next step; reversing onto the neck is ignored
func (g *game) turn(d direction) {
	if g.over || d == g.next || d.opposite(g.dir) {
		return
	}
	g.next = d
	g.sounds = append(g.sounds, audio.SoundBlip)
}

// step advances one cell. Hitting a wall or the body ends the game
func (g *game) step() {
	if g.over {
		return
	}
	g.dir = g.next
	head := g.body[0].Add(geom.Point(g.dir))

	if !head.In(g.size) || g.occupied(head, true) {
		g.over = true
		g.sounds = append(g.sounds, audio.SoundBuzz)
		return
	}

	if head == g.food {
		g.body = append([]geom.Point{head}, g.body...)
		g.score++
		g.sounds = append(g.sounds, audio.SoundBell)
		g.placeFood()
		return
	}

	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head
}

// occupied reports whether p is on the snake. The tail moves away this step,
// so it is skipped when moving
func (g *game) occupied(p geom.Point, moving bool) bool {
	body := g.body
	if moving {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}

// placeFood picks a random free pixel; a full board ends the game
func (g *game) placeFood() {
	free := g.size.X*g.size.Y - len(g.body)
	if free <= 0 {
		g.over = true
		return
	}
	for {
		p := geom.Pt(g.rng.Intn(g.size.X), g.rng.Intn(g.size.Y))
		if !g.occupied(p, false) {
			g.food = p
			return
		}
	}
}

// drainSounds returns and clears pending sounds
func (g *game) drainSounds() []audio.Sound {
	s := g.sounds
	g.sounds = nil
	return s
}
