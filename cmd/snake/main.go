// Command snake is a small snake game: arrows steer, the tick clock moves, food
// grows the snake. With -sound the moves, meals and crashes are audible.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/audio"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/terminal"
)

var (
	headColor  = color.MustHex("#7CFC00")
	bodyColor  = color.MustHex("#2E8B57")
	foodColor  = color.Red
	wallColor  = color.New(60, 60, 60)
	bannerPair = color.Pair{Fg: color.Yellow, Bg: color.Transparent}
)

// controller adapts game to the event loop. The top text row is the status bar
// and the board is framed by a one pixel wall
type controller struct {
	game   *game
	player *audio.Player
	rng    *rand.Rand
	offset geom.Point
}

func newController(player *audio.Player, rng *rand.Rand) *controller {
	return &controller{player: player, rng: rng}
}

func (c *controller) Update(cv canvas.Canvas, ev app.Event) error {
	if ev.IsQuit() {
		return app.ErrQuit
	}

	switch ev.Kind {
	case app.KindResize:
		row := rowPixels(cv)
		c.offset = geom.Pt(1, row+1)
		board := cv.Size().Sub(geom.Pt(2, row+2))
		c.game = newGame(geom.Pt(max(board.X, 0), max(board.Y, 0)), c.rng)
		log.Printf("snake: board %v", c.game.size)

	case app.KindKey:
		switch ev.Key {
		case terminal.KeyUp:
			c.game.turn(dirUp)
		case terminal.KeyDown:
			c.game.turn(dirDown)
		case terminal.KeyLeft:
			c.game.turn(dirLeft)
		case terminal.KeyRight:
			c.game.turn(dirRight)
		case terminal.KeyRune:
			if ev.Rune != 'r' || !c.game.over {
				return nil
			}
			c.game.reset(c.game.size)
		default:
			return nil
		}

	case app.KindTick:
		c.game.step()
	}

	for _, s := range c.game.drainSounds() {
		c.player.Play(s)
	}
	return c.draw(cv)
}

func (c *controller) draw(cv canvas.Canvas) error {
	g := c.game
	cv.Clear()

	canvas.DrawRect(cv, geom.Rect{Pos: c.offset.UpLeft(), Size: g.size.Add(geom.Pt(2, 2))}, wallColor)
	cv.DrawPixel(g.food.Add(c.offset), foodColor)
	for i := len(g.body) - 1; i >= 0; i-- {
		col := bodyColor
		if i == 0 {
			col = headColor
		}
		cv.DrawPixel(g.body[i].Add(c.offset), col)
	}

	status := fmt.Sprintf("score %d  [arrows] steer  [q] quit", g.score)
	if g.over {
		status = fmt.Sprintf("game over, score %d  [r] restart  [q] quit", g.score)
	}
	cv.DrawText(geom.Zero, bannerPair, status)
	return cv.Display()
}

// rowPixels is the virtual height of one text row
func rowPixels(cv canvas.Canvas) int {
	if rows := cv.Surface().Height(); rows > 0 {
		return cv.Size().Y / rows
	}
	return 1
}

func main() {
	defer func() { app.HandleCrash(recover()) }()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	logFile, err := app.SetupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	player := audio.NewPlayer(audio.Config{Enabled: cfg.Sound, Volume: cfg.Volume})
	if err := player.Init(); err != nil {
		// Sound is optional
		log.Printf("snake: %v, continuing without sound", err)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return app.Run(ctx, cfg, newController(player, rng))
}
