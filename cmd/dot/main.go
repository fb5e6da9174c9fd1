// Command dot shows a frame counter and one red pixel that the arrow keys move.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/terminal"
)

type dot struct {
	frame int
	pos   geom.Point
	moved bool
}

func (d *dot) Update(c canvas.Canvas, ev app.Event) error {
	if ev.IsQuit() {
		return app.ErrQuit
	}

	size := c.Size()
	if !d.moved {
		d.pos = size.Half()
	}

	if ev.Kind == app.KindKey {
		switch ev.Key {
		case terminal.KeyUp:
			d.pos = d.pos.Up()
		case terminal.KeyDown:
			d.pos = d.pos.Down()
		case terminal.KeyLeft:
			d.pos = d.pos.Left()
		case terminal.KeyRight:
			d.pos = d.pos.Right()
		default:
			return nil
		}
		d.moved = true
	}

	d.frame++
	c.Clear()
	c.DrawText(geom.Zero, color.TextPair(), fmt.Sprintf("frame %d  %v  [q] quit", d.frame, d.pos))
	c.DrawPixel(d.pos, color.Red)
	return c.Display()
}

func main() {
	defer func() { app.HandleCrash(recover()) }()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dot: %v\n", err)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, &dot{})
}
