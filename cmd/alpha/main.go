// Command alpha overlaps translucent rectangles to show compositing, under a title
// that fades between two colors.
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
)

const fadeSpeed = 12

var (
	translucentGreen = color.Green.WithAlpha(128)
	translucentBlue  = color.Blue.WithAlpha(128)
	titleColors      = [2]color.RGBA{color.Yellow, color.Cyan}
)

type alpha struct {
	title  color.RGBA
	target int
}

func newAlpha() *alpha {
	return &alpha{title: titleColors[0], target: 1}
}

func (a *alpha) Update(c canvas.Canvas, ev app.Event) error {
	if ev.IsQuit() {
		return app.ErrQuit
	}
	if ev.Kind == app.KindKey {
		return nil
	}

	if ev.Kind == app.KindTick {
		a.title = color.Fade(a.title, titleColors[a.target], fadeSpeed)
		if a.title == titleColors[a.target] {
			a.target ^= 1
		}
	}

	size := c.Size()
	w, h := size.X/3, size.Y/3

	c.Clear()
	canvas.DrawRectFill(c, geom.NewRect(w/2, h/2, w, h), color.Red)
	canvas.DrawRectFill(c, geom.NewRect(w, h, w, h), translucentGreen)
	canvas.DrawRectFill(c, geom.NewRect(w+w/2, h+h/2, w, h), translucentBlue)
	canvas.DrawRect(c, geom.RectOf(size), color.White.WithAlpha(96))
	c.DrawTextTransparent(geom.Pt(2, 0), a.title, "alpha compositing  [q] quit")
	return c.Display()
}

func main() {
	defer func() { app.HandleCrash(recover()) }()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "alpha: %v\n", err)
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

	return app.Run(ctx, cfg, newAlpha())
}
