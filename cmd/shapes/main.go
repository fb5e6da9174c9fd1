// Command shapes animates the drawing primitives: a rotating star, circles and a
// fan of lines that cycle through the hue wheel.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/terminal"
)

const (
	rotateStep = math.Pi / 30
	hueStep    = 6.0
	lineCount  = 12
)

type shapes struct {
	angle  float64
	hue    float64
	paused bool
	filled bool
}

func (s *shapes) Update(c canvas.Canvas, ev app.Event) error {
	if ev.IsQuit() {
		return app.ErrQuit
	}

	switch ev.Kind {
	case app.KindKey:
		switch {
		case ev.Key == terminal.KeyRune && ev.Rune == ' ':
			s.paused = !s.paused
		case ev.Key == terminal.KeyRune && ev.Rune == 'f':
			s.filled = !s.filled
		default:
			return nil
		}
	case app.KindTick:
		if s.paused {
			return nil
		}
		s.angle = math.Mod(s.angle+rotateStep, 2*math.Pi)
		s.hue = math.Mod(s.hue+hueStep, 360)
	}

	size := c.Size()
	center := size.Half()
	radius := min(size.X, size.Y) / 3

	c.Clear()

	// Background fan
	for i := 0; i < lineCount; i++ {
		a := s.angle/2 + 2*math.Pi*float64(i)/lineCount
		end := geom.Pt(center.X+int(float64(radius*2)*math.Cos(a)), center.Y+int(float64(radius*2)*math.Sin(a)))
		canvas.DrawLine(c, center, end, color.FromHSV(math.Mod(s.hue+float64(i)*30, 360), 0.6, 0.5))
	}

	canvas.DrawCircleFill(c, geom.NewCircle(center.X, center.Y, radius), color.FromHSV(s.hue, 0.5, 0.3).WithAlpha(160))
	canvas.DrawCircle(c, geom.NewCircle(center.X, center.Y, radius+2), color.White)

	star := geom.NewStar(float64(radius), float64(radius)/2.5, 5).Rotate(s.angle).Translate(center)
	starColor := color.FromHSV(math.Mod(s.hue+180, 360), 1, 1)
	if s.filled {
		canvas.DrawPolygonFill(c, star, starColor.WithAlpha(200))
	}
	canvas.DrawPolygon(c, star, starColor)

	c.DrawTextTransparent(geom.Zero, color.TextFg, "[space] pause  [f] fill  [q] quit")
	return c.Display()
}

func main() {
	defer func() { app.HandleCrash(recover()) }()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shapes: %v\n", err)
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

	return app.Run(ctx, cfg, &shapes{filled: true})
}
