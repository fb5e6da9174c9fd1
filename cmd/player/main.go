// Command player plays an animated GIF, or shows a still image, scaled to the
// terminal with a mirrored copy beside it.
//
// Usage: player [flags] <image>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/term2d/app"
	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/media"
	"github.com/lixenwraith/term2d/terminal"
)

var errUsage = errors.New("usage: player [flags] <image>")

type player struct {
	src    *media.Video
	name   string
	video  *media.Video
	mirror *media.Video
	paused bool
}

func newPlayer(src *media.Video, name string) *player {
	return &player{src: src, name: name}
}

// fit rescales the source into two side-by-side panes of size, keeping the
// current frame
func (p *player) fit(size geom.Point) {
	index := 0
	if p.video != nil {
		index = p.video.Index()
	}
	p.video = media.FitVideo(p.src, size.X/2, size.Y)
	p.video.SetIndex(index)
	p.mirror = p.video.FlipHorizontal()
	log.Printf("player: %d frames fitted to %v", p.video.Len(), p.video.Frame().Size)
}

func (p *player) Update(c canvas.Canvas, ev app.Event) error {
	if ev.IsQuit() {
		return app.ErrQuit
	}

	switch ev.Kind {
	case app.KindResize:
		p.fit(c.Size())
	case app.KindKey:
		if ev.Key != terminal.KeyRune || ev.Rune != ' ' {
			return nil
		}
		p.paused = !p.paused
	}

	half := c.Size().X / 2
	frame := p.video.Frame()
	left := geom.Pt((half-frame.Width())/2, (c.Size().Y-frame.Height())/2)
	right := left.Add(geom.Pt(half, 0))

	c.Clear()
	if p.paused || ev.Kind != app.KindTick {
		canvas.DrawImage(c, left, frame)
		canvas.DrawImage(c, right, p.mirror.Frame())
	} else {
		canvas.DrawVideo(c, left, p.video)
		canvas.DrawVideo(c, right, p.mirror)
	}

	status := fmt.Sprintf("%s  %d/%d  [space] pause  [q] quit", p.name, p.video.Index()+1, p.video.Len())
	c.DrawTextTransparent(geom.Zero, color.TextFg, status)
	return c.Display()
}

func main() {
	defer func() { app.HandleCrash(recover()) }()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "player: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	if flag.NArg() < 1 {
		return errUsage
	}
	path := flag.Arg(0)

	// Decode before the terminal goes raw so errors print normally
	src, err := media.Load(path)
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

	return app.Run(ctx, cfg, newPlayer(src, path))
}
