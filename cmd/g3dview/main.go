// Command g3dview opens a window and renders a scene interactively.
//
// Controls: W/S forward and back, A/D strafe, Q/E down and up. Click to
// capture the mouse for looking around; Escape releases it, a second
// Escape quits. F1 toggles the statistics overlay.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/scenefile"
)

const tps = 60

func main() {
	var (
		width     = flag.Int("width", 640, "render width")
		height    = flag.Int("height", 480, "render height")
		scale     = flag.Int("scale", 1, "window pixels per rendered pixel")
		scenePath = flag.String("scene", "", "YAML scene description (default: built-in spinning cube)")
		showHUD   = flag.Bool("hud", true, "draw scene statistics over the frame")
		verbose   = flag.Bool("v", false, "log per-frame diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	desc := scenefile.Default()
	if *scenePath != "" {
		var err error
		if desc, err = scenefile.Load(*scenePath); err != nil {
			log.Fatalf("g3dview: %v", err)
		}
	}

	target, err := g3d.NewRenderTarget(*width, *height)
	if err != nil {
		log.Fatalf("g3dview: %v", err)
	}
	built, err := desc.Build(target, nil)
	if err != nil {
		log.Fatalf("g3dview: %v", err)
	}

	ebiten.SetWindowTitle("g3dview")
	ebiten.SetWindowSize(*width*max(*scale, 1), *height*max(*scale, 1))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	g3d.Logger().Info("window opened", "width", *width, "height", *height, "models", len(built.Models))

	if err := ebiten.RunGame(newViewer(built, tps, *showHUD)); err != nil {
		log.Fatalf("g3dview: %v", err)
	}
}
