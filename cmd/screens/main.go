package main

import (
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/younwookim/screenloop/internal/application/game"
	"github.com/younwookim/screenloop/internal/application/launcher"
	"github.com/younwookim/screenloop/internal/infrastructure/config"
	"github.com/younwookim/screenloop/internal/infrastructure/window"
)

func showWindow(g *game.Game, cfg config.WindowConfig, ticks int, echo io.Writer) error {
	return window.Run(window.New(g, cfg, ticks, echo), cfg)
}

func main() {
	// Parse command line flags
	var opts launcher.Options
	flag.StringVar(&opts.Preset, "preset", "classic", "Rules preset to load (e.g., -preset compact)")
	flag.IntVar(&opts.Ticks, "ticks", 0, "Number of loop ticks (0 = value from loop.json)")
	flag.StringVar(&opts.ConfigDir, "config", "", "Load configs from this directory instead of the embedded ones")
	flag.StringVar(&opts.Record, "record", "", "Record frames to file (e.g., -record transcript.json)")
	flag.StringVar(&opts.Verify, "verify", "", "Re-run a recorded transcript and compare every frame")
	flag.BoolVar(&opts.Window, "window", false, "Show frames in a window as well as on stdout")
	flag.BoolVar(&opts.List, "list", false, "List available presets and exit")
	flag.Parse()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	opts.Configs = fsys
	opts.Display = showWindow

	if err := launcher.Run(opts, os.Stdout); err != nil {
		log.Fatalf("screens: %v", err)
	}
}
