// Package launcher wires config, the loop manager and the transcript recorder
// for the screens command.
package launcher

import (
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/younwookim/screenloop/internal/application/game"
	"github.com/younwookim/screenloop/internal/application/screen"
	"github.com/younwookim/screenloop/internal/application/transcript"
	"github.com/younwookim/screenloop/internal/domain/canvas"
	"github.com/younwookim/screenloop/internal/infrastructure/config"
)

// Display shows a running game somewhere other than the plain frame writer.
// It must render every frame to echo and stop after ticks ticks.
type Display func(g *game.Game, cfg config.WindowConfig, ticks int, echo io.Writer) error

// Options selects what Run does
type Options struct {
	Preset    string
	Ticks     int    // 0 = value from loop.json
	ConfigDir string // empty = Configs
	Record    string // "auto" = timestamped name in the working directory
	Verify    string
	Window    bool
	List      bool

	// Configs is the embedded config tree used when ConfigDir is empty
	Configs fs.FS
	// Display is used when Window is set
	Display Display
}

// Run executes one command invocation, writing frames to stdout.
func Run(opts Options, stdout io.Writer) error {
	if opts.Verify != "" {
		data, err := transcript.VerifyFile(opts.Verify)
		if err != nil {
			return err
		}
		log.Printf("Transcript verified: %s (%d frames, preset %s)", opts.Verify, len(data.Frames), data.Preset)
		return nil
	}

	loader, err := newLoader(opts)
	if err != nil {
		return err
	}

	if opts.List {
		return listPresets(loader, stdout)
	}

	cfg, err := loader.LoadAll(opts.Preset)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}

	rules := RulesFromPreset(cfg.Preset)
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", opts.Preset, err)
	}

	ticks := cfg.Loop.Ticks
	if opts.Ticks > 0 {
		ticks = opts.Ticks
	}

	separator := cfg.Loop.Separator
	if separator == "" {
		separator = canvas.DefaultSeparator
	}

	gameOpts := []game.Option{
		game.WithCanvas(canvas.NewWithSeparator(separator)),
		game.WithTransitionHook(func(from, to screen.State) {
			log.Printf("Screen switch: %s -> %s", from, to)
		}),
	}

	var recorder *transcript.Recorder
	if opts.Record == "auto" {
		opts.Record = transcript.GenerateFilename()
	}
	if opts.Record != "" {
		recorder = transcript.NewRecorder(opts.Preset, rules)
		gameOpts = append(gameOpts, game.WithObserver(recorder.RecordFrame))
		log.Printf("Recording enabled: %s", opts.Record)
	}

	g := game.New(rules, gameOpts...)

	if opts.Window {
		if opts.Display == nil {
			return fmt.Errorf("window requested but no display is available")
		}
		err = opts.Display(g, cfg.Loop.Window, ticks, stdout)
	} else {
		err = g.Run(stdout, ticks)
	}
	if err != nil {
		return err
	}

	if recorder != nil {
		if err := recorder.Save(opts.Record); err != nil {
			return fmt.Errorf("failed to save transcript: %w", err)
		}
		log.Printf("Transcript saved: %s (%d frames)", opts.Record, recorder.FrameCount())
	}

	return nil
}

// RulesFromPreset converts a loaded preset to transition rules
func RulesFromPreset(p *config.PresetConfig) screen.Rules {
	return screen.Rules{
		MenuThreshold: p.Menu.Threshold,
		GameStep:      p.Game.Step,
		GameThreshold: p.Game.Threshold,
	}
}

func newLoader(opts Options) (*config.Loader, error) {
	if opts.ConfigDir != "" {
		return config.NewLoader(opts.ConfigDir), nil
	}
	if opts.Configs == nil {
		return nil, fmt.Errorf("no config directory given")
	}
	return config.NewFSLoader(opts.Configs, "configs"), nil
}

func listPresets(loader *config.Loader, w io.Writer) error {
	names, err := loader.ListPresets()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
