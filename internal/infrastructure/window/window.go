// Package window runs the screen loop inside an ebiten window.
//
// Each loop tick is spread over several engine updates so the frames are
// readable; the canvas for the latest tick is drawn as debug text.
package window

import (
	"errors"
	"image/color"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/screenloop/internal/application/game"
	"github.com/younwookim/screenloop/internal/infrastructure/config"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Window implements ebiten.Game around a loop manager.
type Window struct {
	game    *game.Game
	echo    io.Writer
	screenW int
	screenH int

	updatesPerTick int
	maxTicks       int
	updates        int
	text           string
}

// New creates a Window. Frames are also rendered to echo when it is non-nil.
// The window closes itself after maxTicks ticks; maxTicks <= 0 runs until closed.
func New(g *game.Game, cfg config.WindowConfig, maxTicks int, echo io.Writer) *Window {
	upt := cfg.UpdatesPerTick
	if upt <= 0 {
		upt = 1
	}
	if echo == nil {
		echo = io.Discard
	}
	return &Window{
		game:           g,
		echo:           echo,
		screenW:        cfg.ScreenWidth,
		screenH:        cfg.ScreenHeight,
		updatesPerTick: upt,
		maxTicks:       maxTicks,
	}
}

// Update advances the loop one tick every updatesPerTick engine updates.
// Implements ebiten.Game interface.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	w.updates++
	// Space skips ahead to the next tick
	if w.updates < w.updatesPerTick && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}
	w.updates = 0

	if w.maxTicks > 0 && w.game.Ticks() >= w.maxTicks {
		return ebiten.Termination
	}

	info, err := w.game.Next(w.echo)
	if err != nil {
		return err
	}
	w.text = strings.Join(info.Lines, "\n")

	return nil
}

// Draw renders the latest frame.
// Implements ebiten.Game interface.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, w.text, 10, 10)
	ebitenutil.DebugPrintAt(screen, w.game.State().String(), 10, w.screenH-20)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screenW, w.screenH
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, cfg config.WindowConfig) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(cfg.ScreenWidth*scale, cfg.ScreenHeight*scale)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Framerate > 0 {
		ebiten.SetTPS(cfg.Framerate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
