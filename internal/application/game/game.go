// Package game provides the loop manager that owns the live screen and the canvas.
package game

import (
	"io"

	"github.com/younwookim/screenloop/internal/application/screen"
	"github.com/younwookim/screenloop/internal/application/state"
	"github.com/younwookim/screenloop/internal/domain/canvas"
)

// FrameInfo describes one completed frame.
type FrameInfo struct {
	Tick   int
	State  screen.State
	Signal state.Signal
	Lines  []string
}

// Option configures a Game.
type Option func(*Game)

// WithCanvas replaces the default canvas.
func WithCanvas(c *canvas.Canvas) Option {
	return func(g *Game) {
		g.canvas = c
	}
}

// WithObserver registers a callback invoked after each frame is painted.
func WithObserver(fn func(FrameInfo)) Option {
	return func(g *Game) {
		g.observers = append(g.observers, fn)
	}
}

// WithTransitionHook registers a callback invoked whenever the live screen is replaced.
func WithTransitionHook(fn func(from, to screen.State)) Option {
	return func(g *Game) {
		g.onTransition = append(g.onTransition, fn)
	}
}

// Game drives the tick -> paint -> render -> clear loop.
type Game struct {
	rules  screen.Rules
	state  screen.State
	canvas *canvas.Canvas
	ticks  int
	last   state.Signal

	observers    []func(FrameInfo)
	onTransition []func(from, to screen.State)
}

// New creates a Game starting on Menu(0).
func New(rules screen.Rules, opts ...Option) *Game {
	g := &Game{
		rules: rules,
		state: screen.Initial(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.canvas == nil {
		g.canvas = canvas.New()
	}
	return g
}

// Tick advances the state machine one step.
// The live screen is replaced when a transition is signalled.
func (g *Game) Tick() state.Signal {
	prev := g.state
	next, sig := screen.Step(g.state, g.rules)
	g.state = next
	g.ticks++
	g.last = sig

	if sig != state.SignalNone {
		for _, fn := range g.onTransition {
			fn(prev, next)
		}
	}
	return sig
}

// Paint draws the live screen onto the canvas.
func (g *Game) Paint() {
	screen.Paint(g.state, g.canvas)
}

// Present returns the canvas's current rendered content.
func (g *Game) Present() string {
	return g.canvas.String()
}

// Render writes the canvas to w.
func (g *Game) Render(w io.Writer) error {
	return g.canvas.Render(w)
}

// Clear empties the canvas.
func (g *Game) Clear() {
	g.canvas.Clear()
}

// Frame runs one tick, paint, render, clear iteration.
func (g *Game) Frame(w io.Writer) error {
	_, err := g.Next(w)
	return err
}

// Next is Frame that also returns the painted frame.
func (g *Game) Next(w io.Writer) (FrameInfo, error) {
	g.Tick()
	g.Paint()

	info := FrameInfo{
		Tick:   g.ticks,
		State:  g.state,
		Signal: g.last,
		Lines:  g.canvas.Lines(),
	}
	for _, fn := range g.observers {
		fn(info)
	}

	if err := g.Render(w); err != nil {
		return info, err
	}
	g.Clear()
	return info, nil
}

// Run executes the given number of frames, stopping at the first write error.
func (g *Game) Run(w io.Writer, frames int) error {
	for i := 0; i < frames; i++ {
		if err := g.Frame(w); err != nil {
			return err
		}
	}
	return nil
}

// State returns the live screen.
func (g *Game) State() screen.State {
	return g.state
}

// Ticks returns how many ticks have been applied.
func (g *Game) Ticks() int {
	return g.ticks
}

// Canvas returns the canvas owned by the game.
func (g *Game) Canvas() *canvas.Canvas {
	return g.canvas
}
