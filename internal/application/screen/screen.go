// Package screen defines the menu/game screen state machine.
//
// A State is a closed tagged value: exactly one Kind is live and its
// Counter means selected_option on the menu and player_x in the game.
// Step is the transition function and Paint draws the live kind.
package screen

import (
	"errors"
	"fmt"

	"github.com/younwookim/screenloop/internal/application/state"
	"github.com/younwookim/screenloop/internal/domain/canvas"
	"github.com/younwookim/screenloop/internal/domain/painter"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("invalid screen rules")

// Rules configures the transition thresholds.
type Rules struct {
	// MenuThreshold is the selected_option value that switches to the game.
	MenuThreshold int `json:"menuThreshold"`
	// GameStep is added to player_x on every game tick.
	GameStep int `json:"gameStep"`
	// GameThreshold is exceeded (strictly) to switch back to the menu.
	GameThreshold int `json:"gameThreshold"`
}

// Presets
var (
	Classic = Rules{MenuThreshold: 4, GameStep: 5, GameThreshold: 100}
	Compact = Rules{MenuThreshold: 3, GameStep: 10, GameThreshold: 50}
)

// Validate rejects rules under which a screen could never advance.
func (r Rules) Validate() error {
	if r.MenuThreshold <= 0 {
		return fmt.Errorf("%w: menu threshold must be positive, got %d", ErrInvalidRules, r.MenuThreshold)
	}
	if r.GameStep <= 0 {
		return fmt.Errorf("%w: game step must be positive, got %d", ErrInvalidRules, r.GameStep)
	}
	if r.GameThreshold < 0 {
		return fmt.Errorf("%w: game threshold must not be negative, got %d", ErrInvalidRules, r.GameThreshold)
	}
	return nil
}

// Cycle returns the number of ticks for one full Menu(0) -> Game -> Menu(0) round.
// It returns 0 for rules that fail Validate.
func (r Rules) Cycle() int {
	if r.Validate() != nil {
		return 0
	}
	gameTicks := r.GameThreshold/r.GameStep + 1
	return r.MenuThreshold + gameTicks
}

// State is the live screen.
type State struct {
	Kind    state.ScreenKind
	Counter int
}

// Initial returns Menu(0).
func Initial() State {
	return Menu(0)
}

// Menu returns a menu state with the given selected option.
func Menu(selected int) State {
	return State{Kind: state.ScreenMenu, Counter: selected}
}

// Game returns a game state with the given player position.
func Game(playerX int) State {
	return State{Kind: state.ScreenGame, Counter: playerX}
}

// String returns e.g. "Menu(2)".
func (s State) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Counter)
}

// Step applies one tick and returns the next state with the signal raised.
// On a signal the target screen always starts from counter 0.
func Step(s State, r Rules) (State, state.Signal) {
	switch s.Kind {
	case state.ScreenMenu:
		n := s.Counter + 1
		if n >= r.MenuThreshold {
			return Game(0), state.SignalSwitchToGame
		}
		return Menu(n), state.SignalNone
	case state.ScreenGame:
		n := s.Counter + r.GameStep
		if n > r.GameThreshold {
			return Menu(0), state.SignalSwitchToMenu
		}
		return Game(n), state.SignalNone
	default:
		panic(fmt.Sprintf("screen: unknown kind %d", s.Kind))
	}
}

// At returns the state reached after the given number of ticks from Initial.
func At(ticks int, r Rules) State {
	s := Initial()
	for i := 0; i < ticks; i++ {
		s, _ = Step(s, r)
	}
	return s
}

// Paint draws the title and status line of the live screen.
func Paint(s State, c *canvas.Canvas) {
	switch s.Kind {
	case state.ScreenMenu:
		p := painter.MenuPainter{}
		p.DrawTitle(c)
		p.DrawOption(c, s.Counter)
	case state.ScreenGame:
		p := painter.GamePainter{}
		p.DrawTitle(c)
		p.DrawPlayer(c, s.Counter)
	default:
		panic(fmt.Sprintf("screen: unknown kind %d", s.Kind))
	}
}
