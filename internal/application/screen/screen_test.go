package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/screenloop/internal/application/state"
	"github.com/younwookim/screenloop/internal/domain/canvas"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, State{Kind: state.ScreenMenu, Counter: 0}, Initial())
	assert.Equal(t, State{}, Initial(), "zero State is Menu(0)")
}

func TestStep_Menu(t *testing.T) {
	tests := []struct {
		name       string
		from       State
		wantState  State
		wantSignal state.Signal
	}{
		{"first tick", Menu(0), Menu(1), state.SignalNone},
		{"below threshold", Menu(2), Menu(3), state.SignalNone},
		{"reaches threshold", Menu(3), Game(0), state.SignalSwitchToGame},
		{"already past threshold", Menu(10), Game(0), state.SignalSwitchToGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, sig := Step(tt.from, Classic)
			assert.Equal(t, tt.wantState, next)
			assert.Equal(t, tt.wantSignal, sig)
		})
	}
}

func TestStep_Game(t *testing.T) {
	tests := []struct {
		name       string
		from       State
		wantState  State
		wantSignal state.Signal
	}{
		{"first tick", Game(0), Game(5), state.SignalNone},
		{"lands on threshold", Game(95), Game(100), state.SignalNone},
		{"exceeds threshold", Game(100), Menu(0), state.SignalSwitchToMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, sig := Step(tt.from, Classic)
			assert.Equal(t, tt.wantState, next)
			assert.Equal(t, tt.wantSignal, sig)
		})
	}
}

func TestStep_CompactPreset(t *testing.T) {
	next, sig := Step(Menu(2), Compact)
	assert.Equal(t, Game(0), next)
	assert.Equal(t, state.SignalSwitchToGame, sig)

	next, sig = Step(Game(50), Compact)
	assert.Equal(t, Menu(0), next)
	assert.Equal(t, state.SignalSwitchToMenu, sig)
}

func TestAt_ClassicScenario(t *testing.T) {
	assert.Equal(t, Menu(3), At(3, Classic))
	assert.Equal(t, Game(0), At(4, Classic))
	assert.Equal(t, Game(100), At(24, Classic))
	assert.Equal(t, Menu(0), At(25, Classic), "player_x reaches 105 on the 21st game tick")
}

func TestAt_IsPeriodic(t *testing.T) {
	for _, r := range []Rules{Classic, Compact} {
		cycle := r.Cycle()
		for n := 0; n < cycle; n++ {
			assert.Equal(t, At(n, r), At(n+cycle, r), "tick %d", n)
		}
	}
}

func TestRules_Cycle(t *testing.T) {
	assert.Equal(t, 25, Classic.Cycle())
	assert.Equal(t, 9, Compact.Cycle())
	assert.Equal(t, 0, Rules{MenuThreshold: 4, GameStep: 0, GameThreshold: 100}.Cycle())
	assert.Equal(t, 0, Rules{}.Cycle())
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		wantErr bool
	}{
		{"classic", Classic, false},
		{"compact", Compact, false},
		{"zero game threshold", Rules{MenuThreshold: 1, GameStep: 1, GameThreshold: 0}, false},
		{"zero menu threshold", Rules{MenuThreshold: 0, GameStep: 5, GameThreshold: 100}, true},
		{"zero step", Rules{MenuThreshold: 4, GameStep: 0, GameThreshold: 100}, true},
		{"negative threshold", Rules{MenuThreshold: 4, GameStep: 5, GameThreshold: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRules)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	c := canvas.New()
	Paint(Menu(2), c)
	assert.Equal(t, []string{"Drawing Menu Title", "Drawing menu option: 2"}, c.Lines())

	c.Clear()
	Paint(Game(35), c)
	assert.Equal(t, []string{"Drawing Game Title", "Drawing player at position: 35"}, c.Lines())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Menu(2)", Menu(2).String())
	assert.Equal(t, "Game(40)", Game(40).String())
}

func TestStep_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		Step(State{Kind: state.ScreenKind(7)}, Classic)
	})
}
