package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/younwookim/screenloop/internal/application/game"
	"github.com/younwookim/screenloop/internal/application/state"
)

// ErrMismatch is returned when a re-run diverges from the transcript
var ErrMismatch = errors.New("transcript mismatch")

// Load loads transcript data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}

	return &data, nil
}

// Verify re-runs the recorded rules from Menu(0) and compares every frame.
func Verify(data Data) error {
	if err := data.Rules.Validate(); err != nil {
		return err
	}

	g := game.New(data.Rules)
	for i, want := range data.Frames {
		kind, ok := state.ParseScreenKind(want.Kind)
		if !ok {
			return fmt.Errorf("%w: frame %d: unknown screen kind %q", ErrMismatch, i, want.Kind)
		}

		sig := g.Tick()
		g.Paint()

		if want.F != g.Ticks() {
			return fmt.Errorf("%w: frame %d: tick %d, expected %d", ErrMismatch, i, want.F, g.Ticks())
		}

		got := g.State()
		if kind != got.Kind || want.Counter != got.Counter {
			return fmt.Errorf("%w: tick %d: recorded %s(%d), replayed %s", ErrMismatch, want.F, want.Kind, want.Counter, got)
		}

		if want.Signal != signalName(sig) {
			return fmt.Errorf("%w: tick %d: recorded signal %q, replayed %q", ErrMismatch, want.F, want.Signal, signalName(sig))
		}

		if lines := g.Canvas().Lines(); !slices.Equal(want.Lines, lines) {
			return fmt.Errorf("%w: tick %d: recorded lines %q, replayed %q", ErrMismatch, want.F, want.Lines, lines)
		}

		g.Clear()
	}

	return nil
}

// VerifyFile loads and verifies a transcript file
func VerifyFile(filename string) (*Data, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, err
	}
	if err := Verify(*data); err != nil {
		return data, err
	}
	return data, nil
}
