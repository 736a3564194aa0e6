package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/screenloop/internal/application/game"
	"github.com/younwookim/screenloop/internal/application/screen"
	"github.com/younwookim/screenloop/internal/application/state"
)

// Recorder collects frames from a running game
type Recorder struct {
	data Data
}

// NewRecorder creates a recorder for the given preset and rules
func NewRecorder(preset string, rules screen.Rules) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Preset:    preset,
			Rules:     rules,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 64),
		},
	}
}

// RecordFrame records a single frame. Pass it to game.WithObserver.
func (r *Recorder) RecordFrame(info game.FrameInfo) {
	frame := Frame{
		F:       info.Tick,
		Kind:    info.State.Kind.String(),
		Counter: info.State.Counter,
		Lines:   info.Lines,
	}
	frame.Signal = signalName(info.Signal)

	r.data.Frames = append(r.data.Frames, frame)
}

// Save writes the transcript to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the transcript data
func (r *Recorder) GetData() Data {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("transcript_%s.json", time.Now().Format("20060102_150405"))
}

// signalName leaves SignalNone out of the JSON
func signalName(sig state.Signal) string {
	if sig == state.SignalNone {
		return ""
	}
	return sig.String()
}
