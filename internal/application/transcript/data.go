// Package transcript records loop output to JSON and verifies it by re-running the loop.
package transcript

import "github.com/younwookim/screenloop/internal/application/screen"

// Version is written into every transcript
const Version = "1.0"

// Frame records a single rendered frame
type Frame struct {
	F       int      `json:"f"`                // Tick number, starting at 1
	Kind    string   `json:"kind"`             // Live screen when painted
	Counter int      `json:"counter"`          // selected_option or player_x
	Signal  string   `json:"signal,omitempty"` // Transition raised by this tick
	Lines   []string `json:"lines"`
}

// Data contains everything needed to reproduce a loop session
type Data struct {
	Version   string       `json:"version"`
	Preset    string       `json:"preset"`
	Rules     screen.Rules `json:"rules"`
	StartTime string       `json:"startTime"`
	Frames    []Frame      `json:"frames"`
}
