package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenKind_String(t *testing.T) {
	tests := []struct {
		kind     ScreenKind
		expected string
	}{
		{ScreenMenu, "Menu"},
		{ScreenGame, "Game"},
		{ScreenKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestParseScreenKind(t *testing.T) {
	k, ok := ParseScreenKind("Game")
	assert.True(t, ok)
	assert.Equal(t, ScreenGame, k)

	k, ok = ParseScreenKind("Menu")
	assert.True(t, ok)
	assert.Equal(t, ScreenMenu, k)

	_, ok = ParseScreenKind("Paused")
	assert.False(t, ok)
}

func TestSignal_String(t *testing.T) {
	tests := []struct {
		signal   Signal
		expected string
	}{
		{SignalNone, "None"},
		{SignalSwitchToMenu, "SwitchToMenu"},
		{SignalSwitchToGame, "SwitchToGame"},
		{Signal(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.signal.String())
		})
	}
}

func TestConstants(t *testing.T) {
	// Menu must be the zero value so a zero State starts on the menu
	assert.Equal(t, ScreenKind(0), ScreenMenu)
	assert.Equal(t, Signal(0), SignalNone)
}
