// Package canvas provides the text frame buffer that screens paint into.
package canvas

import (
	"fmt"
	"io"
	"strings"
)

// DefaultSeparator terminates every rendered frame.
const DefaultSeparator = "-----------------------------"

// Canvas collects drawing instructions for a single frame.
//
// Lines are kept in insertion order until Clear is called.
type Canvas struct {
	buffer    []string
	separator string
}

// New creates an empty canvas using DefaultSeparator.
func New() *Canvas {
	return NewWithSeparator(DefaultSeparator)
}

// NewWithSeparator creates an empty canvas with a custom frame separator.
func NewWithSeparator(separator string) *Canvas {
	return &Canvas{
		buffer:    make([]string, 0, 4),
		separator: separator,
	}
}

// Append adds a drawing instruction to the frame.
func (c *Canvas) Append(line string) {
	c.buffer = append(c.buffer, line)
}

// Render writes all buffered lines followed by the separator.
// The buffer is left untouched.
func (c *Canvas) Render(w io.Writer) error {
	if _, err := io.WriteString(w, c.String()); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	return nil
}

// Clear empties the buffer.
func (c *Canvas) Clear() {
	c.buffer = c.buffer[:0]
}

// Lines returns a copy of the buffered lines.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.buffer))
	copy(out, c.buffer)
	return out
}

// Len returns the number of buffered lines.
func (c *Canvas) Len() int {
	return len(c.buffer)
}

// Separator returns the frame separator.
func (c *Canvas) Separator() string {
	return c.separator
}

// String returns exactly what Render would write.
func (c *Canvas) String() string {
	var sb strings.Builder
	for _, line := range c.buffer {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(c.separator)
	sb.WriteByte('\n')
	return sb.String()
}
