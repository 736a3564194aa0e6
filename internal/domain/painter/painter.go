// Package painter formats drawing instructions for each screen kind.
package painter

import (
	"fmt"

	"github.com/younwookim/screenloop/internal/domain/canvas"
)

// Painter is implemented by every screen painter.
type Painter interface {
	DrawTitle(c *canvas.Canvas)
}

// MenuPainter draws the menu screen.
type MenuPainter struct{}

// DrawTitle appends the menu title.
func (MenuPainter) DrawTitle(c *canvas.Canvas) {
	c.Append("Drawing Menu Title")
}

// DrawOption appends the currently selected menu option.
func (MenuPainter) DrawOption(c *canvas.Canvas, option int) {
	c.Append(fmt.Sprintf("Drawing menu option: %d", option))
}

// GamePainter draws the game screen.
type GamePainter struct{}

// DrawTitle appends the game title.
func (GamePainter) DrawTitle(c *canvas.Canvas) {
	c.Append("Drawing Game Title")
}

// DrawPlayer appends the player's horizontal position.
func (GamePainter) DrawPlayer(c *canvas.Canvas, playerX int) {
	c.Append(fmt.Sprintf("Drawing player at position: %d", playerX))
}
