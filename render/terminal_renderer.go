package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
)

// TerminalRenderer draws the snake onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	glyph  rune
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		glyph:  constants.SnakeGlyph,
	}
}

// Bounds reports the current screen size as grid bounds
func (r *TerminalRenderer) Bounds() core.Bounds {
	width, height := r.screen.Size()
	return core.Bounds{Rows: height, Cols: width}
}

// RenderFrame clears the screen and draws body then head; cells[0] is the head
func (r *TerminalRenderer) RenderFrame(cells []core.Cell, palette *Palette) {
	r.screen.Clear()

	if len(cells) > 0 {
		bodyStyle := palette.BodyStyle()
		for _, c := range cells[1:] {
			r.screen.SetContent(c.Col, c.Row, r.glyph, nil, bodyStyle)
		}

		head := cells[0]
		r.screen.SetContent(head.Col, head.Row, r.glyph, nil, palette.LeadStyle())
	}

	r.screen.Show()
}
