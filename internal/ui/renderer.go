package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/glyphcrawl/internal/entity"
	"github.com/samdwyer/glyphcrawl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen Canvas
}

// Canvas is the part of a screen the renderer draws on.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen Canvas) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon, then enemies, then the player on top.
// The caller flushes the screen.
func (r *Renderer) Render(dungeon *world.Dungeon, player *entity.Entity, enemies []*entity.Entity) {
	r.screen.Clear()

	dungeon.Each(func(c world.Cell) {
		r.screen.SetContent(c.X, c.Y, c.Glyph(), tileStyle(c.Tile))
	})

	for _, e := range enemies {
		r.drawEntity(e, false)
	}
	r.drawEntity(player, true)
}

func (r *Renderer) drawEntity(e *entity.Entity, bold bool) {
	style := tcell.StyleDefault.Foreground(e.Color).Bold(bold)
	r.screen.SetContent(e.X, e.Y, e.Glyph, style)
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderStatus writes the status line on row y.
func (r *Renderer) RenderStatus(seed int64, turn, rooms, y int) {
	r.RenderMessage(fmt.Sprintf("seed %d  turn %d  rooms %d  [wasd/arrows move, q quits]", seed, turn, rooms), y)
}

// RenderMessage displays a message starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
