// Package world provides the dungeon grid, rooms and the room-and-corridor generator.
package world

// Tile represents the kind of a single map cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Cell is a single positioned grid cell.
type Cell struct {
	X, Y int
	Tile Tile
}

// Glyph returns the character drawn for the cell.
func (c Cell) Glyph() rune {
	return c.Tile.Rune()
}

// Passable reports whether an entity may occupy the cell.
func (c Cell) Passable() bool {
	return c.Tile.IsPassable()
}
