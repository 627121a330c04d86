package world

import "strings"

// Grid is a fixed-size, row-major array of cells. The outermost ring is the border.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Cell{X: x, Y: y, Tile: TileWall}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds reports whether the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at the given position. The second result is false when
// the position is outside the grid.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.Width+x], true
}

// Tile returns the tile at the given position, or TileWall outside the grid.
func (g *Grid) Tile(x, y int) Tile {
	c, ok := g.At(x, y)
	if !ok {
		return TileWall
	}
	return c.Tile
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.Tile(x, y).IsPassable()
}

// Set overwrites the tile at the given position. It returns false and leaves
// the grid untouched when the position is outside the grid.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.Width+x].Tile = t
	return true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// CarveRoom sets all tiles within the room to floor.
func (g *Grid) CarveRoom(room Room) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, TileFloor)
		}
	}
}

// CarveHorizontal carves floor along row y from x1 to x2 inclusive, in either order.
func (g *Grid) CarveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.Set(x, y, TileFloor)
	}
}

// CarveVertical carves floor along column x from y1 to y2 inclusive, in either order.
func (g *Grid) CarveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.Set(x, y, TileFloor)
	}
}

// CarveL joins (x1,y1) and (x2,y2) with an L-shaped corridor. When
// horizontalFirst is set the bend sits at (x2,y1), otherwise at (x1,y2).
func (g *Grid) CarveL(x1, y1, x2, y2 int, horizontalFirst bool) {
	if horizontalFirst {
		g.CarveHorizontal(x1, x2, y1)
		g.CarveVertical(y1, y2, x2)
	} else {
		g.CarveVertical(y1, y2, x1)
		g.CarveHorizontal(x1, x2, y2)
	}
}

// EnforceBorder turns the outermost ring back into wall.
func (g *Grid) EnforceBorder() {
	for x := 0; x < g.Width; x++ {
		g.Set(x, 0, TileWall)
		g.Set(x, g.Height-1, TileWall)
	}
	for y := 0; y < g.Height; y++ {
		g.Set(0, y, TileWall)
		g.Set(g.Width-1, y, TileWall)
	}
}

// String renders the grid as text, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.cells[y*g.Width+x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
