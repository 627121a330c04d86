package entity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/glyphcrawl/internal/gamedata"
)

// openCells is a Passabler over an explicit set of floor positions.
type openCells map[[2]int]bool

func (o openCells) IsPassable(x, y int) bool {
	return o[[2]int{x, y}]
}

func TestMoveIntoPassableCell(t *testing.T) {
	floor := openCells{{5, 5}: true, {6, 5}: true, {5, 4}: true}
	e := New("player", '@', 5, 5)

	assert.True(t, e.Move(1, 0, floor))
	x, y := e.Position()
	assert.Equal(t, 6, x)
	assert.Equal(t, 5, y)

	assert.True(t, e.Move(-1, 0, floor))
	assert.True(t, e.Move(0, -1, floor))
	assert.Equal(t, 5, e.X)
	assert.Equal(t, 4, e.Y)
}

func TestMoveIntoWallIsDropped(t *testing.T) {
	floor := openCells{{5, 5}: true}
	e := New("player", '@', 5, 5)

	for _, d := range []Direction{Up, Down, Left, Right} {
		assert.False(t, e.Move(d.DX, d.DY, floor))
		assert.Equal(t, 5, e.X)
		assert.Equal(t, 5, e.Y)
	}
}

func TestWanderStaysOnFloor(t *testing.T) {
	floor := openCells{}
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			floor[[2]int{x, y}] = true
		}
	}
	rng := rand.New(rand.NewSource(42))
	e := New("critter", 'c', 3, 3)

	moved := 0
	for i := 0; i < 200; i++ {
		px, py := e.Position()
		if e.Wander(rng, floor) {
			moved++
			dist := abs(e.X-px) + abs(e.Y-py)
			assert.Equal(t, 1, dist)
		}
		require.True(t, floor.IsPassable(e.X, e.Y))
	}
	assert.Positive(t, moved)
}

func TestShuffleGlyph(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New("critter", 'c', 0, 0)

	seen := map[rune]bool{}
	for i := 0; i < 100; i++ {
		e.ShuffleGlyph(rng)
		assert.True(t, strings.ContainsRune(glyphAlphabet, e.Glyph), "glyph %q", e.Glyph)
		seen[e.Glyph] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestActFollowsDefinition(t *testing.T) {
	floor := openCells{{1, 1}: true}
	rng := rand.New(rand.NewSource(1))

	statue := NewFromDef(&gamedata.EntityDef{ID: "statue", Name: "Statue", Glyph: "S", Color: "#808080"}, 1, 1)
	for i := 0; i < 20; i++ {
		statue.Act(rng, floor)
	}
	assert.Equal(t, 'S', statue.Glyph)
	assert.Equal(t, 1, statue.X)

	critter := NewFromDef(&gamedata.EntityDef{ID: "critter", Glyph: "c", Wanders: true, ShufflesGlyph: true}, 1, 1)
	assert.True(t, critter.Wanders)
	assert.True(t, critter.Shuffles)
	critter.Act(rng, floor)
	assert.True(t, strings.ContainsRune(glyphAlphabet, critter.Glyph))
	assert.Equal(t, 1, critter.X, "no passable neighbour to step onto")
}

func TestDirectionForRune(t *testing.T) {
	tests := []struct {
		input rune
		want  Direction
		ok    bool
	}{
		{'w', Direction{0, -1}, true},
		{'s', Direction{0, 1}, true},
		{'a', Direction{-1, 0}, true},
		{'d', Direction{1, 0}, true},
		{'x', Direction{}, false},
		{'W', Direction{}, false},
	}

	for _, tt := range tests {
		got, ok := DirectionForRune(tt.input)
		assert.Equal(t, tt.ok, ok, string(tt.input))
		assert.Equal(t, tt.want, got, string(tt.input))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
