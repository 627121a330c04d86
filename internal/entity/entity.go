// Package entity provides the player and the creatures that move around the dungeon.
package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/glyphcrawl/internal/gamedata"
)

// glyphAlphabet is the set a shuffling entity draws its glyph from.
const glyphAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Passabler reports whether a position may be occupied.
type Passabler interface {
	IsPassable(x, y int) bool
}

// Entity is anything drawn on top of the map. The player and enemies share it.
type Entity struct {
	ID       string      // Definition identifier (e.g., "player", "critter")
	Name     string      // Display name
	X, Y     int         // Position in the dungeon
	Glyph    rune        // Display symbol
	Color    tcell.Color // Display attribute
	Wanders  bool        // Steps randomly every turn
	Shuffles bool        // Re-randomizes its glyph every turn
}

// New creates an entity with the given glyph at the specified position.
func New(name string, glyph rune, x, y int) *Entity {
	return &Entity{
		ID:    name,
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: tcell.ColorWhite,
	}
}

// NewFromDef creates an entity from a data-driven definition.
func NewFromDef(def *gamedata.EntityDef, x, y int) *Entity {
	return &Entity{
		ID:       def.ID,
		Name:     def.Name,
		X:        x,
		Y:        y,
		Glyph:    def.GlyphRune(),
		Color:    def.TCellColor(),
		Wanders:  def.Wanders,
		Shuffles: def.ShufflesGlyph,
	}
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// Move shifts the entity by the given delta if the destination is passable.
// It reports whether the entity moved; a blocked move leaves it in place.
func (e *Entity) Move(dx, dy int, m Passabler) bool {
	newX := e.X + dx
	newY := e.Y + dy

	if !m.IsPassable(newX, newY) {
		return false
	}
	e.X = newX
	e.Y = newY
	return true
}

// Wander tries one random unit step, or stays put.
func (e *Entity) Wander(rng *rand.Rand, m Passabler) bool {
	d := wanderSteps[rng.Intn(len(wanderSteps))]
	if d == (Direction{}) {
		return false
	}
	return e.Move(d.DX, d.DY, m)
}

// ShuffleGlyph replaces the glyph with a random ASCII letter or digit.
func (e *Entity) ShuffleGlyph(rng *rand.Rand) {
	e.Glyph = rune(glyphAlphabet[rng.Intn(len(glyphAlphabet))])
}

// Act runs the entity's per-turn behaviour.
func (e *Entity) Act(rng *rand.Rand, m Passabler) {
	if e.Wanders {
		e.Wander(rng, m)
	}
	if e.Shuffles {
		e.ShuffleGlyph(rng)
	}
}
