package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EntityDef defines a player or enemy type loaded from JSON.
type EntityDef struct {
	ID            string `json:"id"`            // Unique identifier (e.g., "critter")
	Name          string `json:"name"`          // Display name (e.g., "Critter")
	Glyph         string `json:"glyph"`         // Single character for rendering (e.g., "c")
	Color         string `json:"color"`         // Hex color code (e.g., "#FF0000")
	Wanders       bool   `json:"wanders"`       // Takes a random step every turn
	ShufflesGlyph bool   `json:"shufflesGlyph"` // Shows a random letter or digit every turn
	SpawnWeight   int    `json:"spawnWeight"`   // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EntityDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EntityDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EntitiesFile represents the structure of entities.json.
type EntitiesFile struct {
	Player  EntityDef   `json:"player"`
	Enemies []EntityDef `json:"enemies"`
}

// LoadEntities loads entity definitions from the embedded entities.json file.
func LoadEntities() (EntitiesFile, error) {
	return Load[EntitiesFile]("entities.json")
}

// Validate checks that every definition can be drawn and enemy IDs are unique.
func (f *EntitiesFile) Validate() error {
	if f.Player.Glyph == "" {
		return fmt.Errorf("player %q has no glyph", f.Player.ID)
	}
	seen := make(map[string]bool, len(f.Enemies))
	for _, e := range f.Enemies {
		if e.ID == "" || e.Glyph == "" {
			return fmt.Errorf("enemy %q needs an id and a glyph", e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		if e.SpawnWeight < 0 {
			return fmt.Errorf("enemy %q has negative spawn weight", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
