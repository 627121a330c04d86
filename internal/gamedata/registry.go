package gamedata

import (
	"errors"
	"math/rand"
)

// Registry holds loaded entity definitions and provides spawning utilities.
type Registry struct {
	player      EntityDef
	enemies     []EntityDef
	totalWeight int
}

// NewRegistry creates a registry from loaded entity definitions.
func NewRegistry(file EntitiesFile) *Registry {
	totalWeight := 0
	for _, e := range file.Enemies {
		totalWeight += e.SpawnWeight
	}
	return &Registry{
		player:      file.Player,
		enemies:     file.Enemies,
		totalWeight: totalWeight,
	}
}

// LoadRegistry loads and creates a registry from the embedded entities.json.
func LoadRegistry() (*Registry, error) {
	file, err := LoadEntities()
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from entities.json")
	}
	return NewRegistry(file), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Player returns the player definition.
func (r *Registry) Player() *EntityDef {
	return &r.player
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *Registry) SpawnRandom(rng *rand.Rand) *EntityDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *EntityDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *Registry) Count() int {
	return len(r.enemies)
}
