package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default dungeon dimensions, border ring included.
	DefaultWidth  = 80
	DefaultHeight = 22

	defaultMinRoomSize = 4
	defaultMaxRoomSize = 10
	defaultMaxRooms    = 12
	defaultMinRooms    = 2
	defaultMaxAttempts = 200
)

var (
	// ErrInvalidParams is returned when generation parameters cannot describe a dungeon.
	ErrInvalidParams = errors.New("invalid dungeon parameters")
	// ErrPlacementExhausted is returned when the attempt budget ran out before
	// enough rooms could be placed.
	ErrPlacementExhausted = errors.New("room placement attempts exhausted")
)

// Strategy selects how accepted rooms are joined by corridors.
type Strategy int

const (
	// StrategyAllPairs carves a corridor for every room pair, nearest pairs first.
	StrategyAllPairs Strategy = iota
	// StrategySpanning walks the same nearest-first order but only carves pairs
	// that join rooms not yet connected, giving one corridor fewer than rooms.
	StrategySpanning
)

// String returns the strategy name used in configuration.
func (s Strategy) String() string {
	switch s {
	case StrategyAllPairs:
		return "all-pairs"
	case StrategySpanning:
		return "spanning"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all-pairs", "allpairs":
		return StrategyAllPairs, nil
	case "spanning", "mst":
		return StrategySpanning, nil
	default:
		return 0, fmt.Errorf("%w: unknown connection strategy %q", ErrInvalidParams, name)
	}
}

// Params controls dungeon generation.
type Params struct {
	Width, Height int // Grid size including the border ring

	MinRoomSize int // Smallest room side
	MaxRoomSize int // Largest room side

	MaxRooms    int // Room quota; placement stops once reached
	MinRooms    int // Fewer accepted rooms than this fails generation
	MaxAttempts int // Candidate rooms sampled at most

	Strategy Strategy
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinRoomSize: defaultMinRoomSize,
		MaxRoomSize: defaultMaxRoomSize,
		MaxRooms:    defaultMaxRooms,
		MinRooms:    defaultMinRooms,
		MaxAttempts: defaultMaxAttempts,
		Strategy:    StrategyAllPairs,
	}
}

// Validate checks that the parameters can produce at least one room.
func (p Params) Validate() error {
	switch {
	case p.Width < 3 || p.Height < 3:
		return fmt.Errorf("%w: grid %dx%d leaves no interior", ErrInvalidParams, p.Width, p.Height)
	case p.MinRoomSize < 1:
		return fmt.Errorf("%w: min room size %d", ErrInvalidParams, p.MinRoomSize)
	case p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("%w: max room size %d below min %d", ErrInvalidParams, p.MaxRoomSize, p.MinRoomSize)
	case p.MaxRoomSize > p.Width-2 || p.MaxRoomSize > p.Height-2:
		return fmt.Errorf("%w: max room size %d does not fit inside %dx%d", ErrInvalidParams, p.MaxRoomSize, p.Width, p.Height)
	case p.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidParams, p.MaxRooms)
	case p.MinRooms < 1 || p.MinRooms > p.MaxRooms:
		return fmt.Errorf("%w: min rooms %d outside 1..%d", ErrInvalidParams, p.MinRooms, p.MaxRooms)
	case p.MaxAttempts < p.MaxRooms:
		return fmt.Errorf("%w: %d attempts cannot place %d rooms", ErrInvalidParams, p.MaxAttempts, p.MaxRooms)
	case p.Strategy != StrategyAllPairs && p.Strategy != StrategySpanning:
		return fmt.Errorf("%w: strategy %d", ErrInvalidParams, int(p.Strategy))
	}
	return nil
}
