package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, params Params, seed int64) *Dungeon {
	t.Helper()
	d, err := NewGenerator(params, rand.New(rand.NewSource(seed)), nil).Generate(context.Background())
	require.NoError(t, err)
	return d
}

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)

	d1 := generate(t, DefaultParams(), seed)
	d2 := generate(t, DefaultParams(), seed)

	require.Equal(t, d1.Rooms, d2.Rooms)
	assert.Equal(t, d1.Corridors, d2.Corridors)
	assert.Equal(t, d1.String(), d2.String())
}

func TestDungeonDifferentSeeds(t *testing.T) {
	d1 := generate(t, DefaultParams(), 12345)
	d2 := generate(t, DefaultParams(), 54321)

	// Very unlikely to be identical by chance
	assert.NotEqual(t, d1.String(), d2.String())
}

func TestGeneratedRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		d := generate(t, DefaultParams(), seed)
		require.GreaterOrEqual(t, len(d.Rooms), DefaultParams().MinRooms)
		require.LessOrEqual(t, len(d.Rooms), DefaultParams().MaxRooms)

		for i := range d.Rooms {
			for j := i + 1; j < len(d.Rooms); j++ {
				assert.False(t, d.Rooms[i].Intersects(d.Rooms[j]),
					"seed %d: rooms %v and %v overlap", seed, d.Rooms[i], d.Rooms[j])
			}
		}
	}
}

func TestGeneratedRoomsFitParams(t *testing.T) {
	p := DefaultParams()
	for seed := int64(1); seed <= 20; seed++ {
		d := generate(t, p, seed)
		for _, r := range d.Rooms {
			assert.GreaterOrEqual(t, r.Width(), p.MinRoomSize)
			assert.LessOrEqual(t, r.Width(), p.MaxRoomSize)
			assert.GreaterOrEqual(t, r.Height(), p.MinRoomSize)
			assert.LessOrEqual(t, r.Height(), p.MaxRoomSize)
			assert.GreaterOrEqual(t, r.X1, 1)
			assert.GreaterOrEqual(t, r.Y1, 1)
			assert.LessOrEqual(t, r.X2, p.Width-2)
			assert.LessOrEqual(t, r.Y2, p.Height-2)
		}
	}
}

func TestOnlyRoomsAndCorridorsAreCarved(t *testing.T) {
	for _, strategy := range []Strategy{StrategyAllPairs, StrategySpanning} {
		p := DefaultParams()
		p.Strategy = strategy
		d := generate(t, p, 7)

		want := NewGrid(p.Width, p.Height)
		for _, r := range d.Rooms {
			want.CarveRoom(r)
		}
		for _, c := range d.Corridors {
			c.Carve(want)
		}
		want.EnforceBorder()

		assert.Equal(t, want.String(), d.String(), strategy.String())

		for _, r := range d.Rooms {
			for y := r.Y1; y <= r.Y2; y++ {
				for x := r.X1; x <= r.X2; x++ {
					assert.True(t, d.IsPassable(x, y))
				}
			}
		}
	}
}

func TestBorderIsAlwaysWall(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d := generate(t, DefaultParams(), seed)
		for x := 0; x < d.Width; x++ {
			assert.False(t, d.IsPassable(x, 0))
			assert.False(t, d.IsPassable(x, d.Height-1))
		}
		for y := 0; y < d.Height; y++ {
			assert.False(t, d.IsPassable(0, y))
			assert.False(t, d.IsPassable(d.Width-1, y))
		}
	}
}

func TestAllRoomsReachable(t *testing.T) {
	for _, strategy := range []Strategy{StrategyAllPairs, StrategySpanning} {
		for seed := int64(1); seed <= 20; seed++ {
			p := DefaultParams()
			p.Strategy = strategy
			d := generate(t, p, seed)

			reached := floodFill(d.Grid, d.Rooms[0])
			for _, r := range d.Rooms {
				x, y := r.Center()
				assert.True(t, reached[[2]int{x, y}],
					"%s seed %d: room %v unreachable", strategy, seed, r)
			}
		}
	}
}

func TestConnectionCounts(t *testing.T) {
	p := DefaultParams()
	d := generate(t, p, 99)
	n := len(d.Rooms)
	assert.Len(t, d.Connections, n*(n-1)/2)
	assert.Len(t, d.Corridors, len(d.Connections))
	for i := 1; i < len(d.Connections); i++ {
		assert.LessOrEqual(t, d.Connections[i-1].Distance, d.Connections[i].Distance)
	}

	p.Strategy = StrategySpanning
	d = generate(t, p, 99)
	assert.Len(t, d.Connections, len(d.Rooms)-1)
	assert.Len(t, d.Corridors, len(d.Rooms)-1)
}

func TestPlacementExhausted(t *testing.T) {
	// Only one 10x10 room fits inside a 12x12 grid.
	p := Params{
		Width: 12, Height: 12,
		MinRoomSize: 10, MaxRoomSize: 10,
		MaxRooms: 3, MinRooms: 2, MaxAttempts: 50,
	}

	_, err := NewGenerator(p, rand.New(rand.NewSource(1)), nil).Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlacementExhausted)

	p.MinRooms = 1
	d := generate(t, p, 1)
	assert.Len(t, d.Rooms, 1)
	assert.Empty(t, d.Connections)
}

func TestInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"tiny grid", func(p *Params) { p.Width = 2 }},
		{"zero min size", func(p *Params) { p.MinRoomSize = 0 }},
		{"max below min", func(p *Params) { p.MaxRoomSize = p.MinRoomSize - 1 }},
		{"room too tall", func(p *Params) { p.MaxRoomSize = p.Height - 1 }},
		{"no quota", func(p *Params) { p.MaxRooms = 0 }},
		{"min above quota", func(p *Params) { p.MinRooms = p.MaxRooms + 1 }},
		{"attempts below quota", func(p *Params) { p.MaxAttempts = p.MaxRooms - 1 }},
		{"unknown strategy", func(p *Params) { p.Strategy = Strategy(9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)

			_, err := NewGenerator(p, rand.New(rand.NewSource(1)), nil).Generate(context.Background())
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  Strategy
		valid bool
	}{
		{"", StrategyAllPairs, true},
		{"all-pairs", StrategyAllPairs, true},
		{"Spanning", StrategySpanning, true},
		{"mst", StrategySpanning, true},
		{"sequential", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if !tt.valid {
			assert.ErrorIs(t, err, ErrInvalidParams, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, got, mustParse(t, got.String()))
	}
}

func mustParse(t *testing.T, name string) Strategy {
	t.Helper()
	s, err := ParseStrategy(name)
	require.NoError(t, err)
	return s
}

func TestRandomPointInRoom(t *testing.T) {
	d := generate(t, DefaultParams(), 3)
	rng := rand.New(rand.NewSource(3))

	for i := range d.Rooms {
		x, y, ok := d.RandomPointInRoom(i, rng)
		require.True(t, ok)
		assert.True(t, d.Rooms[i].Contains(x, y))
		assert.True(t, d.IsPassable(x, y))
		assert.Equal(t, i, d.RoomIndexAt(x, y))
	}

	_, _, ok := d.RandomPointInRoom(len(d.Rooms), rng)
	assert.False(t, ok)
	_, _, ok = d.RandomPointInRoom(-1, rng)
	assert.False(t, ok)
	assert.Equal(t, -1, d.RoomIndexAt(0, 0))
}

// floodFill returns every passable cell reachable from the room's center.
func floodFill(g *Grid, from Room) map[[2]int]bool {
	x, y := from.Center()
	seen := map[[2]int]bool{{x, y}: true}
	queue := [][2]int{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{p[0] + d[0], p[1] + d[1]}
			if !seen[n] && g.IsPassable(n[0], n[1]) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
