package world

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/glyphcrawl/internal/telemetry"
)

// Dungeon is a generated map: the carved grid plus the rooms that shaped it.
type Dungeon struct {
	*Grid
	Rooms       []Room         // Accepted rooms in placement order
	Connections []RoomDistance // Room pairs joined by corridors, in carving order
	Corridors   []Corridor     // Carved corridors, parallel to Connections
}

// Corridor is an L-shaped passage between two points.
type Corridor struct {
	X1, Y1, X2, Y2  int
	HorizontalFirst bool // Bend at (X2,Y1) when set, at (X1,Y2) otherwise
}

// Carve cuts the corridor into the grid.
func (c Corridor) Carve(g *Grid) {
	g.CarveL(c.X1, c.Y1, c.X2, c.Y2, c.HorizontalFirst)
}

// Generator builds dungeons from Params using an explicit random source.
type Generator struct {
	params Params
	rng    *rand.Rand
	log    logrus.FieldLogger
}

// NewGenerator creates a generator. The same params and an identically seeded
// rng always produce the same dungeon. A nil logger discards output.
func NewGenerator(params Params, rng *rand.Rand, log logrus.FieldLogger) *Generator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Generator{
		params: params,
		rng:    rng,
		log:    log,
	}
}

// Generate carves rooms, connects them and seals the border.
func (g *Generator) Generate(ctx context.Context) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := g.params.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	d := &Dungeon{
		Grid:  NewGrid(g.params.Width, g.params.Height),
		Rooms: make([]Room, 0, g.params.MaxRooms),
	}

	attempts := g.placeRooms(d)
	if len(d.Rooms) < g.params.MinRooms {
		err := fmt.Errorf("%w: placed %d of %d required rooms in %d attempts",
			ErrPlacementExhausted, len(d.Rooms), g.params.MinRooms, attempts)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	d.connectRooms(g.params.Strategy, g.rng)
	d.EnforceBorder()

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.corridor_count", len(d.Connections)),
		attribute.Int("dungeon.attempts", attempts),
		attribute.String("dungeon.strategy", g.params.Strategy.String()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	g.log.WithFields(logrus.Fields{
		"rooms":     len(d.Rooms),
		"corridors": len(d.Connections),
		"attempts":  attempts,
		"strategy":  g.params.Strategy.String(),
	}).Debug("dungeon generated")

	return d, nil
}

// placeRooms samples candidate rooms until the quota is met or the attempt
// budget is spent. It returns the number of attempts used.
func (g *Generator) placeRooms(d *Dungeon) int {
	p := g.params
	attempts := 0
	for attempts < p.MaxAttempts && len(d.Rooms) < p.MaxRooms {
		attempts++

		room := g.sampleRoom()
		if overlapsAny(room, d.Rooms) {
			g.log.WithField("room", room).Trace("room rejected: overlap")
			continue
		}

		d.Rooms = append(d.Rooms, room)
		d.CarveRoom(room)
	}
	return attempts
}

// sampleRoom draws a room that lies strictly inside the border ring.
func (g *Generator) sampleRoom() Room {
	p := g.params
	sizes := p.MaxRoomSize - p.MinRoomSize + 1
	width := p.MinRoomSize + g.rng.Intn(sizes)
	height := p.MinRoomSize + g.rng.Intn(sizes)

	// Interior columns are 1..Width-2.
	x := 1 + g.rng.Intn(p.Width-2-width+1)
	y := 1 + g.rng.Intn(p.Height-2-height+1)

	return NewRoom(x, y, width, height)
}

func overlapsAny(room Room, rooms []Room) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// connectRooms joins the rooms with L-shaped corridors, nearest pairs first.
func (d *Dungeon) connectRooms(strategy Strategy, rng *rand.Rand) {
	pairs := SortedDistances(d.Rooms)

	var groups *unionFind
	index := make(map[Room]int, len(d.Rooms))
	if strategy == StrategySpanning {
		groups = newUnionFind(len(d.Rooms))
		for i, r := range d.Rooms {
			index[r] = i
		}
	}

	for _, pair := range pairs {
		if groups != nil && !groups.union(index[pair.A], index[pair.B]) {
			continue
		}
		d.carveCorridor(pair.A, pair.B, rng)
		d.Connections = append(d.Connections, pair)
	}
}

// carveCorridor creates a corridor between two room centers.
func (d *Dungeon) carveCorridor(room1, room2 Room, rng *rand.Rand) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	c := Corridor{X1: x1, Y1: y1, X2: x2, Y2: y2, HorizontalFirst: rng.Intn(2) == 0}
	c.Carve(d.Grid)
	d.Corridors = append(d.Corridors, c)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point within the specified room.
// The third result is false when the index does not name a room.
func (d *Dungeon) RandomPointInRoom(roomIndex int, rng *rand.Rand) (int, int, bool) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1, false
	}
	room := d.Rooms[roomIndex]

	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x := room.X1 + rng.Intn(room.Width())
		y := room.Y1 + rng.Intn(room.Height())
		if d.IsPassable(x, y) {
			return x, y, true
		}
	}

	// Fallback to room center
	x, y := room.Center()
	return x, y, true
}

// unionFind tracks which rooms are already joined by corridors.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

// union merges the groups of a and b and reports whether they were separate.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[rb] = ra
	return true
}
