package game

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/glyphcrawl/internal/entity"
	"github.com/samdwyer/glyphcrawl/internal/gamedata"
	"github.com/samdwyer/glyphcrawl/internal/logging"
	"github.com/samdwyer/glyphcrawl/internal/telemetry"
	"github.com/samdwyer/glyphcrawl/internal/world"
)

// Options configures a new session.
type Options struct {
	Params  world.Params
	Enemies int
	// Seed for the session's random source. 0 picks one from the clock;
	// the chosen value is kept in Session.Seed so the run can be replayed.
	Seed int64
}

// Session is the turn-based game state, independent of any terminal.
type Session struct {
	Dungeon *world.Dungeon
	Player  *entity.Entity
	Enemies []*entity.Entity
	Seed    int64
	Turn    int
	State   State

	rng *rand.Rand
	log logrus.FieldLogger
}

// NewSession generates a dungeon and places the player and enemies in it.
func NewSession(ctx context.Context, opts Options, registry *gamedata.Registry, log logrus.FieldLogger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if log == nil {
		log = logging.Discard()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dungeon, err := world.NewGenerator(opts.Params, rng, log).Generate(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s := &Session{
		Dungeon: dungeon,
		Seed:    seed,
		State:   StatePlaying,
		rng:     rng,
		log:     log.WithField("seed", seed),
	}

	// Place player in first room's center
	startX, startY := dungeon.Rooms[0].Center()
	s.Player = entity.NewFromDef(registry.Player(), startX, startY)
	s.spawnEnemies(opts.Enemies, registry)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(dungeon.Rooms)),
		attribute.Int("game.enemies", len(s.Enemies)),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)
	s.log.WithFields(logrus.Fields{
		"rooms":   len(dungeon.Rooms),
		"enemies": len(s.Enemies),
		"start_x": startX,
		"start_y": startY,
	}).Info("session started")

	return s, nil
}

// spawnEnemies places enemies round-robin in the rooms after the first, or in
// the only room when there is just one.
func (s *Session) spawnEnemies(n int, registry *gamedata.Registry) {
	rooms := len(s.Dungeon.Rooms)
	for i := 0; i < n; i++ {
		def := registry.SpawnRandom(s.rng)
		if def == nil {
			s.log.Warn("no enemy definitions with spawn weight")
			return
		}

		roomIndex := 0
		if rooms > 1 {
			roomIndex = 1 + i%(rooms-1)
		}
		x, y := s.freePointInRoom(roomIndex)
		s.Enemies = append(s.Enemies, entity.NewFromDef(def, x, y))
	}
}

// freePointInRoom picks a point in the room, avoiding the player when it can.
func (s *Session) freePointInRoom(roomIndex int) (int, int) {
	var x, y int
	for i := 0; i < 10; i++ {
		x, y, _ = s.Dungeon.RandomPointInRoom(roomIndex, s.rng)
		if x != s.Player.X || y != s.Player.Y {
			break
		}
	}
	return x, y
}

// Apply runs one turn: the player's action, then every enemy acts.
// Actions that do not spend a turn (none, quit) leave enemies untouched.
func (s *Session) Apply(action Action) {
	switch action.Kind {
	case ActionQuit:
		s.State = StateQuit
		return
	case ActionMove:
		if !s.Player.Move(action.Dir.DX, action.Dir.DY, s.Dungeon) {
			s.log.WithFields(logrus.Fields{
				"x": s.Player.X + action.Dir.DX,
				"y": s.Player.Y + action.Dir.DY,
			}).Trace("move blocked")
		}
	default:
		return
	}

	for _, e := range s.Enemies {
		e.Act(s.rng, s.Dungeon)
	}
	s.Turn++
}

// Running reports whether the session still accepts input.
func (s *Session) Running() bool {
	return s.State == StatePlaying
}

// String renders the map with enemies and the player drawn on top.
func (s *Session) String() string {
	rows := strings.Split(strings.TrimSuffix(s.Dungeon.String(), "\n"), "\n")
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}

	draw := func(e *entity.Entity) {
		if s.Dungeon.InBounds(e.X, e.Y) {
			grid[e.Y][e.X] = e.Glyph
		}
	}
	for _, e := range s.Enemies {
		draw(e)
	}
	draw(s.Player)

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
