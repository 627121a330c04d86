package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/glyphcrawl/internal/gamedata"
	"github.com/samdwyer/glyphcrawl/internal/logging"
	"github.com/samdwyer/glyphcrawl/internal/ui"
)

// Game drives a session on the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	opts     Options
	registry *gamedata.Registry
	log      logrus.FieldLogger
}

// New creates a new game instance and takes over the terminal.
func New(opts Options, registry *gamedata.Registry, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		opts:     opts,
		registry: registry,
		log:      log,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	session, err := NewSession(ctx, g.opts, g.registry, g.log)
	if err != nil {
		return err
	}
	g.session = session

	for g.session.Running() {
		// Render current state
		g.render()

		// Handle input (blocking)
		g.handleInput()
	}

	g.log.WithField("turns", g.session.Turn).Info("game over")
	return nil
}

// Seed returns the seed of the running session, or 0 before Run.
func (g *Game) Seed() int64 {
	if g.session == nil {
		return 0
	}
	return g.session.Seed
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(s.Dungeon, s.Player, s.Enemies)
	g.renderer.RenderStatus(s.Seed, s.Turn, len(s.Dungeon.Rooms), s.Dungeon.Height)
	g.screen.Show()
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.session.Apply(ActionForKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.session.State = StateQuit
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
