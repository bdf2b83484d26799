package game

import (
	"errors"
	"math/rand"
	"sync"

	"gorm.io/gorm"

	"github.com/zappabad/parkcraft/internal/audio"
	"github.com/zappabad/parkcraft/internal/news"
	newsservice "github.com/zappabad/parkcraft/internal/news/service"
	newsview "github.com/zappabad/parkcraft/internal/news/view"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/save"
	"github.com/zappabad/parkcraft/internal/script"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/internal/world"
)

var (
	// ErrMessageMoved is returned when a message read from a snapshot is no
	// longer at its index.
	ErrMessageMoved = errors.New("game: message moved")
	ErrNoSubject    = errors.New("game: message has no subject")
	ErrNoLocation   = errors.New("game: message has no location")
)

// Game owns all the game subsystems. Every method takes the game lock, so
// the simulation tick and UI reads never interleave.
type Game struct {
	cfg Config
	mu  sync.Mutex

	state    *park.State
	world    *world.Map
	throttle *park.WarningThrottle
	news     *newsservice.NewsService
	bus      *ui.Publisher
	script   *script.Park
	feed     *feed
	ticks    uint64
}

// Status is a copy of what the UI shows, taken between ticks.
type Status struct {
	ParkName      string
	Date          park.Date
	Mode          park.ScreenMode
	Cash          int64
	Ticks         uint64
	News          newsview.Snapshot
	DroppedEvents int64
}

// NewGame creates a new Game with the given configuration. A nil player
// plays nothing.
func NewGame(cfg Config, player audio.Player) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := &Game{
		cfg:      cfg,
		state:    park.NewState(cfg.ParkName),
		world:    newDemoWorld(rng),
		throttle: park.NewWarningThrottle(cfg.WarningCooldown),
		bus:      ui.NewPublisher(cfg.EventBuffer),
	}
	g.state.Cash = 10000

	g.news = newsservice.NewNewsService(cfg.News, newsservice.Deps{
		World:       g.world,
		Clock:       g.state,
		Windows:     g.bus,
		Invalidator: g.bus,
		Audio:       player,
		Throttle:    g.throttle,
	})
	g.script = script.NewPark(cfg.Script, g.news, func() bool {
		return g.state.Mode != park.ScreenTitleDemo
	})
	g.feed = newFeed(cfg.Feed, rng)

	g.news.InitQueue()
	return g
}

// Tick advances the simulation by one tick.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	newMonth := g.state.Date.Advance()
	g.throttle.Tick()
	g.feed.step(g, newMonth)
	g.news.UpdateCurrent()
	g.ticks++
}

// Snapshot copies the current game status.
func (g *Game) Snapshot() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Status{
		ParkName:      g.state.Name,
		Date:          g.state.Date,
		Mode:          g.state.Mode,
		Cash:          g.state.Cash,
		Ticks:         g.ticks,
		News:          g.news.Snapshot(),
		DroppedEvents: g.bus.DroppedEvents(),
	}
}

// Events returns the UI intent channel.
func (g *Game) Events() <-chan ui.Event {
	return g.bus.Events()
}

// SetScreenMode switches between play and the non-interactive modes.
func (g *Game) SetScreenMode(mode park.ScreenMode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Mode = mode
}

// Reset empties the message log, as when starting a new park.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.news.InitQueue()
}

// Dismiss closes the current message.
func (g *Game) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.news.CloseCurrent()
}

// lookup re-resolves a message read from a snapshot. Archival shifts
// indices between ticks, so the slot must still hold the same message.
func (g *Game) lookup(e newsview.Entry) (*news.Record, error) {
	rec := g.news.Get(e.Index)
	if rec == nil || rec.IsEmpty() || !rec.SameMessage(e.Record) {
		return nil, ErrMessageMoved
	}
	return rec, nil
}

// Remove deletes the message e was read from.
func (g *Game) Remove(e newsview.Entry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.lookup(e); err != nil {
		return err
	}
	g.news.Remove(e.Index)
	return nil
}

// OpenSubject opens the window for the message e was read from. Messages
// whose button is disabled have no subject.
func (g *Game) OpenSubject(e newsview.Entry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, err := g.lookup(e)
	if err != nil {
		return err
	}
	if rec.HasButton() || !rec.TypeHasSubject() {
		return ErrNoSubject
	}
	g.news.OpenSubject(rec.Kind, rec.Assoc)
	return nil
}

// Locate returns the map position of the message e was read from.
func (g *Game) Locate(e newsview.Entry) (world.CoordsXYZ, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, err := g.lookup(e)
	if err != nil {
		return world.CoordsXYZ{}, err
	}
	if rec.HasButton() || !rec.TypeHasLocation() {
		return world.CoordsXYZ{}, ErrNoLocation
	}
	loc, ok := g.news.SubjectLocation(rec.Kind, rec.Assoc)
	if !ok {
		return world.CoordsXYZ{}, ErrNoLocation
	}
	return loc, nil
}

// Script runs fn against the scripting API with the game lock held.
func (g *Game) Script(fn func(p *script.Park) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.script)
}

// SaveTo stores the message log in a new save slot.
func (g *Game) SaveTo(db *gorm.DB, name string) (*save.Slot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return save.Save(db, name, g.state.Name, g.news.Queues())
}

// LoadFrom replaces the message log with a saved one.
func (g *Game) LoadFrom(db *gorm.DB, id string) (*save.Slot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return save.Load(db, id, g.news)
}

// Close shuts down the game. The events channel is closed.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bus.Close()
}
