package service

import (
	"fmt"

	"github.com/zappabad/parkcraft/internal/audio"
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
	"github.com/zappabad/parkcraft/internal/news/subject"
	newsview "github.com/zappabad/parkcraft/internal/news/view"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/world"
)

// Clock is the part of the park state the news service reads.
type Clock interface {
	MonthsElapsed() uint16
	MonthTicks() uint16
	ScreenMode() park.ScreenMode
}

// Resetter is reset whenever the queue is initialised.
type Resetter interface {
	Reset()
}

// Deps are the collaborators of the news service. Nil fields get no-op
// implementations, except Clock which defaults to a playing park at day one.
type Deps struct {
	World       world.World
	Clock       Clock
	Windows     subject.Windows
	Invalidator queue.Invalidator
	Audio       audio.Player
	Throttle    Resetter
}

// NewsService owns the message queues of one park and drives them from the
// simulation tick. It is not safe for concurrent use; the game serialises
// access.
type NewsService struct {
	cfg  Config
	q    *queue.Queues
	deps Deps
}

type nopInvalidator struct{}

func (nopInvalidator) InvalidateTicker()     {}
func (nopInvalidator) InvalidateRecentNews() {}

type nopResetter struct{}

func (nopResetter) Reset() {}

// NewNewsService creates a NewsService with empty queues.
func NewNewsService(cfg Config, deps Deps) *NewsService {
	if deps.Clock == nil {
		deps.Clock = park.NewState("")
	}
	if deps.Invalidator == nil {
		deps.Invalidator = nopInvalidator{}
	}
	if deps.Audio == nil {
		deps.Audio = audio.Silent{}
	}
	if deps.Throttle == nil {
		deps.Throttle = nopResetter{}
	}
	return &NewsService{
		cfg:  cfg,
		q:    queue.New(deps.Invalidator),
		deps: deps,
	}
}

// Queues exposes the underlying queues for index-based editors.
func (s *NewsService) Queues() *queue.Queues { return s.q }

// InitQueue empties both rings and resets the warning throttles. Called on
// new game and park load.
func (s *NewsService) InitQueue() {
	s.q.Clear()
	s.deps.Throttle.Reset()
	s.deps.Invalidator.InvalidateTicker()
}

// IsQueueEmpty reports whether there is no current message.
func (s *NewsService) IsQueueEmpty() bool { return s.q.IsEmpty() }

// Current returns the current message, or nil when there is none.
func (s *NewsService) Current() *news.Record {
	if s.q.IsEmpty() {
		return nil
	}
	return s.q.Current()
}

// IncrementTicks ages the current message and plays the notification on its
// first tick while the park is being played. Callers must check IsQueueEmpty.
func (s *NewsService) IncrementTicks() uint16 {
	ticks := s.q.IncrementTicks()
	if ticks == 1 && s.cfg.Sound && s.deps.Clock.ScreenMode() == park.ScreenPlaying {
		s.deps.Audio.Play(audio.SoundNewsItem, 0, s.cfg.SoundPan)
	}
	return ticks
}

// UpdateCurrent runs once per game tick.
func (s *NewsService) UpdateCurrent() {
	if s.q.IsEmpty() {
		return
	}
	s.deps.Invalidator.InvalidateTicker()

	s.IncrementTicks()

	if s.q.CurrentShouldBeArchived() {
		s.q.ArchiveCurrent()
	}
}

// CloseCurrent archives the current message regardless of its age.
func (s *NewsService) CloseCurrent() {
	s.q.ArchiveCurrent()
}

// AddToQueue formats a message and queues it.
func (s *NewsService) AddToQueue(kind news.Kind, assoc uint32, format string, args ...any) *news.Record {
	return s.AddToQueueRaw(kind, fmt.Sprintf(format, args...), assoc)
}

// AddToQueueRaw queues a message with already formatted text, stamped with
// the current date. Null and out of range kinds are ignored.
func (s *NewsService) AddToQueueRaw(kind news.Kind, text string, assoc uint32) *news.Record {
	if kind == news.KindNull || kind >= news.KindCount {
		return nil
	}
	monthYear := s.deps.Clock.MonthsElapsed()

	rec := s.q.FirstOpenOrNewSlot()
	*rec = news.Record{
		Kind:      kind,
		Assoc:     assoc,
		MonthYear: monthYear,
		Day:       park.DayOf(monthYear, s.deps.Clock.MonthTicks()),
	}
	rec.SetText(text)
	return rec
}

// AddToQueueCustom writes a fully formed record into the next free slot.
func (s *NewsService) AddToQueueCustom(rec news.Record) {
	if rec.IsEmpty() || rec.Kind >= news.KindCount {
		return
	}
	slot := s.q.FirstOpenOrNewSlot()
	*slot = rec
	slot.SetText(rec.Text)
}

// SubjectLocation returns the map position a message refers to.
func (s *NewsService) SubjectLocation(kind news.Kind, assoc uint32) (world.CoordsXYZ, bool) {
	return subject.Locate(s.deps.World, kind, assoc)
}

// OpenSubject opens the window for a message's subject.
func (s *NewsService) OpenSubject(kind news.Kind, assoc uint32) {
	subject.Open(s.deps.Windows, s.deps.World, kind, assoc)
}

// DisableNews marks every message about (kind, assoc) as having its button
// shown, redrawing the ticker or the recent-messages window when a visible
// message changed.
func (s *NewsService) DisableNews(kind news.Kind, assoc uint32) {
	s.q.ForEachRecent(func(i int, rec *news.Record) {
		if rec.Kind != kind || rec.Assoc != assoc {
			return
		}
		rec.SetFlags(news.FlagHasButton)
		if i == 0 {
			s.deps.Invalidator.InvalidateTicker()
		}
	})
	s.q.ForEachArchived(func(_ int, rec *news.Record) {
		if rec.Kind != kind || rec.Assoc != assoc {
			return
		}
		rec.SetFlags(news.FlagHasButton)
		s.deps.Invalidator.InvalidateRecentNews()
	})
}

// IsValidIndex reports whether i addresses a message slot.
func (s *NewsService) IsValidIndex(i int) bool { return queue.IsValidIndex(i) }

// Get returns the slot at global index i, or nil when i is out of range.
func (s *NewsService) Get(i int) *news.Record { return s.q.At(i) }

// Remove deletes the message at global index i.
func (s *NewsService) Remove(i int) {
	s.q.Remove(i)
}

// Restore replaces the whole message log, as when loading a park.
func (s *NewsService) Restore(recent, archived []news.Record) {
	s.q.Restore(recent, archived)
}

// Snapshot copies both rings for readers outside the simulation tick.
func (s *NewsService) Snapshot() newsview.Snapshot {
	return newsview.Take(s.q)
}
