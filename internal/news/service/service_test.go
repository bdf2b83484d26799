package service

import (
	"testing"

	"github.com/zappabad/parkcraft/internal/audio"
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/internal/world"
)

type recordingPlayer struct {
	plays []audio.SoundID
}

func (p *recordingPlayer) Play(id audio.SoundID, _ int32, _ int32) {
	p.plays = append(p.plays, id)
}

type countingInvalidator struct {
	ticker int
	recent int
}

func (c *countingInvalidator) InvalidateTicker()     { c.ticker++ }
func (c *countingInvalidator) InvalidateRecentNews() { c.recent++ }

type resetCounter struct{ n int }

func (r *resetCounter) Reset() { r.n++ }

func newTestService() (*NewsService, *park.State, *recordingPlayer, *countingInvalidator) {
	state := park.NewState("Test Park")
	player := &recordingPlayer{}
	inv := &countingInvalidator{}
	svc := NewNewsService(DefaultConfig(), Deps{
		World:       world.NewMap(),
		Clock:       state,
		Invalidator: inv,
		Audio:       player,
	})
	return svc, state, player, inv
}

func TestAddToQueueRawScenario(t *testing.T) {
	svc, _, player, _ := newTestService()
	svc.InitQueue()

	rec := svc.AddToQueueRaw(news.KindRide, "Test ride opened", 5)
	if rec == nil {
		t.Fatal("expected a record")
	}
	if svc.IsQueueEmpty() {
		t.Fatal("queue should not be empty")
	}
	cur := svc.Current()
	if cur.Assoc != 5 || cur.Ticks != 0 || cur.Text != "Test ride opened" {
		t.Errorf("unexpected current %+v", cur)
	}

	if ticks := svc.IncrementTicks(); ticks != 1 {
		t.Errorf("expected 1 tick, got %d", ticks)
	}
	if len(player.plays) != 1 || player.plays[0] != audio.SoundNewsItem {
		t.Errorf("expected one news sound, got %v", player.plays)
	}

	svc.IncrementTicks()
	if len(player.plays) != 1 {
		t.Errorf("sound should only play on the first tick, got %d plays", len(player.plays))
	}
}

func TestSoundOnlyWhilePlaying(t *testing.T) {
	svc, state, player, _ := newTestService()
	state.Mode = park.ScreenTitleDemo

	svc.AddToQueueRaw(news.KindMoney, "Loan repaid", 0)
	svc.UpdateCurrent()

	if svc.Current().Ticks != 1 {
		t.Fatalf("expected 1 tick, got %d", svc.Current().Ticks)
	}
	if len(player.plays) != 0 {
		t.Errorf("no sound expected outside play mode, got %v", player.plays)
	}
}

func TestSoundDisabledByConfig(t *testing.T) {
	player := &recordingPlayer{}
	cfg := DefaultConfig()
	cfg.Sound = false
	svc := NewNewsService(cfg, Deps{Audio: player})

	svc.AddToQueueRaw(news.KindAward, "Best park award", 0)
	svc.UpdateCurrent()
	if len(player.plays) != 0 {
		t.Errorf("expected silence, got %v", player.plays)
	}
}

func TestAddToQueueStampsDate(t *testing.T) {
	svc, state, _, _ := newTestService()
	state.Date = park.Date{MonthsElapsed: 10, MonthTicks: 0x8000}

	rec := svc.AddToQueue(news.KindMoney, 0, "Cash is low: %d", 150)
	if rec.Text != "Cash is low: 150" {
		t.Errorf("unexpected text %q", rec.Text)
	}
	if rec.MonthYear != 10 {
		t.Errorf("expected month 10, got %d", rec.MonthYear)
	}
	// May has 31 days; halfway through is day 16.
	if rec.Day != 16 {
		t.Errorf("expected day 16, got %d", rec.Day)
	}
}

func TestAddToQueueRawIgnoresNullKind(t *testing.T) {
	svc, _, _, _ := newTestService()
	if rec := svc.AddToQueueRaw(news.KindNull, "nothing", 0); rec != nil {
		t.Errorf("expected nil, got %+v", rec)
	}
	if !svc.IsQueueEmpty() {
		t.Error("queue should stay empty")
	}
}

func TestUpdateCurrentArchivesAfterDwell(t *testing.T) {
	svc, _, _, inv := newTestService()
	svc.AddToQueueRaw(news.KindRide, "first", 1)
	svc.AddToQueueRaw(news.KindRide, "second", 2)

	for i := 0; i < queue.RemoveTimeNormal-1; i++ {
		svc.UpdateCurrent()
	}
	if svc.Current().Assoc != 1 {
		t.Fatal("first message archived too early")
	}

	svc.UpdateCurrent()
	if svc.Current().Assoc != 2 {
		t.Fatalf("expected second message current, got %d", svc.Current().Assoc)
	}
	arch := svc.Queues().Archived().Items()
	if len(arch) != 1 || arch[0].Assoc != 1 || arch[0].Ticks != queue.RemoveTimeNormal {
		t.Errorf("unexpected archive %+v", arch)
	}
	if inv.recent != 1 {
		t.Errorf("expected one recent-news invalidation, got %d", inv.recent)
	}
}

func TestUpdateCurrentBacklogShortensDwell(t *testing.T) {
	svc, _, _, _ := newTestService()
	for i := uint32(1); i <= 6; i++ {
		svc.AddToQueueRaw(news.KindPeep, "backlog", i)
	}
	for i := 0; i < queue.RemoveTimeBacklog; i++ {
		svc.UpdateCurrent()
	}
	if svc.Current().Assoc != 2 {
		t.Errorf("expected first message archived after %d ticks", queue.RemoveTimeBacklog)
	}
}

func TestUpdateCurrentOnEmptyQueue(t *testing.T) {
	svc, _, player, inv := newTestService()
	svc.UpdateCurrent()
	if inv.ticker != 0 || len(player.plays) != 0 {
		t.Error("empty queue should not redraw or play sounds")
	}
}

func TestCloseCurrent(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.CloseCurrent()
	if svc.Queues().Archived().Len() != 0 {
		t.Fatal("closing an empty queue should not archive")
	}

	svc.AddToQueueRaw(news.KindGraph, "Park rating rising", 0)
	svc.CloseCurrent()
	if !svc.IsQueueEmpty() {
		t.Error("expected queue empty after close")
	}
	if svc.Queues().Archived().Len() != 1 {
		t.Error("expected message in archive")
	}
}

func TestInitQueueResets(t *testing.T) {
	throttle := &resetCounter{}
	inv := &countingInvalidator{}
	svc := NewNewsService(DefaultConfig(), Deps{Throttle: throttle, Invalidator: inv})
	svc.AddToQueueRaw(news.KindRide, "a", 1)
	svc.CloseCurrent()
	svc.AddToQueueRaw(news.KindRide, "b", 2)

	svc.InitQueue()
	if !svc.IsQueueEmpty() || svc.Queues().Archived().Len() != 0 {
		t.Error("both rings should be empty")
	}
	if throttle.n != 1 {
		t.Errorf("expected throttle reset once, got %d", throttle.n)
	}
	if inv.ticker == 0 {
		t.Error("expected ticker invalidation")
	}
}

func TestAddToQueueCustom(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.AddToQueueCustom(news.Record{
		Kind:      news.KindResearch,
		Flags:     news.FlagHasButton,
		Assoc:     0x010203,
		Ticks:     40,
		MonthYear: 3,
		Day:       9,
		Text:      "Imported",
	})
	cur := svc.Current()
	if cur == nil || cur.Kind != news.KindResearch || cur.Ticks != 40 || !cur.HasButton() || cur.Day != 9 {
		t.Errorf("record not copied: %+v", cur)
	}

	svc.AddToQueueCustom(news.Record{})
	if svc.Queues().Recent().Len() != 1 {
		t.Error("empty record should be ignored")
	}
}

func TestDisableNews(t *testing.T) {
	svc, _, _, inv := newTestService()
	svc.AddToQueueRaw(news.KindRide, "archived match", 5)
	svc.CloseCurrent()
	svc.AddToQueueRaw(news.KindRide, "current match", 5)
	svc.AddToQueueRaw(news.KindRide, "other ride", 6)
	svc.AddToQueueRaw(news.KindPeep, "same assoc, other kind", 5)
	inv.ticker, inv.recent = 0, 0

	svc.DisableNews(news.KindRide, 5)
	svc.DisableNews(news.KindRide, 5)

	if !svc.Get(0).HasButton() {
		t.Error("current match should be disabled")
	}
	if svc.Get(1).HasButton() || svc.Get(2).HasButton() {
		t.Error("non-matching messages should be untouched")
	}
	if !svc.Get(news.HistoryStart).HasButton() {
		t.Error("archived match should be disabled")
	}
	if svc.Get(0).Flags != news.FlagHasButton {
		t.Errorf("flag should be set idempotently, got %08b", svc.Get(0).Flags)
	}
	if inv.ticker != 2 || inv.recent != 2 {
		t.Errorf("expected 2 invalidations each, got ticker=%d recent=%d", inv.ticker, inv.recent)
	}
}

func TestDisableNewsUpcomingDoesNotRedraw(t *testing.T) {
	svc, _, _, inv := newTestService()
	svc.AddToQueueRaw(news.KindRide, "current", 1)
	svc.AddToQueueRaw(news.KindRide, "upcoming", 2)
	inv.ticker, inv.recent = 0, 0

	svc.DisableNews(news.KindRide, 2)
	if !svc.Get(1).HasButton() {
		t.Error("upcoming match should be disabled")
	}
	if inv.ticker != 0 || inv.recent != 0 {
		t.Error("upcoming messages are not visible and need no redraw")
	}
}

func TestGetAndRemove(t *testing.T) {
	svc, _, _, _ := newTestService()
	if svc.Get(news.MaxItems) != nil || svc.Get(-1) != nil {
		t.Error("out of range Get should return nil")
	}
	if !svc.IsValidIndex(0) || svc.IsValidIndex(news.MaxItems) {
		t.Error("unexpected index validity")
	}

	svc.AddToQueueRaw(news.KindRide, "a", 1)
	svc.AddToQueueRaw(news.KindRide, "b", 2)
	svc.Remove(0)
	if svc.Current().Assoc != 2 {
		t.Errorf("expected b to become current, got %d", svc.Current().Assoc)
	}
}

func TestSubjectLocationAndOpen(t *testing.T) {
	m := world.NewMap()
	m.AddPeep(world.Peep{ID: 9, Pos: world.CoordsXYZ{X: 1, Y: 2, Z: 3}})
	pub := ui.NewPublisher(4)
	svc := NewNewsService(DefaultConfig(), Deps{World: m, Windows: pub})

	loc, ok := svc.SubjectLocation(news.KindPeep, 9)
	if !ok || loc != (world.CoordsXYZ{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected location %+v", loc)
	}
	if _, ok := svc.SubjectLocation(news.KindPeepOnRide, 10); ok {
		t.Error("missing peep should have no location")
	}

	svc.OpenSubject(news.KindPeep, 9)
	ev := <-pub.Events()
	if ev.Intent != ui.IntentOpenPeep || ev.PeepID != 9 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestSnapshot(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.AddToQueueRaw(news.KindRide, "a", 1)
	snap := svc.Snapshot()
	svc.Remove(0)

	if len(snap.Recent) != 1 || snap.Recent[0].Record.Text != "a" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}
