package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/save"
	"github.com/zappabad/parkcraft/internal/script"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/internal/world"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Feed.Enabled = false
	cfg.Script = script.Config{}
	return cfg
}

// waitIntent drains buffered events until one with the given intent appears.
func waitIntent(t *testing.T, g *Game, intent ui.Intent) ui.Event {
	t.Helper()
	for {
		select {
		case ev := <-g.Events():
			if ev.Intent == intent {
				return ev
			}
		default:
			t.Fatalf("no %s event published", intent)
			return ui.Event{}
		}
	}
}

func post(t *testing.T, g *Game, typ string, subject uint32, text string) {
	t.Helper()
	err := g.Script(func(p *script.Park) error {
		return p.PostMessage(script.Post{Type: typ, Text: text, Subject: &subject})
	})
	if err != nil {
		t.Fatalf("post %s: %v", typ, err)
	}
}

func TestTickAdvancesDateAndNews(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	post(t, g, "money", 0, "Loan repaid")
	for i := 0; i < 10; i++ {
		g.Tick()
	}

	st := g.Snapshot()
	if st.Ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", st.Ticks)
	}
	if st.Date.MonthTicks != 10*park.MonthTicksPerTick {
		t.Errorf("expected month ticks %d, got %d", 10*park.MonthTicksPerTick, st.Date.MonthTicks)
	}
	cur, ok := st.News.Current()
	if !ok || cur.Record.Ticks != 10 {
		t.Errorf("expected current message aged 10, got %+v", cur)
	}
}

func TestFeedIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Feed.Interval = 20
	a := NewGame(cfg, nil)
	b := NewGame(cfg, nil)
	defer a.Close()
	defer b.Close()

	for i := 0; i < 3000; i++ {
		a.Tick()
		b.Tick()
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.News.Count() == 0 {
		t.Fatal("feed produced no messages")
	}
	if len(sa.News.Recent) != len(sb.News.Recent) || len(sa.News.Archived) != len(sb.News.Archived) {
		t.Fatalf("logs differ in size: %d/%d vs %d/%d",
			len(sa.News.Recent), len(sa.News.Archived), len(sb.News.Recent), len(sb.News.Archived))
	}
	for i := range sa.News.Archived {
		if sa.News.Archived[i] != sb.News.Archived[i] {
			t.Fatalf("archived message %d differs: %+v vs %+v", i, sa.News.Archived[i], sb.News.Archived[i])
		}
	}
	if sa.Cash != sb.Cash {
		t.Errorf("cash differs: %d vs %d", sa.Cash, sb.Cash)
	}
}

func TestFeedComplaintsAreThrottled(t *testing.T) {
	cfg := quietConfig()
	g := NewGame(cfg, nil)
	defer g.Close()

	f := newFeed(FeedConfig{Enabled: true, Interval: 1}, g.feed.rng)
	g.mu.Lock()
	for i := 0; i < 200; i++ {
		f.emit(g, feedComplaint)
	}
	g.mu.Unlock()

	counts := map[uint32]int{}
	for _, e := range g.Snapshot().News.Recent {
		if e.Record.Kind == news.KindPeeps {
			counts[e.Record.Assoc]++
		}
	}
	for w, n := range counts {
		if n > 1 {
			t.Errorf("warning %d reported %d times within its cooldown", w, n)
		}
	}

	g.Reset()
	g.mu.Lock()
	defer g.mu.Unlock()
	for w := park.WarningHungry; w <= park.WarningLost; w++ {
		if g.throttle.Remaining(w) != 0 {
			t.Errorf("warning %s not reset", w)
		}
	}
}

func TestFeedDemolishDisablesRideNews(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	g.mu.Lock()
	for _, r := range g.world.Rides() {
		g.news.AddToQueue(news.KindRide, uint32(r.ID), "%s opened", r.Name)
	}
	before := len(g.world.Rides())
	g.feed.emit(g, feedDemolish)
	after := len(g.world.Rides())
	g.mu.Unlock()

	if after != before-1 {
		t.Fatalf("expected one ride demolished, %d -> %d", before, after)
	}

	disabled := 0
	for _, e := range g.Snapshot().News.Recent {
		if e.Record.Kind == news.KindRide && e.Record.HasButton() {
			disabled++
			if err := g.OpenSubject(e); err != ErrNoSubject {
				t.Error("disabled message should not open its subject")
			}
		}
	}
	if disabled != 1 {
		t.Errorf("expected 1 disabled message, got %d", disabled)
	}
}

func TestOpenSubject(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	post(t, g, "attraction", 2, "Log Flume opened")
	post(t, g, "blank", uint32(news.NullCoordsAssoc), "Nothing to see")

	st := g.Snapshot()
	if err := g.OpenSubject(st.News.Recent[0]); err != nil {
		t.Fatalf("expected ride message to open: %v", err)
	}
	ev := waitIntent(t, g, ui.IntentOpenRide)
	if ev.RideID != 2 {
		t.Errorf("expected ride 2, got %d", ev.RideID)
	}

	if err := g.OpenSubject(st.News.Recent[1]); err != ErrNoSubject {
		t.Errorf("blank messages have no subject to open, got %v", err)
	}
	stale := st.News.Recent[0]
	stale.Index = news.MaxItems
	if err := g.OpenSubject(stale); err != ErrMessageMoved {
		t.Errorf("out of range index should not open, got %v", err)
	}
}

func TestLocate(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	post(t, g, "attraction", 1, "Coaster tested")
	post(t, g, "money", 0, "Cash")

	g.mu.Lock()
	ride := g.world.Ride(1)
	centre := ride.OverallView.ToTileCentre()
	want := world.CoordsXYZ{X: centre.X, Y: centre.Y, Z: g.world.TileHeight(centre)}
	g.mu.Unlock()

	st := g.Snapshot()
	got, err := g.Locate(st.News.Recent[0])
	if err != nil || got != want {
		t.Errorf("expected %+v, got %+v (%v)", want, got, err)
	}
	if _, err := g.Locate(st.News.Recent[1]); err != ErrNoLocation {
		t.Errorf("money messages have no location, got %v", err)
	}
}

func TestScriptNotMutableInTitleDemo(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	g.SetScreenMode(park.ScreenTitleDemo)
	err := g.Script(func(p *script.Park) error { return p.PostText("hello") })
	if err != script.ErrGameStateNotMutable {
		t.Errorf("expected ErrGameStateNotMutable, got %v", err)
	}
}

func TestDismissAndRemove(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	post(t, g, "money", 0, "a")
	post(t, g, "money", 1, "b")
	post(t, g, "money", 2, "c")

	g.Dismiss()
	st := g.Snapshot()
	if len(st.News.Archived) != 1 || st.News.Archived[0].Record.Text != "a" {
		t.Fatalf("expected a archived, got %+v", st.News.Archived)
	}

	if err := g.Remove(st.News.Archived[0]); err != nil {
		t.Fatalf("remove archived: %v", err)
	}
	if err := g.Remove(st.News.Recent[1]); err != nil {
		t.Fatalf("remove recent: %v", err)
	}
	st = g.Snapshot()
	if len(st.News.Archived) != 0 || len(st.News.Recent) != 1 || st.News.Recent[0].Record.Text != "b" {
		t.Errorf("unexpected log %+v", st.News)
	}
}

// fullArchive fills the archive and leaves a current message one tick away
// from being archived.
func fullArchive(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < news.ItemsArchive; i++ {
		post(t, g, "money", uint32(i), fmt.Sprintf("report %d", i))
		g.Dismiss()
	}
	post(t, g, "money", 999, "about to archive")

	g.mu.Lock()
	g.news.Current().Ticks = queue.RemoveTimeNormal - 1
	g.mu.Unlock()
}

func TestActionsAfterTickDoNotHitShiftedMessage(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()
	fullArchive(t, g)

	selected := g.Snapshot().News.Latest(1)[0]
	if selected.Index != news.MaxItems-1 || selected.Record.Assoc != news.ItemsArchive-1 {
		t.Fatalf("unexpected newest archived entry %+v", selected)
	}

	// The tick archives the current message and shifts the archive.
	g.Tick()

	if err := g.Remove(selected); err != ErrMessageMoved {
		t.Fatalf("expected ErrMessageMoved, got %v", err)
	}
	if err := g.OpenSubject(selected); err != ErrMessageMoved {
		t.Errorf("open: expected ErrMessageMoved, got %v", err)
	}
	if _, err := g.Locate(selected); err != ErrMessageMoved {
		t.Errorf("locate: expected ErrMessageMoved, got %v", err)
	}

	st := g.Snapshot()
	newest := st.News.Archived[len(st.News.Archived)-1]
	if newest.Record.Assoc != 999 {
		t.Errorf("just archived message should be untouched, got %+v", newest.Record)
	}
	moved := st.News.Archived[len(st.News.Archived)-2]
	if moved.Index != news.MaxItems-2 || moved.Record.Assoc != news.ItemsArchive-1 {
		t.Fatalf("selected message should have shifted down, got %+v", moved)
	}

	// A fresh read acts on the right message.
	if err := g.Remove(moved); err != nil {
		t.Fatalf("remove after refresh: %v", err)
	}
	for _, e := range g.Snapshot().News.Archived {
		if e.Record.Assoc == news.ItemsArchive-1 {
			t.Errorf("selected message still present at %d", e.Index)
		}
	}
}

func TestCurrentMessageSurvivesAging(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	post(t, g, "attraction", 2, "Log Flume opened")
	cur, _ := g.Snapshot().News.Current()
	g.Tick()
	g.Tick()

	if err := g.OpenSubject(cur); err != nil {
		t.Errorf("aging should not invalidate the current message: %v", err)
	}
}

func TestSaveAndLoadSlot(t *testing.T) {
	db, err := save.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	g := NewGame(quietConfig(), nil)
	defer g.Close()
	post(t, g, "award", 3, "Best park")
	g.Dismiss()
	post(t, g, "chart", 0, "Rating up")

	slot, err := g.SaveTo(db, "slot one")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	want := g.Snapshot().News

	g.Reset()
	if g.Snapshot().News.Count() != 0 {
		t.Fatal("reset should empty the log")
	}

	if _, err := g.LoadFrom(db, slot.ID); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := g.Snapshot().News
	if got.Count() != want.Count() || got.Archived[0] != want.Archived[0] || got.Recent[0] != want.Recent[0] {
		t.Errorf("loaded log differs: %+v vs %+v", got, want)
	}
}

func TestRunnerTicksUntilClosed(t *testing.T) {
	g := NewGame(quietConfig(), nil)
	defer g.Close()

	r := NewRunner(g, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for r.Ticks() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	r.Close()
	r.Close()

	n := r.Ticks()
	if n < 5 {
		t.Fatalf("expected at least 5 ticks, got %d", n)
	}
	time.Sleep(5 * time.Millisecond)
	if r.Ticks() != n {
		t.Error("runner ticked after Close")
	}
	if g.Snapshot().Ticks != uint64(n) {
		t.Errorf("game ticks %d != runner ticks %d", g.Snapshot().Ticks, n)
	}
}
