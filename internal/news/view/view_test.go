package view

import (
	"testing"

	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
)

func TestTakeCopiesAndIndexes(t *testing.T) {
	q := queue.New(nil)
	for i := uint32(1); i <= 13; i++ {
		*q.FirstOpenOrNewSlot() = news.Record{Kind: news.KindMoney, Assoc: i}
	}

	snap := Take(q)
	if len(snap.Archived) != 3 || len(snap.Recent) != 10 {
		t.Fatalf("expected 10 recent and 3 archived, got %d and %d", len(snap.Recent), len(snap.Archived))
	}
	if snap.Archived[0].Index != news.HistoryStart {
		t.Errorf("expected first archived index %d, got %d", news.HistoryStart, snap.Archived[0].Index)
	}
	if snap.RemoveTime != queue.RemoveTimeBacklog {
		t.Errorf("expected backlog remove time, got %d", snap.RemoveTime)
	}

	// Mutating the queue must not change the snapshot.
	q.Current().Assoc = 999
	cur, ok := snap.Current()
	if !ok || cur.Record.Assoc != 4 {
		t.Errorf("snapshot changed with queue: %+v", cur)
	}
	if len(snap.Upcoming()) != 9 {
		t.Errorf("expected 9 upcoming, got %d", len(snap.Upcoming()))
	}
}

func TestLatestNewestFirst(t *testing.T) {
	q := queue.New(nil)
	for i := uint32(1); i <= 4; i++ {
		*q.FirstOpenOrNewSlot() = news.Record{Kind: news.KindAward, Assoc: i}
		q.ArchiveCurrent()
	}
	snap := Take(q)

	latest := snap.Latest(2)
	if len(latest) != 2 || latest[0].Record.Assoc != 4 || latest[1].Record.Assoc != 3 {
		t.Errorf("unexpected latest %+v", latest)
	}
	if got := snap.Latest(10); len(got) != 4 {
		t.Errorf("expected all 4, got %d", len(got))
	}
	if snap.Latest(0) != nil {
		t.Error("expected nil for n=0")
	}
	if _, ok := snap.Current(); ok {
		t.Error("expected no current message")
	}
}
