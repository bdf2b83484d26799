package view

import (
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
)

// Entry is a copied message together with the global index it was read from.
// The index is only meaningful until the next simulation tick.
type Entry struct {
	Index  int
	Record news.Record
}

// Snapshot is a copy of both rings taken between ticks. It shares no memory
// with the queues.
type Snapshot struct {
	Recent     []Entry
	Archived   []Entry
	RemoveTime int
}

// Take copies the occupied slots of q.
func Take(q *queue.Queues) Snapshot {
	snap := Snapshot{RemoveTime: q.RemoveTime()}
	q.ForEachRecent(func(i int, rec *news.Record) {
		snap.Recent = append(snap.Recent, Entry{Index: i, Record: *rec})
	})
	q.ForEachArchived(func(i int, rec *news.Record) {
		snap.Archived = append(snap.Archived, Entry{Index: i, Record: *rec})
	})
	return snap
}

// Current returns the current message, if any.
func (s Snapshot) Current() (Entry, bool) {
	if len(s.Recent) == 0 {
		return Entry{}, false
	}
	return s.Recent[0], true
}

// Upcoming returns the recent messages waiting behind the current one.
func (s Snapshot) Upcoming() []Entry {
	if len(s.Recent) < 2 {
		return nil
	}
	return s.Recent[1:]
}

// Latest returns up to n archived messages, newest first.
func (s Snapshot) Latest(n int) []Entry {
	if n <= 0 || len(s.Archived) == 0 {
		return nil
	}
	if n > len(s.Archived) {
		n = len(s.Archived)
	}
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = s.Archived[len(s.Archived)-1-i]
	}
	return out
}

// Count returns the number of messages in both rings.
func (s Snapshot) Count() int {
	return len(s.Recent) + len(s.Archived)
}
