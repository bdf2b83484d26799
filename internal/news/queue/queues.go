package queue

import "github.com/zappabad/parkcraft/internal/news"

// Dwell times, in ticks, before the current message is archived.
const (
	RemoveTimeNormal  = 320
	RemoveTimeBacklog = 256
)

// Invalidator is told when the ticker or the recent-messages window needs
// redrawing.
type Invalidator interface {
	InvalidateTicker()
	InvalidateRecentNews()
}

type nopInvalidator struct{}

func (nopInvalidator) InvalidateTicker()     {}
func (nopInvalidator) InvalidateRecentNews() {}

// Queues owns the recent and archived rings. Global index i < HistoryStart
// addresses Recent[i]; larger indices address Archived[i-HistoryStart].
//
// Queues is not safe for concurrent use. Records returned by pointer are only
// valid until the next mutating call.
type Queues struct {
	recent   *Ring
	archived *Ring
	inv      Invalidator
}

// New creates empty queues. inv may be nil.
func New(inv Invalidator) *Queues {
	if inv == nil {
		inv = nopInvalidator{}
	}
	return &Queues{
		recent:   NewRing(news.HistoryStart),
		archived: NewRing(news.ItemsArchive),
		inv:      inv,
	}
}

// Recent returns the recent ring.
func (q *Queues) Recent() *Ring { return q.recent }

// Archived returns the archived ring.
func (q *Queues) Archived() *Ring { return q.archived }

// Get returns the slot at global index i. It does not validate i.
func (q *Queues) Get(i int) *news.Record {
	if i < q.recent.Capacity() {
		return q.recent.At(i)
	}
	return q.archived.At(i - q.recent.Capacity())
}

// IsValidIndex reports whether i addresses a message slot.
func IsValidIndex(i int) bool {
	return i >= 0 && i < news.MaxItems
}

// At returns the slot at global index i, or nil if i is out of range.
func (q *Queues) At(i int) *news.Record {
	if !IsValidIndex(i) {
		return nil
	}
	return q.Get(i)
}

// IsEmpty reports whether there is no current message.
func (q *Queues) IsEmpty() bool { return q.recent.Empty() }

// Clear empties both rings. Only slot 0 of each ring is written; later slots
// keep stale records that RemoveTime can still see.
func (q *Queues) Clear() {
	q.recent.Clear()
	q.archived.Clear()
}

// Current returns the message at the front of the recent ring. Callers must
// check IsEmpty first.
func (q *Queues) Current() *news.Record { return q.recent.Front() }

// IncrementTicks ages the current message by one tick and returns its age.
func (q *Queues) IncrementTicks() uint16 {
	cur := q.Current()
	cur.Ticks++
	return cur.Ticks
}

// RemoveTime returns how long the current message stays on the ticker. It is
// shorter when the four messages queued behind the next one are all present.
func (q *Queues) RemoveTime() int {
	for i := 2; i <= 5; i++ {
		if q.recent.At(i).IsEmpty() {
			return RemoveTimeNormal
		}
	}
	return RemoveTimeBacklog
}

// CurrentShouldBeArchived reports whether the current message has outlived
// its dwell time.
func (q *Queues) CurrentShouldBeArchived() bool {
	return int(q.Current().Ticks) >= q.RemoveTime()
}

// ArchiveCurrent copies the current message onto the archive and removes it
// from the recent ring. It does nothing when there is no current message.
func (q *Queues) ArchiveCurrent() {
	if q.IsEmpty() {
		return
	}
	q.archived.PushBack(*q.Current())
	q.inv.InvalidateRecentNews()

	q.recent.PopFront()
	q.inv.InvalidateTicker()
}

// FirstOpenOrNewSlot archives current messages until the recent ring has at
// least two free slots, then returns the first free one. The slot after it is
// emptied so the ring stays terminated once the caller fills the returned one.
func (q *Queues) FirstOpenOrNewSlot() *news.Record {
	for free := q.recent.Capacity() - q.recent.Len(); free < 2; free++ {
		q.ArchiveCurrent()
	}
	end := q.recent.End()
	q.recent.At(end + 1).Kind = news.KindNull
	return q.recent.At(end)
}

// Remove deletes the message at global index i and closes the gap within its
// own ring. Out of range or empty slots are ignored.
func (q *Queues) Remove(i int) {
	if !IsValidIndex(i) {
		return
	}
	if q.Get(i).IsEmpty() {
		return
	}
	boundary := news.MaxItems
	if i < news.HistoryStart {
		boundary = news.HistoryStart
	}
	for j := i; j < boundary-1; j++ {
		*q.Get(j) = *q.Get(j + 1)
	}
	q.Get(boundary - 1).Kind = news.KindNull
}

// ForEachRecent calls fn for every message in the recent ring.
func (q *Queues) ForEachRecent(fn func(i int, rec *news.Record)) {
	q.recent.Each(fn)
}

// ForEachArchived calls fn for every archived message. i is the global index.
func (q *Queues) ForEachArchived(fn func(i int, rec *news.Record)) {
	q.archived.Each(func(i int, rec *news.Record) {
		fn(i+news.HistoryStart, rec)
	})
}

// Restore overwrites both rings front-packed with the given records.
// Empty records are skipped and anything beyond a ring's capacity is dropped.
func (q *Queues) Restore(recent, archived []news.Record) {
	fill(q.recent, recent)
	fill(q.archived, archived)
	q.inv.InvalidateTicker()
	q.inv.InvalidateRecentNews()
}

func fill(r *Ring, items []news.Record) {
	n := 0
	for _, it := range items {
		if n == r.Capacity() {
			break
		}
		if it.IsEmpty() {
			continue
		}
		it.Text = news.TruncateText(it.Text)
		*r.At(n) = it
		n++
	}
	if n < r.Capacity() {
		r.At(n).Kind = news.KindNull
	}
}
