package queue

import "github.com/zappabad/parkcraft/internal/news"

// Ring is a fixed-capacity, front-packed sequence of news records. Empty
// slots always trail the occupied ones, so the first empty slot marks the
// end of the ring. Size is derived by scanning and is never stored.
type Ring struct {
	slots []news.Record
}

// NewRing creates a ring with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("queue: ring capacity must be positive")
	}
	return &Ring{slots: make([]news.Record, capacity)}
}

// Capacity returns the number of slots in the ring.
func (r *Ring) Capacity() int { return len(r.slots) }

// End returns the index of the first empty slot, or Capacity() when full.
func (r *Ring) End() int {
	for i := range r.slots {
		if r.slots[i].IsEmpty() {
			return i
		}
	}
	return len(r.slots)
}

// Len returns the number of occupied slots.
func (r *Ring) Len() int { return r.End() }

// Empty reports whether slot 0 is empty.
func (r *Ring) Empty() bool { return r.slots[0].IsEmpty() }

// Front returns the first slot. Callers must check Empty first.
func (r *Ring) Front() *news.Record { return &r.slots[0] }

// At returns slot i without any bounds checking beyond the slice's own.
func (r *Ring) At(i int) *news.Record { return &r.slots[i] }

// PopFront shifts every slot one position toward the front and empties the
// last slot.
func (r *Ring) PopFront() {
	copy(r.slots, r.slots[1:])
	r.slots[len(r.slots)-1] = news.Record{}
}

// PushBack writes item into the first empty slot and re-terminates the ring.
// On a full ring the front is evicted first and item lands in the last slot.
func (r *Ring) PushBack(item news.Record) {
	end := r.End()
	if end == len(r.slots) {
		r.PopFront()
		r.slots[len(r.slots)-1] = item
		return
	}
	r.slots[end] = item
	if end+1 < len(r.slots) {
		r.slots[end+1].Kind = news.KindNull
	}
}

// Clear empties slot 0, which logically empties the whole ring.
func (r *Ring) Clear() {
	r.slots[0].Kind = news.KindNull
}

// Each calls fn for every occupied slot, front to back.
func (r *Ring) Each(fn func(i int, rec *news.Record)) {
	for i := range r.slots {
		if r.slots[i].IsEmpty() {
			return
		}
		fn(i, &r.slots[i])
	}
}

// Items returns a copy of the occupied slots, front to back.
func (r *Ring) Items() []news.Record {
	end := r.End()
	out := make([]news.Record, end)
	copy(out, r.slots[:end])
	return out
}
