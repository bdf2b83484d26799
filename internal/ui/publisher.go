package ui

import (
	"sync"
	"sync/atomic"
)

// Publisher turns news and window requests into Events on a buffered
// channel. Publishing never blocks the simulation: when the channel is full
// the event is dropped and counted.
type Publisher struct {
	events  chan Event
	dropped atomic.Int64

	closeOnce sync.Once
	closed    atomic.Bool
	mu        sync.RWMutex
}

// NewPublisher creates a publisher with the given channel capacity.
func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Publisher{events: make(chan Event, buffer)}
}

func (p *Publisher) publish(ev Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return
	}
	select {
	case p.events <- ev:
	default:
		p.dropped.Add(1)
	}
}

func (p *Publisher) InvalidateTicker() {
	p.publish(Event{Intent: IntentInvalidateTicker})
}

func (p *Publisher) InvalidateRecentNews() {
	p.publish(Event{Intent: IntentInvalidateRecentNews})
}

func (p *Publisher) OpenRide(id uint16) {
	p.publish(Event{Intent: IntentOpenRide, RideID: id})
}

func (p *Publisher) OpenPeep(id uint16) {
	p.publish(Event{Intent: IntentOpenPeep, PeepID: id})
}

func (p *Publisher) OpenFinances() {
	p.publish(Event{Intent: IntentOpenFinances})
}

func (p *Publisher) OpenParkView(v ParkView) {
	p.publish(Event{Intent: IntentOpenParkView, View: v})
}

func (p *Publisher) OpenGuestList(f GuestListFilter, subject uint16) {
	p.publish(Event{Intent: IntentOpenGuestList, Filter: f, Subject: subject})
}

func (p *Publisher) OpenNewRideOfType(rideType, entryIndex uint8) {
	p.publish(Event{Intent: IntentNewRideOfType, RideType: rideType, EntryIndex: entryIndex})
}

func (p *Publisher) OpenSceneryTab(tab uint32) {
	p.publish(Event{Intent: IntentOpenSceneryTab, Tab: tab})
}

// Events returns the channel subscribers read from. It is closed by Close.
func (p *Publisher) Events() <-chan Event {
	return p.events
}

// DroppedEvents returns the number of events lost to a full channel.
func (p *Publisher) DroppedEvents() int64 {
	return p.dropped.Load()
}

// Close stops publishing and closes the events channel.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed.Store(true)
		close(p.events)
		p.mu.Unlock()
	})
}
