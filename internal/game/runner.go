package game

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Runner ticks a game on a timer until closed.
type Runner struct {
	game     *Game
	interval time.Duration
	ticks    atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewRunner starts ticking g every interval. A non-positive interval uses
// the default tick interval.
func NewRunner(g *Game, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultConfig().TickInterval
	}
	r := &Runner{
		game:     g,
		interval: interval,
		closed:   make(chan struct{}),
	}

	r.wg.Add(1)
	go r.run()

	return r
}

func (r *Runner) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.closed:
			return
		case <-ticker.C:
			r.game.Tick()
			r.ticks.Add(1)
		}
	}
}

// Ticks returns how many ticks the runner has run.
func (r *Runner) Ticks() int64 {
	return r.ticks.Load()
}

// Close stops the runner and waits for the current tick to finish.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
	})
	r.wg.Wait()
	log.Printf("runner: stopped after %d ticks", r.ticks.Load())
}
