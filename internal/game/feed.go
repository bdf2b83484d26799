package game

import (
	"math/rand"
	"sort"

	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/world"
)

// FeedConfig holds configuration for the gameplay message feed.
type FeedConfig struct {
	// Enabled turns the feed on.
	Enabled bool `yaml:"enabled"`
	// Interval is the mean number of ticks between feed events.
	Interval int `yaml:"interval"`
}

// DefaultFeedConfig returns a FeedConfig with reasonable defaults.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Enabled:  true,
		Interval: 200,
	}
}

type feedEvent uint8

const (
	feedFinance feedEvent = iota
	feedBreakdown
	feedResearch
	feedComplaint
	feedAward
	feedRiding
	feedLostGuest
	feedBlank
	feedRating
	feedDemolish
	feedEventCount
)

var awardNames = []string{
	"Most untidy park in the country",
	"Tidiest park in the country",
	"Park with the best roller coasters",
	"Best value park in the country",
	"Most beautiful park in the country",
	"Safest park in the country",
}

var researchNames = []string{
	"Spiral Slide",
	"Junior Roller Coaster",
	"Observation Tower",
	"Pirate Ship",
	"Classical Gardens",
}

var complaintText = map[park.Warning]string{
	park.WarningHungry:    "Guests are hungry and can't find anywhere to buy food",
	park.WarningThirsty:   "Guests are thirsty and can't find anywhere to buy drinks",
	park.WarningLitter:    "Guests are complaining about the litter in your park",
	park.WarningVandalism: "Guests are complaining about the vandalism in your park",
	park.WarningBathroom:  "Guests can't find the toilets in your park",
	park.WarningNauseous:  "Guests are feeling sick",
	park.WarningLost:      "Guests are getting lost in your park",
}

// feed generates gameplay messages from a seeded generator so a given seed
// always yields the same message log.
type feed struct {
	cfg    FeedConfig
	rng    *rand.Rand
	next   int
	rating int
}

func newFeed(cfg FeedConfig, rng *rand.Rand) *feed {
	f := &feed{cfg: cfg, rng: rng, rating: 500}
	f.schedule()
	return f
}

func (f *feed) schedule() {
	if f.cfg.Interval <= 1 {
		f.next = 1
		return
	}
	f.next = f.cfg.Interval/2 + f.rng.Intn(f.cfg.Interval)
}

// step runs once per tick with the game lock held.
func (f *feed) step(g *Game, newMonth bool) {
	if !f.cfg.Enabled {
		return
	}
	if newMonth {
		f.monthlyReport(g)
	}
	f.next--
	if f.next > 0 {
		return
	}
	f.schedule()
	f.emit(g, feedEvent(f.rng.Intn(int(feedEventCount))))
}

func (f *feed) monthlyReport(g *Game) {
	profit := int64(f.rng.Intn(4000)) - 1000
	g.state.Cash += profit
	g.news.AddToQueue(news.KindMoney, 0, "Monthly report: profit of £%d, bank balance £%d", profit, g.state.Cash)
}

func (f *feed) emit(g *Game, ev feedEvent) {
	switch ev {
	case feedFinance:
		spend := int64(100 + f.rng.Intn(900))
		g.state.Cash -= spend
		g.news.AddToQueue(news.KindMoney, 0, "Marketing campaign launched for £%d", spend)

	case feedBreakdown:
		ride := f.pickRide(g.world)
		if ride == nil {
			return
		}
		if ride.Lifecycle&world.RideBrokenDown != 0 {
			ride.Lifecycle &^= world.RideBrokenDown
			g.news.AddToQueue(news.KindRide, uint32(ride.ID), "%s has been fixed", ride.Name)
			return
		}
		ride.Lifecycle |= world.RideBrokenDown
		g.news.AddToQueue(news.KindRide, uint32(ride.ID), "%s has broken down", ride.Name)

	case feedResearch:
		i := f.rng.Intn(len(researchNames))
		if f.rng.Intn(2) == 0 {
			item := news.ResearchItem{Type: news.ResearchRide, BaseRideType: uint8(i), EntryIndex: uint8(f.rng.Intn(8))}
			g.news.AddToQueue(news.KindResearch, item.Raw(), "New ride/attraction now available: %s", researchNames[i])
			return
		}
		g.news.AddToQueue(news.KindResearch, uint32(i), "New scenery now available: %s", researchNames[i])

	case feedComplaint:
		w := park.Warning(f.rng.Intn(len(complaintText)))
		if !g.throttle.Allow(w) {
			return
		}
		// The warning doubles as the thought type the guest list filters on.
		g.news.AddToQueueRaw(news.KindPeeps, complaintText[w], uint32(w))

	case feedAward:
		i := f.rng.Intn(len(awardNames))
		g.news.AddToQueue(news.KindAward, uint32(i), "Your park has received an award for being '%s'!", awardNames[i])

	case feedRiding:
		peep := f.pickPeep(g.world, func(p *world.Peep) bool { return p.State == world.PeepStateOnRide })
		if peep == nil {
			return
		}
		name := "a ride"
		if ride := g.world.Ride(peep.CurrentRide); ride != nil {
			name = ride.Name
		}
		g.news.AddToQueue(news.KindPeepOnRide, uint32(peep.ID), "%s is now on %s", peep.Name, name)

	case feedLostGuest:
		peep := f.pickPeep(g.world, func(p *world.Peep) bool { return p.State == world.PeepStateWalking })
		if peep == nil {
			return
		}
		g.news.AddToQueue(news.KindPeep, uint32(peep.ID), "%s is lost and can't find the park exit", peep.Name)

	case feedBlank:
		x := int16(f.rng.Intn(demoTileRange))
		y := int16(f.rng.Intn(demoTileRange))
		g.news.AddToQueueRaw(news.KindBlank, "A path has been vandalised", news.PackCoords(x, y))

	case feedRating:
		delta := f.rng.Intn(101) - 50
		f.rating = min(max(f.rating+delta, 0), 999)
		verb := "risen"
		if delta < 0 {
			verb = "fallen"
		}
		g.news.AddToQueue(news.KindGraph, 0, "Park rating has %s to %d", verb, f.rating)

	case feedDemolish:
		if len(g.world.Rides()) <= 2 {
			return
		}
		ride := f.pickRide(g.world)
		g.world.RemoveRide(ride.ID)
		g.news.DisableNews(news.KindRide, uint32(ride.ID))
		g.news.AddToQueueRaw(news.KindBlank, ride.Name+" has been demolished", news.NullCoordsAssoc)
	}
}

func (f *feed) pickRide(w *world.Map) *world.Ride {
	rides := w.Rides()
	if len(rides) == 0 {
		return nil
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].ID < rides[j].ID })
	return rides[f.rng.Intn(len(rides))]
}

func (f *feed) pickPeep(w *world.Map, keep func(*world.Peep) bool) *world.Peep {
	var peeps []*world.Peep
	for _, p := range w.Peeps() {
		if keep(p) {
			peeps = append(peeps, p)
		}
	}
	if len(peeps) == 0 {
		return nil
	}
	sort.Slice(peeps, func(i, j int) bool { return peeps[i].ID < peeps[j].ID })
	return peeps[f.rng.Intn(len(peeps))]
}
