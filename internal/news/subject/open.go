package subject

import (
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/internal/world"
)

// Windows opens the windows a message subject can lead to.
type Windows interface {
	OpenRide(id uint16)
	OpenPeep(id uint16)
	OpenFinances()
	OpenParkView(v ui.ParkView)
	OpenGuestList(f ui.GuestListFilter, subject uint16)
	OpenNewRideOfType(rideType, entryIndex uint8)
	OpenSceneryTab(tab uint32)
}

// Open opens the window for a message's subject. Peeps that no longer exist
// and kinds without a subject open nothing.
func Open(win Windows, w world.World, kind news.Kind, assoc uint32) {
	if win == nil {
		return
	}
	switch s := news.DecodeSubject(kind, assoc).(type) {
	case news.RideSubject:
		win.OpenRide(s.RideID)
	case news.PeepOnRideSubject:
		openPeep(win, w, s.PeepID)
	case news.PeepSubject:
		openPeep(win, w, s.PeepID)
	case news.MoneySubject:
		win.OpenFinances()
	case news.ResearchSubject:
		if s.Item.Type == news.ResearchRide {
			win.OpenNewRideOfType(s.Item.BaseRideType, s.Item.EntryIndex)
			return
		}
		win.OpenSceneryTab(s.Raw)
	case news.PeepsSubject:
		win.OpenGuestList(ui.GuestsThinkingX, s.Thought)
	case news.AwardSubject:
		win.OpenParkView(ui.ParkViewAwards)
	case news.GraphSubject:
		win.OpenParkView(ui.ParkViewRating)
	case news.BlankSubject, nil:
	}
}

func openPeep(win Windows, w world.World, id uint16) {
	if w == nil || w.Peep(world.EntityID(id)) == nil {
		return
	}
	win.OpenPeep(id)
}
