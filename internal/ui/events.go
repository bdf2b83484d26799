package ui

// Intent is a request from the simulation to the windowing layer.
type Intent uint8

const (
	IntentInvalidateTicker Intent = iota
	IntentInvalidateRecentNews
	IntentOpenRide
	IntentOpenPeep
	IntentOpenFinances
	IntentOpenParkView
	IntentOpenGuestList
	IntentNewRideOfType
	IntentOpenSceneryTab
)

func (i Intent) String() string {
	switch i {
	case IntentInvalidateTicker:
		return "invalidate_ticker"
	case IntentInvalidateRecentNews:
		return "invalidate_recent_news"
	case IntentOpenRide:
		return "open_ride"
	case IntentOpenPeep:
		return "open_peep"
	case IntentOpenFinances:
		return "open_finances"
	case IntentOpenParkView:
		return "open_park_view"
	case IntentOpenGuestList:
		return "open_guest_list"
	case IntentNewRideOfType:
		return "new_ride_of_type"
	case IntentOpenSceneryTab:
		return "open_scenery_tab"
	default:
		return "unknown"
	}
}

// ParkView selects a tab of the park window.
type ParkView uint8

const (
	ParkViewAwards ParkView = iota
	ParkViewRating
)

// GuestListFilter selects how the guest list is filtered.
type GuestListFilter uint8

const (
	GuestsOnRide GuestListFilter = iota
	GuestsInQueue
	GuestsThinkingAboutRide
	GuestsThinkingX
)

// Event carries an intent and the fields it needs. Unused fields are zero.
// Subject is what the guest list filter matches on: a ride for the ride
// filters, a thought type for GuestsThinkingX.
type Event struct {
	Intent     Intent
	RideID     uint16
	PeepID     uint16
	View       ParkView
	Filter     GuestListFilter
	Subject    uint16
	RideType   uint8
	EntryIndex uint8
	Tab        uint32
}

func (e Event) Type() string { return e.Intent.String() }
