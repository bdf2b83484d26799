package news

import "unicode/utf8"

// Capacity of the two message rings.
const (
	// HistoryStart is the capacity of the recent ring and the global index of
	// the first archived slot.
	HistoryStart = 11
	// ItemsArchive is the capacity of the archived ring.
	ItemsArchive = 50
	// MaxItems is the number of globally addressable message slots.
	MaxItems = HistoryStart + ItemsArchive
)

// TextCapacity is the size of a message text buffer including its terminator.
const TextCapacity = 256

// Kind identifies what a message is about. KindNull marks an empty slot.
type Kind uint8

const (
	KindNull Kind = iota
	KindRide
	KindPeepOnRide
	KindPeep
	KindMoney
	KindBlank
	KindResearch
	KindPeeps
	KindAward
	KindGraph
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindRide:
		return "RIDE"
	case KindPeepOnRide:
		return "PEEP_ON_RIDE"
	case KindPeep:
		return "PEEP"
	case KindMoney:
		return "MONEY"
	case KindBlank:
		return "BLANK"
	case KindResearch:
		return "RESEARCH"
	case KindPeeps:
		return "PEEPS"
	case KindAward:
		return "AWARD"
	case KindGraph:
		return "GRAPH"
	default:
		return "UNKNOWN"
	}
}

// TypeProperty describes what a message kind can point at.
type TypeProperty uint8

const (
	HasLocation TypeProperty = 1 << iota
	HasSubject
)

// Properties returns the fixed property set for k.
func (k Kind) Properties() TypeProperty {
	switch k {
	case KindRide, KindPeepOnRide, KindPeep:
		return HasLocation | HasSubject
	case KindMoney, KindResearch, KindPeeps, KindAward, KindGraph:
		return HasSubject
	case KindBlank:
		return HasLocation
	default:
		return 0
	}
}

// Flags is the per-message flag set.
type Flags uint8

const (
	// FlagHasButton marks a message whose subject button has been disabled.
	FlagHasButton Flags = 1 << 0
)

// Record is a single news item. The zero value is an empty slot.
type Record struct {
	Kind      Kind
	Flags     Flags
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      string
}

// IsEmpty reports whether the slot holds no message.
func (r Record) IsEmpty() bool { return r.Kind == KindNull }

// SetFlags ORs f into the record's flags.
func (r *Record) SetFlags(f Flags) { r.Flags |= f }

// HasButton reports whether FlagHasButton is set.
func (r Record) HasButton() bool { return r.Flags&FlagHasButton != 0 }

// TypeHasSubject reports whether the record's kind refers to a subject.
func (r Record) TypeHasSubject() bool { return r.Kind.Properties()&HasSubject != 0 }

// TypeHasLocation reports whether the record's kind refers to a location.
func (r Record) TypeHasLocation() bool { return r.Kind.Properties()&HasLocation != 0 }

// SameMessage reports whether r and o are the same message, ignoring the
// fields that change while it is stored: its age and its flags.
func (r Record) SameMessage(o Record) bool {
	return r.Kind == o.Kind && r.Assoc == o.Assoc && r.MonthYear == o.MonthYear &&
		r.Day == o.Day && r.Text == o.Text
}

// SetText stores s, truncated to fit the text buffer.
func (r *Record) SetText(s string) { r.Text = TruncateText(s) }

// TruncateText cuts s to at most TextCapacity-1 bytes without splitting a rune.
func TruncateText(s string) string {
	const limit = TextCapacity - 1
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
