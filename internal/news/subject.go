package news

// Subject is what a message's association decodes to. The set of
// implementations is closed; consumers type-switch over it.
type Subject interface {
	isSubject()
}

// RideSubject refers to a ride by id.
type RideSubject struct {
	RideID uint16
}

func (RideSubject) isSubject() {}

// PeepOnRideSubject refers to a guest who may be riding a vehicle.
type PeepOnRideSubject struct {
	PeepID uint16
}

func (PeepOnRideSubject) isSubject() {}

// PeepSubject refers to a guest or staff member.
type PeepSubject struct {
	PeepID uint16
}

func (PeepSubject) isSubject() {}

// MoneySubject refers to the park finances.
type MoneySubject struct{}

func (MoneySubject) isSubject() {}

// BlankSubject is a packed map coordinate. X == LocationNull means none.
type BlankSubject struct {
	X, Y int16
}

func (BlankSubject) isSubject() {}

// IsNull reports whether the coordinate is the null-location sentinel.
func (b BlankSubject) IsNull() bool { return b.X == LocationNull }

// ResearchSubject refers to a researched item.
type ResearchSubject struct {
	Item ResearchItem
	Raw  uint32
}

func (ResearchSubject) isSubject() {}

// PeepsSubject refers to the guests having a kind of thought.
type PeepsSubject struct {
	Thought uint16
}

func (PeepsSubject) isSubject() {}

// AwardSubject refers to the park awards view.
type AwardSubject struct{}

func (AwardSubject) isSubject() {}

// GraphSubject refers to the park rating graph.
type GraphSubject struct{}

func (GraphSubject) isSubject() {}

// LocationNull is the x value of a null map coordinate.
const LocationNull int16 = -0x8000

// NullCoordsAssoc is the association of a blank message with no location.
const NullCoordsAssoc = uint32(0x8000)<<16 | 0x8000

// PackCoords packs an (x, y) map coordinate into a blank association.
func PackCoords(x, y int16) uint32 {
	return uint32(uint16(y))<<16 | uint32(uint16(x))
}

// ResearchEntryType is the category of a researched item.
type ResearchEntryType uint8

const (
	ResearchScenery ResearchEntryType = iota
	ResearchRide
)

// ResearchItem is the decoded form of a research association.
type ResearchItem struct {
	Type         ResearchEntryType
	BaseRideType uint8
	EntryIndex   uint8
}

// DecodeResearchItem unpacks a raw research association.
func DecodeResearchItem(raw uint32) ResearchItem {
	return ResearchItem{
		Type:         ResearchEntryType((raw >> 16) & 0xFF),
		BaseRideType: uint8((raw >> 8) & 0xFF),
		EntryIndex:   uint8(raw & 0xFF),
	}
}

// Raw packs it back into a research association.
func (it ResearchItem) Raw() uint32 {
	return uint32(it.Type)<<16 | uint32(it.BaseRideType)<<8 | uint32(it.EntryIndex)
}

// DecodeSubject interprets assoc according to kind. It returns nil for kinds
// that carry no subject.
func DecodeSubject(kind Kind, assoc uint32) Subject {
	switch kind {
	case KindRide:
		return RideSubject{RideID: uint16(assoc)}
	case KindPeepOnRide:
		return PeepOnRideSubject{PeepID: uint16(assoc)}
	case KindPeep:
		return PeepSubject{PeepID: uint16(assoc)}
	case KindMoney:
		return MoneySubject{}
	case KindBlank:
		return BlankSubject{X: int16(assoc & 0xFFFF), Y: int16(assoc >> 16)}
	case KindResearch:
		return ResearchSubject{Item: DecodeResearchItem(assoc), Raw: assoc}
	case KindPeeps:
		return PeepsSubject{Thought: uint16(assoc)}
	case KindAward:
		return AwardSubject{}
	case KindGraph:
		return GraphSubject{}
	default:
		return nil
	}
}
