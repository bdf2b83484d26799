// Package world holds the park map entities that news messages refer to.
package world

// CoordsStep is the size of one map tile in world units.
const CoordsStep = 32

// LocationNull is the x value of an entity that has no map position.
const LocationNull int32 = -0x8000

// CoordsXY is a world-space position on the map plane.
type CoordsXY struct {
	X, Y int32
}

// IsNull reports whether c is the null location.
func (c CoordsXY) IsNull() bool { return c.X == LocationNull }

// ToTileCentre snaps c to the centre of its tile.
func (c CoordsXY) ToTileCentre() CoordsXY {
	return CoordsXY{
		X: c.X&^(CoordsStep-1) + CoordsStep/2,
		Y: c.Y&^(CoordsStep-1) + CoordsStep/2,
	}
}

// CoordsXYZ is a world-space position including height.
type CoordsXYZ struct {
	X, Y, Z int32
}

// XY drops the height.
func (c CoordsXYZ) XY() CoordsXY { return CoordsXY{X: c.X, Y: c.Y} }

type (
	RideID   uint16
	EntityID uint16
)

// EntityIDNull terminates vehicle links and marks absent entities.
const EntityIDNull EntityID = 0xFFFF

// RideLifecycle is a bit set of ride lifecycle flags.
type RideLifecycle uint32

const (
	RideOnTrack RideLifecycle = 1 << iota
	RideBrokenDown
	RideTested
)

// Ride is an attraction on the map.
type Ride struct {
	ID          RideID
	Name        string
	OverallView CoordsXY
	Lifecycle   RideLifecycle
	// Vehicles holds the head vehicle of each train.
	Vehicles []EntityID
}

// PeepState is what a guest or staff member is currently doing.
type PeepState uint8

const (
	PeepStateWalking PeepState = iota
	PeepStateQueuing
	PeepStateEnteringRide
	PeepStateOnRide
	PeepStateLeavingRide
)

// Peep is a guest or staff member.
type Peep struct {
	ID           EntityID
	Name         string
	Pos          CoordsXYZ
	State        PeepState
	CurrentRide  RideID
	CurrentTrain uint8
	CurrentCar   uint8
}

// Vehicle is one car of a ride train.
type Vehicle struct {
	ID                 EntityID
	Pos                CoordsXYZ
	NextVehicleOnTrain EntityID
}

// World resolves ids to live entities. Lookups of destroyed or unknown ids
// return nil.
type World interface {
	Ride(id RideID) *Ride
	Peep(id EntityID) *Peep
	Vehicle(id EntityID) *Vehicle
	TileHeight(c CoordsXY) int32
}
