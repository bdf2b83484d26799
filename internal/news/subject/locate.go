// Package subject resolves what a news message points at: a map location to
// scroll to, or a window to open.
package subject

import (
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/world"
)

// Locate returns the map position a message refers to. Messages whose ride or
// peep no longer exists, and kinds without a location, report false.
func Locate(w world.World, kind news.Kind, assoc uint32) (world.CoordsXYZ, bool) {
	if w == nil {
		return world.CoordsXYZ{}, false
	}
	switch s := news.DecodeSubject(kind, assoc).(type) {
	case news.RideSubject:
		ride := w.Ride(world.RideID(s.RideID))
		if ride == nil || ride.OverallView.IsNull() {
			return world.CoordsXYZ{}, false
		}
		c := ride.OverallView.ToTileCentre()
		return world.CoordsXYZ{X: c.X, Y: c.Y, Z: w.TileHeight(c)}, true

	case news.PeepOnRideSubject:
		return locatePeepOnRide(w, world.EntityID(s.PeepID))

	case news.PeepSubject:
		peep := w.Peep(world.EntityID(s.PeepID))
		if peep == nil {
			return world.CoordsXYZ{}, false
		}
		return peep.Pos, true

	case news.BlankSubject:
		if s.IsNull() {
			return world.CoordsXYZ{}, false
		}
		c := world.CoordsXY{X: int32(s.X), Y: int32(s.Y)}
		return world.CoordsXYZ{X: c.X, Y: c.Y, Z: w.TileHeight(c)}, true
	}
	return world.CoordsXYZ{}, false
}

// locatePeepOnRide follows a riding peep to the car it sits in when the peep
// itself has no map position.
func locatePeepOnRide(w world.World, id world.EntityID) (world.CoordsXYZ, bool) {
	peep := w.Peep(id)
	if peep == nil {
		return world.CoordsXYZ{}, false
	}
	if peep.Pos.X != world.LocationNull {
		return peep.Pos, true
	}
	if peep.State != world.PeepStateOnRide && peep.State != world.PeepStateEnteringRide {
		return world.CoordsXYZ{}, false
	}

	ride := w.Ride(peep.CurrentRide)
	if ride == nil || ride.Lifecycle&world.RideOnTrack == 0 {
		return world.CoordsXYZ{}, false
	}
	if int(peep.CurrentTrain) >= len(ride.Vehicles) {
		return world.CoordsXYZ{}, false
	}

	car := w.Vehicle(ride.Vehicles[peep.CurrentTrain])
	for i := 0; i < int(peep.CurrentCar) && car != nil; i++ {
		car = w.Vehicle(car.NextVehicleOnTrain)
	}
	if car == nil {
		return world.CoordsXYZ{}, false
	}
	return car.Pos, true
}
