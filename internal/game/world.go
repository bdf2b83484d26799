package game

import (
	"fmt"
	"math/rand"

	"github.com/zappabad/parkcraft/internal/world"
)

var demoRides = []string{
	"Merry-Go-Round",
	"Wooden Roller Coaster",
	"Log Flume",
	"Ferris Wheel",
	"Go Karts",
}

const (
	demoPeeps     = 12
	carsPerTrain  = 3
	firstCarID    = 1000
	demoMapTiles  = 64
	demoTileRange = demoMapTiles * world.CoordsStep
)

// newDemoWorld builds a small park: a handful of rides with one train each
// and some guests, a third of whom are riding.
func newDemoWorld(rng *rand.Rand) *world.Map {
	m := world.NewMap()

	for i, name := range demoRides {
		view := world.CoordsXY{
			X: int32(rng.Intn(demoTileRange)),
			Y: int32(rng.Intn(demoTileRange)),
		}
		m.SetTileHeight(view, int32(16+8*rng.Intn(4)))

		ids := make([]world.EntityID, carsPerTrain)
		pos := make([]world.CoordsXYZ, carsPerTrain)
		for c := range ids {
			ids[c] = world.EntityID(firstCarID + i*10 + c)
			pos[c] = world.CoordsXYZ{X: view.X + int32(c)*world.CoordsStep, Y: view.Y, Z: 32}
		}
		head := m.AddTrain(ids, pos)

		m.AddRide(world.Ride{
			ID:          world.RideID(i),
			Name:        name,
			OverallView: view,
			Lifecycle:   world.RideOnTrack | world.RideTested,
			Vehicles:    []world.EntityID{head},
		})
	}

	for i := 1; i <= demoPeeps; i++ {
		p := world.Peep{
			ID:   world.EntityID(i),
			Name: fmt.Sprintf("Guest %d", i),
			Pos: world.CoordsXYZ{
				X: int32(rng.Intn(demoTileRange)),
				Y: int32(rng.Intn(demoTileRange)),
				Z: 16,
			},
		}
		if i%3 == 0 {
			p.State = world.PeepStateOnRide
			p.Pos = world.CoordsXYZ{X: world.LocationNull}
			p.CurrentRide = world.RideID(rng.Intn(len(demoRides)))
			p.CurrentCar = uint8(rng.Intn(carsPerTrain))
		}
		m.AddPeep(p)
	}
	return m
}
