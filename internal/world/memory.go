package world

// Map is an in-memory World. The zero value is not usable; use NewMap.
type Map struct {
	rides    map[RideID]*Ride
	peeps    map[EntityID]*Peep
	vehicles map[EntityID]*Vehicle
	heights  map[CoordsXY]int32

	// BaseHeight is returned for tiles without an explicit height.
	BaseHeight int32
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{
		rides:      make(map[RideID]*Ride),
		peeps:      make(map[EntityID]*Peep),
		vehicles:   make(map[EntityID]*Vehicle),
		heights:    make(map[CoordsXY]int32),
		BaseHeight: 16,
	}
}

func (m *Map) Ride(id RideID) *Ride         { return m.rides[id] }
func (m *Map) Peep(id EntityID) *Peep       { return m.peeps[id] }
func (m *Map) Vehicle(id EntityID) *Vehicle { return m.vehicles[id] }

// TileHeight returns the surface height of the tile containing c.
func (m *Map) TileHeight(c CoordsXY) int32 {
	if h, ok := m.heights[tileOf(c)]; ok {
		return h
	}
	return m.BaseHeight
}

// SetTileHeight sets the surface height of the tile containing c.
func (m *Map) SetTileHeight(c CoordsXY, h int32) {
	m.heights[tileOf(c)] = h
}

func tileOf(c CoordsXY) CoordsXY {
	return CoordsXY{X: c.X &^ (CoordsStep - 1), Y: c.Y &^ (CoordsStep - 1)}
}

// AddRide stores r, replacing any ride with the same id.
func (m *Map) AddRide(r Ride) *Ride {
	rp := &r
	m.rides[r.ID] = rp
	return rp
}

// AddPeep stores p, replacing any peep with the same id.
func (m *Map) AddPeep(p Peep) *Peep {
	pp := &p
	m.peeps[p.ID] = pp
	return pp
}

// AddTrain stores a linked train of vehicles at the given positions and
// returns the head vehicle id. ids must be the same length as positions.
func (m *Map) AddTrain(ids []EntityID, positions []CoordsXYZ) EntityID {
	if len(ids) == 0 {
		return EntityIDNull
	}
	for i, id := range ids {
		next := EntityIDNull
		if i+1 < len(ids) {
			next = ids[i+1]
		}
		m.vehicles[id] = &Vehicle{ID: id, Pos: positions[i], NextVehicleOnTrain: next}
	}
	return ids[0]
}

func (m *Map) RemoveRide(id RideID)      { delete(m.rides, id) }
func (m *Map) RemovePeep(id EntityID)    { delete(m.peeps, id) }
func (m *Map) RemoveVehicle(id EntityID) { delete(m.vehicles, id) }

// Rides returns every ride, in no particular order.
func (m *Map) Rides() []*Ride {
	out := make([]*Ride, 0, len(m.rides))
	for _, r := range m.rides {
		out = append(out, r)
	}
	return out
}

// Peeps returns every peep, in no particular order.
func (m *Map) Peeps() []*Peep {
	out := make([]*Peep, 0, len(m.peeps))
	for _, p := range m.peeps {
		out = append(out, p)
	}
	return out
}
