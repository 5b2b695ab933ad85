package rndf

// ParkingSpot is a pair of waypoints marking the ends of a parking spot
// inside a zone, with optional width (meters) and checkpoint.
type ParkingSpot struct {
	ID         int
	Waypoints  []Waypoint
	Width      float64
	Checkpoint Checkpoint
}

// NewParkingSpot builds an empty parking spot. A non-positive id leaves the
// spot in its invalid sentinel state.
func NewParkingSpot(id int) *ParkingSpot {
	if id <= 0 {
		return &ParkingSpot{ID: -1}
	}
	return &ParkingSpot{ID: id}
}

// NumWaypoints returns the number of waypoints in the spot.
func (p *ParkingSpot) NumWaypoints() int {
	return len(p.Waypoints)
}

// Waypoint returns the waypoint with the given id, or false if not found.
func (p *ParkingSpot) Waypoint(id int) (Waypoint, bool) {
	for _, w := range p.Waypoints {
		if w.ID == id {
			return w, true
		}
	}
	return Waypoint{}, false
}

// AddWaypoint appends a waypoint, rejecting invalid waypoints, duplicates
// by id, and more than two entries.
func (p *ParkingSpot) AddWaypoint(w Waypoint) bool {
	if !w.Valid() || len(p.Waypoints) >= 2 {
		return false
	}
	if _, ok := p.Waypoint(w.ID); ok {
		return false
	}
	p.Waypoints = append(p.Waypoints, w)
	return true
}

// UpdateWaypoint replaces the waypoint with the same id.
func (p *ParkingSpot) UpdateWaypoint(w Waypoint) bool {
	for i := range p.Waypoints {
		if p.Waypoints[i].Equal(w) {
			p.Waypoints[i] = w
			return true
		}
	}
	return false
}

// SetWidth sets the spot width in meters. Negative widths are rejected.
func (p *ParkingSpot) SetWidth(width float64) bool {
	if width < 0 {
		return false
	}
	p.Width = width
	return true
}

// HasCheckpoint reports whether the spot carries a checkpoint.
func (p *ParkingSpot) HasCheckpoint() bool {
	return p.Checkpoint.Valid()
}

// Valid reports whether the spot has a positive id and exactly two valid
// waypoints with ids 1 and 2.
func (p *ParkingSpot) Valid() bool {
	if p.ID <= 0 || len(p.Waypoints) != 2 {
		return false
	}
	for i, w := range p.Waypoints {
		if !w.Valid() || w.ID != i+1 {
			return false
		}
	}
	return true
}

// Equal compares parking spots by id only.
func (p *ParkingSpot) Equal(other *ParkingSpot) bool {
	return p.ID == other.ID
}
