package rndf

// Waypoint is a single georeferenced point within a lane, a parking spot,
// or a zone perimeter. IsEntry and IsExit mark perimeter points that serve
// as zone entries/exits.
type Waypoint struct {
	ID       int
	Location Location
	IsEntry  bool
	IsExit   bool
}

// NewWaypoint builds a Waypoint. A non-positive id leaves the waypoint in
// its invalid sentinel state; check Valid.
func NewWaypoint(id int, loc Location) Waypoint {
	if id <= 0 {
		return Waypoint{ID: -1}
	}
	return Waypoint{ID: id, Location: loc}
}

// Valid reports whether the waypoint has a positive id.
func (w Waypoint) Valid() bool {
	return w.ID > 0
}

// Equal compares waypoints by id only, ignoring location and flags. This
// lets callers search and replace by id while containers compare
// structurally by membership.
func (w Waypoint) Equal(other Waypoint) bool {
	return w.ID == other.ID
}
