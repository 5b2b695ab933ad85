package rndf

// Zone is an unstructured drivable region bounded by a perimeter, with an
// optional display name and a set of parking spots.
type Zone struct {
	ID        int
	Name      string
	Perimeter Perimeter
	Spots     []*ParkingSpot
}

// NewZone builds an empty zone. A non-positive id leaves the zone in its
// invalid sentinel state.
func NewZone(id int) *Zone {
	if id <= 0 {
		return &Zone{ID: -1}
	}
	return &Zone{ID: id}
}

// NumSpots returns the number of parking spots in the zone.
func (z *Zone) NumSpots() int {
	return len(z.Spots)
}

// Spot returns the parking spot with the given id, or nil if not found.
func (z *Zone) Spot(id int) *ParkingSpot {
	for _, s := range z.Spots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// AddSpot appends a parking spot, rejecting invalid spots and duplicates
// by id.
func (z *Zone) AddSpot(s *ParkingSpot) bool {
	if s == nil || !s.Valid() {
		return false
	}
	if z.Spot(s.ID) != nil {
		return false
	}
	z.Spots = append(z.Spots, s)
	return true
}

// UpdateSpot replaces the parking spot with the same id.
func (z *Zone) UpdateSpot(s *ParkingSpot) bool {
	if s == nil {
		return false
	}
	for i := range z.Spots {
		if z.Spots[i].Equal(s) {
			z.Spots[i] = s
			return true
		}
	}
	return false
}

// RemoveSpot removes the parking spot with the given id.
func (z *Zone) RemoveSpot(id int) bool {
	for i := range z.Spots {
		if z.Spots[i].ID == id {
			z.Spots = append(z.Spots[:i], z.Spots[i+1:]...)
			return true
		}
	}
	return false
}

// Valid reports whether the zone has a positive id, a valid perimeter, and
// valid parking spots with consecutive 1-based ids.
func (z *Zone) Valid() bool {
	if z.ID <= 0 || !z.Perimeter.Valid() {
		return false
	}
	for i, s := range z.Spots {
		if !s.Valid() || s.ID != i+1 {
			return false
		}
	}
	return true
}

// Equal compares zone ids and requires both zones' spot sets to be valid.
func (z *Zone) Equal(other *Zone) bool {
	if z.ID != other.ID {
		return false
	}
	for _, s := range z.Spots {
		if !s.Valid() {
			return false
		}
	}
	for _, s := range other.Spots {
		if !s.Valid() {
			return false
		}
	}
	return true
}
