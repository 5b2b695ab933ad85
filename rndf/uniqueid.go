package rndf

import (
	"fmt"
	"strconv"
	"strings"
)

// UniqueID addresses a single waypoint anywhere in a document as an x.y.z
// triple: segment.lane.waypoint for lane waypoints, zone.spot.waypoint for
// parking spot waypoints, and zone.0.point for perimeter points (y == 0 is
// reserved for perimeters). Compare with ==; there is no ordering.
type UniqueID struct {
	X int
	Y int
	Z int
}

// NewUniqueID builds a UniqueID from its components. Out-of-range
// components leave the id in its invalid sentinel state; check Valid.
func NewUniqueID(x, y, z int) UniqueID {
	if x <= 0 || x > maxFieldValue ||
		y < 0 || y > maxFieldValue ||
		z <= 0 || z > maxFieldValue {
		return UniqueID{X: -1, Y: -1, Z: -1}
	}
	return UniqueID{X: x, Y: y, Z: z}
}

// ParseUniqueID parses an "x.y.z" string: exactly three dot-separated
// integer tokens with no extra characters.
func ParseUniqueID(s string) (UniqueID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return UniqueID{X: -1, Y: -1, Z: -1}, fmt.Errorf("invalid unique id %q", s)
	}
	var vals [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return UniqueID{X: -1, Y: -1, Z: -1}, fmt.Errorf("invalid unique id %q", s)
		}
		vals[i] = n
	}
	id := NewUniqueID(vals[0], vals[1], vals[2])
	if !id.Valid() {
		return id, fmt.Errorf("invalid unique id %q", s)
	}
	return id, nil
}

// Valid reports whether all components are within range: x in [1,32768],
// y in [0,32768], z in [1,32768].
func (u UniqueID) Valid() bool {
	return u.X > 0 && u.X <= maxFieldValue &&
		u.Y >= 0 && u.Y <= maxFieldValue &&
		u.Z > 0 && u.Z <= maxFieldValue
}

// String returns the "x.y.z" form; it round-trips through ParseUniqueID
// for any valid id.
func (u UniqueID) String() string {
	return fmt.Sprintf("%d.%d.%d", u.X, u.Y, u.Z)
}
