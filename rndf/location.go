package rndf

// Location is a geodetic coordinate in decimal degrees (WGS84).
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation builds a Location from latitude and longitude in degrees.
func NewLocation(latDeg, lonDeg float64) Location {
	return Location{Latitude: latDeg, Longitude: lonDeg}
}

// Equal reports whether both coordinates match exactly.
func (l Location) Equal(other Location) bool {
	return l == other
}
