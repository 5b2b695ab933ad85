package rndf

// Document is a full road network: named segments of lanes plus zones with
// perimeters and parking spots. Exit statements recorded while loading are
// kept in ExitRecords for diagnostics.
type Document struct {
	Name    string
	Version string
	Date    string

	Segments []*Segment
	Zones    []*Zone

	// ExitRecords holds every exit statement seen while loading, with the
	// source line it came from.
	ExitRecords []ExitRecord

	index map[string]*NodeInfo
}

// ExitRecord is one exit statement as it appeared in the source, kept for
// post-load connectivity checks and error reporting.
type ExitRecord struct {
	ExitID  string
	EntryID string
	Line    int
	Text    string
}

// NewDocument builds an empty document with the given name.
func NewDocument(name string) *Document {
	return &Document{Name: name}
}

// NumSegments returns the number of segments.
func (d *Document) NumSegments() int {
	return len(d.Segments)
}

// NumZones returns the number of zones.
func (d *Document) NumZones() int {
	return len(d.Zones)
}

// Segment returns the segment with the given id, or nil if not found.
func (d *Document) Segment(id int) *Segment {
	for _, s := range d.Segments {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Zone returns the zone with the given id, or nil if not found.
func (d *Document) Zone(id int) *Zone {
	for _, z := range d.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// AddSegment appends a segment, rejecting invalid segments and duplicates
// by id.
func (d *Document) AddSegment(s *Segment) bool {
	if s == nil || !s.Valid() {
		return false
	}
	if d.Segment(s.ID) != nil {
		return false
	}
	d.Segments = append(d.Segments, s)
	return true
}

// UpdateSegment replaces the segment with the same id.
func (d *Document) UpdateSegment(s *Segment) bool {
	if s == nil {
		return false
	}
	for i := range d.Segments {
		if d.Segments[i].Equal(s) {
			d.Segments[i] = s
			return true
		}
	}
	return false
}

// RemoveSegment removes the segment with the given id.
func (d *Document) RemoveSegment(id int) bool {
	for i := range d.Segments {
		if d.Segments[i].ID == id {
			d.Segments = append(d.Segments[:i], d.Segments[i+1:]...)
			return true
		}
	}
	return false
}

// AddZone appends a zone, rejecting invalid zones and duplicates by id.
func (d *Document) AddZone(z *Zone) bool {
	if z == nil || !z.Valid() {
		return false
	}
	if d.Zone(z.ID) != nil {
		return false
	}
	d.Zones = append(d.Zones, z)
	return true
}

// UpdateZone replaces the zone with the same id.
func (d *Document) UpdateZone(z *Zone) bool {
	if z == nil {
		return false
	}
	for i := range d.Zones {
		if d.Zones[i].Equal(z) {
			d.Zones[i] = z
			return true
		}
	}
	return false
}

// RemoveZone removes the zone with the given id.
func (d *Document) RemoveZone(id int) bool {
	for i := range d.Zones {
		if d.Zones[i].ID == id {
			d.Zones = append(d.Zones[:i], d.Zones[i+1:]...)
			return true
		}
	}
	return false
}

// Valid reports whether the document has a name, at least one valid
// segment, segments with consecutive ids starting at 1, and zones with
// consecutive ids continuing after the last segment id.
func (d *Document) Valid() bool {
	if d.Name == "" || len(d.Segments) == 0 {
		return false
	}
	for i, s := range d.Segments {
		if !s.Valid() || s.ID != i+1 {
			return false
		}
	}
	for i, z := range d.Zones {
		if !z.Valid() || z.ID != len(d.Segments)+i+1 {
			return false
		}
	}
	return true
}
