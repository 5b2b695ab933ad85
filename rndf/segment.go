package rndf

// Segment is an ordered run of lanes with an optional display name.
type Segment struct {
	ID    int
	Name  string
	Lanes []*Lane
}

// NewSegment builds an empty segment. A non-positive id leaves the segment
// in its invalid sentinel state.
func NewSegment(id int) *Segment {
	if id <= 0 {
		return &Segment{ID: -1}
	}
	return &Segment{ID: id}
}

// NumLanes returns the number of lanes in the segment.
func (s *Segment) NumLanes() int {
	return len(s.Lanes)
}

// Lane returns the lane with the given id, or nil if not found.
func (s *Segment) Lane(id int) *Lane {
	for _, l := range s.Lanes {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// AddLane appends a lane, rejecting invalid lanes and duplicates by id.
func (s *Segment) AddLane(l *Lane) bool {
	if l == nil || !l.Valid() {
		return false
	}
	if s.Lane(l.ID) != nil {
		return false
	}
	s.Lanes = append(s.Lanes, l)
	return true
}

// UpdateLane replaces the lane with the same id. Returns false if no such
// lane exists.
func (s *Segment) UpdateLane(l *Lane) bool {
	if l == nil {
		return false
	}
	for i := range s.Lanes {
		if s.Lanes[i].Equal(l) {
			s.Lanes[i] = l
			return true
		}
	}
	return false
}

// RemoveLane removes the lane with the given id.
func (s *Segment) RemoveLane(id int) bool {
	for i := range s.Lanes {
		if s.Lanes[i].ID == id {
			s.Lanes = append(s.Lanes[:i], s.Lanes[i+1:]...)
			return true
		}
	}
	return false
}

// Valid reports whether the segment has a positive id, at least one lane,
// and valid lanes with consecutive 1-based ids.
func (s *Segment) Valid() bool {
	if s.ID <= 0 || len(s.Lanes) == 0 {
		return false
	}
	for i, l := range s.Lanes {
		if !l.Valid() || l.ID != i+1 {
			return false
		}
	}
	return true
}

// Equal compares segments by id only.
func (s *Segment) Equal(other *Segment) bool {
	return s.ID == other.ID
}
