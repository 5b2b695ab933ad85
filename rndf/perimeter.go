package rndf

// Perimeter is the closed boundary of a zone, described by an ordered run
// of perimeter points. Points that connect to the rest of the network carry
// exits.
type Perimeter struct {
	Points []Waypoint
	Exits  []Exit
}

// NumPoints returns the number of perimeter points.
func (p *Perimeter) NumPoints() int {
	return len(p.Points)
}

// Point returns the perimeter point with the given id, or false if not
// found.
func (p *Perimeter) Point(id int) (Waypoint, bool) {
	for _, w := range p.Points {
		if w.ID == id {
			return w, true
		}
	}
	return Waypoint{}, false
}

// AddPoint appends a perimeter point, rejecting invalid waypoints and
// duplicates by id.
func (p *Perimeter) AddPoint(w Waypoint) bool {
	if !w.Valid() {
		return false
	}
	if _, ok := p.Point(w.ID); ok {
		return false
	}
	p.Points = append(p.Points, w)
	return true
}

// UpdatePoint replaces the perimeter point with the same id.
func (p *Perimeter) UpdatePoint(w Waypoint) bool {
	for i := range p.Points {
		if p.Points[i].Equal(w) {
			p.Points[i] = w
			return true
		}
	}
	return false
}

// RemovePoint removes the perimeter point with the given id.
func (p *Perimeter) RemovePoint(id int) bool {
	for i := range p.Points {
		if p.Points[i].ID == id {
			p.Points = append(p.Points[:i], p.Points[i+1:]...)
			return true
		}
	}
	return false
}

// NumExits returns the number of exits on the perimeter.
func (p *Perimeter) NumExits() int {
	return len(p.Exits)
}

// AddExit appends an exit, rejecting invalid entries and duplicates.
func (p *Perimeter) AddExit(e Exit) bool {
	if !e.Valid() {
		return false
	}
	for _, x := range p.Exits {
		if x.Equal(e) {
			return false
		}
	}
	p.Exits = append(p.Exits, e)
	return true
}

// RemoveExit removes the given exit.
func (p *Perimeter) RemoveExit(e Exit) bool {
	for i, x := range p.Exits {
		if x.Equal(e) {
			p.Exits = append(p.Exits[:i], p.Exits[i+1:]...)
			return true
		}
	}
	return false
}

// Valid reports whether the perimeter has at least one point, consecutive
// 1-based point ids, and only valid exits.
func (p *Perimeter) Valid() bool {
	if len(p.Points) == 0 {
		return false
	}
	for i, w := range p.Points {
		if !w.Valid() || w.ID != i+1 {
			return false
		}
	}
	for _, e := range p.Exits {
		if !e.Valid() {
			return false
		}
	}
	return true
}

// Equal reports whether both perimeters contain the same points and exits,
// regardless of order.
func (p *Perimeter) Equal(other *Perimeter) bool {
	if len(p.Points) != len(other.Points) || len(p.Exits) != len(other.Exits) {
		return false
	}
	for _, w := range p.Points {
		if _, ok := other.Point(w.ID); !ok {
			return false
		}
	}
	for _, e := range p.Exits {
		found := false
		for _, x := range other.Exits {
			if x.Equal(e) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
