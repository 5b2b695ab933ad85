package rndf

// NodeInfo locates a waypoint within the document. Exactly one of Lane or
// Zone is set: lane waypoints carry Segment and Lane, perimeter points and
// parking spot waypoints carry Zone (and Spot for the latter).
type NodeInfo struct {
	ID       UniqueID
	Segment  *Segment
	Lane     *Lane
	Zone     *Zone
	Spot     *ParkingSpot
	Waypoint *Waypoint
}

// UpdateIndex rebuilds the unique-id index from the current document
// contents. Callers that mutate the document must call it again before
// using Info; the index is never refreshed implicitly.
func (d *Document) UpdateIndex() {
	d.index = make(map[string]*NodeInfo)
	for _, s := range d.Segments {
		for _, l := range s.Lanes {
			for i := range l.Waypoints {
				w := &l.Waypoints[i]
				id := UniqueID{X: s.ID, Y: l.ID, Z: w.ID}
				d.index[id.String()] = &NodeInfo{
					ID:       id,
					Segment:  s,
					Lane:     l,
					Waypoint: w,
				}
			}
		}
	}
	for _, z := range d.Zones {
		for i := range z.Perimeter.Points {
			w := &z.Perimeter.Points[i]
			id := UniqueID{X: z.ID, Y: 0, Z: w.ID}
			d.index[id.String()] = &NodeInfo{
				ID:       id,
				Zone:     z,
				Waypoint: w,
			}
		}
		for _, sp := range z.Spots {
			for i := range sp.Waypoints {
				w := &sp.Waypoints[i]
				id := UniqueID{X: z.ID, Y: sp.ID, Z: w.ID}
				d.index[id.String()] = &NodeInfo{
					ID:       id,
					Zone:     z,
					Spot:     sp,
					Waypoint: w,
				}
			}
		}
	}
}

// Info returns the index entry for the given unique id, or nil if the id
// does not name a waypoint in the document. The index reflects the document
// as of the last UpdateIndex call.
func (d *Document) Info(id UniqueID) *NodeInfo {
	if d.index == nil {
		return nil
	}
	return d.index[id.String()]
}
