package rndf

import "fmt"

// Marking is a lane boundary marking type.
type Marking int

const (
	MarkingUndefined Marking = iota
	MarkingDoubleYellow
	MarkingSolidYellow
	MarkingSolidWhite
	MarkingBrokenWhite
)

func (m Marking) String() string {
	switch m {
	case MarkingUndefined:
		return "undefined"
	case MarkingDoubleYellow:
		return "double_yellow"
	case MarkingSolidYellow:
		return "solid_yellow"
	case MarkingSolidWhite:
		return "solid_white"
	case MarkingBrokenWhite:
		return "broken_white"
	default:
		return fmt.Sprintf("Marking(%d)", int(m))
	}
}

// markingFromString maps a boundary literal from the file to its Marking.
func markingFromString(s string) (Marking, bool) {
	switch s {
	case "double_yellow":
		return MarkingDoubleYellow, true
	case "solid_yellow":
		return MarkingSolidYellow, true
	case "solid_white":
		return MarkingSolidWhite, true
	case "broken_white":
		return MarkingBrokenWhite, true
	default:
		return MarkingUndefined, false
	}
}

// Lane is an ordered run of waypoints within a segment, with optional
// width, boundary markings, checkpoints, stop waypoints, and exits.
// Width is stored in meters.
type Lane struct {
	ID            int
	Waypoints     []Waypoint
	Width         float64
	LeftBoundary  Marking
	RightBoundary Marking
	Checkpoints   []Checkpoint
	Stops         []int
	Exits         []Exit
}

// NewLane builds an empty lane. A non-positive id leaves the lane in its
// invalid sentinel state.
func NewLane(id int) *Lane {
	if id <= 0 {
		return &Lane{ID: -1}
	}
	return &Lane{ID: id}
}

// NumWaypoints returns the number of waypoints in the lane.
func (l *Lane) NumWaypoints() int {
	return len(l.Waypoints)
}

// Waypoint returns the waypoint with the given id, or false if not found.
func (l *Lane) Waypoint(id int) (Waypoint, bool) {
	for _, w := range l.Waypoints {
		if w.ID == id {
			return w, true
		}
	}
	return Waypoint{}, false
}

// AddWaypoint appends a waypoint. It rejects invalid waypoints and
// duplicates by id, leaving the lane unchanged.
func (l *Lane) AddWaypoint(w Waypoint) bool {
	if !w.Valid() {
		return false
	}
	if _, ok := l.Waypoint(w.ID); ok {
		return false
	}
	l.Waypoints = append(l.Waypoints, w)
	return true
}

// UpdateWaypoint replaces the waypoint with the same id. Returns false if
// no such waypoint exists.
func (l *Lane) UpdateWaypoint(w Waypoint) bool {
	for i := range l.Waypoints {
		if l.Waypoints[i].Equal(w) {
			l.Waypoints[i] = w
			return true
		}
	}
	return false
}

// RemoveWaypoint removes the waypoint with the given id. Returns false if
// no such waypoint exists.
func (l *Lane) RemoveWaypoint(id int) bool {
	for i := range l.Waypoints {
		if l.Waypoints[i].ID == id {
			l.Waypoints = append(l.Waypoints[:i], l.Waypoints[i+1:]...)
			return true
		}
	}
	return false
}

// SetWidth sets the lane width in meters. Negative widths are rejected.
func (l *Lane) SetWidth(width float64) bool {
	if width < 0 {
		return false
	}
	l.Width = width
	return true
}

// NumCheckpoints returns the number of checkpoints in the lane.
func (l *Lane) NumCheckpoints() int {
	return len(l.Checkpoints)
}

// Checkpoint returns the checkpoint with the given checkpoint id, or false
// if not found.
func (l *Lane) Checkpoint(checkpointID int) (Checkpoint, bool) {
	for _, c := range l.Checkpoints {
		if c.CheckpointID == checkpointID {
			return c, true
		}
	}
	return Checkpoint{}, false
}

// AddCheckpoint appends a checkpoint, rejecting invalid entries and
// duplicates by checkpoint id.
func (l *Lane) AddCheckpoint(c Checkpoint) bool {
	if !c.Valid() {
		return false
	}
	if _, ok := l.Checkpoint(c.CheckpointID); ok {
		return false
	}
	l.Checkpoints = append(l.Checkpoints, c)
	return true
}

// UpdateCheckpoint replaces the checkpoint with the same checkpoint id.
func (l *Lane) UpdateCheckpoint(c Checkpoint) bool {
	for i := range l.Checkpoints {
		if l.Checkpoints[i].Equal(c) {
			l.Checkpoints[i] = c
			return true
		}
	}
	return false
}

// RemoveCheckpoint removes the checkpoint with the given checkpoint id.
func (l *Lane) RemoveCheckpoint(checkpointID int) bool {
	for i := range l.Checkpoints {
		if l.Checkpoints[i].CheckpointID == checkpointID {
			l.Checkpoints = append(l.Checkpoints[:i], l.Checkpoints[i+1:]...)
			return true
		}
	}
	return false
}

// NumStops returns the number of stop waypoints in the lane.
func (l *Lane) NumStops() int {
	return len(l.Stops)
}

// AddStop records a stop at the given waypoint id, rejecting non-positive
// ids and duplicates.
func (l *Lane) AddStop(waypointID int) bool {
	if waypointID <= 0 {
		return false
	}
	for _, s := range l.Stops {
		if s == waypointID {
			return false
		}
	}
	l.Stops = append(l.Stops, waypointID)
	return true
}

// RemoveStop removes the stop at the given waypoint id.
func (l *Lane) RemoveStop(waypointID int) bool {
	for i, s := range l.Stops {
		if s == waypointID {
			l.Stops = append(l.Stops[:i], l.Stops[i+1:]...)
			return true
		}
	}
	return false
}

// NumExits returns the number of exits in the lane.
func (l *Lane) NumExits() int {
	return len(l.Exits)
}

// AddExit appends an exit, rejecting invalid entries and duplicates.
func (l *Lane) AddExit(e Exit) bool {
	if !e.Valid() {
		return false
	}
	for _, x := range l.Exits {
		if x.Equal(e) {
			return false
		}
	}
	l.Exits = append(l.Exits, e)
	return true
}

// RemoveExit removes the given exit.
func (l *Lane) RemoveExit(e Exit) bool {
	for i, x := range l.Exits {
		if x.Equal(e) {
			l.Exits = append(l.Exits[:i], l.Exits[i+1:]...)
			return true
		}
	}
	return false
}

// Valid reports whether the lane has a positive id, at least one waypoint,
// consecutive 1-based waypoint ids, and only valid checkpoints, stops, and
// exits.
func (l *Lane) Valid() bool {
	if l.ID <= 0 || len(l.Waypoints) == 0 {
		return false
	}
	for i, w := range l.Waypoints {
		if !w.Valid() || w.ID != i+1 {
			return false
		}
	}
	for _, c := range l.Checkpoints {
		if !c.Valid() {
			return false
		}
	}
	for _, s := range l.Stops {
		if s <= 0 {
			return false
		}
	}
	for _, e := range l.Exits {
		if !e.Valid() {
			return false
		}
	}
	return true
}

// Equal compares lanes by id only.
func (l *Lane) Equal(other *Lane) bool {
	return l.ID == other.ID
}
