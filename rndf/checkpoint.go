package rndf

// Checkpoint marks a waypoint that must be visited as numbered checkpoint
// CheckpointID. WaypointID is the third component of the waypoint's unique
// id within the owning lane or parking spot.
type Checkpoint struct {
	CheckpointID int
	WaypointID   int
}

// NewCheckpoint builds a Checkpoint. Non-positive ids leave it in its
// invalid sentinel state; check Valid.
func NewCheckpoint(checkpointID, waypointID int) Checkpoint {
	if checkpointID <= 0 || waypointID <= 0 {
		return Checkpoint{CheckpointID: -1, WaypointID: -1}
	}
	return Checkpoint{CheckpointID: checkpointID, WaypointID: waypointID}
}

// Valid reports whether both ids are positive.
func (c Checkpoint) Valid() bool {
	return c.CheckpointID > 0 && c.WaypointID > 0
}

// Equal compares checkpoints by checkpoint id only.
func (c Checkpoint) Equal(other Checkpoint) bool {
	return c.CheckpointID == other.CheckpointID
}
