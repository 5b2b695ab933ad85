package rndf

// Exit is a directed link from one waypoint (the exit) to another waypoint
// elsewhere in the document (the entry), allowing a route to continue
// across otherwise disconnected lanes and zones.
type Exit struct {
	ExitID  UniqueID
	EntryID UniqueID
}

// NewExit builds an Exit. Invalid ids leave it in its invalid sentinel
// state; check Valid.
func NewExit(exitID, entryID UniqueID) Exit {
	if !exitID.Valid() || !entryID.Valid() {
		return Exit{
			ExitID:  UniqueID{X: -1, Y: -1, Z: -1},
			EntryID: UniqueID{X: -1, Y: -1, Z: -1},
		}
	}
	return Exit{ExitID: exitID, EntryID: entryID}
}

// Valid reports whether both ids are individually valid. Whether the entry
// id resolves to a real waypoint is not checked here; see Document.Info.
func (e Exit) Valid() bool {
	return e.ExitID.Valid() && e.EntryID.Valid()
}

// Equal compares both the exit and entry ids.
func (e Exit) Equal(other Exit) bool {
	return e.ExitID == other.ExitID && e.EntryID == other.EntryID
}
