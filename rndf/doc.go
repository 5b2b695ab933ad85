// Package rndf implements a parser for Road Network Definition Format files.
//
// An RNDF file is a line-oriented description of a road network: segments
// made of lanes made of waypoints, plus zones with a perimeter and optional
// parking spots. Every waypoint is addressable by a unique x.y.z identifier
// (segment.lane.waypoint, or zone.0.point for perimeter points). Blocks open
// with a keyword line, may carry a small set of optional unordered header
// directives, then a counted body, then a mandatory end_* terminator.
// Comments are /* ... */ and may appear anywhere on a line.
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Scanner: a line cursor that strips comments, collapses whitespace,
//     skips blank lines, tracks line numbers, and supports one line of
//     pushback for the optional-header scans.
//   - Parser: consumes lines according to the block grammar and builds the
//     document tree, enforcing consecutive 1-based identifiers at every
//     nesting level.
//   - Model types: the output data structures (Document, Segment, Lane,
//     Waypoint, Zone, Perimeter, ParkingSpot, Checkpoint, Exit, UniqueID).
//
// Usage:
//
//	doc, err := rndf.Load("roads.rndf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Name, doc.NumSegments(), doc.NumZones())
//
// After a successful parse the document carries a cross-reference index
// mapping every unique identifier to its owning entities; see Document.Info.
// The index is not refreshed automatically: after mutating the tree, call
// Document.UpdateIndex before using Info again.
package rndf
