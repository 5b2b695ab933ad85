package rndf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLane(id, numWaypoints int) *Lane {
	l := NewLane(id)
	for i := 1; i <= numWaypoints; i++ {
		l.AddWaypoint(NewWaypoint(i, Location{}))
	}
	return l
}

func validSegment(id int) *Segment {
	s := NewSegment(id)
	s.AddLane(validLane(1, 2))
	return s
}

func validZone(id int) *Zone {
	z := NewZone(id)
	z.Perimeter.AddPoint(NewWaypoint(1, Location{}))
	return z
}

func TestDocumentSegmentOps(t *testing.T) {
	d := NewDocument("ops")
	require.True(t, d.AddSegment(validSegment(1)))
	assert.False(t, d.AddSegment(validSegment(1)), "duplicate id")
	assert.False(t, d.AddSegment(NewSegment(2)), "invalid segment")
	assert.Equal(t, 1, d.NumSegments())

	replacement := validSegment(1)
	replacement.Name = "renamed"
	assert.True(t, d.UpdateSegment(replacement))
	assert.Equal(t, "renamed", d.Segment(1).Name)
	assert.False(t, d.UpdateSegment(validSegment(9)))

	assert.True(t, d.RemoveSegment(1))
	assert.Nil(t, d.Segment(1))
}

func TestDocumentZoneOps(t *testing.T) {
	d := NewDocument("ops")
	d.AddSegment(validSegment(1))
	require.True(t, d.AddZone(validZone(2)))
	assert.False(t, d.AddZone(validZone(2)), "duplicate id")
	assert.False(t, d.AddZone(NewZone(3)), "invalid zone")
	assert.Equal(t, 1, d.NumZones())

	assert.True(t, d.RemoveZone(2))
	assert.Nil(t, d.Zone(2))
}

func TestDocumentValidNumbering(t *testing.T) {
	d := NewDocument("numbering")
	assert.False(t, d.Valid(), "no segments")

	d.AddSegment(validSegment(1))
	d.AddSegment(validSegment(2))
	assert.True(t, d.Valid())
	assert.True(t, d.Valid(), "validation has no side effects")

	d.AddZone(validZone(3))
	d.AddZone(validZone(4))
	assert.True(t, d.Valid())

	d.RemoveZone(3)
	assert.False(t, d.Valid(), "zone ids must continue after the last segment")

	d.AddZone(validZone(3))
	assert.False(t, d.Valid(), "zones out of positional order")
}

func TestDocumentValidRequiresName(t *testing.T) {
	d := NewDocument("")
	d.AddSegment(validSegment(1))
	assert.False(t, d.Valid())

	d.Name = "named"
	assert.True(t, d.Valid())
}

func TestWaypointEqualByID(t *testing.T) {
	a := NewWaypoint(3, NewLocation(34.0, -117.0))
	b := NewWaypoint(3, NewLocation(35.0, -118.0))
	assert.True(t, a.Equal(b), "location does not affect identity")
	assert.False(t, a.Equal(NewWaypoint(4, a.Location)))
	assert.False(t, a.Location.Equal(b.Location))
}
