package rndf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRNDF = `RNDF_name sample_rndf
num_segments 2
num_zones 1
format_version 1.0
creation_date 2007-10-01
segment 1
num_lanes 1
segment_name main_street
lane 1.1
num_waypoints 3
lane_width 12
left_boundary double_yellow
right_boundary solid_white
checkpoint 1.1.2 1
stop 1.1.3
exit 1.1.3 2.1.1
1.1.1 34.580178 -117.366430
1.1.2 34.580171 -117.366285
1.1.3 34.580168 -117.366226
end_lane
end_segment
segment 2
num_lanes 1
lane 2.1
num_waypoints 2
2.1.1 34.581178 -117.367430
2.1.2 34.581171 -117.367285
end_lane
end_segment
zone 3
num_spots 1
zone_name parking_lot
perimeter 3.0
num_perimeterpoints 3
exit 3.0.2 1.1.1
3.0.1 34.582178 -117.368430
3.0.2 34.582171 -117.368285
3.0.3 34.582168 -117.368226
end_perimeter
spot 3.1
spot_width 10
checkpoint 3.1.2 2
3.1.1 34.583178 -117.369430
3.1.2 34.583171 -117.369285
end_spot
end_zone
end_file
`

func TestParseMinimalDocument(t *testing.T) {
	src := `RNDF_name tiny
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
1.1.1 34.580178 -117.366430
end_lane
end_segment
end_file
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "tiny", doc.Name)
	assert.Empty(t, doc.Version)
	assert.Empty(t, doc.Date)
	assert.Equal(t, 1, doc.NumSegments())
	assert.Equal(t, 0, doc.NumZones())
	assert.True(t, doc.Valid())
}

func TestParseFullDocument(t *testing.T) {
	doc, err := Parse([]byte(sampleRNDF))
	require.NoError(t, err)

	assert.Equal(t, "sample_rndf", doc.Name)
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2007-10-01", doc.Date)
	assert.Equal(t, 2, doc.NumSegments())
	assert.Equal(t, 1, doc.NumZones())
	assert.True(t, doc.Valid())

	s1 := doc.Segment(1)
	require.NotNil(t, s1)
	assert.Equal(t, "main_street", s1.Name)
	require.Equal(t, 1, s1.NumLanes())

	l := s1.Lane(1)
	require.NotNil(t, l)
	assert.Equal(t, 3, l.NumWaypoints())
	assert.InDelta(t, 3.6576, l.Width, 1e-9) // 12 feet
	assert.Equal(t, MarkingDoubleYellow, l.LeftBoundary)
	assert.Equal(t, MarkingSolidWhite, l.RightBoundary)
	require.Len(t, l.Checkpoints, 1)
	assert.Equal(t, Checkpoint{CheckpointID: 1, WaypointID: 2}, l.Checkpoints[0])
	assert.Equal(t, []int{3}, l.Stops)
	require.Len(t, l.Exits, 1)
	assert.Equal(t, UniqueID{X: 1, Y: 1, Z: 3}, l.Exits[0].ExitID)
	assert.Equal(t, UniqueID{X: 2, Y: 1, Z: 1}, l.Exits[0].EntryID)

	w, ok := l.Waypoint(1)
	require.True(t, ok)
	assert.InDelta(t, 34.580178, w.Location.Latitude, 1e-9)
	assert.InDelta(t, -117.366430, w.Location.Longitude, 1e-9)

	z := doc.Zone(3)
	require.NotNil(t, z)
	assert.Equal(t, "parking_lot", z.Name)
	assert.Equal(t, 3, z.Perimeter.NumPoints())
	require.Equal(t, 1, z.Perimeter.NumExits())

	p2, ok := z.Perimeter.Point(2)
	require.True(t, ok)
	assert.True(t, p2.IsExit)
	p1, ok := z.Perimeter.Point(1)
	require.True(t, ok)
	assert.False(t, p1.IsExit)

	sp := z.Spot(1)
	require.NotNil(t, sp)
	assert.InDelta(t, 3.048, sp.Width, 1e-9) // 10 feet
	assert.True(t, sp.HasCheckpoint())
	assert.Equal(t, Checkpoint{CheckpointID: 2, WaypointID: 2}, sp.Checkpoint)
	assert.Equal(t, 2, sp.NumWaypoints())
}

func TestParseExitRecords(t *testing.T) {
	doc, err := Parse([]byte(sampleRNDF))
	require.NoError(t, err)

	require.Len(t, doc.ExitRecords, 2)
	assert.Equal(t, "1.1.3", doc.ExitRecords[0].ExitID)
	assert.Equal(t, "2.1.1", doc.ExitRecords[0].EntryID)
	assert.Equal(t, 16, doc.ExitRecords[0].Line)
	assert.Equal(t, "3.0.2", doc.ExitRecords[1].ExitID)
	assert.Equal(t, "1.1.1", doc.ExitRecords[1].EntryID)
	assert.Equal(t, 35, doc.ExitRecords[1].Line)
}

func TestParseHeaderOrderIndependence(t *testing.T) {
	src := `RNDF_name headers
num_segments 1
num_zones 0
creation_date 2007-10-01
format_version 1.0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
1.1.1 34.0 -117.0
end_lane
end_segment
end_file
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2007-10-01", doc.Date)
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	src := `/* road network */
RNDF_name commented /* trailing note */

num_segments 1
num_zones 0
segment 1
num_lanes 1

lane 1.1
num_waypoints 1
1.1.1    34.0	-117.0
end_lane
end_segment
end_file
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "commented", doc.Name)
	assert.Equal(t, 1, doc.NumSegments())
}

func TestParseRejectsNonConsecutiveZoneID(t *testing.T) {
	src := `RNDF_name zones
num_segments 1
num_zones 2
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
1.1.1 34.0 -117.0
end_lane
end_segment
zone 2
num_spots 0
perimeter 2.0
num_perimeterpoints 1
2.0.1 34.0 -117.0
end_perimeter
end_zone
zone 4
num_spots 0
perimeter 4.0
num_perimeterpoints 1
4.0.1 34.0 -117.0
end_perimeter
end_zone
end_file
`
	_, err := Parse([]byte(src))
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 3, seqErr.Expected)
	assert.Equal(t, 4, seqErr.Got)
	assert.Equal(t, 18, seqErr.Line)
}

func TestParseRejectsDuplicateLaneWidth(t *testing.T) {
	src := `RNDF_name dup
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
lane_width 12
lane_width 14
1.1.1 34.0 -117.0
end_lane
end_segment
end_file
`
	_, err := Parse([]byte(src))
	var dupErr *DuplicateOptionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "lane_width", dupErr.Option)
	assert.Equal(t, 9, dupErr.Line)
}

func TestParseRejectsMissingTerminator(t *testing.T) {
	src := `RNDF_name term
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
1.1.1 34.0 -117.0
lane 60.2
end_lane
end_segment
end_file
`
	_, err := Parse([]byte(src))
	var termErr *TerminatorError
	require.ErrorAs(t, err, &termErr)
	assert.Equal(t, "end_lane", termErr.Expected)
	assert.Equal(t, "lane 60.2", termErr.Got)
	assert.Equal(t, 9, termErr.Line)
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	src := `RNDF_name cut
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 2
1.1.1 34.0 -117.0
`
	_, err := Parse([]byte(src))
	var eofErr *EOFError
	require.ErrorAs(t, err, &eofErr)
}

func TestParseRejectsUnknownBoundary(t *testing.T) {
	src := `RNDF_name boundary
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
left_boundary dashed_red
1.1.1 34.0 -117.0
end_lane
end_segment
end_file
`
	_, err := Parse([]byte(src))
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "dashed_red", synErr.Got)
}

func TestParseRejectsLeadingZeroPrefix(t *testing.T) {
	src := `RNDF_name zeros
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
01.1.1 34.0 -117.0
end_lane
end_segment
end_file
`
	_, err := Parse([]byte(src))
	assert.IsType(t, &SyntaxError{}, err)
}

func TestParseRejectsValueOutOfRange(t *testing.T) {
	src := `RNDF_name range
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 40000
`
	_, err := Parse([]byte(src))
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 7, synErr.Line)
}

func TestParseRejectsNonConsecutiveWaypoint(t *testing.T) {
	src := `RNDF_name skip
num_segments 1
num_zones 0
segment 1
num_lanes 1
lane 1.1
num_waypoints 2
1.1.1 34.0 -117.0
1.1.3 34.1 -117.1
end_lane
end_segment
end_file
`
	_, err := Parse([]byte(src))
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 2, seqErr.Expected)
	assert.Equal(t, 3, seqErr.Got)
}

func TestParseRejectsZeroSegments(t *testing.T) {
	src := `RNDF_name none
num_segments 0
num_zones 0
end_file
`
	_, err := Parse([]byte(src))
	assert.IsType(t, &SyntaxError{}, err)
}

func TestParseSpotRequiresTwoWaypoints(t *testing.T) {
	src := `RNDF_name spots
num_segments 1
num_zones 1
segment 1
num_lanes 1
lane 1.1
num_waypoints 1
1.1.1 34.0 -117.0
end_lane
end_segment
zone 2
num_spots 1
perimeter 2.0
num_perimeterpoints 1
2.0.1 34.0 -117.0
end_perimeter
spot 2.1
2.1.1 34.0 -117.0
2.1.2 34.1 -117.1
2.1.3 34.2 -117.2
end_spot
end_zone
end_file
`
	_, err := Parse([]byte(src))
	var termErr *TerminatorError
	require.ErrorAs(t, err, &termErr)
	assert.Equal(t, "end_spot", termErr.Expected)
	assert.Equal(t, "2.1.3 34.2 -117.2", termErr.Got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does_not_exist.rndf")
	require.Error(t, err)
	assert.ErrorContains(t, err, "opening RNDF file")
}
