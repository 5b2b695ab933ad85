package rndf

import (
	"fmt"
	"strconv"
	"strings"
)

// parser consumes lines from the scanner according to the block grammar.
// Each parse method reads one construct and returns the typed error that
// best describes the first problem it hits; nothing is written to the
// document tree past the point of failure.
type parser struct {
	sc      *scanner
	records []ExitRecord
}

// nextLine returns the next meaningful line or an EOFError naming the
// construct that was still being parsed.
func (p *parser) nextLine(context string) (line, error) {
	ln, ok := p.sc.next()
	if !ok {
		return line{}, &EOFError{ParseError{
			Message: "unexpected end of input while parsing " + context,
			Line:    ln.num,
		}}
	}
	return ln, nil
}

// expectTerminator consumes the next line and requires it to be exactly the
// given end_* literal.
func (p *parser) expectTerminator(literal string) error {
	ln, ok := p.sc.next()
	if !ok {
		return &EOFError{ParseError{
			Message: fmt.Sprintf("unexpected end of input, expected %q", literal),
			Line:    ln.num,
		}}
	}
	if ln.text != literal {
		return &TerminatorError{
			ParseError: ParseError{Line: ln.num, Text: ln.text},
			Expected:   literal,
			Got:        ln.text,
		}
	}
	return nil
}

func (p *parser) recordExit(e Exit, ln line) {
	p.records = append(p.records, ExitRecord{
		ExitID:  e.ExitID.String(),
		EntryID: e.EntryID.String(),
		Line:    ln.num,
		Text:    ln.text,
	})
}

func sequenceError(ln line, expected, got int) error {
	return &SequenceError{
		ParseError: ParseError{Line: ln.num, Text: ln.text},
		Expected:   expected,
		Got:        got,
	}
}

func duplicateOptionError(ln line, option string) error {
	return &DuplicateOptionError{
		ParseError: ParseError{Line: ln.num, Text: ln.text},
		Option:     option,
	}
}

// parseDocument reads a complete RNDF document: the three mandatory header
// fields, the optional format_version and creation_date directives in any
// order, the segment and zone blocks, and the end_file line.
func (p *parser) parseDocument() (*Document, error) {
	ln, err := p.nextLine("RNDF_name")
	if err != nil {
		return nil, err
	}
	name, err := parseLabeledString(ln, "RNDF_name")
	if err != nil {
		return nil, err
	}

	ln, err = p.nextLine("num_segments")
	if err != nil {
		return nil, err
	}
	numSegments, err := parseLabeledPositive(ln, "num_segments")
	if err != nil {
		return nil, err
	}

	ln, err = p.nextLine("num_zones")
	if err != nil {
		return nil, err
	}
	numZones, err := parseLabeledNonNegative(ln, "num_zones")
	if err != nil {
		return nil, err
	}

	doc := NewDocument(name)

	var versionFound, dateFound bool
header:
	for {
		ln, ok := p.sc.next()
		if !ok {
			return nil, &EOFError{ParseError{
				Message: "unexpected end of input while parsing segments",
				Line:    ln.num,
			}}
		}
		tokens := ln.tokens()
		switch tokens[0] {
		case "format_version":
			if versionFound {
				return nil, duplicateOptionError(ln, "format_version")
			}
			doc.Version, err = parseLabeledString(ln, "format_version")
			if err != nil {
				return nil, err
			}
			versionFound = true
		case "creation_date":
			if dateFound {
				return nil, duplicateOptionError(ln, "creation_date")
			}
			doc.Date, err = parseLabeledString(ln, "creation_date")
			if err != nil {
				return nil, err
			}
			dateFound = true
		default:
			p.sc.unread(ln)
			break header
		}
	}

	for i := 1; i <= numSegments; i++ {
		s, err := p.parseSegment(i)
		if err != nil {
			return nil, err
		}
		doc.Segments = append(doc.Segments, s)
	}

	for i := 1; i <= numZones; i++ {
		z, err := p.parseZone(numSegments + i)
		if err != nil {
			return nil, err
		}
		doc.Zones = append(doc.Zones, z)
	}

	if err := p.expectTerminator("end_file"); err != nil {
		return nil, err
	}

	doc.ExitRecords = p.records
	return doc, nil
}

// parseSegment reads one segment block. The declared id must equal
// expectedID, the segment's 1-based position in the document.
func (p *parser) parseSegment(expectedID int) (*Segment, error) {
	ln, err := p.nextLine("segment")
	if err != nil {
		return nil, err
	}
	id, err := parseLabeledPositive(ln, "segment")
	if err != nil {
		return nil, err
	}
	if id != expectedID {
		return nil, sequenceError(ln, expectedID, id)
	}

	ln, err = p.nextLine("num_lanes")
	if err != nil {
		return nil, err
	}
	numLanes, err := parseLabeledPositive(ln, "num_lanes")
	if err != nil {
		return nil, err
	}

	s := NewSegment(id)

	ln, err = p.nextLine("segment body")
	if err != nil {
		return nil, err
	}
	if tokens := ln.tokens(); tokens[0] == "segment_name" {
		s.Name, err = parseLabeledString(ln, "segment_name")
		if err != nil {
			return nil, err
		}
	} else {
		p.sc.unread(ln)
	}

	for i := 1; i <= numLanes; i++ {
		l, err := p.parseLane(id, i)
		if err != nil {
			return nil, err
		}
		s.Lanes = append(s.Lanes, l)
	}

	if err := p.expectTerminator("end_segment"); err != nil {
		return nil, err
	}
	return s, nil
}

// parseLane reads one lane block within segment segmentID. The lane's
// declared id must equal expectedID.
func (p *parser) parseLane(segmentID, expectedID int) (*Lane, error) {
	ln, err := p.nextLine("lane")
	if err != nil {
		return nil, err
	}
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != "lane" {
		return nil, syntaxError(ln, fmt.Sprintf("lane %d.<id>", segmentID), ln.text)
	}
	laneID, ok := parseBlockRef(tokens[1], segmentID)
	if !ok {
		return nil, syntaxError(ln, fmt.Sprintf("lane %d.<id>", segmentID), tokens[1])
	}
	if laneID != expectedID {
		return nil, sequenceError(ln, expectedID, laneID)
	}

	ln, err = p.nextLine("num_waypoints")
	if err != nil {
		return nil, err
	}
	numWaypoints, err := parseLabeledPositive(ln, "num_waypoints")
	if err != nil {
		return nil, err
	}

	l := NewLane(laneID)

	var widthFound, leftFound, rightFound bool
header:
	for {
		ln, err := p.nextLine("lane body")
		if err != nil {
			return nil, err
		}
		switch ln.tokens()[0] {
		case "lane_width":
			if widthFound {
				return nil, duplicateOptionError(ln, "lane_width")
			}
			l.Width, err = parseWidthLine(ln, "lane_width")
			if err != nil {
				return nil, err
			}
			widthFound = true
		case "left_boundary":
			if leftFound {
				return nil, duplicateOptionError(ln, "left_boundary")
			}
			l.LeftBoundary, err = parseBoundary(ln, "left_boundary")
			if err != nil {
				return nil, err
			}
			leftFound = true
		case "right_boundary":
			if rightFound {
				return nil, duplicateOptionError(ln, "right_boundary")
			}
			l.RightBoundary, err = parseBoundary(ln, "right_boundary")
			if err != nil {
				return nil, err
			}
			rightFound = true
		case "checkpoint":
			c, err := parseCheckpointLine(ln, segmentID, laneID)
			if err != nil {
				return nil, err
			}
			l.Checkpoints = append(l.Checkpoints, c)
		case "stop":
			waypointID, err := parseStopLine(ln, segmentID, laneID)
			if err != nil {
				return nil, err
			}
			l.Stops = append(l.Stops, waypointID)
		case "exit":
			e, err := parseExitLine(ln, segmentID, laneID)
			if err != nil {
				return nil, err
			}
			l.Exits = append(l.Exits, e)
			p.recordExit(e, ln)
		default:
			p.sc.unread(ln)
			break header
		}
	}

	for i := 1; i <= numWaypoints; i++ {
		w, err := p.parseWaypoint(segmentID, laneID, i)
		if err != nil {
			return nil, err
		}
		l.Waypoints = append(l.Waypoints, w)
	}

	if err := p.expectTerminator("end_lane"); err != nil {
		return nil, err
	}
	return l, nil
}

// parseWaypoint reads one "x.y.z lat lon" line with the x.y prefix fixed by
// the enclosing block and z required to equal expectedID.
func (p *parser) parseWaypoint(x, y, expectedID int) (Waypoint, error) {
	ln, err := p.nextLine("waypoint")
	if err != nil {
		return Waypoint{}, err
	}
	tokens := ln.tokens()
	if len(tokens) != 3 {
		return Waypoint{}, syntaxError(ln, fmt.Sprintf("%d.%d.<id> <lat> <lon>", x, y), ln.text)
	}
	z, ok := parseWaypointRef(tokens[0], x, y)
	if !ok {
		return Waypoint{}, syntaxError(ln, fmt.Sprintf("waypoint %d.%d.<n>", x, y), tokens[0])
	}
	if z != expectedID {
		return Waypoint{}, sequenceError(ln, expectedID, z)
	}
	lat, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Waypoint{}, syntaxError(ln, "latitude in decimal degrees", tokens[1])
	}
	lon, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Waypoint{}, syntaxError(ln, "longitude in decimal degrees", tokens[2])
	}
	return Waypoint{ID: z, Location: NewLocation(lat, lon)}, nil
}

// parseZone reads one zone block. The declared id must equal expectedID,
// which continues the document-wide numbering after the last segment.
func (p *parser) parseZone(expectedID int) (*Zone, error) {
	ln, err := p.nextLine("zone")
	if err != nil {
		return nil, err
	}
	id, err := parseLabeledPositive(ln, "zone")
	if err != nil {
		return nil, err
	}
	if id != expectedID {
		return nil, sequenceError(ln, expectedID, id)
	}

	ln, err = p.nextLine("num_spots")
	if err != nil {
		return nil, err
	}
	numSpots, err := parseLabeledNonNegative(ln, "num_spots")
	if err != nil {
		return nil, err
	}

	z := NewZone(id)

	ln, err = p.nextLine("zone body")
	if err != nil {
		return nil, err
	}
	if tokens := ln.tokens(); tokens[0] == "zone_name" {
		z.Name, err = parseLabeledString(ln, "zone_name")
		if err != nil {
			return nil, err
		}
	} else {
		p.sc.unread(ln)
	}

	if err := p.parsePerimeter(z); err != nil {
		return nil, err
	}

	for i := 1; i <= numSpots; i++ {
		sp, err := p.parseSpot(id, i)
		if err != nil {
			return nil, err
		}
		z.Spots = append(z.Spots, sp)
	}

	if err := p.expectTerminator("end_zone"); err != nil {
		return nil, err
	}
	return z, nil
}

// parsePerimeter reads the perimeter block of zone z. Perimeter points use
// the reserved lane id 0, so their unique ids are zone.0.point. Points
// named by an exit directive get their IsExit flag set.
func (p *parser) parsePerimeter(z *Zone) error {
	ln, err := p.nextLine("perimeter")
	if err != nil {
		return err
	}
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != "perimeter" ||
		tokens[1] != fmt.Sprintf("%d.0", z.ID) {
		return syntaxError(ln, fmt.Sprintf("perimeter %d.0", z.ID), ln.text)
	}

	ln, err = p.nextLine("num_perimeterpoints")
	if err != nil {
		return err
	}
	numPoints, err := parseLabeledPositive(ln, "num_perimeterpoints")
	if err != nil {
		return err
	}

	for {
		ln, err := p.nextLine("perimeter body")
		if err != nil {
			return err
		}
		if ln.tokens()[0] != "exit" {
			p.sc.unread(ln)
			break
		}
		e, err := parseExitLine(ln, z.ID, 0)
		if err != nil {
			return err
		}
		z.Perimeter.Exits = append(z.Perimeter.Exits, e)
		p.recordExit(e, ln)
	}

	for i := 1; i <= numPoints; i++ {
		w, err := p.parseWaypoint(z.ID, 0, i)
		if err != nil {
			return err
		}
		for _, e := range z.Perimeter.Exits {
			if e.ExitID.Z == w.ID {
				w.IsExit = true
				break
			}
		}
		z.Perimeter.Points = append(z.Perimeter.Points, w)
	}

	return p.expectTerminator("end_perimeter")
}

// parseSpot reads one parking spot block within zone zoneID. A spot body is
// always exactly two waypoints.
func (p *parser) parseSpot(zoneID, expectedID int) (*ParkingSpot, error) {
	ln, err := p.nextLine("spot")
	if err != nil {
		return nil, err
	}
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != "spot" {
		return nil, syntaxError(ln, fmt.Sprintf("spot %d.<id>", zoneID), ln.text)
	}
	spotID, ok := parseBlockRef(tokens[1], zoneID)
	if !ok {
		return nil, syntaxError(ln, fmt.Sprintf("spot %d.<id>", zoneID), tokens[1])
	}
	if spotID != expectedID {
		return nil, sequenceError(ln, expectedID, spotID)
	}

	sp := NewParkingSpot(spotID)

	var widthFound, checkpointFound bool
header:
	for {
		ln, err := p.nextLine("spot body")
		if err != nil {
			return nil, err
		}
		switch ln.tokens()[0] {
		case "spot_width":
			if widthFound {
				return nil, duplicateOptionError(ln, "spot_width")
			}
			sp.Width, err = parseWidthLine(ln, "spot_width")
			if err != nil {
				return nil, err
			}
			widthFound = true
		case "checkpoint":
			if checkpointFound {
				return nil, duplicateOptionError(ln, "checkpoint")
			}
			sp.Checkpoint, err = parseCheckpointLine(ln, zoneID, spotID)
			if err != nil {
				return nil, err
			}
			checkpointFound = true
		default:
			p.sc.unread(ln)
			break header
		}
	}

	for i := 1; i <= 2; i++ {
		w, err := p.parseWaypoint(zoneID, spotID, i)
		if err != nil {
			return nil, err
		}
		sp.Waypoints = append(sp.Waypoints, w)
	}

	if err := p.expectTerminator("end_spot"); err != nil {
		return nil, err
	}
	return sp, nil
}

// parseBlockRef validates an "x.y" token whose x must textually match the
// enclosing block id, and returns y.
func parseBlockRef(token string, x int) (int, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] != strconv.Itoa(x) {
		return 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil || y <= 0 || y > maxFieldValue {
		return 0, false
	}
	return y, true
}

// parseWidthLine parses "<label> <feet>" with a non-negative integer width
// in feet, returned converted to meters.
func parseWidthLine(ln line, label string) (float64, error) {
	n, err := parseLabeledNonNegative(ln, label)
	if err != nil {
		return 0, err
	}
	return float64(n) * feetToMeters, nil
}
