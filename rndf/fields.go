package rndf

import (
	"fmt"
	"strconv"
	"strings"
)

// maxFieldValue bounds every numeric field in the format.
const maxFieldValue = 32768

// feetToMeters converts the width fields, which the format gives in feet.
const feetToMeters = 0.3048

func syntaxError(ln line, expected, got string) error {
	return &SyntaxError{
		ParseError: ParseError{Line: ln.num, Text: ln.text},
		Expected:   expected,
		Got:        got,
	}
}

// parseLabeledString parses "<label> <value>". The value must be at most
// 128 characters and contain neither '*' nor '\'.
func parseLabeledString(ln line, label string) (string, error) {
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != label {
		return "", syntaxError(ln, label+" <value>", ln.text)
	}
	value := tokens[1]
	if len(value) > 128 || strings.ContainsAny(value, `*\`) {
		return "", syntaxError(ln, label+" <value>", fmt.Sprintf("invalid value %q", value))
	}
	return value, nil
}

// parseLabeledInt parses "<label> <n>" with n in [min, 32768]. The numeric
// parse must consume the whole token; trailing characters fail.
func parseLabeledInt(ln line, label string, min int) (int, error) {
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != label {
		return 0, syntaxError(ln, fmt.Sprintf("%s <number>", label), ln.text)
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, syntaxError(ln, fmt.Sprintf("%s <number>", label), fmt.Sprintf("non-numeric %q", tokens[1]))
	}
	if n < min || n > maxFieldValue {
		return 0, syntaxError(ln, fmt.Sprintf("%s in [%d,%d]", label, min, maxFieldValue), tokens[1])
	}
	return n, nil
}

func parseLabeledPositive(ln line, label string) (int, error) {
	return parseLabeledInt(ln, label, 1)
}

func parseLabeledNonNegative(ln line, label string) (int, error) {
	return parseLabeledInt(ln, label, 0)
}

// parseBoundary parses "<label> <marking>" where label is left_boundary or
// right_boundary.
func parseBoundary(ln line, label string) (Marking, error) {
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != label {
		return MarkingUndefined, syntaxError(ln, label+" <marking>", ln.text)
	}
	m, ok := markingFromString(tokens[1])
	if !ok {
		return MarkingUndefined, syntaxError(ln, "one of double_yellow, solid_yellow, solid_white, broken_white", tokens[1])
	}
	return m, nil
}

// parseWaypointRef validates an "x.y.z" token against the expected x and y
// prefix and returns z. The components are compared textually, so leading
// zeros do not match.
func parseWaypointRef(token string, x, y int) (int, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 ||
		parts[0] != strconv.Itoa(x) ||
		parts[1] != strconv.Itoa(y) {
		return 0, false
	}
	z, err := strconv.Atoi(parts[2])
	if err != nil || z <= 0 || z > maxFieldValue {
		return 0, false
	}
	return z, true
}

// parseCheckpointLine parses "checkpoint x.y.z <id>" with the x.y prefix
// fixed by the enclosing lane or parking spot.
func parseCheckpointLine(ln line, x, y int) (Checkpoint, error) {
	tokens := ln.tokens()
	if len(tokens) != 3 || tokens[0] != "checkpoint" {
		return Checkpoint{}, syntaxError(ln, "checkpoint <waypoint> <id>", ln.text)
	}
	waypointID, ok := parseWaypointRef(tokens[1], x, y)
	if !ok {
		return Checkpoint{}, syntaxError(ln, fmt.Sprintf("waypoint %d.%d.<n>", x, y), tokens[1])
	}
	checkpointID, err := strconv.Atoi(tokens[2])
	if err != nil || checkpointID <= 0 || checkpointID > maxFieldValue {
		return Checkpoint{}, syntaxError(ln, "checkpoint id in [1,32768]", tokens[2])
	}
	return Checkpoint{CheckpointID: checkpointID, WaypointID: waypointID}, nil
}

// parseStopLine parses "stop x.y.z" and returns the waypoint id z.
func parseStopLine(ln line, x, y int) (int, error) {
	tokens := ln.tokens()
	if len(tokens) != 2 || tokens[0] != "stop" {
		return 0, syntaxError(ln, "stop <waypoint>", ln.text)
	}
	waypointID, ok := parseWaypointRef(tokens[1], x, y)
	if !ok {
		return 0, syntaxError(ln, fmt.Sprintf("waypoint %d.%d.<n>", x, y), tokens[1])
	}
	return waypointID, nil
}

// parseExitLine parses "exit x.y.z a.b.c": the exit waypoint constrained to
// the enclosing block, and an entry waypoint anywhere in the document.
func parseExitLine(ln line, x, y int) (Exit, error) {
	tokens := ln.tokens()
	if len(tokens) != 3 || tokens[0] != "exit" {
		return Exit{}, syntaxError(ln, "exit <waypoint> <entry>", ln.text)
	}
	exitZ, ok := parseWaypointRef(tokens[1], x, y)
	if !ok {
		return Exit{}, syntaxError(ln, fmt.Sprintf("waypoint %d.%d.<n>", x, y), tokens[1])
	}
	entryID, err := ParseUniqueID(tokens[2])
	if err != nil {
		return Exit{}, syntaxError(ln, "entry waypoint x.y.z", tokens[2])
	}
	return Exit{ExitID: NewUniqueID(x, y, exitZ), EntryID: entryID}, nil
}
