package rndf

import "strings"

// line is one meaningful input line after comment stripping and whitespace
// normalization, together with its 1-based physical line number.
type line struct {
	text string
	num  int
}

// tokens splits the line on whitespace.
func (l line) tokens() []string {
	return strings.Fields(l.text)
}

// scanner is a line cursor over the whole input. It strips comments,
// collapses whitespace, skips blank lines (still counting them), and
// supports one line of pushback so header scans can peek at the next
// directive and hand it back untouched.
type scanner struct {
	lines  []string
	pos    int // index of the next physical line
	pushed *line
}

func newScanner(src []byte) *scanner {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	return &scanner{lines: strings.Split(text, "\n")}
}

// next returns the next meaningful line. The second return value is false
// at end of input; the returned line then carries the last line number for
// error reporting.
func (s *scanner) next() (line, bool) {
	if s.pushed != nil {
		ln := *s.pushed
		s.pushed = nil
		return ln, true
	}
	for s.pos < len(s.lines) {
		raw := s.lines[s.pos]
		s.pos++
		text := trimLine(raw)
		if text == "" {
			continue
		}
		return line{text: text, num: s.pos}, true
	}
	return line{num: s.pos}, false
}

// unread pushes a line back; the next call to next returns it again.
// Only one line of pushback is supported.
func (s *scanner) unread(ln line) {
	s.pushed = &ln
}

// trimLine strips a /* ... */ comment, collapses whitespace runs to a
// single space, and trims the ends. An unterminated comment is left in
// place; the stricter field parsers reject the leftover tokens.
func trimLine(raw string) string {
	if i := strings.Index(raw, "/*"); i >= 0 {
		if j := strings.LastIndex(raw, "*/"); j >= i {
			raw = raw[:i] + raw[j+2:]
		}
	}
	return strings.Join(strings.Fields(raw), " ")
}
