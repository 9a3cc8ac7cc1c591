package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Location is a human-readable position in a submission. Line and Col are
// 1-based; a zero Line means the position is unknown.
type Location struct {
	Line uint32
	Col  uint32
}

// NoLocation is the sentinel for "no known position".
var NoLocation = Location{}

// At builds a location from a line number reported by a parser. Lines that are
// not positive yield NoLocation.
func At(line int) Location {
	if line <= 0 {
		return NoLocation
	}
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	return Location{Line: l}
}

// AtCol is At with a column.
func AtCol(line, col int) Location {
	loc := At(line)
	if !loc.IsValid() || col <= 0 {
		return loc
	}
	c, err := safecast.Conv[uint32](col)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	loc.Col = c
	return loc
}

// IsValid reports whether the location points at a real line.
func (l Location) IsValid() bool {
	return l.Line != 0
}

// Before orders locations by line, then column.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Col < other.Col
}

func (l Location) String() string {
	switch {
	case !l.IsValid():
		return "<unknown>"
	case l.Col == 0:
		return fmt.Sprintf("line %d", l.Line)
	default:
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
}
