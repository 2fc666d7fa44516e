// internal/dayid/types.go
package dayid

import "fmt"

// Part identifies one of the two sub-tasks of a day.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)

// ParsePart converts a part number (1 or 2) into a Part.
func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartOne, PartTwo:
		return Part(n), nil
	}
	return 0, fmt.Errorf("part %d is not valid", n)
}

// Number returns the 1-based part number.
func (p Part) Number() int {
	return int(p)
}

// String implements fmt.Stringer.
func (p Part) String() string {
	switch p {
	case PartOne:
		return "PartOne"
	case PartTwo:
		return "PartTwo"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// ID addresses a single day/part pair.
type ID struct {
	Day  int
	Part Part
}

// New creates a new ID.
func New(day int, part Part) ID {
	return ID{Day: day, Part: part}
}

// String returns the compact "d<day>p<part>" form used in progress output.
func (id ID) String() string {
	return fmt.Sprintf("d%dp%d", id.Day, id.Part.Number())
}
