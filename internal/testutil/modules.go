package testutil

import (
	"strconv"

	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// StubModule registers routines for a single day. PartTwo may be nil.
type StubModule struct {
	Day     int
	PartOne registry.Routine
	PartTwo registry.Routine
}

// Register implements registry.Module.
func (m *StubModule) Register(r *registry.Registry) {
	r.Register(m.Day, dayid.PartOne, m.PartOne)
	if m.PartTwo != nil {
		r.Register(m.Day, dayid.PartTwo, m.PartTwo)
	}
}

// NoopModule registers nothing.
type NoopModule struct{}

// Register implements registry.Module.
func (NoopModule) Register(*registry.Registry) {}

// LineCount returns the number of input lines.
func LineCount(lines []string) (int, error) {
	return len(lines), nil
}

// SumInts parses every line as an integer and returns the sum.
func SumInts(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
