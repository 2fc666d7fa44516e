// Package day01 solves "Trebuchet?!": each line hides a calibration value made
// of its first and last digit.
package day01

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both parts with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(1, dayid.PartOne, PartOne)
	r.Register(1, dayid.PartTwo, PartTwo)
}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// PartOne sums the values built from literal digits only.
func PartOne(lines []string) (int, error) {
	return sum(lines, false)
}

// PartTwo also accepts digits spelled out as words; overlapping words such
// as "eightwo" count for both.
func PartTwo(lines []string) (int, error) {
	return sum(lines, true)
}

func sum(lines []string, words bool) (int, error) {
	total := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		first, last := -1, -1
		for pos := range line {
			d, ok := digitAt(line, pos, words)
			if !ok {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return 0, fmt.Errorf("line %d has no digit: %q", i+1, line)
		}
		total += first*10 + last
	}
	return total, nil
}

func digitAt(line string, pos int, words bool) (int, bool) {
	if c := line[pos]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for i, w := range spelled {
		if strings.HasPrefix(line[pos:], w) {
			return i + 1, true
		}
	}
	return 0, false
}
