// Package day03 solves the first half of "Gear Ratios": summing the part
// numbers of an engine schematic. Part two is not implemented yet, so the
// day registers a single part.
package day03

import (
	"fmt"

	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers part one with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(3, dayid.PartOne, PartOne)
}

// PartOne sums every number adjacent, diagonals included, to a symbol.
func PartOne(lines []string) (int, error) {
	grid := trimTrailingBlank(lines)
	if len(grid) == 0 {
		return 0, fmt.Errorf("empty schematic")
	}

	total := 0
	for y, row := range grid {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			start, n := x, 0
			for x < len(row) && isDigit(row[x]) {
				n = n*10 + int(row[x]-'0')
				x++
			}
			if touchesSymbol(grid, y, start, x-1) {
				total += n
			}
		}
	}
	return total, nil
}

func touchesSymbol(grid []string, y, x0, x1 int) bool {
	for yy := y - 1; yy <= y+1; yy++ {
		if yy < 0 || yy >= len(grid) {
			continue
		}
		for xx := x0 - 1; xx <= x1+1; xx++ {
			if xx < 0 || xx >= len(grid[yy]) {
				continue
			}
			if c := grid[yy][xx]; c != '.' && !isDigit(c) {
				return true
			}
		}
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
