// Package day02 solves "Cube Conundrum": games of cubes drawn from a bag.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both parts with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(2, dayid.PartOne, PartOne)
	r.Register(2, dayid.PartTwo, PartTwo)
}

// bag holds the cube count per colour.
type bag map[string]int

// limit is the bag part one checks every game against.
var limit = bag{"red": 12, "green": 13, "blue": 14}

type game struct {
	id   int
	most bag // largest count seen per colour across all draws
}

// PartOne sums the ids of games that were possible with limit.
func PartOne(lines []string) (int, error) {
	games, err := parse(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		possible := true
		for colour, n := range g.most {
			if n > limit[colour] {
				possible = false
				break
			}
		}
		if possible {
			total += g.id
		}
	}
	return total, nil
}

// PartTwo sums the power of the fewest cubes that make each game possible.
func PartTwo(lines []string) (int, error) {
	games, err := parse(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.most["red"] * g.most["green"] * g.most["blue"]
	}
	return total, nil
}

// parse reads lines like "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func parse(lines []string) ([]game, error) {
	var games []game
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		head, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("missing ':' in %q", line)
		}
		id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, fmt.Errorf("bad game id in %q: %w", line, err)
		}

		g := game{id: id, most: bag{}}
		for _, draw := range strings.Split(body, ";") {
			for _, cubes := range strings.Split(draw, ",") {
				var n int
				var colour string
				if _, err := fmt.Sscanf(strings.TrimSpace(cubes), "%d %s", &n, &colour); err != nil {
					return nil, fmt.Errorf("game %d: bad cubes %q: %w", id, cubes, err)
				}
				g.most[colour] = max(g.most[colour], n)
			}
		}
		games = append(games, g)
	}
	return games, nil
}
