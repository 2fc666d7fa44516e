package puzzle

import (
	"context"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// Resolver looks up the routine registered for a day/part.
type Resolver interface {
	Resolve(day int, part dayid.Part) (registry.Routine, bool)
}

// Discover probes days 1..maxDays in order and stops at the first day whose
// part one does not resolve. It returns ErrNoDays if day 1 is missing.
func Discover(ctx context.Context, resolver Resolver, maxDays int, opts Options) ([]*Day, error) {
	logger := ctxlog.FromContext(ctx)

	var days []*Day
	for id := 1; id <= maxDays; id++ {
		one, ok := resolver.Resolve(id, dayid.PartOne)
		if !ok {
			logger.Debug("Day discovery stopped.", "missing_day", id)
			break
		}
		two, _ := resolver.Resolve(id, dayid.PartTwo)
		days = append(days, NewDay(id, one, two, opts))
	}

	if len(days) == 0 {
		return nil, ErrNoDays
	}

	logger.Debug("Days discovered.", "count", len(days))
	return days, nil
}
