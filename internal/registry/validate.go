package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
)

// Validate checks that the registered routines can all be reached by
// sequential day discovery. A part two without its part one is an error.
// Days that sit after a gap or past maxDays are only warned about, since
// discovery stops there and they are never run.
func (r *Registry) Validate(ctx context.Context, maxDays int) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	firstGap := 0
	for _, id := range r.Keys() {
		if id.Part == dayid.PartTwo {
			if _, ok := r.Resolve(id.Day, dayid.PartOne); !ok {
				errs = append(errs, fmt.Sprintf("day %d registers part two without part one", id.Day))
			}
			continue
		}
		if id.Day > maxDays {
			logger.Warn("Routine registered past the last calendar day, it will not be discovered.", "day", id.Day, "max_days", maxDays)
			continue
		}
		if firstGap == 0 {
			for d := 1; d < id.Day; d++ {
				if _, ok := r.Resolve(d, dayid.PartOne); !ok {
					firstGap = d
					break
				}
			}
		}
		if firstGap != 0 && id.Day > firstGap {
			logger.Warn("Routine registered after a missing day, it will not be discovered.", "day", id.Day, "missing_day", firstGap)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
