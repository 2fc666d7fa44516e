package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/aocrunner/internal/dayid"
)

// Routine solves one part of one day. It receives the selected input lines
// and returns the integer answer.
type Routine func(lines []string) (int, error)

// Module is the interface that all solution modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered routines for a single application instance.
type Registry struct {
	routines map[dayid.ID]Routine
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		routines: make(map[dayid.ID]Routine),
	}
}

// Register binds a routine to a day/part. Registering the same pair twice, a
// non-positive day or a nil routine is a programmer error and panics.
func (r *Registry) Register(day int, part dayid.Part, fn Routine) {
	id := dayid.New(day, part)
	if day < 1 {
		panic(fmt.Sprintf("routine for %s: day must be positive", id))
	}
	if _, err := dayid.ParsePart(part.Number()); err != nil {
		panic(fmt.Sprintf("routine for day %d: %v", day, err))
	}
	if fn == nil {
		panic(fmt.Sprintf("routine for %s is nil", id))
	}
	if _, exists := r.routines[id]; exists {
		panic(fmt.Sprintf("routine for %s already registered", id))
	}
	slog.Debug("Registering routine.", "id", id.String())
	r.routines[id] = fn
}

// RegisterModules calls Register on every module in order.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, mod := range modules {
		mod.Register(r)
	}
}

// Resolve returns the routine registered for the day/part, or false if none is.
func (r *Registry) Resolve(day int, part dayid.Part) (Routine, bool) {
	fn, ok := r.routines[dayid.New(day, part)]
	return fn, ok
}

// Keys returns every registered identifier ordered by day, then part.
func (r *Registry) Keys() []dayid.ID {
	keys := make([]dayid.ID, 0, len(r.routines))
	for id := range r.routines {
		keys = append(keys, id)
	}
	slices.SortFunc(keys, func(a, b dayid.ID) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part.Number() - b.Part.Number()
	})
	return keys
}

// Len returns the number of registered routines.
func (r *Registry) Len() int {
	return len(r.routines)
}
