package input

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/fsutil"
)

// ErrNoValidInput is returned when neither the real nor the example input is usable.
var ErrNoValidInput = errors.New("no valid input file")

// DayPlaceholder is replaced by the day number in Paths.Pattern.
const DayPlaceholder = "{day}"

// Paths locates the candidate files.
type Paths struct {
	Dir     string
	Pattern string // file name of the real input, containing DayPlaceholder
	Example string // file name of the shared example input
}

// RealPath returns the real input path for a day.
func (p Paths) RealPath(day int) string {
	return filepath.Join(p.Dir, strings.ReplaceAll(p.Pattern, DayPlaceholder, strconv.Itoa(day)))
}

// ExamplePath returns the shared example input path.
func (p Paths) ExamplePath() string {
	return filepath.Join(p.Dir, p.Example)
}

// Selection is the outcome of a Load call.
type Selection struct {
	Lines       []string
	UsedExample bool
	Path        string
}

// Provider loads input according to the selection policy.
type Provider struct {
	paths          Paths
	smartSwitching bool
}

// NewProvider creates a Provider. With smartSwitching disabled every part
// behaves like part one.
func NewProvider(paths Paths, smartSwitching bool) *Provider {
	return &Provider{paths: paths, smartSwitching: smartSwitching}
}

// Paths returns the configured candidate locations.
func (p *Provider) Paths() Paths {
	return p.paths
}

// candidate is a single input source after an attempted read.
type candidate struct {
	path  string
	lines []string
	err   error
}

func (c candidate) valid() bool {
	return c.err == nil && len(c.lines) > 0 && c.lines[0] != ""
}

func read(path string) candidate {
	lines, err := fsutil.ReadLines(path)
	return candidate{path: path, lines: lines, err: err}
}

// Load reads both candidates for the day and selects one. forceReal picks the
// real input whenever it is usable regardless of part. If neither candidate
// is usable an error wrapping ErrNoValidInput is returned and no lines are.
func (p *Provider) Load(ctx context.Context, day int, part dayid.Part, forceReal bool) (*Selection, error) {
	logger := ctxlog.FromContext(ctx).With("day", day, "part", part.Number())

	final := read(p.paths.RealPath(day))
	example := read(p.paths.ExamplePath())
	if final.err != nil {
		logger.Debug("Real input unavailable.", "path", final.path, "error", final.err)
	}
	if example.err != nil {
		logger.Debug("Example input unavailable.", "path", example.path, "error", example.err)
	}

	if !final.valid() && !example.valid() {
		return nil, fmt.Errorf("day %d: %w (tried %s and %s)", day, ErrNoValidInput, final.path, example.path)
	}

	useExample := p.preferExample(part, forceReal, final.valid(), example.valid())
	chosen := final
	if useExample {
		chosen = example
	}
	logger.Debug("Input selected.", "path", chosen.path, "example", useExample, "lines", len(chosen.lines))

	return &Selection{Lines: chosen.lines, UsedExample: useExample, Path: chosen.path}, nil
}

// preferExample implements the selection table.
func (p *Provider) preferExample(part dayid.Part, forceReal, realValid, exampleValid bool) bool {
	if forceReal || !p.smartSwitching || part == dayid.PartOne {
		return !realValid
	}
	return exampleValid
}
