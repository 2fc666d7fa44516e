package puzzle

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/executor"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// Separator closes every block of summary lines.
const Separator = "---------------------"

// Options carries the collaborators shared by every day.
type Options struct {
	Inputs InputLoader
	// Out receives progress lines. It must be safe for concurrent writes
	// when Parallel is a concurrent executor.
	Out io.Writer
	// Parallel runs both parts of a day at once. Nil falls back to sequential.
	Parallel executor.Executor
}

// Day is a calendar day with a mandatory first part and an optional second.
type Day struct {
	id       int
	one      *DayPart
	two      *DayPart
	parallel executor.Executor
}

// NewDay builds a day. two may be nil.
func NewDay(id int, one, two registry.Routine, opts Options) *Day {
	d := &Day{
		id:       id,
		one:      newDayPart(dayid.New(id, dayid.PartOne), one, opts),
		parallel: opts.Parallel,
	}
	if two != nil {
		d.two = newDayPart(dayid.New(id, dayid.PartTwo), two, opts)
	}
	if d.parallel == nil {
		d.parallel = executor.Sequential{}
	}
	return d
}

// ID returns the day number.
func (d *Day) ID() int { return d.id }

// HasSecondPart reports whether part two is implemented.
func (d *Day) HasSecondPart() bool { return d.two != nil }

// Part returns the requested part, or false if the day does not have it.
func (d *Day) Part(part dayid.Part) (*DayPart, bool) {
	switch part {
	case dayid.PartOne:
		return d.one, true
	case dayid.PartTwo:
		return d.two, d.two != nil
	}
	return nil, false
}

// LatestPart returns part two when present, otherwise part one.
func (d *Day) LatestPart() dayid.Part {
	if d.HasSecondPart() {
		return dayid.PartTwo
	}
	return dayid.PartOne
}

// Run executes every part of the day. With parallel set and a second part
// present both parts run concurrently; otherwise part one finishes before
// part two starts. Run returns after all started parts have finished.
func (d *Day) Run(ctx context.Context, parallel bool) error {
	jobs := []executor.Job{d.job(d.one)}
	if d.two != nil {
		jobs = append(jobs, d.job(d.two))
	}
	if parallel && len(jobs) > 1 {
		return d.parallel.Execute(ctx, jobs...)
	}
	return executor.Sequential{}.Execute(ctx, jobs...)
}

// RunPart executes exactly one part, leaving the other part's state as is.
func (d *Day) RunPart(ctx context.Context, part dayid.Part) error {
	p, ok := d.Part(part)
	if !ok {
		return fmt.Errorf("day %d: %w", d.id, ErrNoSecondPart)
	}
	return p.Execute(ctx)
}

func (d *Day) job(p *DayPart) executor.Job {
	return executor.Job{Name: p.ID().String(), Run: p.Execute}
}

// PrintSummary writes the summary line of the selected part, or of every
// part when part is nil, followed by a separator. Column widths only take
// the printed parts into account.
func (d *Day) PrintSummary(w io.Writer, part *dayid.Part) error {
	var parts []*DayPart
	if part == nil {
		parts = append(parts, d.one)
		if d.two != nil {
			parts = append(parts, d.two)
		}
	} else {
		p, ok := d.Part(*part)
		if !ok {
			return fmt.Errorf("day %d: %w", d.id, ErrNoSecondPart)
		}
		parts = append(parts, p)
	}

	resultWidth, timeWidth := 0, 0
	for _, p := range parts {
		resultWidth = max(resultWidth, len(p.resultText()))
		timeWidth = max(timeWidth, len(p.timeText()))
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Render(resultWidth, timeWidth))
		b.WriteByte('\n')
	}
	b.WriteString(Separator)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
