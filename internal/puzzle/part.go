package puzzle

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/specialistvlad/aocrunner/internal/input"
	"github.com/specialistvlad/aocrunner/internal/registry"
)

// InputLoader selects the input lines for a day/part.
type InputLoader interface {
	Load(ctx context.Context, day int, part dayid.Part, forceReal bool) (*input.Selection, error)
}

// notRun is rendered in place of a result or time for a part that never ran.
const notRun = "-"

// DayPart is one part of a day together with the state of its last run.
type DayPart struct {
	id      dayid.ID
	routine registry.Routine
	inputs  InputLoader
	out     io.Writer

	lines       []string
	usedExample bool
	result      int
	elapsed     time.Duration
	ran         bool
}

func newDayPart(id dayid.ID, routine registry.Routine, opts Options) *DayPart {
	return &DayPart{id: id, routine: routine, inputs: opts.Inputs, out: opts.Out}
}

// ID returns the day/part identifier.
func (p *DayPart) ID() dayid.ID { return p.id }

// Result returns the last computed answer.
func (p *DayPart) Result() int { return p.result }

// Elapsed returns the wall-clock duration of the last run.
func (p *DayPart) Elapsed() time.Duration { return p.elapsed }

// UsedExample reports whether the last run read the example input.
func (p *DayPart) UsedExample() bool { return p.usedExample }

// Ran reports whether the part has executed successfully at least once.
func (p *DayPart) Ran() bool { return p.ran }

// Execute reloads the input, runs the routine and records its result and
// duration. A routine error or panic is returned wrapped in
// ErrMalformedRoutine and leaves the previous result untouched.
func (p *DayPart) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("id", p.id.String())

	sel, err := p.inputs.Load(ctx, p.id.Day, p.id.Part, false)
	if err != nil {
		return err
	}
	p.lines = sel.Lines
	p.usedExample = sel.UsedExample

	start := time.Now()
	result, err := invoke(p.routine, p.lines)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", p.id, ErrMalformedRoutine, err)
	}

	p.result = result
	p.elapsed = elapsed
	p.ran = true

	logger.Debug("Routine finished.", "result", result, "elapsed", elapsed, "example", p.usedExample)
	fmt.Fprintf(p.out, "..%s %s exits with: %d (%ss)\n", p.id, p.inputTag(false), result, seconds(elapsed))
	return nil
}

// invoke calls the routine, converting a panic into an error.
func invoke(fn registry.Routine, lines []string) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(lines)
}

// Render formats the summary line, left-aligning result and time within the
// given column widths.
func (p *DayPart) Render(resultWidth, timeWidth int) string {
	return fmt.Sprintf("Day %d Part %d %s :  %-*s  (%-*ss)",
		p.id.Day, p.id.Part.Number(), p.inputTag(true),
		resultWidth, p.resultText(), timeWidth, p.timeText())
}

func (p *DayPart) resultText() string {
	if !p.ran {
		return notRun
	}
	return strconv.Itoa(p.result)
}

func (p *DayPart) timeText() string {
	if !p.ran {
		return notRun
	}
	return seconds(p.elapsed)
}

func (p *DayPart) inputTag(title bool) string {
	switch {
	case p.usedExample && title:
		return "(Exmpl)"
	case p.usedExample:
		return "(exmpl)"
	case title:
		return "(Final)"
	default:
		return "(final)"
	}
}

// seconds formats d as seconds with millisecond precision.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Milliseconds())/1000, 'f', 3, 64)
}
