package app

import (
	"bufio"
	"context"
	"fmt"

	"github.com/specialistvlad/aocrunner/internal/ctxlog"
)

// runBuild is the interactive loop. It returns nil on an exit keyword or
// when the input stream ends, and the first fatal run error otherwise.
func (a *App) runBuild(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	scanner := bufio.NewScanner(a.in)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading command: %w", err)
			}
			logger.Debug("Input stream closed, leaving build mode.")
			return nil
		}

		cmd, err := parseCommand(scanner.Text(), len(a.days))
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}

		var req request
		switch cmd.kind {
		case cmdExit:
			logger.Debug("Exit requested.")
			return nil
		case cmdRunAll:
			req = request{parallel: !cmd.sequential}
		case cmdRunDay:
			req = request{day: a.days[cmd.day-1], part: cmd.part, parallel: !cmd.sequential}
			if cmd.part != nil {
				if _, ok := req.day.Part(*cmd.part); !ok {
					fmt.Fprintf(a.out, "Day %d has no part %d\n", cmd.day, cmd.part.Number())
					continue
				}
			}
		}

		if err := a.execute(ctx, req); err != nil {
			return err
		}
	}
}
