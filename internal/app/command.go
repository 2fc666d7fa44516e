package app

import (
	"slices"
	"strings"

	"github.com/specialistvlad/aocrunner/internal/dayid"
)

// exitKeywords end the build loop when found anywhere in a command.
var exitKeywords = []string{"exit", "close", "stop"}

// sequentialToken turns a run-all or whole-day command sequential. On its
// own it also means "run all".
const sequentialToken = "b"

type commandKind int

const (
	cmdExit commandKind = iota
	cmdRunAll
	cmdRunDay
)

// command is one parsed line of build-mode input.
type command struct {
	kind       commandKind
	day        int
	part       *dayid.Part
	sequential bool
}

// parseCommand interprets a build-mode line against the number of
// discovered days. Errors are meant to be printed before re-prompting.
func parseCommand(line string, dayCount int) (command, error) {
	in := strings.ToLower(strings.TrimSpace(line))
	if containsExitKeyword(in) {
		return command{kind: cmdExit}, nil
	}

	tokens := dayid.Tokens(in)
	sequential := slices.Contains(tokens, sequentialToken)
	onlyFlags := !slices.ContainsFunc(tokens, func(t string) bool { return t != sequentialToken })
	if onlyFlags || slices.Contains(tokens, "all") {
		return command{kind: cmdRunAll, sequential: sequential}, nil
	}

	sel, err := dayid.ParseSelector(in, dayCount)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdRunDay, day: sel.Day, part: sel.Part, sequential: sel.Sequential}, nil
}

func containsExitKeyword(in string) bool {
	return slices.ContainsFunc(exitKeywords, func(k string) bool { return strings.Contains(in, k) })
}
