// internal/dayid/parser.go
package dayid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptySelector is returned when a selector contains no day token.
var ErrEmptySelector = errors.New("selector cannot be empty")

// Selector is the parsed form of an interactive "day[,part]" command.
type Selector struct {
	Day int
	// Part is nil when the whole day was selected.
	Part *Part
	// Sequential is set when the "b" token was present.
	Sequential bool
}

// isSeparator reports whether r splits selector tokens.
func isSeparator(r rune) bool {
	return r == ',' || r == '.' || r == ' ' || r == '\t'
}

// Tokens splits a normalized command line on every accepted separator.
func Tokens(input string) []string {
	return strings.FieldsFunc(input, isSeparator)
}

// ParseSelector parses "d", "d,p", "d.p" or "d p". The day must fall inside
// 1..maxDay. A standalone "b" token requests sequential execution and may
// appear anywhere after the day.
func ParseSelector(input string, maxDay int) (*Selector, error) {
	tokens := Tokens(input)
	if len(tokens) == 0 {
		return nil, ErrEmptySelector
	}

	day, err := strconv.Atoi(tokens[0])
	if err != nil || day < 1 || day > maxDay {
		return nil, fmt.Errorf("invalid day number %s", tokens[0])
	}

	sel := &Selector{Day: day}
	for _, tok := range tokens[1:] {
		if tok == "b" {
			sel.Sequential = true
			continue
		}
		if sel.Part != nil {
			return nil, fmt.Errorf("unexpected token %q", tok)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("part %s is not valid", tok)
		}
		part, err := ParsePart(n)
		if err != nil {
			return nil, err
		}
		sel.Part = &part
	}

	return sel, nil
}
