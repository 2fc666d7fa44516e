package puzzle

import "errors"

var (
	// ErrMalformedRoutine wraps any failure raised while invoking a routine.
	ErrMalformedRoutine = errors.New("routine implementation is malformed")
	// ErrNoSecondPart is returned when part two is requested on a one-part day.
	ErrNoSecondPart = errors.New("day has no second part")
	// ErrNoDays is returned by Discover when day 1 does not resolve.
	ErrNoDays = errors.New("implement a day to run")
)
