// Package puzzle holds the runtime model of the calendar: a Day owns one or
// two DayParts, each bound to a registered routine. A DayPart loads its input,
// invokes the routine, times it and keeps the last result for the summary.
package puzzle
