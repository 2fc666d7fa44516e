// Package input decides which file a day/part reads.
//
// Each day has its own real puzzle input, and every day shares a single
// example file. A candidate only counts as usable when it can be read, has
// at least one line, and its first line is not blank; empty placeholder
// files therefore never win. Part one prefers the real input and part two
// prefers the example, so the second half of a puzzle can be iterated on
// against the example while part one keeps reporting the final answer.
package input
