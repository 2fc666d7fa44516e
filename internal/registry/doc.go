// Package registry provides the central "glue" for the solution module system.
//
// The Registry maps a (day, part) identifier to the compiled Go routine that
// solves it. Solution modules populate it through the Module interface at
// startup; nothing is looked up by name at runtime.
//
// Resolve reports a missing routine through its boolean result rather than an
// error, because a missing part one is the expected signal that no further
// days exist, and a missing part two simply means the day has one part.
package registry
