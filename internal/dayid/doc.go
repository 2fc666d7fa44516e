// Package dayid defines the identifiers used to address a single unit of
// work: a calendar day and one of its two parts.
//
// It also owns the parsing of the short "day[,part]" selectors typed into the
// interactive build loop, so the same selector is accepted regardless of
// whether it is separated by a comma, a dot or a space.
package dayid
