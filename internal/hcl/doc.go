// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses aocrunner.hcl files, evaluates their expressions with
// an `env` object and a few string functions available, and translates the
// decoded blocks into the format-agnostic config.Model.
package hcl
