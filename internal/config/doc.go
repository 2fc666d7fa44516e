// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface implemented by concrete
// file formats.
//
// A Model always starts from Default(); files and environment variables only
// override what they set. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
