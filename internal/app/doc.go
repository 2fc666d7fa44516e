// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run modes (interactive build loop,
// debug runs and watch), decoupled from any specific entrypoint like a CLI.
package app
