// Package config aggregates the user-facing compiler switches. Options is
// built once by the driver, before any phase runs, and handed read-only to
// every stage that needs target-specific behaviour.
package config

import (
	"os"

	"golang.org/x/term"

	"blang/internal/target"
)

// ColorMode controls colored diagnostic output.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// Enabled resolves the mode against the actual output stream. Auto means
// "color when stdout is a terminal".
func (m ColorMode) Enabled() bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// defaultMaxIssues bounds the diagnostic bag so a hopeless input does not
// drown the user.
const defaultMaxIssues = 100

// Options carries the resolved compilation switches.
type Options struct {
	Target    target.Platform
	MaxIssues int
	Color     ColorMode
}

// Default returns the platform-independent baseline (Linux/x86-64), suitable
// for tests or when no host detection is desired.
func Default() Options {
	return Options{
		Target:    target.Default(),
		MaxIssues: defaultMaxIssues,
		Color:     ColorAuto,
	}
}

// Native returns Default() with the target resolved from the host.
func Native() Options {
	opts := Default()
	opts.Target = target.Native()
	return opts
}
