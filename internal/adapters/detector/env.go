// Package detector picks how progress is displayed.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the progress display mode.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive display.
	ModeTUI
	// ModeLinear forces line-oriented output.
	ModeLinear
	// ModeQuiet shows no progress at all.
	ModeQuiet
)

// DetectEnvironment returns ModeTUI when stderr is a terminal outside CI.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the configured output setting to auto-detection.
// Unknown values fall back to autoDetected.
func ResolveMode(autoDetected OutputMode, setting string) OutputMode {
	switch setting {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	case "none", "quiet":
		return ModeQuiet
	default:
		return autoDetected
	}
}
