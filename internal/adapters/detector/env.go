// Package detector decides how streamed command output is presented.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how package manager output reaches the user.
type OutputMode int

const (
	// ModePlain pipes output through unchanged; progress bars are disabled by the child.
	ModePlain OutputMode = iota
	// ModeTerminal runs the child on a pseudo-terminal so it renders interactively.
	ModeTerminal
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"), os.Getenv("NO_COLOR"))
}

func detect(isTTY bool, ci, noColor string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI || noColor != "" {
		return ModePlain
	}
	return ModeTerminal
}

// ResolveMode applies a user override to auto-detection.
// userFlag should be one of: "auto", "tty", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tty":
		return ModeTerminal
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}
