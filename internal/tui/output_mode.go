package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are written to the terminal.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text once.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode from flags, the environment and whether
// stdout is a terminal. plain and noColor force plain output; CI and
// NO_COLOR disable interactivity.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, isTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(forceColor, noColor, plain, tty bool, lookupEnv func(string) (string, bool)) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok && !forceColor {
		return OutputModePlain
	}
	if forceColor && !tty {
		return OutputModeStyled
	}
	if !tty {
		return OutputModePlain
	}
	if v, ok := lookupEnv("TERM"); ok && v == "dumb" {
		return OutputModeStyled
	}
	if _, ok := lookupEnv("CI"); ok {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
