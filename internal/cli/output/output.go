package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolWarning = "!"
	SymbolBullet  = "-"
)

func style(codes, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return codes + text + reset
}

// Bold returns text in bold (or plain if colors disabled)
func Bold(text string) string {
	return style(bold, text)
}

// Dim returns text in dim style (or plain if colors disabled)
func Dim(text string) string {
	return style(dim, text)
}

// Success returns text styled for success messages
func Success(text string) string {
	return style(green, text)
}

// Warning returns text styled for warning messages
func Warning(text string) string {
	return style(yellow, text)
}

// Header returns text styled as a section header
func Header(text string) string {
	return style(bold+white, text)
}

// PrintSuccess prints a success message with checkmark
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintWarning prints a warning message with ! symbol to stderr
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
