// Package shared provides common utility functions used across multiple
// packages in the pkgdep codebase.
package shared

import (
	"io"
	"strings"
)

// StdinOrArgs returns the positional arguments, or whitespace-separated
// tokens read from r when no arguments are given or the sole argument
// is "-".
func StdinOrArgs(r io.Reader, args []string) []string {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return strings.Fields(string(data))
}

// CompareSymbol renders a three-way comparison result as <, ==, or >.
func CompareSymbol(result int) string {
	switch {
	case result < 0:
		return "<"
	case result > 0:
		return ">"
	default:
		return "=="
	}
}
