package cmd

import (
	"path/filepath"
	"strings"
)

// resolveDir returns the optional directory argument of a command,
// defaulting to the current directory.
func resolveDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// displayPath renders a path relative to root for console output. Paths
// outside root (canonical checkout sources) are shown as given.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
