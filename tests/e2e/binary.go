package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the codeclean binary under test. CODECLEAN_BINARY
// wins; otherwise bin/codeclean is looked up from the nearest go.mod upward.
func FindProjectBinary() (string, error) {
	if p := os.Getenv("CODECLEAN_BINARY"); p != "" {
		return p, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			bin := filepath.Join(dir, "bin", "codeclean")
			if _, err := os.Stat(bin); err != nil {
				return "", fmt.Errorf("codeclean binary not found at %s (run 'go build -o bin/codeclean .')", bin)
			}
			return bin, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root containing go.mod")
		}
		dir = parent
	}
}
