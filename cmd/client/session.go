package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sessionFile keeps the session token between runs. The file is readable by
// the owner only.
type sessionFile string

// Load returns the stored token, or "" when there is none.
func (f sessionFile) Load() (string, error) {
	data, err := os.ReadFile(string(f))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading session file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (f sessionFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(string(f)), 0o700); err != nil {
		return fmt.Errorf("error creating session dir: %w", err)
	}
	if err := os.WriteFile(string(f), []byte(token), 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	return nil
}

// Clear removes the file; a missing file is not an error.
func (f sessionFile) Clear() error {
	if err := os.Remove(string(f)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}

	return nil
}
