package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed builtin/site.yaml
var scaffold []byte

// ErrConfigExists is returned when WriteScaffold would overwrite a file.
var ErrConfigExists = errors.New("site config already exists")

// Scaffold writes the starter site config to w.
func Scaffold(w io.Writer) error {
	_, err := w.Write(scaffold)
	return err
}

// WriteScaffold creates a starter site config at path.
func WriteScaffold(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
		}
	}
	if err := os.WriteFile(path, scaffold, 0o644); err != nil {
		return fmt.Errorf("write site config %s: %w", path, err)
	}
	return nil
}
