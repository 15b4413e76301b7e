package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrPaletteNotFound is returned when no palette has the requested name.
var ErrPaletteNotFound = errors.New("palette not found")

// Builtin lists the palettes compiled into the binary.
var Builtin = map[string]*Palette{
	SolarizedLight.Name: SolarizedLight,
	SolarizedDark.Name:  SolarizedDark,
}

// BuiltinNames returns the built-in palette names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SearchPaths returns palette search directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".blogsite", "palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "blogsite", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "blogsite", "palettes"))
	return paths
}

// LoadFromSearchPaths loads palettes from search paths with first-hit
// precedence; built-ins come last.
func LoadFromSearchPaths(projectDir string) ([]*Palette, error) {
	seen := make(map[string]*Palette)
	order := make([]string, 0)

	for _, path := range SearchPaths(projectDir) {
		palettes, err := LoadPalettesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, p := range palettes {
			if _, exists := seen[p.Name]; exists {
				continue
			}
			seen[p.Name] = p
			order = append(order, p.Name)
		}
	}

	for _, name := range BuiltinNames() {
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = Builtin[name]
		order = append(order, name)
	}

	resolved := make([]*Palette, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find loads a specific palette by name.
func Find(projectDir, name string) (*Palette, error) {
	palettes, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, name)
}
