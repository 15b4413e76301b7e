package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a color mode name is not recognised.
var ErrUnknownMode = errors.New("unknown color mode")

// Mode selects the light or dark palette.
type Mode string

const (
	// ModeLight is the default mode.
	ModeLight Mode = "light"
	// ModeDark is selected by the generator's color-mode switch.
	ModeDark Mode = "dark"
)

// Modes lists the supported modes.
var Modes = []Mode{ModeLight, ModeDark}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("%w: %q (want light or dark)", ErrUnknownMode, value)
	}
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}
