package palette

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/blogsite/internal/validate"
)

var (
	// ErrInvalidColor is returned for colors that are not #rgb or #rrggbb.
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrInvalidCategory is returned for empty or malformed category names.
	ErrInvalidCategory = errors.New("invalid token category")
	// ErrInvalidOpacity is returned for opacity outside (0, 1].
	ErrInvalidOpacity = errors.New("opacity must be within (0, 1]")

	hexPattern      = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	categoryPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*$`)
)

// ParseColor parses a #rgb or #rrggbb color.
func ParseColor(value string) (colorful.Color, error) {
	if !hexPattern.MatchString(value) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	if len(value) == 4 {
		value = "#" + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2) + strings.Repeat(value[3:4], 2)
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return c, nil
}

// ValidColor reports whether value is a syntactically valid hex color.
func ValidColor(value string) bool {
	_, err := ParseColor(value)
	return err == nil
}

// ValidCategory reports whether name is a usable token category.
func ValidCategory(name string) bool {
	return categoryPattern.MatchString(name)
}

// Validate checks every color, category and opacity in p.
func Validate(p *Palette, logger zerolog.Logger) error {
	if p == nil {
		return errors.New("palette is required")
	}
	name := p.Name
	if name == "" {
		name = "palette"
	}
	check := validate.NewChecker("palette "+name, logger)

	checkColor(check, name+"/plain/color", p.PlainColor)
	checkColor(check, name+"/plain/background", p.PlainBackground)

	if len(p.Entries) == 0 {
		check.Fail(name+"/entries", nil, errors.New("at least one entry is required"))
	}

	for i, entry := range p.Entries {
		base := fmt.Sprintf("%s/entries[%d]", name, i)
		if len(entry.Categories) == 0 {
			check.Fail(base+"/types", nil, errors.New("at least one token category is required"))
		}
		for j, category := range entry.Categories {
			path := fmt.Sprintf("%s/types[%d]", base, j)
			if !ValidCategory(category) {
				check.Fail(path, category, ErrInvalidCategory)
				continue
			}
			check.OK(path, category)
		}
		checkColor(check, base+"/style/color", entry.Style.Color)
		if entry.Style.Opacity < 0 || entry.Style.Opacity > 1 {
			check.Fail(base+"/style/opacity", entry.Style.Opacity, ErrInvalidOpacity)
		}
	}

	return check.Err()
}

func checkColor(check *validate.Checker, path, value string) {
	_, err := ParseColor(value)
	check.Check(path, value, err)
}

// SymmetryError lists categories present in only one of two palettes.
type SymmetryError struct {
	Left, Right         string
	OnlyLeft, OnlyRight []string
}

func (e *SymmetryError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.OnlyLeft) > 0 {
		parts = append(parts, fmt.Sprintf("only in %s: %s", e.Left, strings.Join(e.OnlyLeft, ", ")))
	}
	if len(e.OnlyRight) > 0 {
		parts = append(parts, fmt.Sprintf("only in %s: %s", e.Right, strings.Join(e.OnlyRight, ", ")))
	}
	return "palettes are not symmetric: " + strings.Join(parts, "; ")
}

// CheckSymmetry verifies both palettes style the same set of categories.
func CheckSymmetry(a, b *Palette) error {
	if a == nil || b == nil {
		return errors.New("two palettes are required")
	}
	onlyA := difference(a.Categories(), b.Categories())
	onlyB := difference(b.Categories(), a.Categories())
	if len(onlyA) == 0 && len(onlyB) == 0 {
		return nil
	}
	return &SymmetryError{Left: a.Name, Right: b.Name, OnlyLeft: onlyA, OnlyRight: onlyB}
}

func difference(from, other []string) []string {
	present := make(map[string]struct{}, len(other))
	for _, c := range other {
		present[c] = struct{}{}
	}
	out := make([]string, 0)
	for _, c := range from {
		if _, ok := present[c]; !ok {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// ValidateSet validates both palettes of s and their symmetry.
func ValidateSet(s Set, logger zerolog.Logger) error {
	var errs []error
	if err := Validate(s.Light, logger); err != nil {
		errs = append(errs, err)
	}
	if err := Validate(s.Dark, logger); err != nil {
		errs = append(errs, err)
	}
	if s.Light != nil && s.Dark != nil {
		if err := CheckSymmetry(s.Light, s.Dark); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
