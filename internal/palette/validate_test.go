package palette

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blogsite/internal/validate"
)

func TestBuiltinPalettesAreValid(t *testing.T) {
	require.NoError(t, Validate(SolarizedLight, zerolog.Nop()))
	require.NoError(t, Validate(SolarizedDark, zerolog.Nop()))
	require.NoError(t, ValidateSet(DefaultSet(), zerolog.Nop()))
}

func TestBuiltinPalettesAreSymmetric(t *testing.T) {
	require.NoError(t, CheckSymmetry(SolarizedLight, SolarizedDark))
	require.ElementsMatch(t, SolarizedLight.Categories(), SolarizedDark.Categories())
}

func TestEveryBuiltinCategoryAndColor(t *testing.T) {
	for _, p := range []*Palette{SolarizedLight, SolarizedDark} {
		for _, entry := range p.Entries {
			require.True(t, ValidColor(entry.Style.Color), "%s: %s", p.Name, entry.Style.Color)
			for _, category := range entry.Categories {
				require.NotEmpty(t, category)
			}
		}
	}
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#859900", true},
		{"#FFF", true},
		{"#fdf6e3", true},
		{"859900", false},
		{"#85990", false},
		{"#gggggg", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.want, ValidColor(tt.value))
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	p := NewPalette("broken", ModeLight, "nope", "#ffffff", []PaletteEntry{
		{Categories: []string{""}, Style: TokenStyle{Color: "#12"}},
		{Categories: []string{"Keyword"}, Style: TokenStyle{Color: "#123456", Opacity: 2}},
		{Style: TokenStyle{Color: "#123456"}},
	})

	err := Validate(p, zerolog.Nop())
	require.Error(t, err)

	var verr *validate.ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors(), 6)
	require.ErrorIs(t, err, ErrInvalidColor)
	require.ErrorIs(t, err, ErrInvalidCategory)
	require.ErrorIs(t, err, ErrInvalidOpacity)
	require.Contains(t, err.Error(), "broken/entries[1]/types[0]")
}

func TestCheckSymmetryReportsBothSides(t *testing.T) {
	a := NewPalette("a", ModeLight, "#000", "#fff", []PaletteEntry{
		{Categories: []string{"keyword", "string"}, Style: TokenStyle{Color: "#111"}},
	})
	b := NewPalette("b", ModeDark, "#fff", "#000", []PaletteEntry{
		{Categories: []string{"keyword", "number"}, Style: TokenStyle{Color: "#111"}},
	})

	err := CheckSymmetry(a, b)
	var serr *SymmetryError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, []string{"string"}, serr.OnlyLeft)
	require.Equal(t, []string{"number"}, serr.OnlyRight)
	require.Contains(t, err.Error(), "only in a: string")
}

func TestContrast(t *testing.T) {
	ratio, err := Contrast("#000000", "#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 0.01)

	ratio, err = Contrast("#777", "#777777")
	require.NoError(t, err)
	require.InDelta(t, 1.0, ratio, 0.001)

	_, err = Contrast("red", "#fff")
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestLowContrast(t *testing.T) {
	p := NewPalette("low", ModeLight, "#000000", "#ffffff", []PaletteEntry{
		{Categories: []string{"comment"}, Style: TokenStyle{Color: "#eeeeee"}},
		{Categories: []string{"keyword"}, Style: TokenStyle{Color: "#000000"}},
	})

	issues, err := LowContrast(p, 4.5)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, 0, issues[0].Entry)
	require.Equal(t, []string{"comment"}, issues[0].Categories)
}
