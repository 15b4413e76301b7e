package palette

import (
	"fmt"
	"math"
)

// Contrast returns the WCAG 2 contrast ratio between two hex colors.
func Contrast(fg, bg string) (float64, error) {
	a, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(a.LinearRgb()), luminance(b.LinearRgb())
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05), nil
}

func luminance(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastIssue describes an entry whose color is hard to read on the background.
type ContrastIssue struct {
	Entry      int      `json:"entry"`
	Categories []string `json:"types"`
	Color      string   `json:"color"`
	Ratio      float64  `json:"ratio"`
}

func (c ContrastIssue) String() string {
	return fmt.Sprintf("entry %d (%s) ratio %.2f", c.Entry, c.Color, c.Ratio)
}

// LowContrast lists entries whose contrast against the plain background is below min.
func LowContrast(p *Palette, min float64) ([]ContrastIssue, error) {
	if p == nil {
		return nil, nil
	}
	issues := make([]ContrastIssue, 0)
	for i, entry := range p.Entries {
		ratio, err := Contrast(entry.Style.Color, p.PlainBackground)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if ratio < min {
			issues = append(issues, ContrastIssue{
				Entry:      i,
				Categories: append([]string(nil), entry.Categories...),
				Color:      entry.Style.Color,
				Ratio:      ratio,
			})
		}
	}
	return issues, nil
}
