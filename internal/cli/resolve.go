package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/blogsite/internal/palette"
)

type resolveResult struct {
	Category string             `json:"category"`
	Mode     palette.Mode       `json:"mode"`
	Palette  string             `json:"palette"`
	Matched  bool               `json:"matched"`
	Style    palette.TokenStyle `json:"style"`
}

func newResolveCmd(a *app) *cobra.Command {
	var bothModes bool

	cmd := &cobra.Command{
		Use:   "resolve <category>...",
		Short: "Show the style a token category resolves to",
		Long: `Resolve token categories against the site's palettes. Unknown categories
resolve to the palette's plain colors.`,
		Example: `  blogsite resolve keyword
  blogsite resolve comment string --both`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}

			modes := []palette.Mode{a.modeFor(cfg)}
			if bothModes {
				modes = palette.Modes
			}

			results := make([]resolveResult, 0, len(args)*len(modes))
			for _, category := range args {
				category = strings.TrimSpace(category)
				for _, mode := range modes {
					p := set.Palette(mode)
					style, matched := p.Lookup(category)
					if !matched {
						style = p.Plain()
					}
					results = append(results, resolveResult{
						Category: category,
						Mode:     mode,
						Palette:  p.Name,
						Matched:  matched,
						Style:    style,
					})
				}
			}

			if a.settings.JSON {
				return WriteOutput(cmd.OutOrStdout(), results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Category,
					string(r.Mode),
					r.Palette,
					r.Style.Color,
					orDash(r.Style.Background),
					formatAttributes(r.Style),
					formatYesNo(r.Matched),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"CATEGORY", "MODE", "PALETTE", "COLOR", "BACKGROUND", "ATTRIBUTES", "MATCHED"}, rows)
		},
	}

	cmd.Flags().BoolVar(&bothModes, "both", false, "resolve in light and dark mode")
	return cmd
}

func formatAttributes(style palette.TokenStyle) string {
	var attrs []string
	if style.Italic {
		attrs = append(attrs, "italic")
	}
	if style.Bold {
		attrs = append(attrs, "bold")
	}
	if style.Opacity > 0 {
		attrs = append(attrs, fmt.Sprintf("opacity=%g", style.Opacity))
	}
	return formatList(attrs)
}
