package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/blogsite/internal/config"
	"github.com/opencode-ai/blogsite/internal/palette"
	"github.com/opencode-ai/blogsite/internal/tui"
	"github.com/opencode-ai/blogsite/internal/tui/styles"
)

const defaultDarkSelector = "[data-theme='dark']"

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"palettes"},
		Short:   "Inspect syntax-highlighting palettes",
	}
	cmd.AddCommand(
		newPaletteListCmd(a),
		newPaletteCSSCmd(a),
		newPaletteCheckCmd(a),
		newPaletteBrowseCmd(a),
	)
	return cmd
}

type paletteInfo struct {
	Name       string       `json:"name"`
	Mode       palette.Mode `json:"mode"`
	Source     string       `json:"source"`
	Entries    int          `json:"entries"`
	Categories int          `json:"categories"`
	Active     bool         `json:"active"`
}

func newPaletteListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}
			palettes, err := palette.LoadFromSearchPaths(projectDir(cfg))
			if err != nil {
				return err
			}

			infos := make([]paletteInfo, 0, len(palettes))
			for _, p := range palettes {
				source := "custom"
				if palette.Builtin[p.Name] == p {
					source = "builtin"
				}
				infos = append(infos, paletteInfo{
					Name:       p.Name,
					Mode:       p.Mode,
					Source:     source,
					Entries:    len(p.Entries),
					Categories: len(p.Categories()),
					Active:     p.Name == set.Light.Name || p.Name == set.Dark.Name,
				})
			}

			if a.settings.JSON {
				return WriteOutput(cmd.OutOrStdout(), infos)
			}

			byName := make(map[string]*palette.Palette, len(palettes))
			for _, p := range palettes {
				byName[p.Name] = p
			}
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{
					info.Name,
					string(info.Mode),
					info.Source,
					strconv.Itoa(info.Entries),
					strconv.Itoa(info.Categories),
					formatYesNo(info.Active),
					sample(byName[info.Name]),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"NAME", "MODE", "SOURCE", "ENTRIES", "CATEGORIES", "ACTIVE", "SAMPLE"}, rows)
		},
	}
}

// sample renders a few categories in their own colors. lipgloss drops the
// colors when stdout is not a terminal.
func sample(p *palette.Palette) string {
	out := ""
	for _, category := range []string{"keyword", "function", "string", "number", "comment"} {
		style, ok := p.Lookup(category)
		if !ok {
			continue
		}
		if out != "" {
			out += " "
		}
		out += styles.Swatch(style, "").Render(category)
	}
	return orDash(out)
}

func newPaletteCSSCmd(a *app) *cobra.Command {
	var (
		selector     string
		darkSelector string
	)

	cmd := &cobra.Command{
		Use:   "css [name]",
		Short: "Print prism-style CSS for a palette",
		Long: `Print .token.<category> CSS rules. Without a name, both site palettes are
printed: the light one under --selector and the dark one under --dark-selector.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				p, err := palette.Find(projectDir(cfg), args[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, palette.CSS(p, selector))
				return err
			}

			if _, err := io.WriteString(out, palette.CSS(set.Light, selector)); err != nil {
				return err
			}
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
			_, err = io.WriteString(out, palette.CSS(set.Dark, darkSelector))
			return err
		},
	}

	cmd.Flags().StringVar(&selector, "selector", "", "selector scoping the rules")
	cmd.Flags().StringVar(&darkSelector, "dark-selector", defaultDarkSelector, "selector scoping the dark palette's rules")
	return cmd
}

type paletteReport struct {
	Name     string                  `json:"name"`
	Valid    bool                    `json:"valid"`
	Error    string                  `json:"error,omitempty"`
	Contrast []palette.ContrastIssue `json:"lowContrast"`
}

func newPaletteCheckCmd(a *app) *cobra.Command {
	var minContrast float64

	cmd := &cobra.Command{
		Use:   "check [name]...",
		Short: "Validate palettes and report low-contrast entries",
		Long: `Validate palettes (categories, hex colors, opacity) and list entries whose
contrast against the plain background is below --min-contrast. Without names
the site pair is checked, including that both modes style the same categories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}

			targets := []*palette.Palette{set.Light, set.Dark}
			if len(args) > 0 {
				targets = targets[:0]
				for _, name := range args {
					p, err := palette.Find(projectDir(cfg), name)
					if err != nil {
						return err
					}
					targets = append(targets, p)
				}
			}

			var failed []error
			reports := make([]paletteReport, 0, len(targets))
			for _, p := range targets {
				report := paletteReport{Name: p.Name, Valid: true}
				if err := palette.Validate(p, a.logger); err != nil {
					report.Valid = false
					report.Error = err.Error()
					failed = append(failed, err)
				}
				issues, err := palette.LowContrast(p, minContrast)
				if err != nil {
					a.logger.Debug().Err(err).Str("palette", p.Name).Msg("contrast skipped")
				}
				report.Contrast = issues
				reports = append(reports, report)
			}
			if len(args) == 0 {
				if err := palette.CheckSymmetry(set.Light, set.Dark); err != nil {
					failed = append(failed, err)
				}
			}

			if a.settings.JSON {
				if err := WriteOutput(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			} else if err := writePaletteReports(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			return errors.Join(failed...)
		},
	}

	cmd.Flags().Float64Var(&minContrast, "min-contrast", defaultMinContrast, "minimum contrast ratio against the background")
	return cmd
}

func writePaletteReports(out io.Writer, reports []paletteReport) error {
	rows := make([][]string, 0)
	for _, r := range reports {
		status := "ok"
		if !r.Valid {
			status = "invalid"
		}
		if len(r.Contrast) == 0 {
			rows = append(rows, []string{r.Name, status, "-", "-", "-"})
			continue
		}
		for _, issue := range r.Contrast {
			rows = append(rows, []string{r.Name, status, strconv.Itoa(issue.Entry), issue.Color, fmt.Sprintf("%.2f", issue.Ratio)})
		}
	}
	return writeTable(out, []string{"PALETTE", "STATUS", "LOW-CONTRAST ENTRY", "COLOR", "RATIO"}, rows)
}

func newPaletteBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the site palettes interactively",
		Long:  "Open a terminal browser over the site palettes. It reloads when the site config changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !hasTTY() {
				return errors.New("palette browse requires an interactive terminal")
			}

			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}

			opts := tui.Options{Set: set, Mode: a.modeFor(cfg)}
			if cfg == nil {
				opts.MissingSite = a.settings.Site
				return tui.Run(opts)
			}

			opts.Source = cfg.Source
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			opts.Updates = a.watchPalettes(ctx, cfg.Source)
			return tui.Run(opts)
		},
	}
}

// watchPalettes streams the palette pair of every valid reload of path.
func (a *app) watchPalettes(ctx context.Context, path string) <-chan palette.Set {
	updates := make(chan palette.Set)
	go func() {
		defer close(updates)
		err := config.Watch(ctx, path, a.logger, func(cfg *config.SiteConfig, err error) {
			if err != nil {
				a.logger.Warn().Err(err).Msg("site config reload failed")
				return
			}
			set, err := cfg.Palettes(cfg.ProjectDir())
			if err != nil {
				a.logger.Warn().Err(err).Msg("palette reload failed")
				return
			}
			select {
			case updates <- set:
			case <-ctx.Done():
			}
		})
		if err != nil {
			a.logger.Error().Err(err).Msg("site config watch stopped")
		}
	}()
	return updates
}

func projectDir(cfg *config.SiteConfig) string {
	if cfg == nil {
		return "."
	}
	return cfg.ProjectDir()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
