package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/blogsite/internal/config"
	"github.com/opencode-ai/blogsite/internal/palette"
)

// defaultMinContrast is the WCAG AA ratio for large text.
const defaultMinContrast = 3.0

type siteSummary struct {
	Path         string              `json:"path"`
	Title        string              `json:"title"`
	SiteURL      string              `json:"siteUrl"`
	BlogURL      string              `json:"blogUrl"`
	Locales      []string            `json:"locales"`
	Feeds        []config.FeedType   `json:"feeds"`
	SidebarCount config.SidebarCount `json:"sidebarCount"`
	DefaultMode  palette.Mode        `json:"defaultMode"`
	LightTheme   string              `json:"lightTheme"`
	DarkTheme    string              `json:"darkTheme"`
	NavbarItems  int                 `json:"navbarItems"`
	FooterGroups int                 `json:"footerGroups"`
	Warnings     []string            `json:"warnings,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the site config and its palettes",
		Long: `Load the site config, apply defaults, validate every field and resolve the
light and dark palettes. Exits non-zero when anything is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return a.watchSite(cmd)
			}
			cfg, err := config.Load(a.settings.Site, a.logger)
			if err != nil {
				return err
			}
			summary, err := a.checkSite(cfg)
			if err != nil {
				return err
			}
			return a.writeSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check whenever the site config changes")
	return cmd
}

func (a *app) checkSite(cfg *config.SiteConfig) (siteSummary, error) {
	set, err := cfg.Palettes(cfg.ProjectDir())
	if err != nil {
		return siteSummary{}, err
	}
	if err := palette.ValidateSet(set, a.logger); err != nil {
		return siteSummary{}, err
	}

	summary := siteSummary{
		Path:         cfg.Source,
		Title:        cfg.Title,
		SiteURL:      cfg.SiteURL(),
		BlogURL:      cfg.BlogURL(),
		Locales:      cfg.I18n.Locales,
		Feeds:        cfg.Blog.FeedOptions.Type.Expand(),
		SidebarCount: cfg.Blog.BlogSidebarCount,
		DefaultMode:  cfg.DefaultMode(),
		LightTheme:   set.Light.Name,
		DarkTheme:    set.Dark.Name,
		NavbarItems:  len(cfg.Navbar.Items),
		FooterGroups: len(cfg.Footer.Links),
	}

	for _, p := range []*palette.Palette{set.Light, set.Dark} {
		issues, err := palette.LowContrast(p, defaultMinContrast)
		if err != nil {
			return siteSummary{}, err
		}
		for _, issue := range issues {
			a.logger.Warn().Str("palette", p.Name).Int("entry", issue.Entry).Float64("ratio", issue.Ratio).Msg("low contrast")
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %s", p.Name, issue))
		}
	}
	return summary, nil
}

func (a *app) writeSummary(out io.Writer, summary siteSummary) error {
	if a.settings.JSON {
		return WriteOutput(out, summary)
	}

	feeds := make([]string, 0, len(summary.Feeds))
	for _, feed := range summary.Feeds {
		feeds = append(feeds, string(feed))
	}

	rows := [][]string{
		{"title", summary.Title},
		{"site url", summary.SiteURL},
		{"blog url", summary.BlogURL},
		{"locales", formatList(summary.Locales)},
		{"feeds", formatList(feeds)},
		{"sidebar posts", summary.SidebarCount.String()},
		{"default mode", string(summary.DefaultMode)},
		{"light palette", summary.LightTheme},
		{"dark palette", summary.DarkTheme},
		{"navbar items", strconv.Itoa(summary.NavbarItems)},
		{"footer groups", strconv.Itoa(summary.FooterGroups)},
	}
	if err := writeTable(out, []string{"FIELD", "VALUE"}, rows); err != nil {
		return err
	}
	for _, warning := range summary.Warnings {
		fmt.Fprintf(out, "warning: low contrast in %s\n", warning)
	}
	fmt.Fprintf(out, "%s is valid\n", summary.Path)
	return nil
}

// watchSite re-checks the site config on every change until interrupted.
// Invalid states are reported, not returned, so the watch keeps running.
func (a *app) watchSite(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	report := func(cfg *config.SiteConfig, err error) {
		if err == nil {
			var summary siteSummary
			summary, err = a.checkSite(cfg)
			if err == nil {
				if writeErr := a.writeSummary(out, summary); writeErr != nil {
					a.logger.Error().Err(writeErr).Msg("write summary")
				}
				return
			}
		}
		a.logger.Error().Err(err).Msg("site config invalid")
		fmt.Fprintf(out, "invalid: %v\n", err)
	}

	report(config.Load(a.settings.Site, a.logger))
	a.logger.Info().Str("path", a.settings.Site).Msg("watching site config")
	return config.Watch(cmd.Context(), a.settings.Site, a.logger, report)
}
