package config

import (
	"strings"

	"github.com/opencode-ai/blogsite/internal/palette"
)

const (
	DefaultLocale           = "en"
	DefaultBlogPath         = "blog"
	DefaultRouteBasePath    = "/"
	DefaultSidebarCount     = 5
	DefaultLightPalette     = "solarized-light"
	DefaultDarkPalette      = "solarized-dark"
	DefaultFooterStyle      = "dark"
	DefaultOnBrokenLinks    = BrokenLinksThrow
	DefaultOnBrokenMarkdown = BrokenLinksWarn
)

// ApplyDefaults trims string fields and fills in everything the generator
// would otherwise default itself.
func (c *SiteConfig) ApplyDefaults() {
	c.Title = strings.TrimSpace(c.Title)
	c.URL = strings.TrimSpace(c.URL)
	c.BaseURL = strings.TrimSpace(c.BaseURL)

	c.OnBrokenLinks = normalizePolicy(c.OnBrokenLinks, DefaultOnBrokenLinks)
	c.OnBrokenMarkdownLinks = normalizePolicy(c.OnBrokenMarkdownLinks, DefaultOnBrokenMarkdown)

	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = DefaultLocale
	}
	if len(c.I18n.Locales) == 0 {
		c.I18n.Locales = []string{c.I18n.DefaultLocale}
	}

	c.Blog.applyDefaults(c.I18n.DefaultLocale)

	if c.ColorMode.DefaultMode == "" {
		c.ColorMode.DefaultMode = string(palette.ModeLight)
	}
	if c.Prism.LightTheme == "" {
		c.Prism.LightTheme = DefaultLightPalette
	}
	if c.Prism.DarkTheme == "" {
		c.Prism.DarkTheme = DefaultDarkPalette
	}

	for i := range c.Navbar.Items {
		if c.Navbar.Items[i].Position == "" {
			c.Navbar.Items[i].Position = PositionLeft
		}
	}
	if c.Footer.Style == "" {
		c.Footer.Style = DefaultFooterStyle
	}
}

func (b *BlogConfig) applyDefaults(locale string) {
	if b.Path == "" {
		b.Path = DefaultBlogPath
	}
	if b.RouteBasePath == "" {
		b.RouteBasePath = DefaultRouteBasePath
	}
	if !strings.HasPrefix(b.RouteBasePath, "/") {
		b.RouteBasePath = "/" + b.RouteBasePath
	}
	if b.BlogSidebarCount == 0 {
		b.BlogSidebarCount = DefaultSidebarCount
	}
	if len(b.FeedOptions.Type) == 0 {
		b.FeedOptions.Type = FeedTypes{FeedRSS, FeedAtom}
	}
	if b.FeedOptions.Language == "" {
		b.FeedOptions.Language = locale
	}
}

// normalizePolicy lowercases known policies and leaves unknown ones for
// Validate to report.
func normalizePolicy(value, fallback BrokenLinkPolicy) BrokenLinkPolicy {
	if strings.TrimSpace(string(value)) == "" {
		return fallback
	}
	if policy, err := ParseBrokenLinkPolicy(string(value)); err == nil {
		return policy
	}
	return value
}
