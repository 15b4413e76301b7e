package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/blogsite/internal/palette"
	"github.com/opencode-ai/blogsite/internal/validate"
)

var (
	// ErrTitleRequired is returned when the site has no title.
	ErrTitleRequired = fmt.Errorf("site title %w", validate.ErrRequired)
	// ErrURLRequired is returned when the canonical URL is missing.
	ErrURLRequired = fmt.Errorf("canonical url %w", validate.ErrRequired)
	// ErrBaseURLRequired is returned when the base path is missing.
	ErrBaseURLRequired = fmt.Errorf("base path %w", validate.ErrRequired)
	// ErrInvalidURL is returned for malformed URLs.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidLink is returned for navbar or footer links without exactly one target.
	ErrInvalidLink = errors.New("exactly one of to or href is required")
)

// Validate checks the record and returns every problem found as a
// *validate.ValidationErrors.
func (c *SiteConfig) Validate(logger zerolog.Logger) error {
	check := validate.NewChecker("site config", logger)

	if c.Title == "" {
		check.Fail("title", c.Title, ErrTitleRequired)
	} else {
		check.OK("title", c.Title)
	}

	if c.URL == "" {
		check.Fail("url", c.URL, ErrURLRequired)
	} else {
		check.Check("url", c.URL, validateSiteURL(c.URL))
	}

	if c.BaseURL == "" {
		check.Fail("baseUrl", c.BaseURL, ErrBaseURLRequired)
	} else {
		check.Check("baseUrl", c.BaseURL, validateBasePath(c.BaseURL))
	}

	validate.RequireOneOf(check, "onBrokenLinks", c.OnBrokenLinks, BrokenLinkPolicies)
	validate.RequireOneOf(check, "onBrokenMarkdownLinks", c.OnBrokenMarkdownLinks, BrokenLinkPolicies)

	c.I18n.validate(check, "i18n")
	c.Blog.validate(check, "blog")

	_, err := palette.ParseMode(c.ColorMode.DefaultMode)
	check.Check("colorMode/defaultMode", c.ColorMode.DefaultMode, err)
	check.RequireString("prism/lightTheme", c.Prism.LightTheme)
	check.RequireString("prism/darkTheme", c.Prism.DarkTheme)

	c.validateCustomCSS(check, "theme/customCss")
	c.Navbar.validate(check, "navbar")
	c.Footer.validate(check, "footer")

	return check.Err()
}

func validateSiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("%w: path %q belongs in baseUrl", ErrInvalidURL, u.Path)
	}
	return nil
}

func validateBasePath(path string) error {
	if path[0] != '/' || path[len(path)-1] != '/' {
		return fmt.Errorf("must start and end with a slash, got %q", path)
	}
	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, raw)
	}
	return nil
}

func (i *I18nConfig) validate(check *validate.Checker, path string) {
	check.RequireString(path+"/defaultLocale", i.DefaultLocale)

	seen := make(map[string]struct{}, len(i.Locales))
	for n, locale := range i.Locales {
		p := fmt.Sprintf("%s/locales[%d]", path, n)
		if !check.RequireString(p, locale) {
			continue
		}
		if _, dup := seen[locale]; dup {
			check.Fail(p, locale, errors.New("duplicate locale"))
		}
		seen[locale] = struct{}{}
	}

	if _, ok := seen[i.DefaultLocale]; !ok && i.DefaultLocale != "" {
		check.Fail(path+"/defaultLocale", i.DefaultLocale, fmt.Errorf("must be listed in locales %v", i.Locales))
	}
}

func (b *BlogConfig) validate(check *validate.Checker, path string) {
	check.RequireString(path+"/path", b.Path)
	check.RequireString(path+"/routeBasePath", b.RouteBasePath)

	if b.BlogSidebarCount < 1 && !b.BlogSidebarCount.All() {
		check.Fail(path+"/blogSidebarCount", int(b.BlogSidebarCount), errors.New("must be positive or ALL"))
	} else {
		check.OK(path+"/blogSidebarCount", b.BlogSidebarCount.String())
	}

	if b.PostsPerPage < 0 {
		check.Fail(path+"/postsPerPage", b.PostsPerPage, errors.New("must not be negative"))
	}

	if b.EditURL != "" {
		check.Check(path+"/editUrl", b.EditURL, validateAbsoluteURL(b.EditURL))
	}

	for n, t := range b.FeedOptions.Type {
		validate.RequireOneOf(check, fmt.Sprintf("%s/feedOptions/type[%d]", path, n), t, FeedTypeValues)
	}
}

func (c *SiteConfig) validateCustomCSS(check *validate.Checker, path string) {
	css := c.Theme.CustomCSS
	if css == "" || c.Source == "" {
		return
	}
	if !filepath.IsAbs(css) {
		css = filepath.Join(filepath.Dir(c.Source), css)
	}
	if _, err := os.Stat(css); err != nil {
		check.Logger.Warn().Str("config", path).Str("value", c.Theme.CustomCSS).Err(err).Msg("custom css not found")
		return
	}
	check.OK(path, c.Theme.CustomCSS)
}

func (n *NavbarConfig) validate(check *validate.Checker, path string) {
	if n.Logo != nil {
		check.RequireString(path+"/logo/src", n.Logo.Src)
	}
	for i, item := range n.Items {
		base := fmt.Sprintf("%s/items[%d]", path, i)
		check.RequireString(base+"/label", item.Label)
		validateLink(check, base, item.To, item.Href)
		validate.RequireOneOf(check, base+"/position", item.Position, []Position{PositionLeft, PositionRight})
	}
}

func (f *FooterConfig) validate(check *validate.Checker, path string) {
	validate.RequireOneOf(check, path+"/style", f.Style, []string{"dark", "light"})
	for i, group := range f.Links {
		base := fmt.Sprintf("%s/links[%d]", path, i)
		check.RequireString(base+"/title", group.Title)
		for j, link := range group.Items {
			item := fmt.Sprintf("%s/items[%d]", base, j)
			check.RequireString(item+"/label", link.Label)
			validateLink(check, item, link.To, link.Href)
		}
	}
}

func validateLink(check *validate.Checker, path, to, href string) {
	switch {
	case (to == "") == (href == ""):
		check.Fail(path, map[string]string{"to": to, "href": href}, ErrInvalidLink)
	case to != "":
		if to[0] != '/' {
			check.Fail(path+"/to", to, errors.New("internal links must start with a slash"))
			return
		}
		check.OK(path+"/to", to)
	default:
		check.Check(path+"/href", href, validateAbsoluteURL(href))
	}
}
