package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blogsite/internal/palette"
	"github.com/opencode-ai/blogsite/internal/validate"
)

const minimal = `title: Example
url: https://example.com
baseUrl: /
`

func TestParseMinimalAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimal), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, BrokenLinksThrow, cfg.OnBrokenLinks)
	assert.Equal(t, BrokenLinksWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, []string{"en"}, cfg.I18n.Locales)
	assert.Equal(t, "blog", cfg.Blog.Path)
	assert.Equal(t, "/", cfg.Blog.RouteBasePath)
	assert.Equal(t, SidebarCount(5), cfg.Blog.BlogSidebarCount)
	assert.Equal(t, FeedTypes{FeedRSS, FeedAtom}, cfg.Blog.FeedOptions.Type)
	assert.Equal(t, "en", cfg.Blog.FeedOptions.Language)
	assert.Equal(t, "light", cfg.ColorMode.DefaultMode)
	assert.Equal(t, "solarized-light", cfg.Prism.LightTheme)
	assert.Equal(t, "solarized-dark", cfg.Prism.DarkTheme)
	assert.Equal(t, "dark", cfg.Footer.Style)
	assert.Equal(t, "https://example.com/", cfg.SiteURL())
	assert.Equal(t, "https://example.com/", cfg.BlogURL())
}

func TestRequiredFieldsFailFast(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"missing title", "url: https://example.com\nbaseUrl: /\n", ErrTitleRequired},
		{"missing url", "title: x\nbaseUrl: /\n", ErrURLRequired},
		{"missing baseUrl", "title: x\nurl: https://example.com\n", ErrBaseURLRequired},
		{"blank title", "title: '   '\nurl: https://example.com\nbaseUrl: /\n", ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml), zerolog.Nop())
			require.Nil(t, cfg)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, validate.ErrRequired)
		})
	}
}

func TestEmptyDocumentReportsAllRequiredFields(t *testing.T) {
	_, err := Parse(nil, zerolog.Nop())
	require.Error(t, err)

	var verr *validate.ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.ErrorIs(t, err, ErrTitleRequired)
	require.ErrorIs(t, err, ErrURLRequired)
	require.ErrorIs(t, err, ErrBaseURLRequired)
	require.Len(t, verr.Errors(), 3)
}

func TestUnknownKeysRejected(t *testing.T) {
	_, err := Parse([]byte(minimal+"titel: typo\n"), zerolog.Nop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "titel")
}

func TestValidationProblems(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{"url with path", "url: https://example.com/blog\n", "url"},
		{"url without scheme", "url: example.com\n", "url"},
		{"base path without slashes", "baseUrl: blog\n", "baseUrl"},
		{"bad broken link policy", "onBrokenLinks: explode\n", "onBrokenLinks"},
		{"default locale not listed", "i18n: {defaultLocale: fr, locales: [en]}\n", "i18n/defaultLocale"},
		{"duplicate locale", "i18n: {defaultLocale: en, locales: [en, en]}\n", "i18n/locales[1]"},
		{"bad sidebar count", "blog: {blogSidebarCount: -3}\n", "blog/blogSidebarCount"},
		{"bad feed type", "blog: {feedOptions: {type: [rss, gopher]}}\n", "blog/feedOptions/type[1]"},
		{"relative edit url", "blog: {editUrl: edit/main}\n", "blog/editUrl"},
		{"bad color mode", "colorMode: {defaultMode: sepia}\n", "colorMode/defaultMode"},
		{"navbar item with both targets", "navbar: {items: [{label: A, to: /a, href: https://a.example}]}\n", "navbar/items[0]"},
		{"navbar item without target", "navbar: {items: [{label: A}]}\n", "navbar/items[0]"},
		{"navbar relative to", "navbar: {items: [{label: A, to: a}]}\n", "navbar/items[0]/to"},
		{"navbar bad position", "navbar: {items: [{label: A, to: /a, position: middle}]}\n", "navbar/items[0]/position"},
		{"footer bad style", "footer: {style: neon}\n", "footer/style"},
		{"footer link without label", "footer: {links: [{title: T, items: [{href: https://x.example}]}]}\n", "footer/links[0]/items[0]/label"},
	}

	base := map[string]string{
		"title":   "title: Example\n",
		"url":     "url: https://example.com\n",
		"baseUrl": "baseUrl: /\n",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.yaml
			for key, line := range base {
				if !strings.HasPrefix(tt.yaml, key+":") {
					doc += line
				}
			}

			_, err := Parse([]byte(doc), zerolog.Nop())
			require.Error(t, err)

			var ferr *validate.FieldError
			require.True(t, errors.As(err, &ferr))
			require.Equal(t, tt.path, ferr.Path, err.Error())
		})
	}
}

func TestSidebarCountAll(t *testing.T) {
	cfg, err := Parse([]byte(minimal+"blog:\n  blogSidebarCount: ALL\n"), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, cfg.Blog.BlogSidebarCount.All())
	require.Equal(t, "ALL", cfg.Blog.BlogSidebarCount.String())

	_, err = Parse([]byte(minimal+"blog:\n  blogSidebarCount: lots\n"), zerolog.Nop())
	require.Error(t, err)
}

func TestFeedTypes(t *testing.T) {
	cfg, err := Parse([]byte(minimal+"blog:\n  feedOptions:\n    type: ALL\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, FeedTypes{FeedAll}, cfg.Blog.FeedOptions.Type)
	require.Equal(t, []FeedType{FeedRSS, FeedAtom, FeedJSON}, cfg.Blog.FeedOptions.Type.Expand())
	require.True(t, cfg.Blog.FeedOptions.Type.Has(FeedJSON))

	types := FeedTypes{FeedAtom, FeedAll, FeedAtom}
	require.Equal(t, []FeedType{FeedAtom, FeedRSS, FeedJSON}, types.Expand())
}

func TestRouteBasePathGetsLeadingSlash(t *testing.T) {
	cfg, err := Parse([]byte("title: x\nurl: https://example.com\nbaseUrl: /site/\nblog:\n  routeBasePath: blog\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "/blog", cfg.Blog.RouteBasePath)
	require.Equal(t, "https://example.com/site/", cfg.SiteURL())
	require.Equal(t, "https://example.com/site/blog/", cfg.BlogURL())
}

func TestScaffoldIsValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scaffold(&buf))

	cfg, err := Parse(buf.Bytes(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "Notes from the Workbench", cfg.Title)
	require.True(t, cfg.Blog.BlogSidebarCount.All())
	require.Len(t, cfg.Navbar.Items, 3)
	require.Equal(t, PositionRight, cfg.Navbar.Items[2].Position)
	require.Equal(t, "https://github.com/example", cfg.Navbar.Items[2].Target())
	require.Len(t, cfg.Footer.Links, 2)
}

func TestWriteScaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, WriteScaffold(path, false))

	err := WriteScaffold(path, false)
	require.ErrorIs(t, err, ErrConfigExists)
	require.NoError(t, WriteScaffold(path, true))

	cfg, err := Load(path, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.Equal(t, filepath.Dir(path), cfg.ProjectDir())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), zerolog.Nop())
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("  ", zerolog.Nop())
	require.Error(t, err)
}

func TestPalettesResolveBuiltins(t *testing.T) {
	cfg, err := Parse([]byte(minimal), zerolog.Nop())
	require.NoError(t, err)

	set, err := cfg.Palettes(t.TempDir())
	require.NoError(t, err)
	require.Same(t, palette.SolarizedLight, set.Light)
	require.Same(t, palette.SolarizedDark, set.Dark)
	require.Equal(t, palette.ModeLight, cfg.DefaultMode())
}

func TestPalettesUnknownTheme(t *testing.T) {
	cfg, err := Parse([]byte(minimal+"prism:\n  darkTheme: dracula\n"), zerolog.Nop())
	require.NoError(t, err)

	_, err = cfg.Palettes(t.TempDir())
	require.ErrorIs(t, err, palette.ErrPaletteNotFound)
}

func TestValidationLogsFieldPaths(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	_, err := Parse([]byte("url: https://example.com\nbaseUrl: /\n"), logger)
	require.Error(t, err)
	require.Contains(t, buf.String(), `"config":"title"`)
	require.Contains(t, buf.String(), `"message":"invalid config value"`)
}

func TestParseBrokenLinkPolicy(t *testing.T) {
	policy, err := ParseBrokenLinkPolicy(" Warn ")
	require.NoError(t, err)
	require.Equal(t, BrokenLinksWarn, policy)

	_, err = ParseBrokenLinkPolicy("explode")
	require.ErrorIs(t, err, ErrUnknownPolicy)

	cfg, err := Parse([]byte(minimal+"onBrokenLinks: LOG\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, BrokenLinksLog, cfg.OnBrokenLinks)
}
