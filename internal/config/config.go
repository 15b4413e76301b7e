// Package config loads and validates the site configuration record consumed
// by the static-site generator.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned for a broken-link policy outside BrokenLinkPolicies.
var ErrUnknownPolicy = errors.New("unknown broken-link policy")

// BrokenLinkPolicy controls how the generator reacts to a dead internal link.
type BrokenLinkPolicy string

const (
	BrokenLinksIgnore BrokenLinkPolicy = "ignore"
	BrokenLinksLog    BrokenLinkPolicy = "log"
	BrokenLinksWarn   BrokenLinkPolicy = "warn"
	BrokenLinksThrow  BrokenLinkPolicy = "throw"
)

// BrokenLinkPolicies lists the accepted policies.
var BrokenLinkPolicies = []BrokenLinkPolicy{BrokenLinksIgnore, BrokenLinksLog, BrokenLinksWarn, BrokenLinksThrow}

// ParseBrokenLinkPolicy parses a policy name, case-insensitively.
func ParseBrokenLinkPolicy(value string) (BrokenLinkPolicy, error) {
	policy := BrokenLinkPolicy(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range BrokenLinkPolicies {
		if policy == known {
			return policy, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
}

// SiteConfig is the single record describing the site.
type SiteConfig struct {
	Title            string `yaml:"title" json:"title"`
	Tagline          string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Favicon          string `yaml:"favicon,omitempty" json:"favicon,omitempty"`
	URL              string `yaml:"url" json:"url"`
	BaseURL          string `yaml:"baseUrl" json:"baseUrl"`
	OrganizationName string `yaml:"organizationName,omitempty" json:"organizationName,omitempty"`
	ProjectName      string `yaml:"projectName,omitempty" json:"projectName,omitempty"`

	OnBrokenLinks         BrokenLinkPolicy `yaml:"onBrokenLinks,omitempty" json:"onBrokenLinks"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `yaml:"onBrokenMarkdownLinks,omitempty" json:"onBrokenMarkdownLinks"`

	I18n      I18nConfig      `yaml:"i18n" json:"i18n"`
	Blog      BlogConfig      `yaml:"blog" json:"blog"`
	Theme     ThemeConfig     `yaml:"theme" json:"theme"`
	ColorMode ColorModeConfig `yaml:"colorMode" json:"colorMode"`
	Prism     PrismConfig     `yaml:"prism" json:"prism"`
	Navbar    NavbarConfig    `yaml:"navbar" json:"navbar"`
	Footer    FooterConfig    `yaml:"footer" json:"footer"`

	// Source is the file the record was loaded from, if any.
	Source string `yaml:"-" json:"-"`
}

// I18nConfig lists the site's locales.
type I18nConfig struct {
	DefaultLocale string   `yaml:"defaultLocale" json:"defaultLocale"`
	Locales       []string `yaml:"locales" json:"locales"`
}

// BlogConfig declares the blog content directory served as the home route.
type BlogConfig struct {
	Path             string       `yaml:"path" json:"path"`
	RouteBasePath    string       `yaml:"routeBasePath" json:"routeBasePath"`
	ShowReadingTime  bool         `yaml:"showReadingTime" json:"showReadingTime"`
	BlogTitle        string       `yaml:"blogTitle,omitempty" json:"blogTitle,omitempty"`
	BlogDescription  string       `yaml:"blogDescription,omitempty" json:"blogDescription,omitempty"`
	BlogSidebarTitle string       `yaml:"blogSidebarTitle,omitempty" json:"blogSidebarTitle,omitempty"`
	BlogSidebarCount SidebarCount `yaml:"blogSidebarCount,omitempty" json:"blogSidebarCount"`
	PostsPerPage     int          `yaml:"postsPerPage,omitempty" json:"postsPerPage,omitempty"`
	EditURL          string       `yaml:"editUrl,omitempty" json:"editUrl,omitempty"`
	FeedOptions      FeedOptions  `yaml:"feedOptions" json:"feedOptions"`
}

// FeedOptions configures feed generation for the blog.
type FeedOptions struct {
	Type        FeedTypes `yaml:"type,omitempty" json:"type"`
	Title       string    `yaml:"title,omitempty" json:"title,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Copyright   string    `yaml:"copyright,omitempty" json:"copyright,omitempty"`
	Language    string    `yaml:"language,omitempty" json:"language,omitempty"`
}

// ThemeConfig points at the site's CSS overrides.
type ThemeConfig struct {
	CustomCSS string `yaml:"customCss,omitempty" json:"customCss,omitempty"`
}

// ColorModeConfig configures the light/dark switch.
type ColorModeConfig struct {
	DefaultMode               string `yaml:"defaultMode,omitempty" json:"defaultMode"`
	DisableSwitch             bool   `yaml:"disableSwitch,omitempty" json:"disableSwitch"`
	RespectPrefersColorScheme bool   `yaml:"respectPrefersColorScheme,omitempty" json:"respectPrefersColorScheme"`
}

// PrismConfig names the palettes handed to the code highlighter.
type PrismConfig struct {
	LightTheme          string   `yaml:"lightTheme,omitempty" json:"lightTheme"`
	DarkTheme           string   `yaml:"darkTheme,omitempty" json:"darkTheme"`
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty" json:"additionalLanguages,omitempty"`
}

// NavbarConfig describes the top navigation.
type NavbarConfig struct {
	Title string       `yaml:"title,omitempty" json:"title,omitempty"`
	Logo  *Logo        `yaml:"logo,omitempty" json:"logo,omitempty"`
	Items []NavbarItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// Logo is an image shown in the navbar.
type Logo struct {
	Alt     string `yaml:"alt" json:"alt"`
	Src     string `yaml:"src" json:"src"`
	SrcDark string `yaml:"srcDark,omitempty" json:"srcDark,omitempty"`
}

// Position places a navbar item.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// NavbarItem is a link in the navbar. Exactly one of To or Href is set.
type NavbarItem struct {
	Label    string   `yaml:"label" json:"label"`
	To       string   `yaml:"to,omitempty" json:"to,omitempty"`
	Href     string   `yaml:"href,omitempty" json:"href,omitempty"`
	Position Position `yaml:"position,omitempty" json:"position"`
}

// Target returns the link target, internal or external.
func (i NavbarItem) Target() string {
	if i.To != "" {
		return i.To
	}
	return i.Href
}

// FooterConfig describes the footer link groups.
type FooterConfig struct {
	Style     string        `yaml:"style,omitempty" json:"style"`
	Links     []FooterGroup `yaml:"links,omitempty" json:"links,omitempty"`
	Copyright string        `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string       `yaml:"title" json:"title"`
	Items []FooterLink `yaml:"items" json:"items"`
}

// FooterLink is a single footer link. Exactly one of To or Href is set.
type FooterLink struct {
	Label string `yaml:"label" json:"label"`
	To    string `yaml:"to,omitempty" json:"to,omitempty"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
}

// Target returns the link target, internal or external.
func (l FooterLink) Target() string {
	if l.To != "" {
		return l.To
	}
	return l.Href
}
