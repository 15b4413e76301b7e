package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SidebarCountAll shows every post in the blog sidebar.
const SidebarCountAll = -1

// SidebarCount is a positive post count, or SidebarCountAll. Zero means unset.
type SidebarCount int

// All reports whether the sidebar lists every post.
func (c SidebarCount) All() bool {
	return c == SidebarCountAll
}

func (c SidebarCount) String() string {
	if c.All() {
		return "ALL"
	}
	return strconv.Itoa(int(c))
}

// UnmarshalYAML accepts an integer or the literal ALL.
func (c *SidebarCount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("blogSidebarCount must be a number or ALL (line %d)", value.Line)
	}
	if strings.EqualFold(value.Value, "ALL") {
		*c = SidebarCountAll
		return nil
	}
	n, err := strconv.Atoi(value.Value)
	if err != nil {
		return fmt.Errorf("blogSidebarCount must be a number or ALL, got %q (line %d)", value.Value, value.Line)
	}
	*c = SidebarCount(n)
	return nil
}

// MarshalYAML writes ALL for SidebarCountAll.
func (c SidebarCount) MarshalYAML() (any, error) {
	if c.All() {
		return "ALL", nil
	}
	return int(c), nil
}

// MarshalJSON mirrors MarshalYAML.
func (c SidebarCount) MarshalJSON() ([]byte, error) {
	if c.All() {
		return json.Marshal("ALL")
	}
	return json.Marshal(int(c))
}

// FeedType is a feed format the generator can emit.
type FeedType string

const (
	FeedRSS  FeedType = "rss"
	FeedAtom FeedType = "atom"
	FeedJSON FeedType = "json"
	FeedAll  FeedType = "all"
)

// FeedTypeValues lists the accepted feed types.
var FeedTypeValues = []FeedType{FeedRSS, FeedAtom, FeedJSON, FeedAll}

// FeedTypes is one or more feed formats. In YAML it may be a scalar or a list.
type FeedTypes []FeedType

// UnmarshalYAML accepts `type: rss` as well as `type: [rss, atom]`.
func (f *FeedTypes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*f = nil
			return nil
		}
		*f = FeedTypes{FeedType(strings.ToLower(value.Value))}
		return nil
	case yaml.SequenceNode:
		out := make(FeedTypes, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("feed type must be a string (line %d)", item.Line)
			}
			out = append(out, FeedType(strings.ToLower(item.Value)))
		}
		*f = out
		return nil
	default:
		return fmt.Errorf("feed type must be a string or a list (line %d)", value.Line)
	}
}

// Expand replaces "all" with every concrete format, keeping order and
// dropping duplicates.
func (f FeedTypes) Expand() []FeedType {
	seen := make(map[FeedType]struct{})
	out := make([]FeedType, 0, len(f))
	add := func(t FeedType) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range f {
		if t == FeedAll {
			add(FeedRSS)
			add(FeedAtom)
			add(FeedJSON)
			continue
		}
		add(t)
	}
	return out
}

// Has reports whether the expanded set contains t.
func (f FeedTypes) Has(t FeedType) bool {
	for _, v := range f.Expand() {
		if v == t {
			return true
		}
	}
	return false
}
