package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// CSS renders prism-style rules for p scoped under selector. Each category is
// emitted once, with the style of the entry that owns it.
func CSS(p *Palette, selector string) string {
	if p == nil {
		return ""
	}
	selector = strings.TrimSpace(selector)

	var out strings.Builder
	fmt.Fprintf(&out, "/* %s (%s) */\n", p.Name, p.Mode)
	writeRule(&out, scoped(selector, ""), []string{
		"color: " + p.PlainColor,
		"background-color: " + p.PlainBackground,
	})

	for i, entry := range p.Entries {
		selectors := make([]string, 0, len(entry.Categories))
		for _, category := range entry.Categories {
			if p.Owner(category) != i {
				continue
			}
			selectors = append(selectors, scoped(selector, ".token."+category))
		}
		if len(selectors) == 0 {
			continue
		}
		writeRule(&out, strings.Join(selectors, ",\n"), declarations(entry.Style))
	}
	return out.String()
}

func scoped(root, token string) string {
	switch {
	case root == "" && token == "":
		return ":root"
	case root == "":
		return token
	case token == "":
		return root
	default:
		return root + " " + token
	}
}

func declarations(style TokenStyle) []string {
	decls := []string{"color: " + style.Color}
	if style.Italic {
		decls = append(decls, "font-style: italic")
	}
	if style.Bold {
		decls = append(decls, "font-weight: bold")
	}
	if style.Opacity != 0 {
		decls = append(decls, "opacity: "+strconv.FormatFloat(style.Opacity, 'f', -1, 64))
	}
	return decls
}

func writeRule(out *strings.Builder, selector string, decls []string) {
	out.WriteString(selector)
	out.WriteString(" {\n")
	for _, decl := range decls {
		out.WriteString("  ")
		out.WriteString(decl)
		out.WriteString(";\n")
	}
	out.WriteString("}\n")
}
