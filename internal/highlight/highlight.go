// Package highlight renders code samples with the site's palettes through chroma.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/opencode-ai/blogsite/internal/palette"
)

// Format selects the output encoding.
type Format string

const (
	// FormatHTML writes a <pre> block with inline styles.
	FormatHTML Format = "html"
	// FormatTerminal writes 24-bit ANSI escapes.
	FormatTerminal Format = "terminal"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatHTML, "":
		return FormatHTML, nil
	case FormatTerminal, "ansi":
		return FormatTerminal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// Options control Render.
type Options struct {
	Language    string
	Filename    string
	Mode        palette.Mode
	Format      Format
	LineNumbers bool
	Standalone  bool
}

// StyleFor converts p into a chroma style. Opacity has no chroma
// equivalent and is dropped.
func StyleFor(p *palette.Palette) (*chroma.Style, error) {
	if p == nil {
		return nil, errors.New("palette is required")
	}

	builder := chroma.NewStyleBuilder(p.Name)
	builder.Add(chroma.Background, fmt.Sprintf("bg:%s %s", p.PlainBackground, p.PlainColor))
	for _, t := range TokenTypes() {
		style, ok := p.Lookup(CategoryFor(t))
		if !ok {
			continue
		}
		builder.Add(t, entryFor(style))
	}

	style, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build chroma style %s: %w", p.Name, err)
	}
	return style, nil
}

func entryFor(style palette.TokenStyle) string {
	parts := []string{style.Color}
	if style.Italic {
		parts = append(parts, "italic")
	}
	if style.Bold {
		parts = append(parts, "bold")
	}
	return strings.Join(parts, " ")
}

// Lexer picks a lexer by language name, then filename, then content.
func Lexer(language, filename, source string) chroma.Lexer {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Render highlights source with the palette selected by opts.Mode.
func Render(w io.Writer, source string, set palette.Set, opts Options) error {
	p := set.Palette(opts.Mode)
	style, err := StyleFor(p)
	if err != nil {
		return err
	}

	formatter, err := formatterFor(opts)
	if err != nil {
		return err
	}

	lexer := Lexer(opts.Language, opts.Filename, source)
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise with %s: %w", lexer.Config().Name, err)
	}

	if err := formatter.Format(w, style, iterator); err != nil {
		return fmt.Errorf("format %s: %w", opts.Format, err)
	}
	return nil
}

func formatterFor(opts Options) (chroma.Formatter, error) {
	switch opts.Format {
	case FormatHTML, "":
		return html.New(
			html.WithClasses(false),
			html.WithLineNumbers(opts.LineNumbers),
			html.Standalone(opts.Standalone),
		), nil
	case FormatTerminal:
		return formatters.Get("terminal16m"), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// Categories tokenises source and returns the palette category of every
// non-whitespace token, in order. Tokens without a category report "".
func Categories(language, source string) ([]TokenCategory, error) {
	lexer := Lexer(language, "", source)
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, err
	}

	out := make([]TokenCategory, 0)
	for token := iterator(); token != chroma.EOF; token = iterator() {
		if strings.TrimSpace(token.Value) == "" {
			continue
		}
		out = append(out, TokenCategory{Text: token.Value, Type: token.Type.String(), Category: CategoryFor(token.Type)})
	}
	return out, nil
}

// TokenCategory pairs a token's text with its palette category.
type TokenCategory struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Category string `json:"category"`
}
