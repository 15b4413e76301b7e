package palette

// SolarizedDark mirrors SolarizedLight's categories on the dark base tones.
var SolarizedDark = NewPalette("solarized-dark", ModeDark, "#839496", "#002b36", []PaletteEntry{
	{Categories: []string{"comment", "prolog", "doctype", "cdata"}, Style: TokenStyle{Color: "#586e75", Italic: true}},
	{Categories: []string{"namespace"}, Style: TokenStyle{Color: "#839496", Opacity: 0.7}},
	{Categories: []string{"string", "attr-value"}, Style: TokenStyle{Color: "#2aa198"}},
	{Categories: []string{"punctuation", "operator"}, Style: TokenStyle{Color: "#93a1a1"}},
	{Categories: []string{"entity", "url", "symbol", "number", "boolean", "variable", "constant", "property", "regex", "inserted"}, Style: TokenStyle{Color: "#d33682"}},
	{Categories: []string{"atrule", "keyword", "attr-name", "selector"}, Style: TokenStyle{Color: "#859900"}},
	{Categories: []string{"function", "deleted", "tag"}, Style: TokenStyle{Color: "#268bd2"}},
	{Categories: []string{"function-variable"}, Style: TokenStyle{Color: "#b58900"}},
	{Categories: []string{"tag", "selector", "keyword", "class-name"}, Style: TokenStyle{Color: "#b58900"}},
	{Categories: []string{"builtin", "char"}, Style: TokenStyle{Color: "#cb4b16"}},
	{Categories: []string{"important", "bold"}, Style: TokenStyle{Color: "#dc322f", Bold: true}},
	{Categories: []string{"italic"}, Style: TokenStyle{Color: "#839496", Italic: true}},
})
