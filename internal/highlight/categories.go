package highlight

import "github.com/alecthomas/chroma/v2"

// categories maps chroma token types onto the token categories used by the
// palettes. Types not listed here fall back to their sub-category, then
// their category.
var categories = map[chroma.TokenType]string{
	chroma.Comment:         "comment",
	chroma.CommentPreproc:  "prolog",
	chroma.CommentHashbang: "comment",

	chroma.Keyword:         "keyword",
	chroma.KeywordConstant: "boolean",
	chroma.KeywordType:     "class-name",

	chroma.Name:              "",
	chroma.NameAttribute:     "attr-name",
	chroma.NameBuiltin:       "builtin",
	chroma.NameBuiltinPseudo: "builtin",
	chroma.NameClass:         "class-name",
	chroma.NameConstant:      "constant",
	chroma.NameDecorator:     "atrule",
	chroma.NameEntity:        "entity",
	chroma.NameException:     "class-name",
	chroma.NameFunction:      "function",
	chroma.NameFunctionMagic: "function",
	chroma.NameLabel:         "symbol",
	chroma.NameNamespace:     "namespace",
	chroma.NameProperty:      "property",
	chroma.NameTag:           "tag",
	chroma.NameVariable:      "variable",
	chroma.NameOther:         "variable",

	// The Name range is flat, so variable kinds are listed one by one.
	chroma.NameVariableAnonymous: "variable",
	chroma.NameVariableClass:     "variable",
	chroma.NameVariableGlobal:    "variable",
	chroma.NameVariableInstance:  "variable",
	chroma.NameVariableMagic:     "variable",

	chroma.LiteralString:       "string",
	chroma.LiteralStringChar:   "char",
	chroma.LiteralStringRegex:  "regex",
	chroma.LiteralStringSymbol: "symbol",
	chroma.LiteralNumber:       "number",
	chroma.LiteralDate:         "constant",

	chroma.Operator:     "operator",
	chroma.OperatorWord: "keyword",
	chroma.Punctuation:  "punctuation",

	chroma.GenericDeleted:  "deleted",
	chroma.GenericInserted: "inserted",
	chroma.GenericEmph:     "italic",
	chroma.GenericStrong:   "bold",
	chroma.GenericHeading:  "important",
	chroma.GenericError:    "important",
}

// CategoryFor returns the palette category for a chroma token type, or ""
// when the type has no counterpart.
func CategoryFor(t chroma.TokenType) string {
	for _, candidate := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if category, ok := categories[candidate]; ok {
			return category
		}
	}
	return ""
}

// TokenTypes lists the chroma types that map to a category, so a style
// built from a palette styles every one of them explicitly.
func TokenTypes() []chroma.TokenType {
	types := make([]chroma.TokenType, 0, len(categories))
	for t, category := range categories {
		if category == "" {
			continue
		}
		types = append(types, t)
	}
	return types
}
