package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// NameOption is the only option key that affects generation.
const NameOption = "name"

// AttributeOptions holds the string-valued options of an action annotation.
// Keys other than NameOption are kept but ignored.
type AttributeOptions map[string]string

// Name returns the explicit operation name, if one was given.
// An empty string counts as absent.
func (o AttributeOptions) Name() (string, bool) {
	name, ok := o[NameOption]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// attributeList is the root of the option grammar. The list may be
// wrapped in a single pair of parentheses.
type attributeList struct {
	Wrapped *metaList `parser:"  '(' @@? ')'"`
	Bare    *metaList `parser:"| @@"`
}

type metaList struct {
	Items []*metaItem `parser:"@@ ( ',' @@ )* ','?"`
}

type metaItem struct {
	Key  string    `parser:"@Ident"`
	Tail *metaTail `parser:"@@?"`
}

type metaTail struct {
	Value  *metaValue `parser:"  '=' @@"`
	Nested *metaList  `parser:"| '(' @@? ')'"`
}

type metaValue struct {
	String *string `parser:"  @(String | RawString)"`
	Number *string `parser:"| @Number"`
	Ident  *string `parser:"| @Ident"`
}

var attributeParser = participle.MustBuild[attributeList](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "RawString", Pattern: "`[^`]*`"},
		{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Unquote("String", "RawString"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseAttributes parses the option text of an action annotation into
// name/value pairs. Only items whose value is a string literal are
// recorded; later duplicates win. Empty or malformed input yields an
// empty map and never an error.
func ParseAttributes(text string) AttributeOptions {
	opts := make(AttributeOptions)
	text = strings.TrimSpace(text)
	if text == "" {
		return opts
	}

	root, err := parseAttributeList(text)
	if err != nil {
		return opts
	}

	list := root.Bare
	if root.Wrapped != nil {
		list = root.Wrapped
	}
	if list == nil {
		return opts
	}

	for _, item := range list.Items {
		if item.Tail == nil || item.Tail.Value == nil || item.Tail.Value.String == nil {
			continue
		}
		opts[item.Key] = *item.Tail.Value.String
	}
	return opts
}

// parseAttributeList runs the grammar and turns a parser panic into an error
func parseAttributeList(text string) (root *attributeList, err error) {
	defer func() {
		if r := recover(); r != nil {
			root, err = nil, fmt.Errorf("parse attributes %q: %v", text, r)
		}
	}()
	return attributeParser.ParseString("", text)
}

// OperationName resolves the operation name for an action, falling back to
// the method identifier when no usable name option is present.
func OperationName(opts AttributeOptions, fallback string) string {
	if name, ok := opts.Name(); ok {
		return name
	}
	return fallback
}
