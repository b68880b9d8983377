package annotations

import "strings"

const (
	// Prefix marks a runar annotation comment.
	Prefix = "runar::"

	// ActionKind is the annotation kind that turns a method into an action.
	ActionKind = "action"
)

// Directive is a single runar annotation found in a doc comment.
type Directive struct {
	Kind       string // annotation kind, e.g. "action"
	Attributes string // raw option text following the kind
}

// IsAction reports whether the directive declares an action.
func (d Directive) IsAction() bool {
	return d.Kind == ActionKind
}

// ParseComment recognizes "//runar::<kind> <options>" and its spaced form
// "// runar::<kind> <options>". ok is false for any other comment.
func ParseComment(comment string) (Directive, bool) {
	text, found := strings.CutPrefix(comment, "//")
	if !found {
		return Directive{}, false
	}
	text, found = strings.CutPrefix(strings.TrimLeft(text, " \t"), Prefix)
	if !found {
		return Directive{}, false
	}

	kind := text
	rest := ""
	if i := strings.IndexAny(text, " \t("); i >= 0 {
		kind, rest = text[:i], text[i:]
	}
	if kind == "" {
		return Directive{}, false
	}
	return Directive{Kind: kind, Attributes: strings.TrimSpace(rest)}, true
}

// ParseDirective returns the raw option text of an action annotation.
func ParseDirective(comment string) (attrs string, ok bool) {
	d, ok := ParseComment(comment)
	if !ok || !d.IsAction() {
		return "", false
	}
	return d.Attributes, true
}
