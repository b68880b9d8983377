package parser

import (
	"fmt"
	"strings"

	"github.com/toyz/runar/internal/annotations"
	"github.com/toyz/runar/internal/errors"
)

// knownKinds lists every annotation kind the parser understands.
var knownKinds = []string{annotations.ActionKind}

// reportUnknownAnnotation creates a diagnostic for a runar:: comment whose kind is not recognized.
func reportUnknownAnnotation(kind string, loc errors.SourceLocation) error {
	err := errors.Newf(errors.SyntaxErrorCode, "unknown annotation %s%s", annotations.Prefix, kind).
		WithLocation(loc).
		WithContext("kind", kind)

	if guess := closestKind(kind); guess != "" {
		err.WithSuggestions(fmt.Sprintf("did you mean %s%s?", annotations.Prefix, guess))
	}
	err.WithSuggestions("supported annotations: " + annotations.Prefix + strings.Join(knownKinds, ", "+annotations.Prefix))
	return err
}

// reportMisplacedAnnotation creates a diagnostic for an action annotation that is not attached to a function.
func reportMisplacedAnnotation(loc errors.SourceLocation) error {
	return errors.Newf(errors.ValidationErrorCode, "%s%s must be attached to a method declaration", annotations.Prefix, annotations.ActionKind).
		WithLocation(loc).
		WithSuggestions("move the annotation into the doc comment directly above the method")
}

// reportDuplicateAnnotation creates a diagnostic for a function carrying more than one action annotation.
func reportDuplicateAnnotation(function string, loc errors.SourceLocation) error {
	return errors.Newf(errors.ValidationErrorCode, "%s has more than one %s%s annotation; only the first is used", function, annotations.Prefix, annotations.ActionKind).
		WithLocation(loc).
		WithContext("function", function).
		WithSuggestions("remove the extra annotation")
}

// closestKind returns the known kind within an edit distance of two, if any.
func closestKind(kind string) string {
	best, bestDist := "", 3
	for _, k := range knownKinds {
		if d := editDistance(kind, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
