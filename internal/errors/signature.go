package errors

import "fmt"

// InvalidSignatureError reports an annotated function that cannot become an action
type InvalidSignatureError struct {
	*BaseError
	Function string // identifier of the rejected function
	Reason   string // which eligibility rule failed
}

// NewInvalidSignatureError creates an InvalidSignatureError anchored at loc
func NewInvalidSignatureError(function, reason string, loc SourceLocation) *InvalidSignatureError {
	base := New(InvalidSignatureErrorCode, fmt.Sprintf("invalid action %s: %s", function, reason)).
		WithLocation(loc).
		WithContext("function", function)
	return &InvalidSignatureError{
		BaseError: base,
		Function:  function,
		Reason:    reason,
	}
}

// WithSuggestions adds helpful suggestions
func (e *InvalidSignatureError) WithSuggestions(suggestions ...string) *InvalidSignatureError {
	e.BaseError.WithSuggestions(suggestions...)
	return e
}
