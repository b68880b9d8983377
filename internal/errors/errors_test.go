package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		loc      SourceLocation
		expected string
	}{
		{SourceLocation{}, "unknown location"},
		{SourceLocation{File: "a.go"}, "a.go"},
		{SourceLocation{File: "a.go", Line: 3}, "a.go:3"},
		{SourceLocation{File: "a.go", Line: 3, Column: 7}, "a.go:3:7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.loc.String())
	}
}

func TestBaseError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := WrapFileSystemError("write", "autogen_actions.go", cause)

	assert.Equal(t, FileSystemErrorCode, err.ErrorCode())
	assert.Equal(t, "failed to write file 'autogen_actions.go'", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "write", err.Context()["operation"])

	located := New(ValidationErrorCode, "bad").WithLocation(SourceLocation{File: "x.go", Line: 1, Column: 2})
	assert.Equal(t, "x.go:1:2: bad", located.Error())
	assert.Empty(t, located.Context())
}

func TestInvalidSignatureError(t *testing.T) {
	loc := SourceLocation{File: "svc.go", Line: 10, Column: 1}
	err := NewInvalidSignatureError("GetUser", "must be asynchronous", loc).
		WithSuggestions("add ctx context.Context")

	assert.Equal(t, InvalidSignatureErrorCode, err.ErrorCode())
	assert.Equal(t, "svc.go:10:1: invalid action GetUser: must be asynchronous", err.Error())
	assert.Equal(t, []string{"add ctx context.Context"}, err.Suggestions())
	assert.Equal(t, loc, err.Location())

	var target *InvalidSignatureError
	var wrapped error = WrapGenerateError("pkg", err)
	require.True(t, stderrors.As(wrapped, &target))
	assert.Equal(t, "GetUser", target.Function)
}

func TestMultipleErrors(t *testing.T) {
	all := &MultipleErrors{}
	assert.NoError(t, all.ErrOrNil())
	assert.Equal(t, "no errors", all.Error())

	first := NewInvalidSignatureError("A", "must be asynchronous", SourceLocation{File: "a.go", Line: 1})
	second := WrapParseError("b.go", stderrors.New("unexpected EOF"))
	all.Add(first)
	assert.Equal(t, first.Error(), all.Error())

	all.Add(second)
	require.Error(t, all.ErrOrNil())
	assert.Contains(t, all.Error(), "multiple errors (2 total)")
	assert.True(t, all.HasCode(InvalidSignatureErrorCode))
	assert.False(t, all.HasCode(TemplateErrorCode))

	var sig *InvalidSignatureError
	assert.True(t, stderrors.As(all, &sig))
	assert.Equal(t, "A", sig.Function)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "InvalidSignature", InvalidSignatureErrorCode.String())
	assert.Equal(t, "UnknownError", ErrorCode(99).String())
}
