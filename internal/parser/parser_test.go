package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

const userService = `package users

import (
	"context"

	"github.com/toyz/runar/pkg/runar"
)

type UserService struct{}

//runar::action name = "get_user"
func (s *UserService) GetUser(ctx context.Context, params runar.Params) (*runar.ServiceResponse, error) {
	return nil, nil
}

// Count returns the number of users.
//
//runar::action
func (s UserService) Count(ctx context.Context) (int, error) {
	return 0, nil
}

// Unannotated is ignored.
func (s *UserService) Unannotated(ctx context.Context) {}

//runar::action
func Helper() {}
`

func TestParseSource(t *testing.T) {
	p := NewParser()
	metadata, err := p.ParseSource("users.go", userService)
	require.NoError(t, err)

	assert.Equal(t, "users", metadata.PackageName)
	assert.Empty(t, metadata.Diagnostics)
	require.Len(t, metadata.Functions, 3)

	getUser := metadata.Functions[0]
	assert.Equal(t, "GetUser", getUser.Name)
	assert.Equal(t, `name = "get_user"`, getUser.Attributes)
	assert.True(t, getUser.IsAsync)
	assert.Equal(t, models.ReceiverByMutableReference, getUser.Receiver)
	assert.Equal(t, "UserService", getUser.ReceiverType)
	assert.Equal(t, models.SourceLocation{File: "users.go", Line: 11, Column: 1}, getUser.Location)
	assert.Equal(t, []models.Parameter{
		{Name: "ctx", Type: "context.Context"},
		{Name: "params", Type: "runar.Params"},
	}, getUser.Params)

	count := metadata.Functions[1]
	assert.Equal(t, "Count", count.Name)
	assert.Empty(t, count.Attributes)
	assert.Equal(t, models.ReceiverByReference, count.Receiver)

	helper := metadata.Functions[2]
	assert.Equal(t, "Helper", helper.Name)
	assert.False(t, helper.IsAsync)
	assert.Equal(t, models.ReceiverNone, helper.Receiver)
}

func TestParseSource_Diagnostics(t *testing.T) {
	src := `package svc

import "context"

//runar::action
type Service struct{}

//runar::actoin
func (s *Service) Typo(ctx context.Context) {}

//runar::action name = "a"
//runar::action name = "b"
func (s *Service) Twice(ctx context.Context) {}
`
	metadata, err := NewParser().ParseSource("svc.go", src)
	require.NoError(t, err)

	require.Len(t, metadata.Functions, 1)
	assert.Equal(t, "Twice", metadata.Functions[0].Name)
	assert.Equal(t, `name = "a"`, metadata.Functions[0].Attributes)

	require.Len(t, metadata.Diagnostics, 3)

	var misplaced, unknown, duplicate *errors.BaseError
	require.True(t, stderrors.As(metadata.Diagnostics[0], &misplaced))
	assert.Equal(t, errors.ValidationErrorCode, misplaced.ErrorCode())
	assert.Equal(t, 5, misplaced.Location().Line)

	require.True(t, stderrors.As(metadata.Diagnostics[1], &unknown))
	assert.Equal(t, errors.SyntaxErrorCode, unknown.ErrorCode())
	assert.Contains(t, unknown.Error(), "unknown annotation runar::actoin")
	assert.Contains(t, unknown.Suggestions(), "did you mean runar::action?")

	require.True(t, stderrors.As(metadata.Diagnostics[2], &duplicate))
	assert.Equal(t, 12, duplicate.Location().Line)
}

func TestParseSource_SyntaxError(t *testing.T) {
	_, err := NewParser().ParseSource("bad.go", "package bad\nfunc {")
	require.Error(t, err)

	var base *errors.BaseError
	require.True(t, stderrors.As(err, &base))
	assert.Equal(t, errors.SyntaxErrorCode, base.ErrorCode())
}

func TestParseDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("b_service.go", `package svc

import "context"

type B struct{}

//runar::action
func (b *B) Second(ctx context.Context) {}
`)
	write("a_service.go", `package svc

import "context"

type A struct{}

//runar::action
func (a *A) First(ctx context.Context) {}

//runar::action
func (a *A) Also(ctx context.Context) {}
`)
	write("a_service_test.go", `package svc_test

//runar::action
func Ignored() {}
`)
	write("autogen_actions.go", `package svc

//runar::action
func (a *A) Generated() {}
`)
	write("actions_gen.go", `// Code generated by runar. DO NOT EDIT.

package svc

//runar::action
func (a *A) CustomOutput() {}
`)

	metadata, err := NewParser().ParseDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, "svc", metadata.PackageName)
	assert.Equal(t, dir, metadata.PackagePath)

	var names []string
	for _, fn := range metadata.Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"First", "Also", "Second"}, names)
}

func TestParseDirectory_Errors(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		_, err := NewParser().ParseDirectory(t.TempDir())
		assert.ErrorContains(t, err, "no Go packages found")
	})

	t.Run("multiple packages", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b\n"), 0o644))
		_, err := NewParser().ParseDirectory(dir)
		assert.ErrorContains(t, err, "multiple packages found")
	})
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("action", "action"))
	assert.Equal(t, 2, editDistance("actoin", "action"))
	assert.Equal(t, 6, editDistance("", "action"))
	assert.Equal(t, "", closestKind("service"))
}
