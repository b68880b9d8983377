package models

import (
	"go/ast"
	"go/token"
)

// SourceLocation identifies a position in a Go source file
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// NewSourceLocation converts a token.Position
func NewSourceLocation(pos token.Position) SourceLocation {
	return SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column}
}

// Parameter is one non-receiver parameter of an annotated method
type Parameter struct {
	Name        string // parameter identifier
	Type        string // declared type as written in source
	IsReference bool   // true for pointer types
}

// AnnotatedFunction is a function declaration carrying a //runar::action annotation
type AnnotatedFunction struct {
	Name         string         // function identifier
	Attributes   string         // raw option text following the annotation
	Params       []Parameter    // non-receiver parameters
	Results      *ast.FieldList // declared results, nil when absent
	IsAsync      bool           // first parameter is context.Context
	Receiver     ReceiverKind   // how the method receives its service
	ReceiverType string         // base named type of the receiver, empty for free functions

	Decl     *ast.FuncDecl // parsed declaration
	FileSet  *token.FileSet
	Location SourceLocation // position of the annotation comment
}

// Position resolves p against the function's file set
func (f *AnnotatedFunction) Position(p token.Pos) SourceLocation {
	if f.FileSet == nil || !p.IsValid() {
		return f.Location
	}
	return NewSourceLocation(f.FileSet.Position(p))
}

// IsMethod reports whether the function has a receiver
func (f *AnnotatedFunction) IsMethod() bool {
	return f.Receiver != ReceiverNone
}
