package analysis

import (
	"go/ast"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

const (
	// MsgNotAsync is reported for actions that do not take a context first.
	MsgNotAsync = "action methods must be asynchronous (first parameter must be context.Context)"
	// MsgNoReceiver is reported for annotated free functions.
	MsgNoReceiver = "action handlers must be methods with a value or pointer receiver"
)

// ValidateSignature checks that fn can be turned into an action and returns
// the name of the service type that owns it. The asynchronous rule is checked
// before the receiver rule.
func ValidateSignature(fn *models.AnnotatedFunction) (string, error) {
	if !fn.IsAsync {
		return "", errors.NewInvalidSignatureError(fn.Name, MsgNotAsync, location(fn, funcKeyword(fn))).
			WithSuggestions("add ctx context.Context as the first parameter of " + fn.Name)
	}

	if !fn.IsMethod() || fn.ReceiverType == "" {
		err := errors.NewInvalidSignatureError(fn.Name, MsgNoReceiver, location(fn, signatureStart(fn))).
			WithSuggestions("declare " + fn.Name + " as a method on the service type, e.g. func (s *Service) " + fn.Name + "(...)")
		if fn.Decl != nil {
			err.WithContext("end", errors.SourceLocation(fn.Position(fn.Decl.Type.End())).String())
		}
		return "", err
	}

	return fn.ReceiverType, nil
}

// ReceiverOf describes the receiver of decl: its kind and the base type name
// with any pointer and type parameters removed.
func ReceiverOf(decl *ast.FuncDecl) (models.ReceiverKind, string) {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return models.ReceiverNone, ""
	}

	expr := decl.Recv.List[0].Type
	kind := models.ReceiverByReference
	if star, ok := expr.(*ast.StarExpr); ok {
		kind = models.ReceiverByMutableReference
		expr = star.X
	}
	return kind, baseTypeName(expr)
}

func funcKeyword(fn *models.AnnotatedFunction) models.SourceLocation {
	if fn.Decl == nil || fn.Decl.Type == nil {
		return fn.Location
	}
	return fn.Position(fn.Decl.Type.Func)
}

func signatureStart(fn *models.AnnotatedFunction) models.SourceLocation {
	if fn.Decl == nil {
		return fn.Location
	}
	return fn.Position(fn.Decl.Pos())
}

func location(fn *models.AnnotatedFunction, loc models.SourceLocation) errors.SourceLocation {
	if loc.File == "" {
		loc = fn.Location
	}
	return errors.SourceLocation(loc)
}
