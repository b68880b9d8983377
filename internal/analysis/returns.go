package analysis

import (
	"go/ast"

	"github.com/toyz/runar/internal/models"
)

// ClassifyReturn decides the return shape of a result list. responseName is
// the type name that marks a wrapped service response.
//
// A result list ending in error with exactly one other value of the response
// type is a WrappedResponse; any other list ending in error is a RawResult;
// everything else, including no results at all, is Raw.
func ClassifyReturn(results *ast.FieldList, responseName string) models.ReturnShape {
	return DescribeReturn(results, responseName).Shape
}

// DescribeReturn classifies results and records how many values precede the
// trailing error and whether a wrapped response is returned by pointer.
func DescribeReturn(results *ast.FieldList, responseName string) models.ReturnSignature {
	types := flattenResults(results)
	if len(types) == 0 {
		return models.ReturnSignature{Shape: models.Raw}
	}

	if !isErrorIdent(types[len(types)-1]) {
		return models.ReturnSignature{Shape: models.Raw, Values: len(types)}
	}

	values := types[:len(types)-1]
	if len(values) == 1 && baseTypeName(values[0]) == responseName {
		_, pointer := values[0].(*ast.StarExpr)
		return models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, PointerResponse: pointer}
	}
	return models.ReturnSignature{Shape: models.RawResult, Values: len(values)}
}

// flattenResults expands grouped results so that (a, b int) counts twice.
func flattenResults(results *ast.FieldList) []ast.Expr {
	if results == nil {
		return nil
	}
	var types []ast.Expr
	for _, field := range results.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			types = append(types, field.Type)
		}
	}
	return types
}

func isErrorIdent(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}

// baseTypeName returns the outermost named type of expr: pointers and type
// arguments are stripped and only the last selector segment is kept.
func baseTypeName(expr ast.Expr) string {
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.SelectorExpr:
			return t.Sel.Name
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}
