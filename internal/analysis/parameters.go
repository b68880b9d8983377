package analysis

import (
	"go/ast"
	"go/types"

	"github.com/toyz/runar/internal/models"
)

// ExtractParameters lists the named, non-receiver parameters of decl in
// declaration order. Unnamed and blank parameters are skipped.
func ExtractParameters(decl *ast.FuncDecl) []models.Parameter {
	if decl.Type.Params == nil {
		return nil
	}

	var params []models.Parameter
	for _, field := range decl.Type.Params.List {
		typ := types.ExprString(field.Type)
		_, isRef := field.Type.(*ast.StarExpr)
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			params = append(params, models.Parameter{
				Name:        name.Name,
				Type:        typ,
				IsReference: isRef,
			})
		}
	}
	return params
}
