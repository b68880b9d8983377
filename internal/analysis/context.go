package analysis

import (
	"go/ast"
	"strconv"
)

const contextPath = "context"

// ContextImportName returns the name under which file imports the context
// package: the package name, its alias, "." for a dot import, or "" when
// context is not imported.
func ContextImportName(file *ast.File) string {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != contextPath {
			continue
		}
		if spec.Name == nil {
			return contextPath
		}
		if spec.Name.Name == "_" {
			continue
		}
		return spec.Name.Name
	}
	return ""
}

// IsContextType reports whether expr names context.Context given the local
// import name of the context package.
func IsContextType(expr ast.Expr, importName string) bool {
	switch t := expr.(type) {
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		return ok && importName != "" && importName != "." && pkg.Name == importName && t.Sel.Name == "Context"
	case *ast.Ident:
		return importName == "." && t.Name == "Context"
	}
	return false
}

// IsAsync reports whether the first non-receiver parameter of decl is a
// context.Context.
func IsAsync(decl *ast.FuncDecl, importName string) bool {
	params := decl.Type.Params
	if params == nil || len(params.List) == 0 {
		return false
	}
	return IsContextType(params.List[0].Type, importName)
}
