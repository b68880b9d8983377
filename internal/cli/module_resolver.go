package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/toyz/runar/internal/utils"
)

// RuntimeModule is the module generated code imports
const RuntimeModule = "github.com/toyz/runar"

// ModuleResolver handles resolving Go module information
type ModuleResolver struct {
	goMod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{goMod: utils.NewGoModParser()}
}

// ResolveModuleName resolves the module name for the packages in dir.
// If customModule is provided, it uses that; otherwise reads from go.mod
func (r *ModuleResolver) ResolveModuleName(customModule, dir string) (string, error) {
	if customModule != "" {
		if err := module.CheckImportPath(customModule); err != nil {
			return "", fmt.Errorf("invalid module name %q: %w", customModule, err)
		}
		return customModule, nil
	}

	goModPath, err := r.goMod.FindGoModFile(dir)
	if err != nil {
		return "", fmt.Errorf("failed to determine module name: %w (consider using -module or a runar.yaml module entry)", err)
	}
	return r.goMod.ParseModuleName(goModPath)
}

// BuildPackagePath builds the full import path for a package directory
// relative to the module root that contains it
func (r *ModuleResolver) BuildPackagePath(moduleName, packageDir string) (string, error) {
	goModPath, err := r.goMod.FindGoModFile(packageDir)
	if err != nil {
		return "", err
	}

	absPackageDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve package directory: %w", err)
	}

	relPath, err := filepath.Rel(filepath.Dir(goModPath), absPackageDir)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}

	importPath := filepath.ToSlash(relPath)
	if importPath == "." {
		return moduleName, nil
	}
	return moduleName + "/" + importPath, nil
}

// RequiresRuntime reports whether the module enclosing dir can import the
// runar runtime: it either is the runtime module or requires it
func (r *ModuleResolver) RequiresRuntime(dir string) (bool, error) {
	goModPath, err := r.goMod.FindGoModFile(dir)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(goModPath)
	if err != nil {
		return false, err
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return false, fmt.Errorf("failed to parse go.mod file: %w", err)
	}

	if modFile.Module != nil && modFile.Module.Mod.Path == RuntimeModule {
		return true, nil
	}
	for _, req := range modFile.Require {
		if req.Mod.Path == RuntimeModule {
			return true, nil
		}
	}
	for _, rep := range modFile.Replace {
		if rep.Old.Path == RuntimeModule {
			return true, nil
		}
	}
	return false, nil
}
