package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"github.com/toyz/runar/internal/analysis"
	"github.com/toyz/runar/internal/annotations"
	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

// Parser extracts runar annotated methods from Go source files
type Parser struct {
	fileSet *token.FileSet
}

// NewParser creates a new annotation parser
func NewParser() *Parser {
	return &Parser{
		fileSet: token.NewFileSet(),
	}
}

// FileSet returns the file set positions are resolved against
func (p *Parser) FileSet() *token.FileSet {
	return p.fileSet
}

// ParseSource parses source code from a string for testing purposes
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, error) {
	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}

	metadata := &models.PackageMetadata{
		PackageName: file.Name.Name,
		PackagePath: "./",
	}
	p.extractFile(file, metadata)
	return metadata, nil
}

// ParseDirectory parses the non-test, non-generated Go files of a single
// package directory. Annotated functions are returned ordered by file name
// and then by source position.
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, error) {
	pkgs, err := parser.ParseDir(p.fileSet, path, includeFile, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError("directory "+path, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		names := make([]string, 0, len(pkgs))
		for name := range pkgs {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("multiple packages found in directory %s: %s", path, strings.Join(names, ", "))
	}

	metadata := &models.PackageMetadata{PackagePath: path}
	for name, pkg := range pkgs {
		metadata.PackageName = name

		fileNames := make([]string, 0, len(pkg.Files))
		for fileName := range pkg.Files {
			fileNames = append(fileNames, fileName)
		}
		sort.Strings(fileNames)

		for _, fileName := range fileNames {
			file := pkg.Files[fileName]
			// generated output may use any file name
			if ast.IsGenerated(file) {
				continue
			}
			p.extractFile(file, metadata)
		}
	}
	return metadata, nil
}

func includeFile(info fs.FileInfo) bool {
	name := info.Name()
	return !strings.HasSuffix(name, testFileSuffix) && !strings.HasPrefix(name, GeneratedFilePrefix)
}

// extractFile appends every annotated function of file to metadata and
// records diagnostics for annotations that cannot be used.
func (p *Parser) extractFile(file *ast.File, metadata *models.PackageMetadata) {
	ctxName := analysis.ContextImportName(file)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if fn := p.extractFunction(d, ctxName, metadata); fn != nil {
				metadata.Functions = append(metadata.Functions, *fn)
			}
		case *ast.GenDecl:
			p.checkDocOnly(d.Doc, metadata)
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					p.checkDocOnly(ts.Doc, metadata)
				}
			}
		}
	}
}

func (p *Parser) extractFunction(decl *ast.FuncDecl, ctxName string, metadata *models.PackageMetadata) *models.AnnotatedFunction {
	if decl.Doc == nil {
		return nil
	}

	var fn *models.AnnotatedFunction
	for _, comment := range decl.Doc.List {
		directive, ok := annotations.ParseComment(comment.Text)
		if !ok {
			continue
		}
		loc := p.location(comment.Pos())

		if !directive.IsAction() {
			metadata.Diagnostics = append(metadata.Diagnostics, reportUnknownAnnotation(directive.Kind, errors.SourceLocation(loc)))
			continue
		}
		if fn != nil {
			metadata.Diagnostics = append(metadata.Diagnostics, reportDuplicateAnnotation(decl.Name.Name, errors.SourceLocation(loc)))
			continue
		}

		kind, recvType := analysis.ReceiverOf(decl)
		fn = &models.AnnotatedFunction{
			Name:         decl.Name.Name,
			Attributes:   directive.Attributes,
			Params:       analysis.ExtractParameters(decl),
			Results:      decl.Type.Results,
			IsAsync:      analysis.IsAsync(decl, ctxName),
			Receiver:     kind,
			ReceiverType: recvType,
			Decl:         decl,
			FileSet:      p.fileSet,
			Location:     loc,
		}
	}
	return fn
}

// checkDocOnly reports runar annotations placed on declarations that are not functions.
func (p *Parser) checkDocOnly(doc *ast.CommentGroup, metadata *models.PackageMetadata) {
	if doc == nil {
		return
	}
	for _, comment := range doc.List {
		directive, ok := annotations.ParseComment(comment.Text)
		if !ok {
			continue
		}
		loc := errors.SourceLocation(p.location(comment.Pos()))
		if directive.IsAction() {
			metadata.Diagnostics = append(metadata.Diagnostics, reportMisplacedAnnotation(loc))
		} else {
			metadata.Diagnostics = append(metadata.Diagnostics, reportUnknownAnnotation(directive.Kind, loc))
		}
	}
}

func (p *Parser) location(pos token.Pos) models.SourceLocation {
	return models.NewSourceLocation(p.fileSet.Position(pos))
}
