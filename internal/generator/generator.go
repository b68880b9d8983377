package generator

import (
	"path/filepath"

	"github.com/toyz/runar/internal/analysis"
	"github.com/toyz/runar/internal/annotations"
	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
	"github.com/toyz/runar/internal/templates"
	"github.com/toyz/runar/internal/utils"
)

// Options control how annotated methods are synthesized
type Options struct {
	// ResponseTypeName is the type name that marks a method as returning a
	// ready-made service response
	ResponseTypeName string
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{ResponseTypeName: models.DefaultResponseTypeName}
}

func (o Options) responseTypeName() string {
	if o.ResponseTypeName == "" {
		return models.DefaultResponseTypeName
	}
	return o.ResponseTypeName
}

// Generator implements the CodeGenerator interface
type Generator struct {
	opts Options
}

// NewGenerator creates a new code generator instance
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Synthesize runs the per-method pipeline with the generator's options
func (g *Generator) Synthesize(fn *models.AnnotatedFunction) (*models.ActionMetadata, error) {
	return Synthesize(fn, g.opts)
}

// GeneratePackage synthesizes every annotated function of metadata and
// renders the adapter file. Methods rejected by validation are recorded in
// metadata.Diagnostics and left out; the rest are still generated. The
// returned file is nil when no action survived.
func (g *Generator) GeneratePackage(metadata *models.PackageMetadata) (*models.GeneratedFile, error) {
	metadata.Actions = metadata.Actions[:0]
	for i := range metadata.Functions {
		action, err := g.Synthesize(&metadata.Functions[i])
		if err != nil {
			metadata.Diagnostics = append(metadata.Diagnostics, err)
			continue
		}
		metadata.Actions = append(metadata.Actions, *action)
	}

	if !metadata.HasActions() {
		return nil, nil
	}
	return GenerateFile(metadata)
}

// Synthesize validates fn and computes everything needed to emit its adapter:
// the operation name, the owning service type and the return shape.
func Synthesize(fn *models.AnnotatedFunction, opts Options) (*models.ActionMetadata, error) {
	opName := annotations.OperationName(annotations.ParseAttributes(fn.Attributes), fn.Name)

	receiverType, err := analysis.ValidateSignature(fn)
	if err != nil {
		return nil, err
	}

	ret := analysis.DescribeReturn(fn.Results, opts.responseTypeName())
	if ret.Shape == models.WrappedResponse && opts.responseTypeName() != models.DefaultResponseTypeName {
		ret.ConvertResponse = true
	}

	return &models.ActionMetadata{
		OperationName: opName,
		MethodName:    fn.Name,
		ReceiverType:  receiverType,
		Return:        ret,
		Params:        fn.Params,
		PassParams:    acceptsParams(fn),
		Location:      fn.Location,
	}, nil
}

// acceptsParams reports whether the method declares a parameter after its context.
func acceptsParams(fn *models.AnnotatedFunction) bool {
	if fn.Decl == nil || fn.Decl.Type.Params == nil {
		return len(fn.Params) > 1
	}
	count := 0
	for _, field := range fn.Decl.Type.Params.List {
		count += max(len(field.Names), 1)
	}
	return count > 1
}

// GenerateFile renders metadata.Actions, in order, into a formatted
// autogen_actions.go for the package.
func GenerateFile(metadata *models.PackageMetadata) (*models.GeneratedFile, error) {
	if metadata == nil {
		return nil, errors.New(errors.GenerationErrorCode, "metadata cannot be nil")
	}

	content, err := templates.GenerateActionFile(metadata.PackageName, metadata.Actions)
	if err != nil {
		return nil, errors.WrapGenerateError(metadata.PackageName, err)
	}

	filePath := filepath.Join(metadata.PackagePath, models.GeneratedFileName)
	formatted, err := utils.FormatGoCodeString(filePath, content)
	if err != nil {
		return nil, errors.WrapGenerateError(metadata.PackageName, err).
			WithContext("source", content)
	}

	operations := make([]string, len(metadata.Actions))
	for i, action := range metadata.Actions {
		operations[i] = action.OperationName
	}

	return &models.GeneratedFile{
		PackageName: metadata.PackageName,
		FilePath:    filePath,
		Content:     formatted,
		Operations:  operations,
	}, nil
}
