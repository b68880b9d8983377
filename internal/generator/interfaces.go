package generator

import "github.com/toyz/runar/internal/models"

// CodeGenerator defines the interface for turning parsed packages into action adapter files
type CodeGenerator interface {
	Synthesize(fn *models.AnnotatedFunction) (*models.ActionMetadata, error)
	GeneratePackage(metadata *models.PackageMetadata) (*models.GeneratedFile, error)
}

var _ CodeGenerator = (*Generator)(nil)
