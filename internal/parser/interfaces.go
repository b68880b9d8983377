package parser

import "github.com/toyz/runar/internal/models"

// ActionParser defines the interface for parsing Go source files and extracting annotated methods
type ActionParser interface {
	ParseDirectory(path string) (*models.PackageMetadata, error)
	ParseSource(filename, source string) (*models.PackageMetadata, error)
}

var _ ActionParser = (*Parser)(nil)
