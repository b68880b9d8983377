package cli

import (
	"github.com/toyz/runar/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a cleaner for the default generated file name
func NewCleaner() *Cleaner {
	return NewCleanerForOutput("")
}

// NewCleanerForOutput creates a cleaner for a custom generated file name
func NewCleanerForOutput(output string) *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessorWithOutput(output),
	}
}

// CleanGeneratedFiles removes every generated file below the specified
// directories and returns the removed paths
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	roots, err := resolveRoots(directories)
	if err != nil {
		return nil, err
	}
	return c.fileProcessor.CleanDirectories(roots)
}
