package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

// FileProcessor provides utilities for common file processing operations
type FileProcessor struct {
	generatedFile string
}

// NewFileProcessor creates a new file processor that treats
// models.GeneratedFileName as the generated output
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{generatedFile: models.GeneratedFileName}
}

// NewFileProcessorWithOutput creates a file processor for a custom output file name
func NewFileProcessorWithOutput(fileName string) *FileProcessor {
	if fileName == "" {
		fileName = models.GeneratedFileName
	}
	return &FileProcessor{generatedFile: fileName}
}

// GeneratedFile returns the name of the file the processor writes and cleans
func (fp *FileProcessor) GeneratedFile() string {
	return fp.generatedFile
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// DefaultGoFileFilter filters for .go files, excluding tests and autogen files
func DefaultGoFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		name := info.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasPrefix(name, "autogen_")
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain source code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden and underscore directories, like the go tool does
		if (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// ScanDirectoriesWithGoFiles scans directories and returns those containing Go files
func (fp *FileProcessor) ScanDirectoriesWithGoFiles(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		dirs, err := fp.scanDirectoryRecursive(rootDir, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, dirs...)
	}

	return packageDirs, nil
}

// scanDirectoryRecursive recursively scans a directory for Go files
func (fp *FileProcessor) scanDirectoryRecursive(dir string, visited map[string]bool) ([]string, error) {
	// Resolve absolute path to handle symlinks and avoid cycles
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("resolve", dir, err)
	}

	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	var packageDirs []string

	hasGoFiles, err := fp.HasGoFiles(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", dir, err)
	}

	if hasGoFiles {
		packageDirs = append(packageDirs, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", dir, err)
	}

	directoryFilter := DefaultDirectoryFilter()

	for _, entry := range entries {
		if entry.IsDir() {
			entryPath := filepath.Join(dir, entry.Name())

			if !directoryFilter(entryPath, entry) {
				continue
			}

			subDirs, err := fp.scanDirectoryRecursive(entryPath, visited)
			if err != nil {
				return nil, err
			}
			packageDirs = append(packageDirs, subDirs...)
		}
	}

	return packageDirs, nil
}

// HasGoFiles checks if a directory contains any .go files (excluding test files and autogen files)
func (fp *FileProcessor) HasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	fileFilter := DefaultGoFileFilter()

	for _, entry := range entries {
		if fileFilter(filepath.Join(dir, entry.Name()), entry) {
			return true, nil
		}
	}

	return false, nil
}

// IsGeneratedFile reports whether the file at path carries the runar
// generated-code header before its package clause
func IsGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == models.GeneratedHeader {
			return true, nil
		}
		if strings.HasPrefix(line, "package ") {
			return false, nil
		}
	}
	return false, scanner.Err()
}

// WriteGeneratedFile writes content to path. An existing file at path is
// only replaced when it was generated by runar.
func (fp *FileProcessor) WriteGeneratedFile(path, content string) error {
	generated, err := IsGeneratedFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapFileSystemError("read", path, err)
	}
	if err == nil && !generated {
		return errors.New(errors.FileSystemErrorCode, fmt.Sprintf("refusing to overwrite %s: it was not generated by runar", path)).
			WithContext("path", path).
			WithSuggestions("choose another output file name", "remove the file if it is no longer needed")
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}

// RemoveGeneratedFile deletes the generated file in dir. It reports whether a
// file was removed; a missing file, or one runar did not generate, is left
// alone and is not an error.
func (fp *FileProcessor) RemoveGeneratedFile(dir string) (bool, error) {
	target := filepath.Join(dir, fp.generatedFile)

	generated, err := IsGeneratedFile(target)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, errors.WrapFileSystemError("read", target, err)
	}
	if !generated {
		return false, nil
	}

	if err := os.Remove(target); err != nil {
		return false, errors.WrapFileSystemError("remove", target, err)
	}
	return true, nil
}

// CleanDirectories removes generated files from every directory below baseDirs
func (fp *FileProcessor) CleanDirectories(baseDirs []string) ([]string, error) {
	var removedFiles []string

	for _, baseDir := range baseDirs {
		if baseDir == "" {
			baseDir = "."
		}
		err := fp.cleanDirectory(baseDir, &removedFiles)
		if err != nil {
			return removedFiles, fmt.Errorf("failed to clean %s: %w", baseDir, err)
		}
	}

	return removedFiles, nil
}

// cleanDirectory cleans a single directory tree
func (fp *FileProcessor) cleanDirectory(baseDir string, removedFiles *[]string) error {
	directoryFilter := DefaultDirectoryFilter()

	return filepath.WalkDir(baseDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			// Skip directories that don't exist or can't be accessed
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != baseDir && !directoryFilter(path, entry) {
			return filepath.SkipDir
		}

		removed, err := fp.RemoveGeneratedFile(path)
		if err != nil {
			return err
		}
		if removed {
			*removedFiles = append(*removedFiles, filepath.Join(path, fp.generatedFile))
		}
		return nil
	})
}
