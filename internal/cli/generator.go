package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/creachadair/taskgroup"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/generator"
	"github.com/toyz/runar/internal/models"
	"github.com/toyz/runar/internal/parser"
	"github.com/toyz/runar/internal/utils"
)

// GenerationSummary describes the outcome of a run
type GenerationSummary struct {
	PackagesProcessed int
	ActionsGenerated  int
	GeneratedFiles    []string
	RemovedFiles      []string
	Diagnostics       int
}

// packageResult is the slot one package task writes into
type packageResult struct {
	dir      string
	metadata *models.PackageMetadata
	file     *models.GeneratedFile
	removed  string // path of a stale file that was deleted
	err      error
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	reporter       *DiagnosticReporter
	diagnostics    *utils.DiagnosticSystem
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		reporter:       NewDiagnosticReporter(diagnostics.Level() >= utils.DiagnosticVerbose),
		diagnostics:    diagnostics,
	}
}

// Reporter returns the reporter used for per-package diagnostics
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process. Packages are parsed and
// generated concurrently; results are reported in scan order. Any
// diagnostic makes Run return an error after all packages are written.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	if len(config.Directories) == 0 {
		return errors.New(errors.ConfigurationErrorCode, "no directories to scan").
			WithSuggestions("pass one or more directories, e.g. runar ./...")
	}
	if err := config.Validate(); err != nil {
		return err
	}

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	g.diagnostics.StartProgress("Scanning directories for Go packages")
	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return errors.Wrap(errors.FileSystemErrorCode, "failed to scan directories", err).
			WithSuggestions(
				"Check that the specified directories exist",
				"Ensure you have read permissions for the directories",
			).
			WithContext("directories", config.Directories)
	}
	if len(packageDirs) == 0 {
		g.diagnostics.EndProgress(false, "")
		return errors.New(errors.ValidationErrorCode, "no Go packages found in specified directories").
			WithSuggestions("Try scanning parent directories or use the './...' pattern").
			WithContext("directories", config.Directories)
	}
	g.diagnostics.EndProgress(true, "")
	g.diagnostics.Info("Found %d packages to process", len(packageDirs))

	g.resolveModule(config, packageDirs[0])

	results := g.processPackages(packageDirs, config)
	return g.report(results)
}

// resolveModule logs the module the packages belong to and warns when the
// runtime cannot be imported from it. Neither is fatal.
func (g *Generator) resolveModule(config Config, dir string) {
	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName, dir)
	if err != nil {
		g.diagnostics.Warn("Could not resolve module name: %v", err)
		return
	}
	g.diagnostics.Verbose("Module: %s", moduleName)

	ok, err := g.moduleResolver.RequiresRuntime(dir)
	if err == nil && !ok {
		g.reporter.ReportWarning(
			fmt.Sprintf("module %s does not require %s; generated files will not compile", moduleName, RuntimeModule),
			"go get "+RuntimeModule,
		)
	}
}

// processPackages runs one task per package and collects the results in order
func (g *Generator) processPackages(packageDirs []string, config Config) []packageResult {
	results := make([]packageResult, len(packageDirs))
	opts := generator.Options{ResponseTypeName: config.ResponseType}
	files := utils.NewFileProcessorWithOutput(config.Output)

	tasks := taskgroup.New(nil)
	for i, dir := range packageDirs {
		tasks.Go(func() error {
			results[i] = processPackage(dir, opts, files)
			return nil
		})
	}
	tasks.Wait()

	return results
}

// processPackage parses, synthesizes and writes a single package
func processPackage(dir string, opts generator.Options, files *utils.FileProcessor) packageResult {
	result := packageResult{dir: dir}

	metadata, err := parser.NewParser().ParseDirectory(dir)
	if err != nil {
		result.err = err
		return result
	}
	result.metadata = metadata

	file, err := generator.NewGenerator(opts).GeneratePackage(metadata)
	if err != nil {
		result.err = err
		return result
	}

	if file == nil {
		removed, err := files.RemoveGeneratedFile(dir)
		if removed {
			result.removed = filepath.Join(dir, files.GeneratedFile())
		}
		result.err = err
		return result
	}

	file.FilePath = filepath.Join(dir, files.GeneratedFile())
	if err := files.WriteGeneratedFile(file.FilePath, file.Content); err != nil {
		result.err = err
		return result
	}
	result.file = file
	return result
}

// report prints every result in order and folds failures into one error
func (g *Generator) report(results []packageResult) error {
	failures := &errors.MultipleErrors{}

	for _, res := range results {
		g.summary.PackagesProcessed++

		switch {
		case res.err != nil:
			g.reporter.ReportDiagnostic(res.err)
			failures.Add(asRunarError(res.err))
		case res.file != nil:
			g.diagnostics.PhaseProgress(fmt.Sprintf("Writing %s (%d actions)", res.file.FilePath, len(res.file.Operations)))
			g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, res.file.FilePath)
			g.summary.ActionsGenerated += len(res.file.Operations)
			g.diagnostics.Indent()
			for _, op := range res.file.Operations {
				g.diagnostics.Verbose("action %s", op)
			}
			g.diagnostics.Unindent()
		case res.removed != "":
			g.diagnostics.Verbose("Removed stale %s", res.removed)
			g.summary.RemovedFiles = append(g.summary.RemovedFiles, res.removed)
		default:
			g.diagnostics.Debug("Skipping package %s (no actions found)", res.dir)
		}

		if res.metadata == nil {
			continue
		}
		for _, diag := range res.metadata.Diagnostics {
			g.summary.Diagnostics++
			g.reporter.ReportDiagnostic(diag)
			failures.Add(asRunarError(diag))
		}
	}

	return failures.ErrOrNil()
}

// asRunarError keeps coded errors and wraps anything else
func asRunarError(err error) errors.RunarError {
	if re, ok := err.(errors.RunarError); ok {
		return re
	}
	return errors.Wrap(errors.UnknownErrorCode, err.Error(), err)
}
