package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toyz/runar/internal/cli"
	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("runar", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		configFlag       = flags.String("config", "", "Path to a YAML configuration file (defaults to ./"+cli.DefaultConfigFile+" when present)")
		moduleFlag       = flags.String("module", "", "Custom module name (defaults to go.mod module)")
		responseTypeFlag = flags.String("response-type", "", "Type name that marks a method as returning a ready-made response")
		outputFlag       = flags.String("output", "", "Name of the file written into each package")
		verboseFlag      = flags.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag        = flags.Bool("quiet", false, "Only show errors and final results")
		cleanFlag        = flags.Bool("clean", false, "Delete all generated action files from the specified directories")
		helpFlag         = flags.Bool("help", false, "Show help information")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: runar [options] <directory-paths...>\n\n")
		fmt.Fprintf(stderr, "Runar Action Generator\n")
		fmt.Fprintf(stderr, "Scans directories for methods annotated with //runar::action and generates action handlers.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nArguments:\n")
		fmt.Fprintf(stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  runar ./...                           # Scan everything recursively\n")
		fmt.Fprintf(stderr, "  runar --response-type Reply ./svc     # Use a custom response type name\n")
		fmt.Fprintf(stderr, "  runar --clean ./...                   # Delete all generated files\n")
	}

	if err := flags.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	config, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// flags take precedence over the configuration file
	if dirs := flags.Args(); len(dirs) > 0 {
		config.Directories = dirs
	}
	if *moduleFlag != "" {
		config.ModuleName = *moduleFlag
	}
	if *responseTypeFlag != "" {
		config.ResponseType = *responseTypeFlag
	}
	if *outputFlag != "" {
		config.Output = *outputFlag
	}
	if *verboseFlag {
		config.Verbose = true
	}

	if len(config.Directories) == 0 {
		fmt.Fprintf(stderr, "Error: At least one directory path is required\n\n")
		flags.Usage()
		return 1
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case config.Verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if stdout != os.Stdout || stderr != os.Stderr {
		diagnostics.SetOutput(stdout, stderr)
	}

	diagnostics.Header("Action Generator")

	if *cleanFlag {
		return clean(config, diagnostics)
	}

	if config.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(config.Directories, ", "))
		if config.ModuleName != "" {
			diagnostics.List("Custom module: %s", config.ModuleName)
		}
		diagnostics.List("Response type: %s", config.ResponseType)
		diagnostics.List("Output file: %s", config.Output)
	}

	generator := cli.NewGenerator(diagnostics)
	generator.Reporter().SetOutput(stderr)

	err = generator.Run(config)
	summary := generator.GetSummary()

	if err != nil {
		var multi *errors.MultipleErrors
		if stderrors.As(err, &multi) {
			diagnostics.Error("Generation finished with %d problem(s)", len(multi.Errors))
		} else {
			generator.Reporter().ReportError(err)
		}
		return 1
	}

	diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Packages processed":  summary.PackagesProcessed,
		"Files generated":     len(summary.GeneratedFiles),
		"Actions generated":   summary.ActionsGenerated,
		"Stale files removed": len(summary.RemovedFiles),
	})

	if config.Verbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.GenerationComplete()
	return 0
}

// loadConfig reads the named configuration file, or the default one when it
// exists
func loadConfig(path string) (cli.Config, error) {
	if path != "" {
		return cli.LoadConfig(path)
	}
	return cli.LoadConfigIfExists(cli.DefaultConfigFile)
}

func clean(config cli.Config, diagnostics *utils.DiagnosticSystem) int {
	diagnostics.StartProgress("Cleaning generated files")

	removed, err := cli.NewCleanerForOutput(config.Output).CleanGeneratedFiles(config.Directories)
	if err != nil {
		diagnostics.EndProgress(false, "")
		diagnostics.Error("Clean operation failed: %v", err)
		return 1
	}

	diagnostics.EndProgress(true, "")
	for _, path := range removed {
		diagnostics.Verbose("Removed %s", path)
	}
	diagnostics.Success("Removed %d %s file(s)", len(removed), config.Output)
	return 0
}
