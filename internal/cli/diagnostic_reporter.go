package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/toyz/runar/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// SetOutput redirects the reporter
func (r *DiagnosticReporter) SetOutput(w io.Writer) {
	r.out = w
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string, suggestions ...string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
	r.printSuggestions(suggestions)
}

// ReportDiagnostic prints a single problem found in a package, with its
// location and suggestions when it carries them
func (r *DiagnosticReporter) ReportDiagnostic(err error) {
	var runarErr errors.RunarError
	if !stderrors.As(err, &runarErr) {
		r.reportBasicError(err)
		return
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "✗ ")
	fmt.Fprintf(r.out, "%s\n", runarErr.Error())
	r.printSuggestions(runarErr.Suggestions())

	if r.verbose {
		fmt.Fprintf(r.out, "  code: %s\n", runarErr.ErrorCode())
		r.printContext(runarErr.Context())
		if cause := runarErr.Unwrap(); cause != nil {
			fmt.Fprintf(r.out, "  cause: %v\n", cause)
		}
	}
}

// ReportError provides comprehensive error reporting for a failed run
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) {
		for _, e := range multi.Errors {
			r.ReportDiagnostic(e)
		}
	} else {
		r.ReportDiagnostic(err)
	}

	fmt.Fprintln(r.out)
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "✗ ")
	fmt.Fprintf(r.out, "%s\n", err.Error())
}

// printSuggestions prints helpful suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	for _, s := range suggestions {
		fmt.Fprintf(r.out, "  hint: %s\n", s)
	}
}

// printContext prints context data in key order
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "  %s: %v\n", k, context[k])
	}
}
