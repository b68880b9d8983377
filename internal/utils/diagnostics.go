package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly output
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	indent    int

	progress      string
	progressStart time.Time
}

// NewDiagnosticSystem creates a new diagnostic system
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects regular and error output. Colors and timestamps are
// turned off, which keeps captured output stable.
func (d *DiagnosticSystem) SetOutput(out, errOut io.Writer) {
	d.output = out
	d.errorOut = errOut
	d.useColors = false
	d.showTime = false
}

// Level returns the configured verbosity
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

var levelColors = map[string]*color.Color{
	"ERROR":   color.New(color.FgRed),
	"WARN":    color.New(color.FgYellow),
	"INFO":    color.New(color.FgBlue),
	"SUCCESS": color.New(color.FgGreen),
	"VERBOSE": color.New(color.FgHiBlack),
	"DEBUG":   color.New(color.FgMagenta),
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", format, args...)
	}
}

// StartProgress announces a long-running step
func (d *DiagnosticSystem) StartProgress(message string) {
	d.progress = message
	d.progressStart = time.Now()
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "%s- %s...\n", d.getIndent(), message)
	}
}

// EndProgress finishes the step started by StartProgress. detail, when
// given, replaces the step message.
func (d *DiagnosticSystem) EndProgress(success bool, detail string) {
	message := d.progress
	if detail != "" {
		message = detail
	}
	elapsed := time.Since(d.progressStart)
	d.progress = ""

	if message == "" {
		return
	}
	if !success {
		if d.level >= DiagnosticError {
			fmt.Fprintf(d.errorOut, "%s%s %s\n", d.getIndent(), d.paint(color.FgRed, "✗"), message)
		}
		return
	}
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "%s%s %s (%s)\n", d.getIndent(), d.paint(color.FgGreen, "✓"), message, elapsed.Round(time.Millisecond))
	}
}

// Section creates a prominent section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s\n", title)
	}
}

// Subsection creates a subsection header
func (d *DiagnosticSystem) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s:\n", title)
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(d.output, "%s- %s\n", d.getIndent(), message)
	}
}

// Indent increases the indentation level
func (d *DiagnosticSystem) Indent() {
	d.indent++
}

// Unindent decreases the indentation level
func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary outputs a final summary with statistics, keys sorted
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s\n", title)

		keys := make([]string, 0, len(stats))
		for key := range stats {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(d.output, "   %s: %v\n", key, stats[key])
		}
		fmt.Fprintln(d.output)
	}
}

// Header outputs the main runar header
func (d *DiagnosticSystem) Header(message string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s\n", d.paint(color.FgCyan, "Runar: "+message))
	}
}

// PhaseItem outputs a phase item with checkmark
func (d *DiagnosticSystem) PhaseItem(message string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s%s %s\n", d.getIndent(), d.paint(color.FgGreen, "✓"), message)
	}
}

// PhaseProgress outputs a phase progress item
func (d *DiagnosticSystem) PhaseProgress(message string) {
	if d.level >= DiagnosticInfo {
		// Special formatting for writing operations
		if strings.HasPrefix(message, "Writing") {
			fmt.Fprintf(d.output, "%s%s %s\n", d.getIndent(), d.paint(color.FgMagenta, "✏"), message)
		} else {
			fmt.Fprintf(d.output, "%s- %s\n", d.getIndent(), message)
		}
	}
}

// GenerationComplete outputs the completion message
func (d *DiagnosticSystem) GenerationComplete() {
	if d.level >= DiagnosticInfo {
		fmt.Fprintln(d.output)
		fmt.Fprintln(d.output, d.paint(color.FgGreen, "Runar: Generation complete!"))
	}
}

// writeMessage is the internal message writing function
func (d *DiagnosticSystem) writeMessage(writer io.Writer, level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var output strings.Builder
	output.WriteString(d.getIndent())

	if d.showTime {
		output.WriteString(time.Now().Format("15:04:05 "))
	}

	tag := "[" + level + "]"
	if c, ok := levelColors[level]; ok && d.useColors {
		tag = c.Sprint(tag)
	}
	output.WriteString(tag)
	output.WriteString(" ")
	output.WriteString(message)
	output.WriteString("\n")

	fmt.Fprint(writer, output.String())
}

// paint colors s when colors are enabled
func (d *DiagnosticSystem) paint(attr color.Attribute, s string) string {
	if !d.useColors {
		return s
	}
	return color.New(attr).Sprint(s)
}

// getIndent returns the current indentation string
func (d *DiagnosticSystem) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	// Check if NO_COLOR is set (standard)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if FORCE_COLOR is set
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Check if we have a terminal
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
