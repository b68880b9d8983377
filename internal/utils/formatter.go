package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"

	"golang.org/x/tools/imports"
)

// FormatGoCode formats Go source the way goimports does: gofmt layout plus
// grouped and pruned imports. filename is only used to decide which imports
// are local. When goimports fails the source is run through go/format alone.
func FormatGoCode(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, nil)
	if err == nil {
		return formatted, nil
	}

	if fallback, ferr := format.Source(source); ferr == nil {
		return fallback, nil
	}
	return nil, describeFormatError(source, err)
}

// FormatGoCodeString formats Go source code from a string and returns a string
func FormatGoCodeString(filename, source string) (string, error) {
	formatted, err := FormatGoCode(filename, []byte(source))
	if err != nil {
		return source, err
	}
	return string(formatted), nil
}

// describeFormatError turns a formatting failure into a syntax error when the
// source does not parse at all
func describeFormatError(source []byte, err error) error {
	if parseErr := ValidateGoCode(string(source)); parseErr != nil {
		return fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
	}
	return err
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
