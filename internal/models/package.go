package models

// PackageMetadata represents all actions found in a package
type PackageMetadata struct {
	PackageName string              // name of the Go package
	PackagePath string              // file system path to the package
	ImportPath  string              // import path, when known
	Functions   []AnnotatedFunction // annotated functions in source order
	Actions     []ActionMetadata    // actions that passed validation
	Diagnostics []error             // problems found while parsing or synthesizing
}

// HasActions reports whether any action survived validation
func (p *PackageMetadata) HasActions() bool {
	return len(p.Actions) > 0
}
