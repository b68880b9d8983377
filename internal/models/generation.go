package models

// GeneratedFile represents generated adapter code for one package
type GeneratedFile struct {
	PackageName string   // name of the package
	FilePath    string   // path where the file should be written
	Content     string   // generated Go code content
	Operations  []string // operation names registered by the file, in order
}
