package parser

const (
	// GeneratedFilePrefix marks files written by the generator; they are never parsed.
	GeneratedFilePrefix = "autogen_"

	testFileSuffix = "_test.go"
)
