package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

// DefaultConfigFile is read when it exists and no -config flag is given
const DefaultConfigFile = "runar.yaml"

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files
	Directories []string `yaml:"directories"`

	// ModuleName overrides the module path read from go.mod
	ModuleName string `yaml:"module"`

	// ResponseType is the type name that marks a method as returning a
	// ready-made service response
	ResponseType string `yaml:"response_type"`

	// Output is the name of the file written into each package
	Output string `yaml:"output"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		ResponseType: models.DefaultResponseTypeName,
		Output:       models.GeneratedFileName,
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.WrapConfigurationError(path, "read", err)
	}

	if err := yaml.UnmarshalWithOptions(data, &config, yaml.DisallowUnknownField()); err != nil {
		return config, errors.WrapConfigurationError(path, "parse", err).
			WithSuggestions("supported keys: directories, module, response_type, output, verbose")
	}

	return config, config.Validate()
}

// LoadConfigIfExists behaves like LoadConfig but returns DefaultConfig when
// path does not exist
func LoadConfigIfExists(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate checks that the configuration can be used for a run
func (c Config) Validate() error {
	if c.ResponseType == "" {
		return errors.New(errors.ConfigurationErrorCode, "response_type must not be empty")
	}
	if c.Output == "" {
		return errors.New(errors.ConfigurationErrorCode, "output must not be empty")
	}
	if c.Output != models.GeneratedFileName && !isGoFileName(c.Output) {
		return errors.New(errors.ConfigurationErrorCode, fmt.Sprintf("output %q must be a plain .go file name", c.Output))
	}
	return nil
}

func isGoFileName(name string) bool {
	if len(name) <= len(".go") || name[len(name)-3:] != ".go" {
		return false
	}
	for _, r := range name {
		if r == '/' || r == '\\' {
			return false
		}
	}
	return true
}
