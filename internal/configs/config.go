package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/liteend/internal/errors"
	"github.com/PolarWolf314/liteend/internal/secrets"
)

const DefaultTemplateURL = "https://github.com/uxname/liteend.git"

// ScaffoldConfig controls what `liteend new` clones and runs.
type ScaffoldConfig struct {
	TemplateURL     string   `toml:"template_url" json:"template_url"`
	InstallCommand  string   `toml:"install_command" json:"install_command"`
	GenerateCommand string   `toml:"generate_command" json:"generate_command"`
	SampleFile      string   `toml:"sample_file" json:"sample_file"`
	EnvFile         string   `toml:"env_file" json:"env_file"`
	SecretFields    []string `toml:"secret_fields" json:"secret_fields"`
	SecretLength    int      `toml:"secret_length" json:"secret_length"`
}

// DefaultScaffoldConfig returns the configuration for the LiteEnd template.
func DefaultScaffoldConfig() *ScaffoldConfig {
	return &ScaffoldConfig{
		TemplateURL:     DefaultTemplateURL,
		InstallCommand:  "npm install --legacy-peer-deps",
		GenerateCommand: "npm run db:gen",
		SampleFile:      secrets.DefaultSampleFileName,
		EnvFile:         secrets.DefaultEnvFileName,
		SecretFields:    secrets.DefaultSecretFields().Names(),
		SecretLength:    secrets.DefaultTokenLength,
	}
}

// LoadScaffoldConfig reads the user's configuration file on top of the defaults.
// A missing file is not an error.
func LoadScaffoldConfig() (*ScaffoldConfig, error) {
	return LoadScaffoldConfigFrom(ConfigPath())
}

// LoadScaffoldConfigFrom reads path on top of the defaults.
func LoadScaffoldConfigFrom(path string) (*ScaffoldConfig, error) {
	config := DefaultScaffoldConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	unknown, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load scaffold config: %w: %v", kerrors.ErrInvalidConfig, err)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown keys %v in %s: %w", unknown, path, kerrors.ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveScaffoldConfig writes config to the user's configuration file.
func SaveScaffoldConfig(config *ScaffoldConfig) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save scaffold config: %w", err)
	}
	return nil
}

// Validate checks that every value can be used by the new command.
func (c *ScaffoldConfig) Validate() error {
	switch {
	case c.TemplateURL == "":
		return fmt.Errorf("template_url is empty: %w", kerrors.ErrInvalidConfig)
	case c.InstallCommand == "":
		return fmt.Errorf("install_command is empty: %w", kerrors.ErrInvalidConfig)
	case c.SampleFile == "" || c.EnvFile == "":
		return fmt.Errorf("sample_file and env_file must be set: %w", kerrors.ErrInvalidConfig)
	case c.SampleFile == c.EnvFile:
		return fmt.Errorf("sample_file and env_file must differ: %w", kerrors.ErrInvalidConfig)
	case c.SecretLength < 1:
		return fmt.Errorf("secret_length must be at least 1: %w", kerrors.ErrInvalidConfig)
	}
	return nil
}

// Materializer builds the secret materializer described by this configuration.
func (c *ScaffoldConfig) Materializer() *secrets.Materializer {
	return &secrets.Materializer{
		Fields:      secrets.NewSecretFields(c.SecretFields...),
		TokenLength: c.SecretLength,
		SampleName:  c.SampleFile,
		EnvName:     c.EnvFile,
	}
}
