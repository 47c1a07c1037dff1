package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/liteend/internal/envfile"
	kerrors "github.com/PolarWolf314/liteend/internal/errors"

	"github.com/otiai10/copy"
)

const (
	DefaultSampleFileName = ".env.sample"
	DefaultEnvFileName    = ".env"
)

// TokenGenerator produces a secret of the requested length.
type TokenGenerator func(length int) (string, error)

// Materializer derives a working env file from a sample file and fresh secrets.
type Materializer struct {
	Fields      SecretFields
	TokenLength int
	SampleName  string
	EnvName     string

	// Generate defaults to MustGenerateToken, so a failing random source panics.
	Generate TokenGenerator
}

// MaterializeResult describes what Materialize changed. Token values are never included.
type MaterializeResult struct {
	SamplePath string
	EnvPath    string

	// Overwritten lists secret fields that existed in the sample.
	Overwritten []string

	// Inserted lists secret fields that were missing from the sample and were appended.
	Inserted []string
}

// NewMaterializer returns a Materializer for the default liteend template layout.
func NewMaterializer() *Materializer {
	return &Materializer{
		Fields:      DefaultSecretFields(),
		TokenLength: DefaultTokenLength,
		SampleName:  DefaultSampleFileName,
		EnvName:     DefaultEnvFileName,
	}
}

// Materialize copies the sample file over the env file in projectDir, then replaces
// every secret field with an independently generated token. The sample is never
// modified and a failed run leaves whatever was already written in place.
func (m *Materializer) Materialize(projectDir string) (*MaterializeResult, error) {
	length := m.TokenLength
	if length == 0 {
		length = DefaultTokenLength
	}
	if length < 1 {
		return nil, fmt.Errorf("token length %d: %w", length, kerrors.ErrInvalidTokenLength)
	}

	result := &MaterializeResult{
		SamplePath: filepath.Join(projectDir, m.sampleName()),
		EnvPath:    filepath.Join(projectDir, m.envName()),
	}

	if err := copySample(result.SamplePath, result.EnvPath); err != nil {
		return nil, err
	}

	env, err := envfile.ReadFile(result.EnvPath)
	if err != nil {
		return nil, err
	}

	generate := m.Generate
	if generate == nil {
		generate = mustGenerate
	}

	for _, field := range m.Fields.Names() {
		token, err := generate(length)
		if err != nil {
			return nil, fmt.Errorf("generating value for %s: %w", field, err)
		}

		if env.Has(field) {
			result.Overwritten = append(result.Overwritten, field)
		} else {
			result.Inserted = append(result.Inserted, field)
		}
		env.Set(field, token)
	}

	if err := envfile.WriteFile(result.EnvPath, env); err != nil {
		return nil, err
	}

	return result, nil
}

func (m *Materializer) sampleName() string {
	if m.SampleName == "" {
		return DefaultSampleFileName
	}
	return m.SampleName
}

func (m *Materializer) envName() string {
	if m.EnvName == "" {
		return DefaultEnvFileName
	}
	return m.EnvName
}

func copySample(samplePath, envPath string) error {
	info, err := os.Stat(samplePath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", samplePath, kerrors.ErrSampleNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", samplePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", samplePath, kerrors.ErrSampleNotFound)
	}

	// A symlinked env file left by an earlier run would send the rewrite to its target.
	if info, err := os.Lstat(envPath); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(envPath); err != nil {
			return fmt.Errorf("removing %s: %w", envPath, err)
		}
	}

	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
	}
	if err := copy.Copy(samplePath, envPath, opts); err != nil {
		return fmt.Errorf("copying %s to %s: %w", samplePath, envPath, err)
	}
	return nil
}
