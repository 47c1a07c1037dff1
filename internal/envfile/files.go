package envfile

import (
	"fmt"
	"os"
)

// ReadFile parses the env file at path.
func ReadFile(path string) (*Mapping, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller.
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(content)), nil
}

// WriteFile serializes m and overwrites path, keeping the file's existing mode.
func WriteFile(path string, m *Mapping) error {
	perm := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(Serialize(m)), perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
