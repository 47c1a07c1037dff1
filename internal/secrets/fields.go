package secrets

// SecretFields is an immutable, ordered set of env keys that receive generated tokens.
type SecretFields struct {
	names []string
}

// NewSecretFields builds a set from names, dropping duplicates and empty names.
func NewSecretFields(names ...string) SecretFields {
	seen := make(map[string]bool, len(names))
	fields := SecretFields{names: make([]string, 0, len(names))}
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fields.names = append(fields.names, name)
	}
	return fields
}

// DefaultSecretFields returns the keys the liteend template expects to be randomized.
func DefaultSecretFields() SecretFields {
	return NewSecretFields(
		"SALT",
		"LOGS_ADMIN_PANEL_PASSWORD",
		"DATABASE_PASSWORD",
	)
}

// Names returns the field names in order.
func (f SecretFields) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Len returns the number of fields.
func (f SecretFields) Len() int {
	return len(f.names)
}
