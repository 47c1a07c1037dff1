package errors

import "errors"

// Input errors indicate the command was invoked with unusable arguments.
var (
	// ErrProjectNameRequired indicates no project name was given to `new`.
	ErrProjectNameRequired = errors.New("project name is required")
)

// Template errors indicate the cloned project does not look like the expected template.
var (
	// ErrSampleNotFound indicates the .env.sample file could not be read.
	ErrSampleNotFound = errors.New("sample env file not found")
)

// Secret errors indicate failures while generating secret values.
var (
	// ErrInvalidTokenLength indicates a token of fewer than one character was requested.
	ErrInvalidTokenLength = errors.New("token length must be at least 1")
)

// Config errors indicate issues with the scaffold configuration file.
var (
	// ErrInvalidConfig indicates the configuration file is malformed or has invalid values.
	ErrInvalidConfig = errors.New("scaffold configuration is invalid")

	// ErrConfigExists indicates a configuration file is already present.
	ErrConfigExists = errors.New("configuration file already exists")
)
