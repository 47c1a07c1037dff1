// Package errors provides typed error values for the liteend CLI.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// instead of matching on message text.
//
// # Error Categories
//
//   - Input errors: the user supplied something unusable (ErrProjectNameRequired)
//   - Template errors: the cloned project is missing expected files (ErrSampleNotFound)
//   - Secret errors: token generation was asked for something impossible (ErrInvalidTokenLength)
//   - Config errors: the scaffold configuration is unreadable or invalid (ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("copying %s: %w", samplePath, errors.ErrSampleNotFound)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrSampleNotFound) {
//	    // Tell the user the template has no .env.sample
//	}
package errors
