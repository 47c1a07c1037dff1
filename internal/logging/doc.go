// Package logger provides leveled console logging for liteend commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages as well
//
// Warnings and errors are always written to stderr.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Cloning %s", url)
//
// Commands create a logger in their PersistentPreRun and hand it to
// workflows.
package logger
