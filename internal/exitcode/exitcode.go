// Package exitcode defines process exit codes for the tasklite CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates bad arguments or a task reference that does not resolve.
	UserError = 1

	// ConfigError indicates an unreadable config file or unknown backend.
	ConfigError = 2

	// StorageError indicates the backend failed to read or write.
	StorageError = 3
)
