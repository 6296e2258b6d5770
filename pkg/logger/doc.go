// Package logger provides a thin wrapper around Go's slog package adding
// functional options for configuration and helper attribute constructors.
//
// The package standardises structured logging across the tool by exposing a
// single factory - New - that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, or raise verbosity with WithVerbose
//   - Supply default slog.Attr values applied to every record
//
// # Architecture
//
// New determines the concrete slog.Handler implementation -
// slog.NewTextHandler or slog.NewJSONHandler - based on the configured
// Format. Defaults suit a command-line tool: text format at WARN level on
// stderr, keeping stdout free for generated codes and secrets requested by
// the user.
//
// Helper constructors such as Group, Error, Backend, and SecretName live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across the codebase. SecretName exists so call sites log
// the name a secret is filed under, never its value.
//
// # Usage
//
//	import "github.com/dmitrymomot/otpvault/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithVerbose(verbose),
//	        logger.WithAttr(logger.Component("cli")),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Debug("vault opened",
//	        logger.Backend("keyring"),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
