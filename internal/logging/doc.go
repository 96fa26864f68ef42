// Package logging provides structured logging for tuiform.
//
// This package wraps a zap logger with package-level helpers. Logging is
// silent by default: a terminal UI owns stdout, so stray log lines would
// corrupt the screen. Pass a level (from --log-level or TUIFORM_LOG_LEVEL) to
// enable it, and point the output at a file with --log-file when running the
// interactive form.
//
// # Log Levels
//
//   - Debug: every decoded key and the resulting selection
//   - Info: submissions and screen changes
//   - Warn: rejected submissions, unreadable configuration
//   - Error: startup failures
//
// # Usage
//
//	if err := logging.Initialize("debug", "/tmp/tuiform.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
//	logging.LogSubmission(true, nil)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization.
package logging
