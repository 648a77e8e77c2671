package motion

import (
	"log/slog"

	"github.com/gogpu/motion/internal/logging"
)

// SetLogger configures the logger for motion and all its sub-packages.
// By default, motion produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by motion:
//   - [slog.LevelDebug]: per-call kinematics summaries (bounces, durations)
//   - [slog.LevelWarn]: a deceleration gave up after hitting the bounce limit
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	motion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by motion.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
