// Package logging provides the leveled logger used by picture-helper.
//
// Levels, from most to least verbose:
//   - DEBUG: per-file decode and tag details
//   - INFO: status lines (copies, created directories, skips)
//   - WARN: recoverable oddities such as truncated capture dates
//   - ERROR: per-file failures
//
// The level comes from LOG_LEVEL, or DEBUG=true for debug output.
// StatusSink adapts the logger to the message/isError sink the pipelines
// report through.
package logging
