// Package startup loads picture-helper's configuration from the
// environment and logs the start-up summary.
//
// # Environment Variables
//
//	TARGET_DIR               root of the sorted tree (required for copying)
//	TARGET_DIR_UNKNOWN_DATE  destination for pictures without a capture
//	                         time (default: $TARGET_DIR/_unknown)
//	THUMBNAIL_WIDTH          thumbnail box width in pixels (default: 48)
//	THUMBNAIL_HEIGHT         thumbnail box height in pixels (default: 48)
//	METRICS_FILE             write Prometheus metrics here after the run
//	RECURSIVE                descend into sub-directories of arguments
//	LOG_LEVEL                debug, info, warn or error (default: info)
//
// Both target directories must exist. If either is missing, copying is
// disabled for the run; ingestion still works.
package startup
