// Package metrics provides Prometheus instrumentation for picture-helper.
//
// All metrics are prefixed with "picture_helper_".
//
// # Metric Categories
//
// ## Ingestion
//   - IngestFilesTotal: files processed by status
//   - IngestCaptureTime: pictures with and without a usable capture time
//   - IngestDecodeByFormat: decoded pictures by format
//   - IngestFileDuration, ThumbnailDuration: per-file timings
//
// ## Copy
//   - CopyFilesTotal: records by status (copied, skipped, failed) and bucket
//   - CopyDirectoriesCreated, CopyDirectoryFallbacks: year-month folder handling
//   - CopyBatchDuration: duration of a full pass
//
// ## Filesystem
//
// Recorded through NewFilesystemObserver, labeled by volume:
//   - FilesystemOperationDuration, FilesystemOperationErrors
//   - FilesystemCopiedBytes
//   - FilesystemRetry*, FilesystemStaleErrors: NFS retry behavior
//
// # Export
//
// picture-helper is a batch tool, so instead of serving /metrics it writes
// the registry to a file at the end of a run (WriteTextfile), suitable for
// node_exporter's textfile collector.
package metrics
