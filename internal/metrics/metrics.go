package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics
var (
	IngestFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_ingest_files_total",
			Help: "Total number of files processed by ingestion",
		},
		[]string{"status"}, // "success", "error_decode", "error_metadata", "error_thumbnail"
	)

	IngestCaptureTime = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_ingest_capture_time_total",
			Help: "Ingested pictures by capture time availability",
		},
		[]string{"result"}, // "valid", "missing"
	)

	IngestDecodeByFormat = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_ingest_decode_by_format_total",
			Help: "Decoded pictures by image format",
		},
		[]string{"format"},
	)

	IngestFileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "picture_helper_ingest_file_duration_seconds",
			Help:    "Time to read, decode and thumbnail a single file",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	ThumbnailDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "picture_helper_thumbnail_duration_seconds",
			Help:    "Thumbnail generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)
)

// Copy metrics
var (
	CopyFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_copy_files_total",
			Help: "Total number of records processed by the copy pipeline",
		},
		[]string{"status", "bucket"}, // status: "copied", "skipped", "failed"; bucket: "dated", "unknown_date"
	)

	CopyDirectoriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "picture_helper_copy_directories_created_total",
			Help: "Year-month directories created at the destination",
		},
	)

	CopyDirectoryFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "picture_helper_copy_directory_fallbacks_total",
			Help: "Dated files routed to the unknown-date directory because their folder could not be created",
		},
	)

	CopyBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "picture_helper_copy_batch_duration_seconds",
			Help:    "Duration of a complete copy pass",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		},
	)
)

// Pipeline state
var (
	PipelineRunning = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "picture_helper_pipeline_running",
			Help: "Whether a pipeline is currently running (1 = running, 0 = idle)",
		},
		[]string{"pipeline"}, // "ingest", "copy"
	)

	PipelineLastBatchSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "picture_helper_pipeline_last_batch_size",
			Help: "Number of items in the most recent batch",
		},
		[]string{"pipeline"},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "picture_helper_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"volume", "operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations",
		},
		[]string{"volume", "operation"},
	)

	FilesystemCopiedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_copied_bytes_total",
			Help: "Bytes written by completed copies",
		},
		[]string{"volume"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_retry_attempts_total",
			Help: "Retries of filesystem operations after stale file handles",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_retry_success_total",
			Help: "Filesystem operations that succeeded after retrying",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_retry_failures_total",
			Help: "Filesystem operations that failed after exhausting retries",
		},
		[]string{"operation", "volume"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picture_helper_filesystem_stale_errors_total",
			Help: "ESTALE errors seen by filesystem operations",
		},
		[]string{"operation", "volume"},
	)
)
