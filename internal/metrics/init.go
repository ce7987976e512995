package metrics

// Label values used by InitializeMetrics; exported so callers share the
// same vocabulary.
const (
	PipelineIngest = "ingest"
	PipelineCopy   = "copy"

	BucketDated       = "dated"
	BucketUnknownDate = "unknown_date"
)

// InitializeMetrics pre-populates the expected label combinations so every
// series is present in the first export, even at zero.
func InitializeMetrics() {
	for _, status := range []string{"success", "error_decode", "error_metadata", "error_thumbnail"} {
		IngestFilesTotal.WithLabelValues(status)
	}
	for _, result := range []string{"valid", "missing"} {
		IngestCaptureTime.WithLabelValues(result)
	}
	for _, format := range []string{"jpeg", "png", "gif", "webp", "bmp", "tiff"} {
		IngestDecodeByFormat.WithLabelValues(format)
	}

	for _, status := range []string{"copied", "skipped", "failed"} {
		for _, bucket := range []string{BucketDated, BucketUnknownDate} {
			CopyFilesTotal.WithLabelValues(status, bucket)
		}
	}

	for _, p := range []string{PipelineIngest, PipelineCopy} {
		PipelineRunning.WithLabelValues(p)
		PipelineLastBatchSize.WithLabelValues(p)
	}

	volumes := []string{"source", "target", "unknown_date", "unknown"}
	ops := []string{"stat", "open", "read", "mkdir", "copy"}
	for _, vol := range volumes {
		FilesystemCopiedBytes.WithLabelValues(vol)
		for _, op := range ops {
			FilesystemOperationDuration.WithLabelValues(vol, op)
			FilesystemOperationErrors.WithLabelValues(vol, op)
			FilesystemRetryAttempts.WithLabelValues(op, vol)
			FilesystemRetrySuccess.WithLabelValues(op, vol)
			FilesystemRetryFailures.WithLabelValues(op, vol)
			FilesystemStaleErrors.WithLabelValues(op, vol)
		}
	}
}
