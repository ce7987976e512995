package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"IngestFilesTotal", IngestFilesTotal},
		{"IngestCaptureTime", IngestCaptureTime},
		{"IngestDecodeByFormat", IngestDecodeByFormat},
		{"IngestFileDuration", IngestFileDuration},
		{"ThumbnailDuration", ThumbnailDuration},
		{"CopyFilesTotal", CopyFilesTotal},
		{"CopyDirectoriesCreated", CopyDirectoriesCreated},
		{"CopyDirectoryFallbacks", CopyDirectoryFallbacks},
		{"CopyBatchDuration", CopyBatchDuration},
		{"PipelineRunning", PipelineRunning},
		{"PipelineLastBatchSize", PipelineLastBatchSize},
		{"FilesystemOperationDuration", FilesystemOperationDuration},
		{"FilesystemCopiedBytes", FilesystemCopiedBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func writeAndRead(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picture_helper.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func TestInitializeMetricsExportsZeroSeries(t *testing.T) {
	InitializeMetrics()
	out := writeAndRead(t)

	for _, want := range []string{
		`picture_helper_ingest_files_total{status="error_decode"}`,
		`picture_helper_copy_files_total{bucket="unknown_date",status="skipped"}`,
		`picture_helper_pipeline_running{pipeline="copy"}`,
		`picture_helper_filesystem_retry_attempts_total{operation="mkdir",volume="target"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing series %s", want)
		}
	}
}

func TestFilesystemObserver(t *testing.T) {
	obs := NewFilesystemObserver()

	obs.ObserveOperation("target", "copy", 0.01, nil)
	obs.ObserveOperation("target", "copy", 0.02, errors.New("disk full"))
	obs.ObserveCopiedBytes("target", 2048)
	obs.ObserveRetryAttempt("stat", "source")
	obs.ObserveRetrySuccess("stat", "source")
	obs.ObserveRetryFailure("stat", "source")
	obs.ObserveStaleError("stat", "source")

	out := writeAndRead(t)
	for _, want := range []string{
		`picture_helper_filesystem_operation_errors_total{operation="copy",volume="target"} 1`,
		`picture_helper_filesystem_copied_bytes_total{volume="target"} 2048`,
		`picture_helper_filesystem_stale_errors_total{operation="stat",volume="source"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %s", want)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "metrics.prom")
	if err := WriteTextfile(path); err == nil {
		t.Error("expected error for unwritable path")
	}
}
