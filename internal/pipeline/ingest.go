package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"picture-helper/internal/filesystem"
	"picture-helper/internal/media"
	"picture-helper/internal/metadata"
	"picture-helper/internal/metrics"

	"github.com/google/uuid"
)

// DefaultThumbnailSize is the thumbnail box edge used when none is configured.
const DefaultThumbnailSize = 48

// IngestConfig configures an Ingester.
type IngestConfig struct {
	BoxWidth  int
	BoxHeight int
	Log       LogFunc
}

// Ingester turns picture paths into Records.
type Ingester struct {
	boxWidth  int
	boxHeight int
	log       LogFunc
	extractor metadata.Extractor
	newKey    func() string
}

// NewIngester creates an Ingester. Non-positive box dimensions fall back
// to DefaultThumbnailSize; a nil Log discards status lines.
func NewIngester(config IngestConfig) *Ingester {
	in := &Ingester{
		boxWidth:  config.BoxWidth,
		boxHeight: config.BoxHeight,
		log:       config.Log,
		newKey:    uuid.NewString,
	}
	if in.boxWidth <= 0 {
		in.boxWidth = DefaultThumbnailSize
	}
	if in.boxHeight <= 0 {
		in.boxHeight = DefaultThumbnailSize
	}
	if in.log == nil {
		in.log = discardLog
	}
	in.extractor = metadata.Extractor{Warn: func(format string, args ...interface{}) {
		in.log(fmt.Sprintf(format, args...), false)
	}}
	return in
}

// Run ingests paths one at a time, in order. For each path that decodes,
// h.OnRecord is called before the next path is read. h.OnProgress follows
// every path, failed or not, and h.OnDone is called once at the end.
func (in *Ingester) Run(paths []string, h IngestHandler) []Result {
	metrics.PipelineRunning.WithLabelValues(metrics.PipelineIngest).Set(1)
	defer metrics.PipelineRunning.WithLabelValues(metrics.PipelineIngest).Set(0)
	metrics.PipelineLastBatchSize.WithLabelValues(metrics.PipelineIngest).Set(float64(len(paths)))

	results := make([]Result, 0, len(paths))
	for i, path := range paths {
		res := in.ingest(path)
		results = append(results, res)

		if res.Status == StatusSuccess && h.OnRecord != nil {
			h.OnRecord(*res.Record)
		}
		if h.OnProgress != nil {
			h.OnProgress(i+1, len(paths))
		}
	}

	if h.OnDone != nil {
		h.OnDone()
	}
	return results
}

// Start runs Run on a new goroutine and streams its callbacks as Events.
// The channel is closed after the EventDone event.
func (in *Ingester) Start(paths []string) <-chan Event {
	paths = append([]string(nil), paths...)
	events := make(chan Event, eventBuffer)

	go func() {
		defer close(events)
		results := in.Run(paths, IngestHandler{
			OnRecord: func(r Record) {
				events <- Event{Kind: EventRecord, Record: r}
			},
			OnProgress: func(count, total int) {
				events <- Event{Kind: EventProgress, Count: count, Total: total}
			},
		})
		events <- Event{Kind: EventDone, Count: len(paths), Total: len(paths), Results: results}
	}()

	return events
}

// eventBuffer lets the worker run a little ahead of a slow receiver.
const eventBuffer = 16

func (in *Ingester) ingest(path string) Result {
	start := time.Now()
	defer func() {
		metrics.IngestFileDuration.Observe(time.Since(start).Seconds())
	}()

	rec, status, err := in.build(path)
	if err != nil {
		metrics.IngestFilesTotal.WithLabelValues(status).Inc()
		in.log(fmt.Sprintf("Error reading file '%s': %v", path, err), true)
		return Result{SourcePath: path, Status: StatusFailed, Err: err}
	}

	metrics.IngestFilesTotal.WithLabelValues("success").Inc()
	if rec.CaptureTimeValid {
		metrics.IngestCaptureTime.WithLabelValues("valid").Inc()
		in.log(fmt.Sprintf("Picture added: %s (%s)", path, rec.CaptureTime.Format("2006-01-02")), false)
	} else {
		metrics.IngestCaptureTime.WithLabelValues("missing").Inc()
		in.log(fmt.Sprintf("Picture added: %s (date missing)", path), false)
	}
	return Result{SourcePath: path, Status: StatusSuccess, Record: rec}
}

var errNoPixels = errors.New("decoder returned no image")

// build reads one file. The returned status is the metrics label for the
// failing stage.
func (in *Ingester) build(path string) (*Record, string, error) {
	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, "error_decode", err
	}

	decoded, err := media.Decode(data)
	if err != nil {
		return nil, "error_decode", err
	}
	if decoded.Image == nil {
		return nil, "error_decode", errNoPixels
	}
	metrics.IngestDecodeByFormat.WithLabelValues(decoded.Format).Inc()

	captured, valid, err := in.extractor.CaptureTime(metadata.ReadTags(bytes.NewReader(data)))
	if err != nil {
		return nil, "error_metadata", err
	}

	thumbStart := time.Now()
	thumb, err := media.Fit(decoded.Image, in.boxWidth, in.boxHeight)
	metrics.ThumbnailDuration.Observe(time.Since(thumbStart).Seconds())
	if err != nil {
		return nil, "error_thumbnail", err
	}

	return &Record{
		SourcePath:       path,
		CaptureTime:      captured,
		CaptureTimeValid: valid,
		Thumbnail:        thumb,
		DisplayKey:       in.newKey(),
	}, "", nil
}
