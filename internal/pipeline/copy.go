package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"picture-helper/internal/filesystem"
	"picture-helper/internal/metrics"
)

const (
	// MonthLayout names the year-month folders, e.g. "2020-05".
	MonthLayout = "2006-01"
	// PrefixLayout is the capture time prefix of copied files, e.g. "2020-05-10_14-03".
	PrefixLayout = "2006-01-02_15-04"
)

// CopyConfig configures a Copier. Both directories are expected to exist.
type CopyConfig struct {
	TargetDir      string
	UnknownDateDir string
	Log            LogFunc
}

// Copier sorts Records into the target directory tree.
type Copier struct {
	targetDir      string
	unknownDateDir string
	log            LogFunc
}

// NewCopier creates a Copier. A nil Log discards status lines.
func NewCopier(config CopyConfig) *Copier {
	c := &Copier{
		targetDir:      config.TargetDir,
		unknownDateDir: config.UnknownDateDir,
		log:            config.Log,
	}
	if c.log == nil {
		c.log = discardLog
	}
	return c
}

// DatedDir returns the year-month folder for a capture time.
func (c *Copier) DatedDir(t time.Time) string {
	return filepath.Join(c.targetDir, t.Format(MonthLayout))
}

// DestinationName returns the file name a record is copied to.
func DestinationName(r Record) string {
	name := filepath.Base(r.SourcePath)
	if r.CaptureTimeValid {
		return r.CaptureTime.Format(PrefixLayout) + "_" + name
	}
	return name
}

// Run copies records in order. Each record's destination is computed from
// its capture time; a missing year-month folder is created, and when that
// fails the record goes to the unknown-date directory instead. Existing
// destinations are skipped, never overwritten. h.OnProgress follows every
// record and h.OnDone receives the skip list once at the end.
func (c *Copier) Run(records []Record, h CopyHandler) CopyReport {
	start := time.Now()
	metrics.PipelineRunning.WithLabelValues(metrics.PipelineCopy).Set(1)
	defer func() {
		metrics.PipelineRunning.WithLabelValues(metrics.PipelineCopy).Set(0)
		metrics.CopyBatchDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.PipelineLastBatchSize.WithLabelValues(metrics.PipelineCopy).Set(float64(len(records)))

	report := CopyReport{
		Results: make([]Result, 0, len(records)),
		Skipped: []string{},
		Failed:  []string{},
	}

	for i := range records {
		rec := records[i]
		res := c.copy(&rec)
		report.Results = append(report.Results, res)

		switch res.Status {
		case StatusSkipped:
			report.Skipped = append(report.Skipped, rec.SourcePath)
		case StatusFailed:
			report.Failed = append(report.Failed, rec.SourcePath)
		}

		if h.OnProgress != nil {
			h.OnProgress(i+1, len(records))
		}
	}

	if h.OnDone != nil {
		h.OnDone(report.Skipped)
	}
	return report
}

// Start runs Run on a new goroutine and streams progress as Events. The
// EventDone event carries the CopyReport; the channel closes after it.
func (c *Copier) Start(records []Record) <-chan Event {
	records = append([]Record(nil), records...)
	events := make(chan Event, eventBuffer)

	go func() {
		defer close(events)
		report := c.Run(records, CopyHandler{
			OnProgress: func(count, total int) {
				events <- Event{Kind: EventProgress, Count: count, Total: total}
			},
		})
		events <- Event{
			Kind:    EventDone,
			Count:   len(records),
			Total:   len(records),
			Results: report.Results,
			Report:  &report,
		}
	}()

	return events
}

// resolveDir picks the destination directory, creating the dated folder
// when needed.
func (c *Copier) resolveDir(rec *Record) (dir, bucket string) {
	if !rec.CaptureTimeValid {
		return c.unknownDateDir, metrics.BucketUnknownDate
	}

	dated := c.DatedDir(rec.CaptureTime)
	created, err := filesystem.EnsureDir(dated)
	if err != nil {
		c.log(fmt.Sprintf("Error creating directory '%s': %v", dated, err), true)
		metrics.CopyDirectoryFallbacks.Inc()
		return c.unknownDateDir, metrics.BucketUnknownDate
	}
	if created {
		c.log(fmt.Sprintf("Directory created: %s", dated), false)
		metrics.CopyDirectoriesCreated.Inc()
	}
	return dated, metrics.BucketDated
}

func (c *Copier) copy(rec *Record) Result {
	dir, bucket := c.resolveDir(rec)
	dest := filepath.Join(dir, DestinationName(*rec))
	res := Result{SourcePath: rec.SourcePath, Record: rec, Destination: dest}

	exists, err := filesystem.Exists(dest)
	if err != nil {
		return c.fail(res, bucket, err)
	}
	if exists {
		return c.skip(res, bucket)
	}

	c.log(fmt.Sprintf("Copying '%s' to '%s'", rec.SourcePath, dest), false)
	if _, err := filesystem.CopyFile(rec.SourcePath, dest); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return c.skip(res, bucket)
		}
		return c.fail(res, bucket, err)
	}

	metrics.CopyFilesTotal.WithLabelValues("copied", bucket).Inc()
	res.Status = StatusSuccess
	return res
}

func (c *Copier) skip(res Result, bucket string) Result {
	c.log(fmt.Sprintf("Picture already exists: '%s'", res.Destination), false)
	metrics.CopyFilesTotal.WithLabelValues("skipped", bucket).Inc()
	res.Status = StatusSkipped
	return res
}

func (c *Copier) fail(res Result, bucket string, err error) Result {
	c.log(fmt.Sprintf("Error copying '%s' to '%s': %v", res.SourcePath, res.Destination, err), true)
	metrics.CopyFilesTotal.WithLabelValues("failed", bucket).Inc()
	res.Status = StatusFailed
	res.Err = err
	return res
}
