package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"picture-helper/internal/filesystem"
	"picture-helper/internal/logging"
	"picture-helper/internal/media"
	"picture-helper/internal/memory"
	"picture-helper/internal/metrics"
	"picture-helper/internal/pipeline"
	"picture-helper/internal/startup"

	"golang.org/x/term"
)

func main() {
	startTime := time.Now()

	memory.ConfigureFromEnv()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	metrics.InitializeMetrics()
	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(map[string]string{
		"target":       config.TargetDir,
		"unknown_date": config.UnknownDateDir,
	}))
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	batch := pipeline.NewBatch()
	paths := batch.Filter(expandPaths(os.Args[1:], config.Recursive), logging.StatusSink)
	if len(paths) == 0 {
		logging.Info("No pictures to process")
		return
	}

	progress := newProgressLine(os.Stderr)

	ingester := pipeline.NewIngester(pipeline.IngestConfig{
		BoxWidth:  config.ThumbnailWidth,
		BoxHeight: config.ThumbnailHeight,
		Log:       logging.StatusSink,
	})
	for ev := range ingester.Start(paths) {
		switch ev.Kind {
		case pipeline.EventRecord:
			if err := batch.Apply(ev); err != nil {
				logging.Warn("Dropping record for '%s': %v", ev.Record.SourcePath, err)
			}
		case pipeline.EventProgress:
			progress.update("Loading", ev.Count, ev.Total)
		case pipeline.EventDone:
			progress.finish()
		}
	}
	logging.Info("%d of %d pictures loaded", batch.Len(), len(paths))

	if !config.CopyEnabled {
		logging.Warn("Copy & sort disabled, check TARGET_DIR and TARGET_DIR_UNKNOWN_DATE")
		writeMetrics(config.MetricsFile)
		return
	}

	copier := pipeline.NewCopier(pipeline.CopyConfig{
		TargetDir:      config.TargetDir,
		UnknownDateDir: config.UnknownDateDir,
		Log:            logging.StatusSink,
	})
	var report *pipeline.CopyReport
	for ev := range copier.Start(batch.Records()) {
		switch ev.Kind {
		case pipeline.EventProgress:
			progress.update("Copying", ev.Count, ev.Total)
		case pipeline.EventDone:
			progress.finish()
			report = ev.Report
		}
	}

	if report != nil {
		logResubmitList("already present", report.Skipped)
		logResubmitList("failed", report.Failed)
	}
	batch.Clear()

	writeMetrics(config.MetricsFile)
	logging.Info("Done in %v", time.Since(startTime).Round(time.Millisecond))
}

// expandPaths replaces directories with the images they contain, in
// lexical order. Plain file arguments are passed through untouched so
// unsupported files still show up as decode errors.
func expandPaths(args []string, recursive bool) []string {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logging.Warn("Cannot read '%s': %v", path, err)
				return nil
			}
			if d.IsDir() {
				if path != arg && !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if media.IsImage(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			logging.Warn("Cannot walk '%s': %v", arg, err)
		}
	}
	return out
}

func logResubmitList(what string, paths []string) {
	if len(paths) == 0 {
		return
	}
	logging.Info("%d pictures %s:", len(paths), what)
	for _, p := range paths {
		logging.Info("  %s", p)
	}
}

func writeMetrics(path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logging.Error("Failed to write metrics to %s: %v", path, err)
		return
	}
	logging.Debug("Metrics written to %s", path)
}

// progressLine redraws a single status line on terminals and stays
// silent otherwise, leaving the log as the only record.
type progressLine struct {
	w   io.Writer
	tty bool
}

func newProgressLine(f *os.File) *progressLine {
	return &progressLine{w: f, tty: term.IsTerminal(int(f.Fd()))}
}

func (p *progressLine) update(label string, count, total int) {
	if !p.tty || total == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s %d/%d (%d%%)", label, count, total, count*100/total)
}

func (p *progressLine) finish() {
	if p.tty {
		fmt.Fprintln(p.w)
	}
}
