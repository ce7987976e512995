package pipeline

import (
	"image"
	"time"
)

// LogFunc receives human-readable status lines. isError marks failures.
type LogFunc func(message string, isError bool)

func discardLog(string, bool) {}

// Record is one ingested picture. It is never modified after the
// Ingester emits it.
type Record struct {
	SourcePath string

	// CaptureTime is only meaningful when CaptureTimeValid is set.
	CaptureTime      time.Time
	CaptureTimeValid bool

	Thumbnail *image.NRGBA

	// DisplayKey identifies the record across the callback boundary; use
	// it instead of list positions to correlate with caller-side state.
	DisplayKey string
}

// Status is the outcome of processing one item.
type Status int

const (
	// StatusSuccess means the item was ingested or copied.
	StatusSuccess Status = iota
	// StatusSkipped means the destination already existed.
	StatusSkipped
	// StatusFailed means an error stopped the item; Err holds it.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the per-item outcome collected by both pipelines, in input
// order.
type Result struct {
	SourcePath string
	Status     Status

	// Record is set for successful ingestion and for every copy result.
	Record *Record

	// Destination is the computed target path (copy only).
	Destination string

	Err error
}

// IngestHandler receives ingestion callbacks. Nil fields are ignored.
type IngestHandler struct {
	OnRecord   func(Record)
	OnProgress func(count, total int)
	OnDone     func()
}

// CopyHandler receives copy callbacks. Nil fields are ignored.
type CopyHandler struct {
	OnProgress func(count, total int)
	OnDone     func(skipped []string)
}

// CopyReport summarizes a copy pass.
type CopyReport struct {
	Results []Result

	// Skipped lists source paths whose destination already existed, in the
	// order they were skipped.
	Skipped []string

	// Failed lists source paths that could not be copied. They are
	// candidates for a retry just like Skipped.
	Failed []string
}

// EventKind discriminates Event.
type EventKind int

const (
	// EventRecord carries a newly ingested Record.
	EventRecord EventKind = iota
	// EventProgress reports Count of Total items processed.
	EventProgress
	// EventDone is the last event of a run.
	EventDone
)

// Event is a message from a background run to the foreground. Events are
// values; nothing in them is shared with the worker afterwards.
type Event struct {
	Kind EventKind

	Record Record

	Count int
	Total int

	// Results is set on EventDone.
	Results []Result
	// Report is set on EventDone of a copy run.
	Report *CopyReport
}
