package pipeline

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when a picture is already in the batch.
var ErrDuplicate = errors.New("picture already in the list")

// Batch is the caller-owned working set of ingested Records. It is not
// safe for concurrent use; only the goroutine receiving pipeline Events
// should touch it.
type Batch struct {
	records []Record
	paths   map[string]bool
}

// NewBatch returns an empty Batch.
func NewBatch() *Batch {
	return &Batch{paths: make(map[string]bool)}
}

// Len returns the number of queued records.
func (b *Batch) Len() int {
	return len(b.records)
}

// Contains reports whether a record for path is queued.
func (b *Batch) Contains(path string) bool {
	return b.paths[path]
}

// Add appends r unless its source path is already queued.
func (b *Batch) Add(r Record) error {
	if b.paths[r.SourcePath] {
		return fmt.Errorf("%w: '%s'", ErrDuplicate, r.SourcePath)
	}
	b.paths[r.SourcePath] = true
	b.records = append(b.records, r)
	return nil
}

// Get returns the record with the given display key.
func (b *Batch) Get(key string) (Record, bool) {
	for _, r := range b.records {
		if r.DisplayKey == key {
			return r, true
		}
	}
	return Record{}, false
}

// Remove drops the records with the given display keys and returns them.
func (b *Batch) Remove(keys ...string) []Record {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}

	var removed []Record
	kept := b.records[:0]
	for _, r := range b.records {
		if drop[r.DisplayKey] {
			removed = append(removed, r)
			delete(b.paths, r.SourcePath)
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(b.records); i++ {
		b.records[i] = Record{}
	}
	b.records = kept
	return removed
}

// Records returns a copy of the queued records in insertion order.
func (b *Batch) Records() []Record {
	return append([]Record(nil), b.records...)
}

// Clear empties the batch.
func (b *Batch) Clear() {
	b.records = nil
	b.paths = make(map[string]bool)
}

// Filter returns the paths that are neither queued nor repeated earlier in
// paths, logging each one it drops.
func (b *Batch) Filter(paths []string, log LogFunc) []string {
	if log == nil {
		log = discardLog
	}
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if b.paths[p] || seen[p] {
			log(fmt.Sprintf("Picture already in the list: '%s'", p), false)
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Apply folds an ingestion Event into the batch. Only EventRecord changes
// it; a duplicate record is reported and not added.
func (b *Batch) Apply(ev Event) error {
	if ev.Kind != EventRecord {
		return nil
	}
	return b.Add(ev.Record)
}
