package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"picture-helper/internal/metadata/metadatatest"
)

type logLine struct {
	message string
	isError bool
}

// logRecorder collects LogFunc output
type logRecorder struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *logRecorder) log(message string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{message, isError})
}

// count returns how many lines contain substr with the given severity
func (l *logRecorder) count(substr string, isError bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if line.isError == isError && strings.Contains(line.message, substr) {
			n++
		}
	}
	return n
}

func (l *logRecorder) errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, line := range l.lines {
		if line.isError {
			out = append(out, line.message)
		}
	}
	return out
}

// writeJPEG writes a fixture JPEG into dir and returns its path
func writeJPEG(t *testing.T, dir, name string, w, h int, date string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := metadatatest.WriteJPEG(path, w, h, date); err != nil {
		t.Fatalf("WriteJPEG(%s) error = %v", name, err)
	}
	return path
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

// listFiles returns all regular files below root, relative to it
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir() error = %v", err)
	}
	return files
}
