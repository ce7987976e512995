package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"
)

// recordingObserver counts observer calls per kind
type recordingObserver struct {
	mu         sync.Mutex
	operations map[string]int
	attempts   int
	successes  int
	failures   int
	stale      int
	bytes      int64
}

func newRecordingObserver(t *testing.T) *recordingObserver {
	t.Helper()
	o := &recordingObserver{operations: map[string]int{}}
	SetObserver(o)
	t.Cleanup(func() { SetObserver(nil) })
	return o
}

func (o *recordingObserver) ObserveOperation(_, operation string, _ float64, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations[operation]++
}

func (o *recordingObserver) ObserveRetryAttempt(string, string) { o.attempts++ }
func (o *recordingObserver) ObserveRetrySuccess(string, string) { o.successes++ }
func (o *recordingObserver) ObserveRetryFailure(string, string) { o.failures++ }
func (o *recordingObserver) ObserveStaleError(string, string)   { o.stale++ }
func (o *recordingObserver) ObserveCopiedBytes(_ string, n int64) {
	o.bytes += n
}

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()

	if config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", config.MaxRetries)
	}
	if config.InitialBackoff != 50*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 50ms", config.InitialBackoff)
	}
	if config.MaxBackoff != 500*time.Millisecond {
		t.Errorf("MaxBackoff = %v, want 500ms", config.MaxBackoff)
	}
}

func TestIsNFSStaleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"ESTALE error", syscall.ESTALE, true},
		{"wrapped ESTALE", &os.PathError{Op: "stat", Path: "/x", Err: syscall.ESTALE}, true},
		{"ENOENT error", syscall.ENOENT, false},
		{"generic error", os.ErrNotExist, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNFSStaleError(tt.err); got != tt.want {
				t.Errorf("isNFSStaleError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithRetry_RecoversFromStaleHandle(t *testing.T) {
	obs := newRecordingObserver(t)

	calls := 0
	err := withRetry("stat", "/photos/a.jpg", fastRetryConfig(), func() error {
		calls++
		if calls < 3 {
			return syscall.ESTALE
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withRetry() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if obs.stale != 2 || obs.attempts != 2 || obs.successes != 1 || obs.failures != 0 {
		t.Errorf("observer stale=%d attempts=%d successes=%d failures=%d",
			obs.stale, obs.attempts, obs.successes, obs.failures)
	}
}

func TestWithRetry_GivesUp(t *testing.T) {
	obs := newRecordingObserver(t)

	calls := 0
	err := withRetry("open", "/photos/a.jpg", fastRetryConfig(), func() error {
		calls++
		return syscall.ESTALE
	})
	if !errors.Is(err, syscall.ESTALE) {
		t.Fatalf("withRetry() error = %v, want ESTALE", err)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4 (1 + 3 retries)", calls)
	}
	if obs.failures != 1 {
		t.Errorf("failures = %d, want 1", obs.failures)
	}
}

func TestWithRetry_NoRetryOnOtherErrors(t *testing.T) {
	newRecordingObserver(t)

	calls := 0
	err := withRetry("stat", "/photos/a.jpg", fastRetryConfig(), func() error {
		calls++
		return os.ErrPermission
	})
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("withRetry() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestVolumeResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "sorted")
	unknown := filepath.Join(target, "_unknown")

	vr := NewVolumeResolver(map[string]string{
		"target":       target,
		"unknown_date": unknown,
		"empty":        "",
	})

	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(target, "2020-05", "a.jpg"), "target"},
		{target, "target"},
		{filepath.Join(unknown, "b.jpg"), "unknown_date"},
		{target + "-other", "unknown"},
		{filepath.Join(root, "elsewhere.jpg"), "unknown"},
	}

	for _, tt := range tests {
		if got := vr.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	var nilResolver *VolumeResolver
	if got := nilResolver.Resolve(target); got != "unknown" {
		t.Errorf("nil resolver Resolve() = %q, want unknown", got)
	}
}

func TestStatAndReadWithRetry(t *testing.T) {
	obs := newRecordingObserver(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "picture.jpg")
	if err := os.WriteFile(path, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := StatWithRetry(path, fastRetryConfig())
	if err != nil {
		t.Fatalf("StatWithRetry() error = %v", err)
	}
	if info.Size() != int64(len("jpeg bytes")) {
		t.Errorf("Size() = %d", info.Size())
	}

	data, err := ReadFileWithRetry(path, fastRetryConfig())
	if err != nil || string(data) != "jpeg bytes" {
		t.Errorf("ReadFileWithRetry() = %q, %v", data, err)
	}

	f, err := OpenWithRetry(path, fastRetryConfig())
	if err != nil {
		t.Fatalf("OpenWithRetry() error = %v", err)
	}
	f.Close()

	if _, err := StatWithRetry(filepath.Join(tmpDir, "missing"), fastRetryConfig()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("StatWithRetry(missing) error = %v, want ErrNotExist", err)
	}

	for _, op := range []string{"stat", "read", "open"} {
		if obs.operations[op] == 0 {
			t.Errorf("no %s operation observed", op)
		}
	}
}
