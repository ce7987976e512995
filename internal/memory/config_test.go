package memory

import (
	"math"
	"runtime/debug"
	"testing"
)

// restoreLimit puts the process memory limit back after a test
func restoreLimit(t *testing.T) {
	t.Helper()
	prev := debug.SetMemoryLimit(-1)
	t.Cleanup(func() { debug.SetMemoryLimit(prev) })
}

func TestConfigureFromEnv(t *testing.T) {
	restoreLimit(t)

	tests := []struct {
		name       string
		limit      string
		ratio      string
		configured bool
		source     string
		goLimit    int64
	}{
		{"unset", "", "", false, "none", 0},
		{"invalid limit", "lots", "", false, "none", 0},
		{"default ratio", "1000000", "", true, "MEMORY_LIMIT", 750000},
		{"custom ratio", "1000000", "0.5", true, "MEMORY_LIMIT", 500000},
		{"out of range ratio", "1000000", "1.5", true, "MEMORY_LIMIT", 750000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GOMEMLIMIT", "")
			t.Setenv("MEMORY_LIMIT", tt.limit)
			t.Setenv("MEMORY_RATIO", tt.ratio)

			result := ConfigureFromEnv()
			if result.Configured != tt.configured || result.Source != tt.source {
				t.Errorf("ConfigureFromEnv() = %+v", result)
			}
			if result.GoMemLimit != tt.goLimit {
				t.Errorf("GoMemLimit = %d, want %d", result.GoMemLimit, tt.goLimit)
			}
			if tt.configured && debug.SetMemoryLimit(-1) != tt.goLimit {
				t.Errorf("runtime limit not applied")
			}
		})
	}
}

func TestConfigureFromEnv_GOMEMLIMITWins(t *testing.T) {
	restoreLimit(t)
	debug.SetMemoryLimit(math.MaxInt64)

	t.Setenv("GOMEMLIMIT", "512MiB")
	t.Setenv("MEMORY_LIMIT", "1000000")

	result := ConfigureFromEnv()
	if result.Source != "GOMEMLIMIT" {
		t.Errorf("Source = %s, want GOMEMLIMIT", result.Source)
	}
	if debug.SetMemoryLimit(-1) == 750000 {
		t.Error("MEMORY_LIMIT must be ignored when GOMEMLIMIT is set")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{2 * 1024 * 1024 * 1024, "2.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
