package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"picture-helper/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const (
	// DefaultThumbnailSize is the thumbnail box edge in pixels.
	DefaultThumbnailSize = 48
	// DefaultUnknownDateDirName is the unknown-date folder below TARGET_DIR.
	DefaultUnknownDateDirName = "_unknown"
)

// Config holds all application configuration
type Config struct {
	TargetDir       string
	UnknownDateDir  string
	ThumbnailWidth  int
	ThumbnailHeight int
	MetricsFile     string
	Recursive       bool

	// CopyEnabled is false when either target directory is missing; pictures
	// can still be ingested and listed.
	CopyEnabled bool
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	targetDir := getEnv("TARGET_DIR", "")
	unknownDir := getEnv("TARGET_DIR_UNKNOWN_DATE", "")
	width := getEnvInt("THUMBNAIL_WIDTH", DefaultThumbnailSize)
	height := getEnvInt("THUMBNAIL_HEIGHT", DefaultThumbnailSize)
	metricsFile := getEnv("METRICS_FILE", "")
	recursive := getEnvBool("RECURSIVE", false)

	if unknownDir == "" && targetDir != "" {
		unknownDir = filepath.Join(targetDir, DefaultUnknownDateDirName)
	}

	logging.Info("  TARGET_DIR:              %s", targetDir)
	logging.Info("  TARGET_DIR_UNKNOWN_DATE: %s", unknownDir)
	logging.Info("  THUMBNAIL_WIDTH:         %d", width)
	logging.Info("  THUMBNAIL_HEIGHT:        %d", height)
	logging.Info("  METRICS_FILE:            %s", metricsFile)
	logging.Info("  RECURSIVE:               %v", recursive)
	logging.Info("  LOG_LEVEL:               %s", logging.GetLevel())

	config := &Config{
		ThumbnailWidth:  width,
		ThumbnailHeight: height,
		MetricsFile:     metricsFile,
		Recursive:       recursive,
	}

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	var err error
	if targetDir != "" {
		if config.TargetDir, err = filepath.Abs(targetDir); err != nil {
			return nil, fmt.Errorf("failed to resolve target directory path: %w", err)
		}
		if config.UnknownDateDir, err = filepath.Abs(unknownDir); err != nil {
			return nil, fmt.Errorf("failed to resolve unknown-date directory path: %w", err)
		}
	}

	config.CopyEnabled = checkTargetDir(config.TargetDir, "Target") &&
		checkTargetDir(config.UnknownDateDir, "Unknown-date")

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Ingestion:   ENABLED")
	logging.Info("    Copy & sort: %s", enabledString(config.CopyEnabled))

	return config, nil
}

// checkTargetDir reports whether dir is an existing directory. Target
// directories are never created here: a typo must not scatter pictures
// into a fresh tree.
func checkTargetDir(dir, name string) bool {
	if dir == "" {
		logging.Error("  %s directory not configured", name)
		return false
	}

	info, err := os.Stat(dir)
	if err != nil {
		logging.Error("  %s directory was NOT found: %s", name, dir)
		return false
	}
	if !info.IsDir() {
		logging.Error("  %s directory is not a directory: %s", name, dir)
		return false
	}

	logging.Info("  [OK] %s directory: %s", name, dir)
	return true
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func printBanner() {
	logging.Info("------------------------------------------------------------")
	logging.Info("  PictureHelper %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("------------------------------------------------------------")
}

func logSystemInfo() {
	logging.Debug("  Go version:      %s", runtime.Version())
	logging.Debug("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Debug("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))
	if wd, err := os.Getwd(); err == nil {
		logging.Debug("  Working dir:     %s", wd)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvInt reads a positive integer
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		logging.Warn("Invalid positive integer for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
