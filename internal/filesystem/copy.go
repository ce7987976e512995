package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"picture-helper/internal/logging"
)

// Exists reports whether something is present at path. Errors other than
// "not exist" are returned so callers don't mistake them for absence.
func Exists(path string) (bool, error) {
	_, err := StatWithRetry(path, DefaultRetryConfig())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// EnsureDir creates dir (and parents) when it is missing. created reports
// whether a directory was made by this call.
func EnsureDir(dir string) (created bool, err error) {
	start := time.Now()
	info, err := StatWithRetry(dir, DefaultRetryConfig())
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	err = os.MkdirAll(dir, 0o755)
	observe().ObserveOperation(defaultResolver.Resolve(dir), "mkdir", time.Since(start).Seconds(), err)
	if err != nil {
		return false, err
	}
	return true, nil
}

// CopyFile copies src to dst and returns the number of bytes written.
// dst is created exclusively: if it already exists the error wraps
// fs.ErrExist and nothing is written. A failed copy removes the partial
// destination. The source modification time is carried over.
func CopyFile(src, dst string) (int64, error) {
	start := time.Now()
	volume := defaultResolver.Resolve(dst)

	n, err := copyFile(src, dst)
	observe().ObserveOperation(volume, "copy", time.Since(start).Seconds(), err)
	if err == nil {
		observe().ObserveCopiedBytes(volume, n)
	}
	return n, err
}

func copyFile(src, dst string) (int64, error) {
	in, err := OpenWithRetry(src, DefaultRetryConfig())
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err == nil {
		err = out.Sync()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(dst); rmErr != nil {
			logging.Warn("failed to remove partial copy %s: %v", dst, rmErr)
		}
		return 0, err
	}

	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		logging.Debug("could not keep modification time on %s: %v", dst, err)
	}
	return n, nil
}
