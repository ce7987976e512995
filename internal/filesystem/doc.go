/*
Package filesystem provides the filesystem operations behind ingestion and
copying, with automatic retry for NFS stale file handle errors.

# Retry Behavior

StatWithRetry, OpenWithRetry and ReadFileWithRetry retry only on ESTALE
(errno 116), with exponential backoff:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

All other errors fail immediately.

# Copying

CopyFile never overwrites: the destination is opened with O_EXCL, so a
file that appears between the existence check and the copy is reported as
fs.ErrExist instead of being replaced. Partial output is removed on
failure. EnsureDir creates missing year-month folders.

# Metrics

Operations are reported to the Observer installed with SetObserver,
labeled by the volume a path belongs to (see VolumeResolver):

	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(map[string]string{
	    "target":       cfg.TargetDir,
	    "unknown_date": cfg.UnknownDateDir,
	}))
	filesystem.SetObserver(metrics.NewFilesystemObserver())
*/
package filesystem
