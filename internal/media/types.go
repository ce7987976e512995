package media

import (
	"path/filepath"
	"strings"
)

// ImageExtensions maps file extensions to whether they are decodable image formats.
var ImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".webp": true, ".tiff": true, ".tif": true,
}

// IsImage reports whether path has a decodable image extension.
func IsImage(path string) bool {
	return ImageExtensions[strings.ToLower(filepath.Ext(path))]
}
