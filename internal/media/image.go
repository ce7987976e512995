package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"picture-helper/internal/filesystem"
	"picture-helper/internal/logging"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

const (
	// MaxImagePixels is the largest picture (width * height) we'll decode.
	// 100MP in NRGBA is ~400MB.
	MaxImagePixels = 100_000_000
)

// ErrImageTooLarge is returned for pictures above MaxImagePixels.
var ErrImageTooLarge = errors.New("image too large")

// ImageDimensions holds image width and height
type ImageDimensions struct {
	Width  int
	Height int
}

// Decoded is a fully decoded picture together with the format name
// reported by the registered decoder.
type Decoded struct {
	Image  image.Image
	Format string
}

// Decode decodes an encoded picture, applying its EXIF orientation.
// The header is checked first so oversized pictures are rejected before
// any pixel memory is allocated.
func Decode(data []byte) (*Decoded, error) {
	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognized image: %w", err)
	}

	pixels := config.Width * config.Height
	logging.Debug("Image header: %s %dx%d (%d pixels)", format, config.Width, config.Height, pixels)
	if pixels > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, config.Width, config.Height, MaxImagePixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	return &Decoded{Image: img, Format: format}, nil
}

// LoadImage reads and decodes the picture at path.
func LoadImage(path string) (*Decoded, error) {
	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// GetImageDimensions returns image dimensions without fully decoding the image
func GetImageDimensions(path string) (*ImageDimensions, error) {
	file, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, err
	}

	return &ImageDimensions{
		Width:  config.Width,
		Height: config.Height,
	}, nil
}
