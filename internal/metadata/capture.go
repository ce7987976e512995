package metadata

import (
	"errors"
	"fmt"
	"time"

	"picture-helper/internal/logging"
)

// DateLayout is the fixed-width EXIF date format, e.g. "2012:04:28 17:46:41".
const DateLayout = "2006:01:02 15:04:05"

// ErrMalformedDate is returned when a capture date has the right length
// but does not match DateLayout.
var ErrMalformedDate = errors.New("malformed capture date")

var dateTagIDs = map[uint16]bool{
	TagDateTimeOriginal:  true,
	TagDateTimeDigitized: true,
}

// Extractor derives capture times from tag sets. Warn receives the
// non-fatal "date too short" notices; nil uses logging.Warn.
type Extractor struct {
	Warn func(format string, args ...interface{})
}

func (e Extractor) warn(format string, args ...interface{}) {
	if e.Warn != nil {
		e.Warn(format, args...)
		return
	}
	logging.Warn(format, args...)
}

// CaptureTime returns the capture time stored in the first date tag of
// tags. ok is false when no usable date is present. A date of full length
// that fails to parse is an error.
//
// The returned time carries the wall-clock fields of the tag in UTC; EXIF
// dates have no zone.
func (e Extractor) CaptureTime(tags []Tag) (time.Time, bool, error) {
	for _, tag := range tags {
		if !dateTagIDs[tag.ID] || tag.Type != TypeASCII {
			continue
		}

		s := sanitize(tag.Raw, tag.Length)
		if len(s) < len(DateLayout) {
			e.warn("Invalid capture date: '%s'", s)
			return time.Time{}, false, nil
		}

		t, err := time.Parse(DateLayout, s[:len(DateLayout)])
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w %q: %v", ErrMalformedDate, s, err)
		}
		return t, true, nil
	}
	return time.Time{}, false, nil
}

// CaptureTime runs a default Extractor over tags.
func CaptureTime(tags []Tag) (time.Time, bool, error) {
	return Extractor{}.CaptureTime(tags)
}

// sanitize keeps the printable ASCII bytes among the first length bytes.
func sanitize(raw []byte, length int) string {
	out := make([]byte, 0, len(raw))
	for i, b := range raw {
		if i >= length {
			break
		}
		if b >= 32 && b < 127 {
			out = append(out, b)
		}
	}
	return string(out)
}
