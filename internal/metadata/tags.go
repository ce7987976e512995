package metadata

import (
	"io"
	"sort"

	"picture-helper/internal/logging"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

const (
	// TagDateTimeOriginal is the EXIF id of the original capture time.
	TagDateTimeOriginal uint16 = 0x9003
	// TagDateTimeDigitized is the EXIF id of the digitization time.
	TagDateTimeDigitized uint16 = 0x9004

	// TypeASCII is the TIFF field type of NUL terminated ASCII strings.
	TypeASCII uint16 = uint16(tiff.DTAscii)
)

// Tag is one raw metadata entry as stored in the image.
type Tag struct {
	ID     uint16
	Type   uint16
	Length int
	Raw    []byte
}

type tagCollector struct {
	tags []Tag
}

func (c *tagCollector) Walk(_ exif.FieldName, tag *tiff.Tag) error {
	if tag == nil {
		return nil
	}
	raw := make([]byte, len(tag.Val))
	copy(raw, tag.Val)
	c.tags = append(c.tags, Tag{
		ID:     tag.Id,
		Type:   uint16(tag.Type),
		Length: int(tag.Count),
		Raw:    raw,
	})
	return nil
}

// ReadTags returns the EXIF tags found in r, sorted by id. Images without
// an EXIF block (PNG, GIF, stripped JPEGs) yield no tags.
func ReadTags(r io.Reader) []Tag {
	x, err := exif.Decode(r)
	if x == nil {
		logging.Debug("No EXIF data: %v", err)
		return nil
	}
	if err != nil {
		logging.Debug("Partial EXIF data: %v", err)
	}

	c := &tagCollector{}
	if err := x.Walk(c); err != nil {
		logging.Debug("EXIF walk stopped early: %v", err)
	}

	sort.SliceStable(c.tags, func(i, j int) bool {
		return c.tags[i].ID < c.tags[j].ID
	})
	return c.tags
}
