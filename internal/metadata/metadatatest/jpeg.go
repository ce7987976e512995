// Package metadatatest writes small JPEG fixtures carrying an EXIF
// capture date, for tests of packages that read them.
package metadatatest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
)

// exifBlock builds an APP1 payload: a big-endian TIFF header, IFD0 with a
// single Exif IFD pointer, and an Exif IFD holding DateTimeOriginal.
func exifBlock(date string) []byte {
	value := append([]byte(date), 0)

	var tiffBuf bytes.Buffer
	be := binary.BigEndian
	w := func(v interface{}) { _ = binary.Write(&tiffBuf, be, v) }

	tiffBuf.WriteString("MM")
	w(uint16(0x002A))
	w(uint32(8))

	// IFD0 at offset 8: one entry, next-IFD offset
	const exifIFDOffset = 8 + 2 + 12 + 4
	w(uint16(1))
	w(uint16(0x8769))
	w(uint16(4))
	w(uint32(1))
	w(uint32(exifIFDOffset))
	w(uint32(0))

	// Exif IFD: DateTimeOriginal stored out of line
	const valueOffset = exifIFDOffset + 2 + 12 + 4
	w(uint16(1))
	w(uint16(0x9003))
	w(uint16(2))
	w(uint32(len(value)))
	w(uint32(valueOffset))
	w(uint32(0))
	tiffBuf.Write(value)

	payload := append([]byte("Exif\x00\x00"), tiffBuf.Bytes()...)

	var seg bytes.Buffer
	seg.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&seg, be, uint16(len(payload)+2))
	seg.Write(payload)
	return seg.Bytes()
}

// Image returns a w x h test pattern.
func Image(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

// EncodeJPEG encodes a w x h JPEG. A non-empty date ("YYYY:MM:DD HH:MM:SS")
// is embedded as EXIF DateTimeOriginal.
func EncodeJPEG(w, h int, date string) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Image(w, h), &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	data := buf.Bytes()
	if date == "" {
		return data, nil
	}

	// splice APP1 right after SOI
	out := make([]byte, 0, len(data)+256)
	out = append(out, data[:2]...)
	out = append(out, exifBlock(date)...)
	out = append(out, data[2:]...)
	return out, nil
}

// WriteJPEG writes EncodeJPEG's output to path.
func WriteJPEG(path string, w, h int, date string) error {
	data, err := EncodeJPEG(w, h, date)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
