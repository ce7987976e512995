package media

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidBox is returned for non-positive thumbnail dimensions.
	ErrInvalidBox = errors.New("invalid thumbnail box")
	// ErrEmptyImage is returned for a source without pixels.
	ErrEmptyImage = errors.New("empty source image")
)

// Background fills the part of the box the picture does not cover.
var Background = color.White

// Placement is where the scaled picture lands inside the box.
type Placement struct {
	X, Y          int
	Width, Height int
}

// Place computes the contain-fit placement of a srcW x srcH picture in a
// boxW x boxH box. The smaller of the two axis ratios is the scale; the
// limiting axis fills the box exactly and the free axis is centered with
// integer halving of its margin.
func Place(srcW, srcH, boxW, boxH int) Placement {
	ratioW := float64(boxW) / float64(srcW)
	ratioH := float64(boxH) / float64(srcH)

	if ratioH < ratioW {
		w := clamp(int(float64(srcW)*ratioH), boxW)
		return Placement{X: (boxW - w) / 2, Width: w, Height: boxH}
	}
	h := clamp(int(float64(srcH)*ratioW), boxH)
	return Placement{Y: (boxH - h) / 2, Width: boxW, Height: h}
}

func clamp(v, max int) int {
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}

// Fit renders src into an opaque boxW x boxH thumbnail. Scaling uses the
// Catmull-Rom cubic filter. The result never aliases src.
func Fit(src image.Image, boxW, boxH int) (*image.NRGBA, error) {
	if boxW <= 0 || boxH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBox, boxW, boxH)
	}
	if src == nil {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	p := Place(b.Dx(), b.Dy(), boxW, boxH)
	scaled := imaging.Resize(src, p.Width, p.Height, imaging.CatmullRom)

	canvas := imaging.New(boxW, boxH, Background)
	return imaging.Overlay(canvas, scaled, image.Pt(p.X, p.Y), 1.0), nil
}
