// Package padding places an image at the center of a larger transparent canvas.
package padding

import (
	"fmt"
	"image"
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultScaleFactor is the ratio between the padded and the original side lengths.
	DefaultScaleFactor = 5
	// MaxCanvasPixels bounds the canvas area so oversized inputs fail before
	// allocation. At 4 bytes per pixel one canvas is at most 1 GiB, and a pad
	// may hold two of them while pasting.
	MaxCanvasPixels = 1 << 28
)

var (
	// ErrInvalidScale is returned for scale factors below 1.
	ErrInvalidScale = errors.New("scale factor must be at least 1")
	// ErrEmptyImage is returned when the source has zero width or height.
	ErrEmptyImage = errors.New("image has zero width or height")
	// ErrCanvasTooLarge is returned when the padded canvas would exceed MaxCanvasPixels.
	ErrCanvasTooLarge = errors.New("canvas too large")
)

// Size is a width and height in pixels.
type Size struct {
	// The width in pixels.
	Width int `json:"width" yaml:"width"`
	// The height in pixels.
	Height int `json:"height" yaml:"height"`
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Layout describes where a source image lands on its padded canvas.
type Layout struct {
	// Scale is the factor applied to both sides.
	Scale int `json:"scale" yaml:"scale"`
	// Source is the size of the original image.
	Source Size `json:"source" yaml:"source"`
	// Canvas is the size of the padded image.
	Canvas Size `json:"canvas" yaml:"canvas"`
	// Offset is the top-left corner of the source on the canvas.
	Offset image.Point `json:"offset" yaml:"offset"`
}

// Region returns the rectangle of the canvas covered by the source image.
func (l Layout) Region() image.Rectangle {
	return image.Rectangle{
		Min: l.Offset,
		Max: l.Offset.Add(image.Pt(l.Source.Width, l.Source.Height)),
	}
}

// ComputeLayout computes the canvas size and centering offset for a width x
// height source padded by scale.
//
// The offset uses floor division, so when the free space on an axis is odd
// the extra pixel ends up on the right or bottom edge.
//
// Arguments:
//   - width: Source width in pixels.
//   - height: Source height in pixels.
//   - scale: Scale factor, at least 1.
//
// Returns:
//   - Layout: The computed geometry.
//   - error: ErrInvalidScale, ErrEmptyImage or ErrCanvasTooLarge (wrapped).
//
// @example
//
//	layout, _ := ComputeLayout(10, 10, 5)
//	fmt.Println(layout.Canvas, layout.Offset) // 50x50 (20,20)
func ComputeLayout(width, height, scale int) (Layout, error) {
	if scale < 1 {
		return Layout{}, errors.Wrapf(ErrInvalidScale, "got %d", scale)
	}
	if width <= 0 || height <= 0 {
		return Layout{}, errors.Wrapf(ErrEmptyImage, "got %dx%d", width, height)
	}
	if width > math.MaxInt/scale || height > math.MaxInt/scale {
		return Layout{}, errors.Wrapf(ErrCanvasTooLarge, "%dx%d scaled by %d overflows", width, height, scale)
	}

	newWidth := width * scale
	newHeight := height * scale
	if newWidth > MaxCanvasPixels/newHeight {
		return Layout{}, errors.Wrapf(ErrCanvasTooLarge, "%dx%d exceeds %d pixels", newWidth, newHeight, MaxCanvasPixels)
	}

	return Layout{
		Scale:  scale,
		Source: Size{Width: width, Height: height},
		Canvas: Size{Width: newWidth, Height: newHeight},
		Offset: image.Pt((newWidth-width)/2, (newHeight-height)/2),
	}, nil
}
