package models

import (
	"fmt"
	"image"
	"strings"
)

// Axis is the direction along which the image is partitioned.
type Axis int

const (
	// AxisAcross runs the cuts vertically so the four pieces stack
	// left-to-right along the image width.
	AxisAcross Axis = iota

	// AxisDown runs the cuts horizontally so the four pieces stack
	// top-to-bottom along the image height.
	AxisDown
)

// String returns the lowercase name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisAcross:
		return "across"
	case AxisDown:
		return "down"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts a string such as "across" or "down" into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "across", "vertical", "x":
		return AxisAcross, nil
	case "down", "horizontal", "y":
		return AxisDown, nil
	default:
		return AxisAcross, fmt.Errorf("invalid axis: %q (must be across or down)", s)
	}
}

// Segment is one of the four fractional intervals between consecutive
// boundaries (0, the three cuts, 1) along the split axis.
type Segment struct {
	// Start is the fractional position where the segment begins, in [0,1).
	Start float64

	// End is the fractional position where the segment ends, in (0,1].
	End float64
}

// Size returns the fractional extent of the segment.
func (s Segment) Size() float64 {
	return s.End - s.Start
}

// SliceResult is one rasterized output piece of the source image.
type SliceResult struct {
	// Index is the position of this piece along the split axis, 0-based.
	Index int

	// Rect is the pixel rectangle this piece occupies in source-image space.
	Rect image.Rectangle

	// Image is the extracted raster surface for this piece.
	Image image.Image

	// Data is the losslessly encoded (PNG) payload, suitable for direct
	// download or inline preview.
	Data []byte
}

// Filename returns the download filename for a slice at the given index,
// e.g. "split_image_1.png" for index 0.
func Filename(index int) string {
	return fmt.Sprintf("split_image_%d.png", index+1)
}
