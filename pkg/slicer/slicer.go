// Package slicer implements the slice rasterizer: it converts the current
// axis, cut positions and source image into up to four pixel-exact output
// images, each losslessly encoded as PNG.
package slicer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"sort"

	xdraw "golang.org/x/image/draw"

	"splitfour/internal/models"
)

// ErrNoRenderSurface indicates that the rasterizer had no raster surface to
// read pixels from. A pass that fails this way produces zero results; the
// caller should surface it to the user as "unable to process image".
var ErrNoRenderSurface = errors.New("no render surface available")

// Rasterizer turns a cut configuration into slice images. It holds no state
// between passes; given identical inputs, two passes produce pixel-identical
// rectangles and payloads.
type Rasterizer struct{}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rects computes the pixel rectangles, in source-image space, for the
// segments defined by the cut positions along the given axis. The boundary
// sequence is sorted defensively so a temporarily out-of-order cut set
// degrades to reordered segments instead of crashing. Segments whose
// fractional or rounded pixel size is not positive are skipped, so fewer
// than four rectangles may be returned.
func (r *Rasterizer) Rects(bounds image.Rectangle, axis models.Axis, cutset [3]float64) []image.Rectangle {
	boundaries := []float64{0, cutset[0], cutset[1], cutset[2], 1}
	sort.Float64s(boundaries)

	w := bounds.Dx()
	h := bounds.Dy()

	rects := make([]image.Rectangle, 0, 4)
	for i := 0; i+1 < len(boundaries); i++ {
		sizeFrac := boundaries[i+1] - boundaries[i]
		if sizeFrac <= 0 {
			continue
		}

		var rect image.Rectangle
		switch axis {
		case models.AxisDown:
			start := roundTo(boundaries[i], h)
			end := roundTo(boundaries[i+1], h)
			rect = image.Rect(bounds.Min.X, bounds.Min.Y+start, bounds.Max.X, bounds.Min.Y+end)
		default:
			start := roundTo(boundaries[i], w)
			end := roundTo(boundaries[i+1], w)
			rect = image.Rect(bounds.Min.X+start, bounds.Min.Y, bounds.Min.X+end, bounds.Max.Y)
		}

		if rect.Dx() <= 0 || rect.Dy() <= 0 {
			continue
		}
		rects = append(rects, rect)
	}
	return rects
}

// Slice runs a full rasterization pass: it computes the segment rectangles,
// extracts each one from the source raster into a fresh surface, and encodes
// it as PNG. The returned sequence is ordered along the axis and is meant to
// replace any previous result set wholesale.
//
// A nil source fails the pass with ErrNoRenderSurface. An encoding failure
// aborts the pass with zero results; partial result sets are never returned.
func (r *Rasterizer) Slice(src image.Image, axis models.Axis, cutset [3]float64) ([]models.SliceResult, error) {
	if src == nil {
		return nil, ErrNoRenderSurface
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrNoRenderSurface
	}

	rects := r.Rects(bounds, axis, cutset)
	results := make([]models.SliceResult, 0, len(rects))
	for _, rect := range rects {
		piece := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		xdraw.Copy(piece, image.Point{}, src, rect, xdraw.Src, nil)

		var buf bytes.Buffer
		if err := png.Encode(&buf, piece); err != nil {
			return nil, fmt.Errorf("failed to encode slice %d: %w", len(results), err)
		}

		results = append(results, models.SliceResult{
			Index: len(results),
			Rect:  rect,
			Image: piece,
			Data:  buf.Bytes(),
		})
	}

	return results, nil
}

// roundTo maps a fraction in [0,1] to a pixel offset along an extent of
// size pixels, rounding to the nearest pixel and clamping into range.
func roundTo(frac float64, size int) int {
	px := int(math.Round(frac * float64(size)))
	if px < 0 {
		px = 0
	}
	if px > size {
		px = size
	}
	return px
}
