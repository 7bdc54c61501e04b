package editor

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// SliceStats summarizes the pixel content of one output slice.
type SliceStats struct {
	// Index is the slice's position along the split axis.
	Index int

	// Width and Height are the slice dimensions in pixels.
	Width, Height int

	// MeanIntensity is the average pixel luminance, in [0,1].
	MeanIntensity float64

	// StdDev is the standard deviation of pixel luminance.
	StdDev float64
}

// Stats computes per-slice luminance statistics for the current result set.
// It returns one entry per slice, in slice order, and an empty list when no
// results are present.
func (e *Editor) Stats() []SliceStats {
	out := make([]SliceStats, 0, len(e.results))
	for _, res := range e.results {
		lum := luminanceSamples(res.Image)

		s := SliceStats{
			Index:  res.Index,
			Width:  res.Rect.Dx(),
			Height: res.Rect.Dy(),
		}
		if len(lum) > 0 {
			s.MeanIntensity = stat.Mean(lum, nil)
		}
		if len(lum) > 1 {
			s.StdDev = stat.StdDev(lum, nil)
		}
		out = append(out, s)
	}
	return out
}

// luminanceSamples flattens an image into per-pixel luminance values in
// [0,1] using the Rec. 601 weights.
func luminanceSamples(img image.Image) []float64 {
	bounds := img.Bounds()
	samples := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 65535.0
			samples = append(samples, lum)
		}
	}
	return samples
}
