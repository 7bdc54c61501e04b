// Package preview renders the current slice set into a single contact-sheet
// image for inline display: pieces are laid out left-to-right for an across
// split and top-to-bottom for a down split, separated by a small gutter so
// the cut positions stay visible.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	xdraw "golang.org/x/image/draw"

	"splitfour/internal/models"
)

// Montage composes slice results into one preview image.
type Montage struct {
	// gutter is the spacing between adjacent pieces in pixels.
	gutter int

	// background fills the gutter and any slack left by uneven piece sizes.
	background color.Color
}

// NewMontage creates a montage renderer with an 8px gutter on a light
// background.
func NewMontage() *Montage {
	return &Montage{
		gutter:     8,
		background: color.RGBA{R: 238, G: 238, B: 238, A: 255},
	}
}

// Render lays the slice pieces out along the split axis and returns the
// composed image. At least one slice is required.
func (m *Montage) Render(results []models.SliceResult, axis models.Axis) (image.Image, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no slices to preview")
	}

	// Total extent along the axis plus the maximum extent crosswise.
	var along, cross int
	for _, res := range results {
		switch axis {
		case models.AxisDown:
			along += res.Rect.Dy()
			if res.Rect.Dx() > cross {
				cross = res.Rect.Dx()
			}
		default:
			along += res.Rect.Dx()
			if res.Rect.Dy() > cross {
				cross = res.Rect.Dy()
			}
		}
	}
	along += m.gutter * (len(results) - 1)

	var sheet *image.RGBA
	if axis == models.AxisDown {
		sheet = image.NewRGBA(image.Rect(0, 0, cross, along))
	} else {
		sheet = image.NewRGBA(image.Rect(0, 0, along, cross))
	}
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(m.background), image.Point{}, draw.Src)

	offset := 0
	for _, res := range results {
		var dp image.Point
		if axis == models.AxisDown {
			dp = image.Pt(0, offset)
			offset += res.Rect.Dy() + m.gutter
		} else {
			dp = image.Pt(offset, 0)
			offset += res.Rect.Dx() + m.gutter
		}
		xdraw.Copy(sheet, dp, res.Image, res.Image.Bounds(), xdraw.Src, nil)
	}

	return sheet, nil
}

// Save renders the montage and writes it as a JPEG file.
func (m *Montage) Save(results []models.SliceResult, axis models.Axis, filename string) error {
	img, err := m.Render(results, axis)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}
