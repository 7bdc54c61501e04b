// Package editor composes the cut model, drag controller and rasterizer into
// an editing session: it owns the source image reference and the exposed
// slice results, and regenerates the results eagerly whenever the axis, the
// cuts or the source change.
package editor

import (
	"image"

	"splitfour/internal/models"
	"splitfour/pkg/cuts"
	"splitfour/pkg/drag"
	"splitfour/pkg/slicer"
)

// Editor is one editing session over a single source image. All methods are
// meant to be called from one goroutine; cut mutation and rasterization
// never interleave, so every rasterization pass sees a fully consistent cut
// set.
type Editor struct {
	model      *cuts.Model
	controller *drag.Controller
	rasterizer *slicer.Rasterizer

	// source is the decoded source image, nil until ingestion supplies one.
	source image.Image

	// results is the current ordered slice set. It is replaced wholesale on
	// every pass, never partially updated.
	results []models.SliceResult

	// err is the failure of the most recent pass, nil when the pass
	// succeeded or no source is present yet.
	err error

	// onResults, when set, is invoked after every pass so a gallery or
	// download collaborator can pick up the fresh set.
	onResults func()
}

// New creates an editing session with the given initial axis, default cut
// positions and no source image. Until a source arrives the session exposes
// zero results; the first pass runs as soon as SetSource is called.
func New(axis models.Axis) *Editor {
	e := &Editor{
		rasterizer: slicer.NewRasterizer(),
	}
	e.model = cuts.NewModel(axis)
	e.controller = drag.NewController(e.model)
	e.model.OnChange(e.refresh)
	return e
}

// Model returns the session's cut position model.
func (e *Editor) Model() *cuts.Model {
	return e.model
}

// Controller returns the session's pointer-drag controller. Cut updates made
// through it regenerate the slice set automatically.
func (e *Editor) Controller() *drag.Controller {
	return e.controller
}

// OnResults registers a callback invoked after every rasterization pass.
// Passing nil removes the callback.
func (e *Editor) OnResults(fn func()) {
	e.onResults = fn
}

// SetSource supplies the decoded source image and runs the deferred first
// pass (or a fresh pass if a source was already present). The image is read
// but never mutated.
func (e *Editor) SetSource(img image.Image) {
	e.source = img
	e.refresh()
}

// Source returns the current source image, nil if none was supplied yet.
func (e *Editor) Source() image.Image {
	return e.source
}

// SetAxis switches the split axis, resets the cuts to their defaults and
// regenerates the slice set. Results produced for the previous axis are
// discarded before the new pass runs, so stale and fresh results never mix.
func (e *Editor) SetAxis(axis models.Axis) {
	e.results = nil
	e.model.SetAxis(axis)
}

// Results returns the current ordered slice set. It is empty while no source
// image is present or after a failed pass.
func (e *Editor) Results() []models.SliceResult {
	out := make([]models.SliceResult, len(e.results))
	copy(out, e.results)
	return out
}

// Err returns the failure of the most recent rasterization pass, or nil. A
// missing source is not a failure; it just defers the pass.
func (e *Editor) Err() error {
	return e.err
}

// refresh reruns the rasterizer against the current state. With no source
// yet the pass is deferred: the session exposes zero results and no error
// until SetSource triggers the real pass.
func (e *Editor) refresh() {
	if e.source == nil {
		e.results = nil
		e.err = nil
		return
	}

	results, err := e.rasterizer.Slice(e.source, e.model.Axis(), e.model.Cuts())
	if err != nil {
		e.results = nil
		e.err = err
	} else {
		e.results = results
		e.err = nil
	}

	if e.onResults != nil {
		e.onResults()
	}
}
