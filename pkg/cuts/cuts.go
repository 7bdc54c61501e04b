// Package cuts implements the cut position model: the ordered set of three
// fractional cut positions along the split axis, with the minimum-gap and
// range invariants enforced by clamping.
package cuts

import (
	"splitfour/internal/models"
)

// MinGap is the minimum allowed fractional distance between any two adjacent
// boundaries (including the implicit 0 and 1), preventing zero or
// negative-size segments.
const MinGap = 0.05

// DefaultCuts returns the cut positions the model resets to whenever the
// axis changes: quarters of the image.
func DefaultCuts() [3]float64 {
	return [3]float64{0.25, 0.50, 0.75}
}

// Model holds the current split axis and the three cut positions and keeps
// them valid under any sequence of updates. All inputs are clamped rather
// than rejected, so no operation on the model can fail.
//
// The model is the single source of truth for cut positions: the drag
// controller and the rasterizer both read from it and never keep copies.
type Model struct {
	// axis is the current split direction.
	axis models.Axis

	// cuts are the three fractional cut positions, strictly increasing,
	// each at least MinGap away from its neighbors and from 0 and 1.
	cuts [3]float64

	// onChange, when set, is invoked after every mutation so downstream
	// consumers (the rasterizer) can recompute derived state.
	onChange func()
}

// NewModel creates a model with the given axis and the default cut positions.
func NewModel(axis models.Axis) *Model {
	return &Model{
		axis: axis,
		cuts: DefaultCuts(),
	}
}

// OnChange registers a callback invoked after every successful mutation
// (SetAxis or SetCut). Passing nil removes the callback.
func (m *Model) OnChange(fn func()) {
	m.onChange = fn
}

// Axis returns the current split axis.
func (m *Model) Axis() models.Axis {
	return m.axis
}

// Cuts returns a copy of the current cut positions in ascending order.
func (m *Model) Cuts() [3]float64 {
	return m.cuts
}

// Segments returns the four contiguous fractional segments defined by the
// cuts together with the implicit boundaries 0 and 1.
func (m *Model) Segments() [4]models.Segment {
	return [4]models.Segment{
		{Start: 0, End: m.cuts[0]},
		{Start: m.cuts[0], End: m.cuts[1]},
		{Start: m.cuts[1], End: m.cuts[2]},
		{Start: m.cuts[2], End: 1},
	}
}

// SetAxis replaces the split axis and unconditionally resets the cuts to the
// defaults. Any previously derived slice set is invalid after this call; the
// change notification tells consumers to regenerate.
func (m *Model) SetAxis(axis models.Axis) {
	m.axis = axis
	m.cuts = DefaultCuts()
	m.notify()
}

// ComputeBounds returns the legal range for the cut at the given index,
// keeping it at least MinGap away from its neighbors (or the 0/1 boundaries
// for the outer cuts). As long as adjacent cuts already satisfy the gap
// invariant, lower <= upper always holds.
func (m *Model) ComputeBounds(index int) (lower, upper float64) {
	lower = MinGap
	if index > 0 {
		lower = m.cuts[index-1] + MinGap
	}
	upper = 1 - MinGap
	if index < len(m.cuts)-1 {
		upper = m.cuts[index+1] - MinGap
	}
	return lower, upper
}

// SetCut moves the cut at the given index to raw, clamped into the bounds
// from ComputeBounds. Indexes outside [0,2] are ignored. The model is always
// left valid.
func (m *Model) SetCut(index int, raw float64) {
	if index < 0 || index >= len(m.cuts) {
		return
	}
	lower, upper := m.ComputeBounds(index)
	if raw < lower {
		raw = lower
	}
	if raw > upper {
		raw = upper
	}
	m.cuts[index] = raw
	m.notify()
}

func (m *Model) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}
