// Package drag implements the pointer-drag controller: it translates raw
// pointer or touch coordinates into cut position updates on the cut model
// while a drag session is active.
package drag

import (
	"splitfour/internal/models"
	"splitfour/pkg/cuts"
)

// Rect is the on-screen bounding rectangle of the image container, in the
// same coordinate space as the pointer events. Callers must pass the live
// rectangle on every move so the mapping stays correct under window resize
// or zoom.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Controller converts pointer movement into SetCut calls on the cut model.
// It never stores a cut value itself; the model remains the single source of
// truth and the clamping logic is not duplicated here.
//
// At most one drag session is active at a time. Events arriving outside a
// session are ignored.
type Controller struct {
	// model receives the position updates.
	model *cuts.Model

	// active is the index of the cut being dragged, or -1 when no drag
	// session is active.
	active int
}

// NewController creates a controller bound to the given cut model.
func NewController(model *cuts.Model) *Controller {
	return &Controller{
		model:  model,
		active: -1,
	}
}

// BeginDrag starts a drag session for the cut at the given index. Indexes
// outside [0,2] are ignored and no session is started.
func (c *Controller) BeginDrag(index int) {
	if index < 0 || index > 2 {
		return
	}
	c.active = index
}

// Move maps the pointer position to a fraction along the given axis within
// the container rectangle and updates the active cut. It is a no-op when no
// drag session is active or the container has no extent along the axis.
func (c *Controller) Move(container Rect, axis models.Axis, clientX, clientY float64) {
	if c.active < 0 {
		return
	}

	var frac float64
	switch axis {
	case models.AxisAcross:
		if container.Width <= 0 {
			return
		}
		frac = (clientX - container.Left) / container.Width
	case models.AxisDown:
		if container.Height <= 0 {
			return
		}
		frac = (clientY - container.Top) / container.Height
	default:
		return
	}

	c.model.SetCut(c.active, frac)
}

// EndDrag clears the active drag session. Safe to call when no session is
// active.
func (c *Controller) EndDrag() {
	c.active = -1
}

// Dragging reports the index of the cut currently being dragged, if any.
func (c *Controller) Dragging() (int, bool) {
	if c.active < 0 {
		return 0, false
	}
	return c.active, true
}
