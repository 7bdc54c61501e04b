package cuts

import (
	"math"
	"testing"

	"splitfour/internal/models"
)

// TestNewModel verifies that a new model starts with the default cuts
// and the requested axis.
func TestNewModel(t *testing.T) {
	m := NewModel(models.AxisDown)

	if m.Axis() != models.AxisDown {
		t.Errorf("Expected axis %v, got %v", models.AxisDown, m.Axis())
	}

	expected := DefaultCuts()
	if m.Cuts() != expected {
		t.Errorf("Expected default cuts %v, got %v", expected, m.Cuts())
	}
}

// TestComputeBounds verifies that the legal range for every cut is
// well-formed for a variety of valid cut configurations.
func TestComputeBounds(t *testing.T) {
	// Sweep a family of valid configurations: cut 1 moves between the
	// other two, which themselves sweep outward.
	for c0 := MinGap; c0 <= 0.5; c0 += 0.05 {
		for c2 := 1 - MinGap; c2 >= c0+2*MinGap; c2 -= 0.05 {
			for c1 := c0 + MinGap; c1 <= c2-MinGap; c1 += 0.05 {
				m := NewModel(models.AxisAcross)
				m.cuts = [3]float64{c0, c1, c2}

				for i := 0; i < 3; i++ {
					lower, upper := m.ComputeBounds(i)
					if lower > upper {
						t.Fatalf("ComputeBounds(%d) returned lower %f > upper %f for cuts %v",
							i, lower, upper, m.cuts)
					}
				}
			}
		}
	}
}

// TestComputeBoundsNeighbors verifies the exact bound values for the
// default configuration.
func TestComputeBoundsNeighbors(t *testing.T) {
	m := NewModel(models.AxisAcross)

	cases := []struct {
		index int
		lower float64
		upper float64
	}{
		{0, MinGap, 0.50 - MinGap},
		{1, 0.25 + MinGap, 0.75 - MinGap},
		{2, 0.50 + MinGap, 1 - MinGap},
	}

	for _, c := range cases {
		lower, upper := m.ComputeBounds(c.index)
		if math.Abs(lower-c.lower) > 1e-12 || math.Abs(upper-c.upper) > 1e-12 {
			t.Errorf("ComputeBounds(%d) = (%f, %f), expected (%f, %f)",
				c.index, lower, upper, c.lower, c.upper)
		}
	}
}

// TestSetCutClamps verifies that SetCut leaves the gap invariant intact for
// arbitrary raw values, including values far outside [0,1].
func TestSetCutClamps(t *testing.T) {
	raws := []float64{-0.3, -1000, 0, 0.001, 0.3, 0.49, 0.5, 0.99, 1, 1.7, 1e9}

	for _, raw := range raws {
		for index := 0; index < 3; index++ {
			m := NewModel(models.AxisAcross)
			m.SetCut(index, raw)

			c := m.Cuts()
			if c[0] < MinGap || c[2] > 1-MinGap {
				t.Errorf("SetCut(%d, %f) violated boundary gap: %v", index, raw, c)
			}
			if c[1]-c[0] < MinGap-1e-12 || c[2]-c[1] < MinGap-1e-12 {
				t.Errorf("SetCut(%d, %f) violated neighbor gap: %v", index, raw, c)
			}
		}
	}
}

// TestSetCutNegativeClampsToLowerBound verifies that dragging the first cut
// to a negative fraction clamps to its lower bound of MinGap, never negative.
func TestSetCutNegativeClampsToLowerBound(t *testing.T) {
	m := NewModel(models.AxisAcross)
	m.SetCut(0, -0.3)

	if got := m.Cuts()[0]; got != MinGap {
		t.Errorf("Expected cut 0 clamped to %f, got %f", MinGap, got)
	}
}

// TestSetCutNeverCrossesNeighbor verifies that pushing the middle cut toward
// the first cut stops at the minimum gap.
func TestSetCutNeverCrossesNeighbor(t *testing.T) {
	m := NewModel(models.AxisAcross)
	m.SetCut(1, 0.10) // default cut 0 is 0.25, so lower bound is 0.30

	c := m.Cuts()
	expected := c[0] + MinGap
	if math.Abs(c[1]-expected) > 1e-12 {
		t.Errorf("Expected cut 1 clamped to %f, got %f", expected, c[1])
	}
	if c[1] < c[0] {
		t.Errorf("Cut 1 (%f) crossed below cut 0 (%f)", c[1], c[0])
	}
}

// TestSetCutIgnoresInvalidIndex verifies that out-of-range indexes leave the
// model untouched.
func TestSetCutIgnoresInvalidIndex(t *testing.T) {
	m := NewModel(models.AxisAcross)
	before := m.Cuts()

	m.SetCut(-1, 0.4)
	m.SetCut(3, 0.4)

	if m.Cuts() != before {
		t.Errorf("Expected cuts unchanged %v, got %v", before, m.Cuts())
	}
}

// TestSetAxisResets verifies that changing the axis resets the cuts to the
// defaults regardless of their prior positions.
func TestSetAxisResets(t *testing.T) {
	m := NewModel(models.AxisAcross)
	m.SetCut(0, 0.10)
	m.SetCut(2, 0.90)

	m.SetAxis(models.AxisDown)

	if m.Axis() != models.AxisDown {
		t.Errorf("Expected axis %v, got %v", models.AxisDown, m.Axis())
	}
	if m.Cuts() != DefaultCuts() {
		t.Errorf("Expected cuts reset to %v, got %v", DefaultCuts(), m.Cuts())
	}
}

// TestOnChangeNotification verifies that mutations fire the change callback
// and reads do not.
func TestOnChangeNotification(t *testing.T) {
	m := NewModel(models.AxisAcross)

	calls := 0
	m.OnChange(func() { calls++ })

	m.SetCut(1, 0.55)
	m.SetAxis(models.AxisDown)
	if calls != 2 {
		t.Errorf("Expected 2 change notifications, got %d", calls)
	}

	_ = m.Cuts()
	_, _ = m.ComputeBounds(0)
	_ = m.Segments()
	if calls != 2 {
		t.Errorf("Read operations fired notifications: got %d calls", calls)
	}

	// Out-of-range index is a no-op and must not notify.
	m.SetCut(5, 0.5)
	if calls != 2 {
		t.Errorf("Invalid SetCut fired a notification: got %d calls", calls)
	}
}

// TestSegments verifies that the four derived segments tile [0,1] exactly.
func TestSegments(t *testing.T) {
	m := NewModel(models.AxisAcross)
	m.SetCut(0, 0.15)
	m.SetCut(1, 0.40)
	m.SetCut(2, 0.85)

	segs := m.Segments()

	if segs[0].Start != 0 {
		t.Errorf("Expected first segment to start at 0, got %f", segs[0].Start)
	}
	if segs[3].End != 1 {
		t.Errorf("Expected last segment to end at 1, got %f", segs[3].End)
	}
	for i := 0; i < 3; i++ {
		if segs[i].End != segs[i+1].Start {
			t.Errorf("Gap between segment %d and %d: %f vs %f",
				i, i+1, segs[i].End, segs[i+1].Start)
		}
	}

	total := 0.0
	for _, s := range segs {
		if s.Size() <= 0 {
			t.Errorf("Segment %v has non-positive size", s)
		}
		total += s.Size()
	}
	if math.Abs(total-1.0) > 1e-12 {
		t.Errorf("Expected segment sizes to sum to 1, got %f", total)
	}
}
