package rating

import "math"

// Model is the per-render description of a rating. Construct it with New
// and configure through the setters so the clamp invariants hold: the
// value always lies in [0, maxScale] and the scale is never below 1.
type Model struct {
	value    float64
	maxScale int

	Variant   Variant
	Size      Size
	Precision bool // half-step display of fractional values
	ShowText  bool // numeric value after the icons
	Readonly  bool
	Disabled  bool
	OnChange  func(value float64)
}

// New returns a model with a five-position scale and value zero.
func New() *Model {
	return &Model{maxScale: 5, Size: DefaultSize()}
}

// Value returns the current (clamped) value.
func (m *Model) Value() float64 { return m.value }

// MaxScale returns the current scale.
func (m *Model) MaxScale() int { return m.maxScale }

// SetValue stores v clamped into [0, maxScale].
func (m *Model) SetValue(v float64) *Model {
	m.value = clamp(v, 0, float64(m.maxScale))
	return m
}

// SetMaxScale stores the scale floored at 1 and re-clamps the value.
func (m *Model) SetMaxScale(scale int) *Model {
	if scale < 1 {
		scale = 1
	}
	m.maxScale = scale
	m.value = clamp(m.value, 0, float64(m.maxScale))
	return m
}

// Activate handles a click on position i (1-based). Readonly and disabled
// models ignore it. The emitted value is the integer position whether or
// not Precision is set: clicks never carry sub-position information, so
// the ceil in the non-precision path is a no-op kept for the contract's
// sake. Returns whether OnChange fired.
func (m *Model) Activate(i int) bool {
	if m.Readonly || m.Disabled {
		return false
	}
	if i < 1 || i > m.maxScale {
		return false
	}

	v := float64(i)
	if !m.Precision {
		v = math.Ceil(v)
	}
	if m.OnChange == nil {
		return false
	}
	m.OnChange(v)
	return true
}

// Interactive reports whether positions accept clicks.
func (m *Model) Interactive() bool {
	return !m.Readonly && !m.Disabled
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
