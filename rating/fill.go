package rating

// Fill is the visual state of one rating position.
type Fill int

const (
	Empty Fill = iota
	Half
	Full
)

// FillAt classifies position i (1-based). Full and Half are mutually
// exclusive: a position is Full when the value reaches it, Half only under
// Precision when the value lands in [i-0.5, i).
func (m *Model) FillAt(i int) Fill {
	v := float64(i)
	if m.value >= v {
		return Full
	}
	if m.Precision && m.value >= v-0.5 {
		return Half
	}
	return Empty
}

// Fills classifies every position on the scale, in order.
func (m *Model) Fills() []Fill {
	fills := make([]Fill, m.maxScale)
	for i := 1; i <= m.maxScale; i++ {
		fills[i-1] = m.FillAt(i)
	}
	return fills
}
