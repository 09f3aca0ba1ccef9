package decoder

import "math"

// Envelope is a mutable axis-aligned bounding box accumulator.
//
// The Reader owns a single Envelope and overwrites it in place on every
// record decode. Callers that need the value across multiple advances
// must Copy it out first; holding the pointer is an aliasing hazard,
// not a bug.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Init resets the envelope to the empty state, ready to accumulate.
func (e *Envelope) Init() {
	e.MinX = math.Inf(1)
	e.MinY = math.Inf(1)
	e.MaxX = math.Inf(-1)
	e.MaxY = math.Inf(-1)
}

// Empty reports whether the envelope has accumulated no points since Init.
func (e *Envelope) Empty() bool {
	return e.MinX > e.MaxX
}

// Expand grows the envelope to include (x, y).
func (e *Envelope) Expand(x, y float64) {
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
}

// Set overwrites all four extents at once.
func (e *Envelope) Set(minX, minY, maxX, maxY float64) {
	e.MinX, e.MinY, e.MaxX, e.MaxY = minX, minY, maxX, maxY
}

// Contains reports whether other lies entirely within e.
// An empty envelope contains nothing.
func (e *Envelope) Contains(other Envelope) bool {
	if e.Empty() || other.Empty() {
		return false
	}
	return other.MinX >= e.MinX && other.MaxX <= e.MaxX &&
		other.MinY >= e.MinY && other.MaxY <= e.MaxY
}

// Copy returns a detached value of the envelope's current state.
// Use this to retain a record's extent past the next Advance.
func (e *Envelope) Copy() Envelope {
	return *e
}
