// SPDX-License-Identifier: MIT

package rdf

// Boundary is the ensemble the g(r) was sampled in. It decides how the
// running integral is computed and how the KBI is read out of it.
type Boundary int

const (
	// UnknownBoundary is the zero value; no algorithm runs on it.
	UnknownBoundary Boundary = iota

	// Open marks a g(r) sampled under open (grand-canonical-like) conditions.
	Open

	// Closed marks a g(r) from a closed NVT/NPT/NVE simulation. Integration uses
	// the Kruger kernel and readout extrapolates in 1/R.
	Closed
)

// String returns "open", "closed" or "unknown".
func (b Boundary) String() string {
	switch b {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseBoundary maps "open" / "closed" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "open":
		return Open, nil
	case "closed":
		return Closed, nil
	default:
		return UnknownBoundary, rdfErrorf("ParseBoundary", ErrUnknownBoundary)
	}
}

// Readout is the result of FindValues. The concrete type is OpenReadout or
// ClosedReadout, matching the RDF's boundary.
type Readout interface {
	// KBI returns the Kirkwood-Buff integral estimate.
	KBI() float64

	// Boundary reports which readout algorithm produced the value.
	Boundary() Boundary
}

// OpenReadout is a direct lookup on the running integral.
type OpenReadout struct {
	Value  float64 // G(R) at the readout radius
	Radius float64 // integration radius R the value was read at
	Index  int     // index into the integration radii
}

// KBI implements Readout.
func (o OpenReadout) KBI() float64 { return o.Value }

// Boundary implements Readout.
func (OpenReadout) Boundary() Boundary { return Open }

// ClosedReadout is a linear extrapolation of G(R) against 1/R to 1/R = 0.
type ClosedReadout struct {
	// Value is the intercept at 1/R = 0, the infinite-box KBI.
	Value float64

	Slope             float64
	RValue            float64
	PValue            float64
	StdError          float64 // of the slope
	InterceptStdError float64

	// IndexLimit holds the sample indices selected by the upper and lower
	// bound, in that order. The fit covers the closed range between them.
	IndexLimit [2]int

	// ValueLimit holds 1/R at IndexLimit.
	ValueLimit [2]float64
}

// KBI implements Readout.
func (c ClosedReadout) KBI() float64 { return c.Value }

// Boundary implements Readout.
func (ClosedReadout) Boundary() Boundary { return Closed }
