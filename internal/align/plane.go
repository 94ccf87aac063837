package align

// Plane tags which of the three DP states a score or pointer cell belongs
// to (or, for pointer cells, which predecessor state produced the winning
// score).
type Plane uint8

const (
	// PlaneNone is the zero value; a traceback that reads it indicates a
	// DP fill bug, never valid input.
	PlaneNone Plane = iota
	// PlaneM is the match/mismatch state.
	PlaneM
	// PlaneI is the state ending with a gap in the reference (a read base
	// aligned against '-').
	PlaneI
	// PlaneJ is the state ending with a gap in the read (a reference base
	// aligned against '-').
	PlaneJ
)

func (p Plane) String() string {
	switch p {
	case PlaneM:
		return "M"
	case PlaneI:
		return "I"
	case PlaneJ:
		return "J"
	default:
		return "NONE"
	}
}
