// Package scoring builds the dense substitution-score table used by the
// aligner core.
package scoring

// Matrix is a dense lookup table of alignment scores indexed by raw byte
// value, sized for the full 0-255 range so that indexing by a sequence byte
// is always safe without a bounds check. Unset cells score 0, which degrades
// unrecognized bytes to neutral rather than trapping.
//
// A Matrix is immutable once built and may be shared read-only across
// concurrent alignments.
type Matrix struct {
	cells [256][256]int32
}

// Build constructs a Matrix over the canonical DNA alphabet {A, T, C, G}
// plus the ambiguity code N, from four signed scoring parameters:
//
//	match      - identical canonical bases
//	mismatch   - different canonical bases
//	nMismatch  - a canonical base against N, in either order
//	nMatch     - N against N
//
// No other cells are written.
func Build(match, mismatch, nMismatch, nMatch int32) *Matrix {
	m := &Matrix{}
	bases := [4]byte{'A', 'T', 'C', 'G'}

	for _, a := range bases {
		for _, b := range bases {
			if a == b {
				m.cells[a][b] = match
			} else {
				m.cells[a][b] = mismatch
			}
		}
		m.cells[a]['N'] = nMismatch
		m.cells['N'][a] = nMismatch
	}
	m.cells['N']['N'] = nMatch

	return m
}

// DefaultDNA returns the conventional genome-editing scoring parameters:
// match=5, mismatch=-4, n-mismatch=-2, n-match=-1.
func DefaultDNA() *Matrix {
	return Build(5, -4, -2, -1)
}

// Score returns the score for aligning raw bytes a and b. Any byte outside
// {A, T, C, G, N} scores 0.
func (m *Matrix) Score(a, b byte) int32 {
	return m.cells[a][b]
}
