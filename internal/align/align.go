// Package align implements the three-state affine-gap global aligner:
// distinct M (match/mismatch), I (gap in reference), and J (gap in read)
// planes, free terminal gaps, and a position-specific gap-incentive vector.
// The recurrences, boundary conditions, and traceback tie-break order are
// chosen to reproduce a specific reference tool's output bit-for-bit, not
// merely to produce "an" optimal alignment — see the tie-break comments
// below before changing anything here.
package align

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/helixforge/crispralign/internal/scoring"
)

// Result is the outcome of a global alignment: two equal-length strings
// over {A, T, C, G, N, -} and the percentage of columns that matched.
type Result struct {
	AlignedRef   string
	AlignedRead  string
	MatchPercent float64
}

// planes holds the six DP arrays (three score planes, three pointer
// planes), each sized (refLen+1) x (readLen+1).
type planes struct {
	m, i, j    [][]int32
	mp, ip, jp [][]Plane
}

func newPlanes(refLen, readLen int) (p *planes, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = &ResourceExhaustedError{Msg: fmt.Sprintf("%v", r)}
		}
	}()

	rows, cols := refLen+1, readLen+1
	return &planes{
		m:  newInt32Grid(rows, cols),
		i:  newInt32Grid(rows, cols),
		j:  newInt32Grid(rows, cols),
		mp: newPlaneGrid(rows, cols),
		ip: newPlaneGrid(rows, cols),
		jp: newPlaneGrid(rows, cols),
	}, nil
}

func newInt32Grid(rows, cols int) [][]int32 {
	flat := make([]int32, rows*cols)
	grid := make([][]int32, rows)
	for r := range grid {
		grid[r] = flat[r*cols : (r+1)*cols]
	}
	return grid
}

func newPlaneGrid(rows, cols int) [][]Plane {
	flat := make([]Plane, rows*cols)
	grid := make([][]Plane, rows)
	for r := range grid {
		grid[r] = flat[r*cols : (r+1)*cols]
	}
	return grid
}

// Global computes a global alignment of read against reference under the
// given scoring matrix, gap-incentive vector, and affine gap penalties.
// gapOpen and gapExtend are supplied as negative numbers. m may be nil, in
// which case scoring.DefaultDNA is used.
func Global(read, reference []byte, m *scoring.Matrix, incentive []int32, gapOpen, gapExtend int32) (Result, error) {
	if m == nil {
		m = scoring.DefaultDNA()
	}
	if len(incentive) != len(reference)+1 {
		return Result{}, &InvalidInputError{
			Msg: fmt.Sprintf("gap incentive length %d must equal len(reference)+1 = %d", len(incentive), len(reference)+1),
		}
	}
	if containsGap(reference) || containsGap(read) {
		return Result{}, &InvalidInputError{Msg: "input sequence must not contain the gap character '-'"}
	}

	refLen, readLen := len(reference), len(read)
	if refLen == 0 && readLen == 0 {
		return Result{}, nil
	}

	ref := upperCopy(reference)
	rd := upperCopy(read)

	p, err := newPlanes(refLen, readLen)
	if err != nil {
		return Result{}, err
	}

	sMin := int32(int64(gapOpen) * int64(refLen) * int64(readLen))
	initBoundary(p, incentive, gapExtend, sMin, refLen, readLen)

	// Row-major, i outer, j inner: the only fill order that satisfies all
	// three recurrences' dependencies on [i-1,j-1], [i-1,j], and [i,j-1].
	for i := 1; i <= refLen; i++ {
		for j := 1; j <= readLen; j++ {
			fillCell(p, m, incentive, ref, rd, i, j, refLen, readLen, gapOpen, gapExtend)
		}
	}

	alignedRef, alignedRead, matches := traceback(p, ref, rd, refLen, readLen)

	pct := 0.0
	if n := len(alignedRef); n > 0 {
		pct = floats.Round(100*float64(matches)/float64(n), 3)
	}

	return Result{
		AlignedRef:   string(alignedRef),
		AlignedRead:  string(alignedRead),
		MatchPercent: pct,
	}, nil
}

func initBoundary(p *planes, incentive []int32, gapExtend, sMin int32, refLen, readLen int) {
	p.m[0][0] = 0

	for j := 1; j <= readLen; j++ {
		p.m[0][j] = sMin
		p.mp[0][j] = PlaneI

		p.i[0][j] = gapExtend*int32(j) + incentive[0]
		p.ip[0][j] = PlaneI

		p.j[0][j] = sMin
	}

	for i := 1; i <= refLen; i++ {
		p.m[i][0] = sMin
		p.mp[i][0] = PlaneJ

		p.j[i][0] = gapExtend*int32(i) + incentive[0]
		p.jp[i][0] = PlaneJ

		p.i[i][0] = sMin
	}
}

// fillCell computes M, I, and J at (i, j), 1 <= i <= refLen, 1 <= j <=
// readLen. Cells with i == refLen or j == readLen (the last row and last
// column, including their shared corner) use gap_extend in place of
// gap_open for the opening transition into I and J — the free-terminal-gap
// rule from spec.md section 4.2 — while the M recurrence is unchanged
// everywhere.
func fillCell(p *planes, m *scoring.Matrix, incentive []int32, ref, rd []byte, i, j, refLen, readLen int, gapOpen, gapExtend int32) {
	openPenalty := gapOpen
	if i == refLen || j == readLen {
		openPenalty = gapExtend
	}

	// I[i,j] = max(gap_open + M[i,j-1], gap_extend + I[i,j-1]) + incentive[i]
	// Ties (later-listed plane wins): I.
	mOpen := openPenalty + p.m[i][j-1]
	iExtend := gapExtend + p.i[i][j-1]
	var iVal int32
	var iPlane Plane
	if mOpen > iExtend {
		iVal, iPlane = mOpen, PlaneM
	} else {
		iVal, iPlane = iExtend, PlaneI
	}
	p.i[i][j] = iVal + incentive[i]
	p.ip[i][j] = iPlane

	// J[i,j] = max(gap_open + M[i-1,j] + incentive[i-1], gap_extend + J[i-1,j])
	// Incentive applies only on the M->J opening transition, never on J
	// extension. Ties (later-listed plane wins): J.
	mOpenJ := openPenalty + p.m[i-1][j] + incentive[i-1]
	jExtend := gapExtend + p.j[i-1][j]
	var jVal int32
	var jPlane Plane
	if mOpenJ > jExtend {
		jVal, jPlane = mOpenJ, PlaneM
	} else {
		jVal, jPlane = jExtend, PlaneJ
	}
	p.j[i][j] = jVal
	p.jp[i][j] = jPlane

	// M[i,j] = max(M[i-1,j-1], I[i-1,j-1], J[i-1,j-1]) + score(ref,read)
	best, plane := tieBreak(p.m[i-1][j-1], p.j[i-1][j-1], p.i[i-1][j-1])
	p.m[i][j] = best + m.Score(ref[i-1], rd[j-1])
	p.mp[i][j] = plane
}

// tieBreak implements the load-bearing M-recurrence tie-break order
// M > J > I: compare the M- and J-candidates first (M wins only if
// strictly greater, else J), then compare that winner against the
// I-candidate (the earlier winner prevails only if strictly greater, else
// I). Ties always resolve to the later-compared plane.
func tieBreak(mVal, jVal, iVal int32) (int32, Plane) {
	var best int32
	var plane Plane
	if mVal > jVal {
		best, plane = mVal, PlaneM
	} else {
		best, plane = jVal, PlaneJ
	}
	if best > iVal {
		return best, plane
	}
	return iVal, PlaneI
}

func traceback(p *planes, reference, read []byte, refLen, readLen int) (alignedRef, alignedRead []byte, matches int) {
	i, j := refLen, readLen
	_, plane := tieBreak(p.m[refLen][readLen], p.j[refLen][readLen], p.i[refLen][readLen])

	for i > 0 || j > 0 {
		// On row 0 only read bases remain and on column 0 only reference
		// bases remain, whatever plane the pointer recorded.
		if i == 0 {
			plane = PlaneI
		} else if j == 0 {
			plane = PlaneJ
		}
		switch plane {
		case PlaneM:
			if i == 0 || j == 0 {
				panic(&InternalError{I: i, J: j, Plane: plane})
			}
			alignedRef = append(alignedRef, reference[i-1])
			alignedRead = append(alignedRead, read[j-1])
			if reference[i-1] == read[j-1] {
				matches++
			}
			next := p.mp[i][j]
			i--
			j--
			plane = next
		case PlaneJ:
			if i == 0 {
				panic(&InternalError{I: i, J: j, Plane: plane})
			}
			alignedRef = append(alignedRef, reference[i-1])
			alignedRead = append(alignedRead, '-')
			next := p.jp[i][j]
			i--
			plane = next
		case PlaneI:
			if j == 0 {
				panic(&InternalError{I: i, J: j, Plane: plane})
			}
			alignedRef = append(alignedRef, '-')
			alignedRead = append(alignedRead, read[j-1])
			next := p.ip[i][j]
			j--
			plane = next
		default:
			panic(&InternalError{I: i, J: j, Plane: plane})
		}
	}

	reverseBytes(alignedRef)
	reverseBytes(alignedRead)
	return alignedRef, alignedRead, matches
}

func containsGap(seq []byte) bool {
	for _, b := range seq {
		if b == '-' {
			return true
		}
	}
	return false
}

func upperCopy(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
