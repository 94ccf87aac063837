// Package variants extracts insertion, deletion, and substitution calls
// from an already-aligned pair of equal-length strings, in a single
// left-to-right pass.
package variants

import "fmt"

// Coordinate is a half-open reference-coordinate interval [Start, End).
type Coordinate struct {
	Start, End int
}

// Report is the result of scanning an aligned pair: six parallel
// collections (all-flavor and windowed-flavor), indexed by reference
// coordinate.
type Report struct {
	InsertionPositions   []int
	InsertionCoordinates []Coordinate
	InsertionSizes       []int
	InsertionN           int

	DeletionPositions   []int
	DeletionCoordinates []Coordinate
	DeletionSizes       []int
	DeletionN           int

	SubstitutionPositions []int
	SubstitutionValues    []byte
	SubstitutionN         int

	// RefPositions holds, for every aligned column, the reference
	// coordinate it maps to. Insertion columns store a negative sentinel:
	// -idx (or -1 when idx == 0).
	RefPositions []int

	WindowedInsertionPositions   []int
	WindowedInsertionCoordinates []Coordinate
	WindowedInsertionSizes       []int

	WindowedDeletionPositions   []int
	WindowedDeletionCoordinates []Coordinate
	WindowedDeletionSizes       []int

	WindowedSubstitutionPositions []int
	WindowedSubstitutionValues    []byte
}

// Find scans alnRef and alnRead (equal-length, over {A,T,C,G,N,-}, no
// gap-in-both column) and produces a Report. includeIdx partitions events
// into windowed and all-event lists; a nil includeIdx windows nothing.
func Find(alnRef, alnRead string, includeIdx map[int]struct{}) (*Report, error) {
	if len(alnRef) != len(alnRead) {
		return nil, fmt.Errorf("variants: aligned sequences must have equal length, got %d and %d", len(alnRef), len(alnRead))
	}

	r := &Report{RefPositions: make([]int, len(alnRef))}

	idx := 0
	startInsertion := -1
	insertionSize := 0
	startDeletion := -1

	for c := 0; c < len(alnRef); c++ {
		refByte := alnRef[c]
		readByte := alnRead[c]

		if refByte == '-' && readByte == '-' {
			return nil, fmt.Errorf("variants: column %d has a gap in both sequences, which violates the aligner invariant", c)
		}

		if refByte != '-' {
			r.RefPositions[c] = idx

			if refByte != readByte && readByte != '-' && readByte != 'N' {
				r.SubstitutionPositions = append(r.SubstitutionPositions, idx)
				r.SubstitutionValues = append(r.SubstitutionValues, readByte)
				if _, ok := includeIdx[idx]; ok {
					r.WindowedSubstitutionPositions = append(r.WindowedSubstitutionPositions, idx)
					r.WindowedSubstitutionValues = append(r.WindowedSubstitutionValues, readByte)
				}
			}

			if startInsertion != -1 {
				closeInsertion(r, includeIdx, startInsertion, idx, insertionSize)
				startInsertion = -1
				insertionSize = 0
			}

			idx++
		} else {
			if idx > 0 {
				r.RefPositions[c] = -idx
			} else {
				r.RefPositions[c] = -1
			}

			if startInsertion == -1 {
				startInsertion = idx - 1
			}
			insertionSize++
		}

		if readByte == '-' {
			if startDeletion == -1 {
				startDeletion = r.RefPositions[c]
			}
		} else if startDeletion != -1 {
			closeDeletion(r, includeIdx, startDeletion, r.RefPositions[c])
			startDeletion = -1
		}
	}

	// A dangling trailing deletion closes using the last column's
	// ref_positions value, even if that column is itself an insertion
	// column — this is the reference tool's documented behavior (spec
	// design note 9(b)), preserved rather than "fixed".
	if startDeletion != -1 && len(alnRef) > 0 {
		closeDeletion(r, includeIdx, startDeletion, r.RefPositions[len(alnRef)-1])
	}

	r.SubstitutionN = len(r.SubstitutionPositions)

	return r, nil
}

func closeInsertion(r *Report, includeIdx map[int]struct{}, start, end, size int) {
	coord := Coordinate{Start: start, End: end}
	r.InsertionPositions = append(r.InsertionPositions, start)
	r.InsertionCoordinates = append(r.InsertionCoordinates, coord)
	r.InsertionSizes = append(r.InsertionSizes, size)
	r.InsertionN += size

	_, startIn := includeIdx[start]
	_, endIn := includeIdx[end]
	if startIn && endIn {
		r.WindowedInsertionPositions = append(r.WindowedInsertionPositions, start)
		r.WindowedInsertionCoordinates = append(r.WindowedInsertionCoordinates, coord)
		r.WindowedInsertionSizes = append(r.WindowedInsertionSizes, size)
	}
}

func closeDeletion(r *Report, includeIdx map[int]struct{}, start, end int) {
	coord := Coordinate{Start: start, End: end}
	size := end - start
	r.DeletionPositions = append(r.DeletionPositions, start)
	r.DeletionCoordinates = append(r.DeletionCoordinates, coord)
	r.DeletionSizes = append(r.DeletionSizes, size)
	r.DeletionN += size

	if intersectsWindow(coord, includeIdx) {
		r.WindowedDeletionPositions = append(r.WindowedDeletionPositions, start)
		r.WindowedDeletionCoordinates = append(r.WindowedDeletionCoordinates, coord)
		r.WindowedDeletionSizes = append(r.WindowedDeletionSizes, size)
	}
}

func intersectsWindow(c Coordinate, includeIdx map[int]struct{}) bool {
	for k := c.Start; k < c.End; k++ {
		if _, ok := includeIdx[k]; ok {
			return true
		}
	}
	return false
}
