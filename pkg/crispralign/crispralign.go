// Package crispralign provides a high-level API for CRISPR editing-outcome
// alignment analysis: build a scoring matrix, globally align a read against
// a reference amplicon with a position-specific gap incentive, and extract
// the resulting indel/substitution calls.
//
// Example usage:
//
//	m := crispralign.DefaultScoring()
//	incentive := crispralign.ZeroIncentive(len(reference))
//	result, err := crispralign.Align(read, reference, m, incentive, -1, -1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := crispralign.FindVariants(result.AlignedRef, result.AlignedRead, nil)
package crispralign

import (
	"github.com/helixforge/crispralign/internal/align"
	"github.com/helixforge/crispralign/internal/batch"
	"github.com/helixforge/crispralign/internal/homology"
	"github.com/helixforge/crispralign/internal/scoring"
	"github.com/helixforge/crispralign/internal/seqio"
	"github.com/helixforge/crispralign/internal/variants"
)

// Re-export the core types for convenience.
type (
	Matrix        = scoring.Matrix
	AlignResult   = align.Result
	VariantReport = variants.Report
	Coordinate    = variants.Coordinate
	Sequence      = seqio.Sequence
	Outcome       = batch.Outcome
	Summary       = batch.Summary
)

// BuildMatrix constructs a scoring matrix from four signed scoring
// parameters.
func BuildMatrix(match, mismatch, nMismatch, nMatch int32) *Matrix {
	return scoring.Build(match, mismatch, nMismatch, nMatch)
}

// DefaultScoring returns the conventional genome-editing scoring matrix
// (match=5, mismatch=-4, n-mismatch=-2, n-match=-1).
func DefaultScoring() *Matrix {
	return scoring.DefaultDNA()
}

// ZeroIncentive returns a gap-incentive vector of the required length
// (refLen+1) with no position-specific bias, for callers that don't need
// cut-site localization.
func ZeroIncentive(refLen int) []int32 {
	return make([]int32, refLen+1)
}

// Align performs a global alignment of read against reference under m
// (DefaultScoring() if nil), incentive, and affine gap penalties gapOpen /
// gapExtend (supplied as negative numbers).
func Align(read, reference string, m *Matrix, incentive []int32, gapOpen, gapExtend int32) (AlignResult, error) {
	return align.Global([]byte(read), []byte(reference), m, incentive, gapOpen, gapExtend)
}

// FindVariants scans an aligned pair and extracts insertion, deletion, and
// substitution calls, partitioned by includeIdx.
func FindVariants(alnRef, alnRead string, includeIdx map[int]struct{}) (*VariantReport, error) {
	return variants.Find(alnRef, alnRead, includeIdx)
}

// Homology returns the position-wise identity fraction of two equal (or
// truncated-to-shorter) length strings.
func Homology(a, b string) (float64, error) {
	return homology.Fraction(a, b)
}

// Summarize aggregates editing-outcome statistics across many aligned
// pairs.
func Summarize(outcomes []Outcome) (*Summary, error) {
	return batch.Summarize(outcomes)
}

// NewSequence constructs a validated, uppercased DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return seqio.New(bases)
}

// NewSequenceWithID constructs a validated sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return seqio.WithID(bases, id)
}

// ReadFASTA reads every record of a FASTA file into validated Sequences.
func ReadFASTA(path string) ([]*Sequence, error) {
	return seqio.ReadFASTA(path)
}

// ReadPairFASTA reads a two-record FASTA file (read, reference), the
// common layout for a single-amplicon CRISPR editing analysis.
func ReadPairFASTA(path string) (read, reference *Sequence, err error) {
	return seqio.ReadPairFASTA(path)
}

// Version returns the crispralign version.
func Version() string {
	return "1.0.0"
}

// Info returns a human-readable description of the library.
func Info() string {
	return `crispralign - CRISPR editing-outcome alignment library

A global pairwise DNA aligner with affine gap penalties and
position-specific gap incentives, bit-compatible with a widely used
genome-editing reference tool, plus an indel/substitution extractor for
downstream CRISPR analysis.

Features:
  - Three-state (M/I/J) affine-gap global alignment with free terminal gaps
  - Position-specific gap incentive for cut-site localization
  - Insertion/deletion/substitution extraction with inclusion-window filtering
  - Batch editing-efficiency statistics across read pools
  - FASTA sequence I/O

For more information, see: https://github.com/helixforge/crispralign
`
}
