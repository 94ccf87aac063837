// Package seqio provides the Sequence record and FASTA I/O used by the CLI,
// REST API, and batch layers. The core alignment packages never depend on
// this package; they take raw strings/bytes, keeping their pure-function
// contract intact.
package seqio

import (
	"fmt"
	"strings"
)

// ValidBases are the single-letter codes accepted before scoring.
var ValidBases = map[byte]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// Sequence is a validated, uppercased DNA sequence with an optional ID.
type Sequence struct {
	ID    string
	Bases string
}

// New constructs an anonymous Sequence.
func New(bases string) (*Sequence, error) {
	return WithID(bases, "")
}

// WithID constructs a Sequence, uppercasing bases and validating it against
// the accepted alphabet.
func WithID(bases, id string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)
	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}
	if err := Validate(normalized); err != nil {
		return nil, err
	}
	return &Sequence{ID: id, Bases: normalized}, nil
}

// Len returns the number of bases.
func (s *Sequence) Len() int { return len(s.Bases) }

// String renders the sequence as FASTA if it has an ID, or as raw bases
// otherwise.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}
