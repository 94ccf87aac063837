package seqio

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFASTA reads every record of a FASTA file into validated Sequences,
// following the teacher's pkg/bioflow.ReadFASTA contract but parsing
// through biogo rather than a hand-rolled bufio.Scanner loop.
func ReadFASTA(path string) ([]*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: opening %s: %w", path, err)
	}
	defer f.Close()

	reader := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	scanner := seqio.NewScanner(reader)

	var sequences []*Sequence
	for scanner.Next() {
		rec, ok := scanner.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("seqio: %s: unexpected record type in FASTA stream", path)
		}

		seq, err := WithID(lettersToString(rec.Seq), rec.Name())
		if err != nil {
			return nil, fmt.Errorf("seqio: %s: record %q: %w", path, rec.Name(), err)
		}
		sequences = append(sequences, seq)
	}
	if err := scanner.Error(); err != nil {
		return nil, fmt.Errorf("seqio: reading %s: %w", path, err)
	}

	return sequences, nil
}

// ReadPairFASTA reads a two-record FASTA file holding a read and a
// reference, the common layout for a single-amplicon CRISPR editing
// analysis: record 1 is the read, record 2 is the reference.
func ReadPairFASTA(path string) (read, reference *Sequence, err error) {
	sequences, err := ReadFASTA(path)
	if err != nil {
		return nil, nil, err
	}
	if len(sequences) != 2 {
		return nil, nil, fmt.Errorf("seqio: %s: expected exactly 2 records (read, reference), got %d", path, len(sequences))
	}
	return sequences[0], sequences[1], nil
}

func lettersToString(letters alphabet.Letters) string {
	bases := make([]byte, len(letters))
	for i, l := range letters {
		bases[i] = byte(l)
	}
	return string(bases)
}
