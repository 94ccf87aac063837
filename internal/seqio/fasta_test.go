package seqio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFASTA(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqs.fasta")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadFASTA_SingleRecord(t *testing.T) {
	path := writeFASTA(t, ">read1\nATCGATCG\n")

	sequences, err := ReadFASTA(path)
	require.NoError(t, err)
	require.Len(t, sequences, 1)
	assert.Equal(t, "read1", sequences[0].ID)
	assert.Equal(t, "ATCGATCG", sequences[0].Bases)
}

func TestReadFASTA_MultipleRecordsAndWrappedLines(t *testing.T) {
	path := writeFASTA(t, ">read\nATCG\nAATCG\n>reference\nATCGATCG\n")

	sequences, err := ReadFASTA(path)
	require.NoError(t, err)
	require.Len(t, sequences, 2)
	assert.Equal(t, "read", sequences[0].ID)
	assert.Equal(t, "ATCGAATCG", sequences[0].Bases)
	assert.Equal(t, "reference", sequences[1].ID)
	assert.Equal(t, "ATCGATCG", sequences[1].Bases)
}

func TestReadPairFASTA(t *testing.T) {
	path := writeFASTA(t, ">read\nATCGAATCG\n>reference\nATCGATCG\n")

	read, reference, err := ReadPairFASTA(path)
	require.NoError(t, err)
	assert.Equal(t, "ATCGAATCG", read.Bases)
	assert.Equal(t, "ATCGATCG", reference.Bases)
}

func TestReadPairFASTA_WrongRecordCountIsError(t *testing.T) {
	path := writeFASTA(t, ">only\nATCG\n")

	_, _, err := ReadPairFASTA(path)
	require.Error(t, err)
}

func TestReadFASTA_MissingFileIsError(t *testing.T) {
	_, err := ReadFASTA(filepath.Join(t.TempDir(), "missing.fasta"))
	require.Error(t, err)
}
