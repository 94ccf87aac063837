package seqio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UppercasesAndValidates(t *testing.T) {
	seq, err := New("atcgn")
	require.NoError(t, err)
	assert.Equal(t, "ATCGN", seq.Bases)
	assert.Equal(t, 5, seq.Len())
	assert.Equal(t, "", seq.ID)
}

func TestWithID_SetsID(t *testing.T) {
	seq, err := WithID("ATCG", "amplicon-1")
	require.NoError(t, err)
	assert.Equal(t, "amplicon-1", seq.ID)
	assert.Equal(t, ">amplicon-1\nATCG", seq.String())
}

func TestNew_EmptyIsError(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	var emptyErr *EmptySequenceError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestNew_InvalidBaseIsError(t *testing.T) {
	_, err := New("ATCGX")
	require.Error(t, err)
	var invalidErr *InvalidBaseError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 4, invalidErr.Position)
	assert.Equal(t, byte('X'), invalidErr.Found)
}

func TestString_NoIDIsRawBases(t *testing.T) {
	seq, err := New("ATCG")
	require.NoError(t, err)
	assert.Equal(t, "ATCG", seq.String())
}
