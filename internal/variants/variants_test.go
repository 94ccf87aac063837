package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_S3_SingleInsertion(t *testing.T) {
	r, err := Find("ATCG-ATCG", "ATCGAATCG", nil)
	require.NoError(t, err)

	require.Len(t, r.InsertionCoordinates, 1)
	assert.Equal(t, Coordinate{Start: 3, End: 4}, r.InsertionCoordinates[0])
	assert.Equal(t, 1, r.InsertionSizes[0])
	assert.Equal(t, 1, r.InsertionN)
	assert.Empty(t, r.DeletionCoordinates)
	assert.Empty(t, r.SubstitutionPositions)
}

func TestFind_S4_SingleDeletion(t *testing.T) {
	r, err := Find("ATCGATCG", "ATCG-TCG", nil)
	require.NoError(t, err)

	require.Len(t, r.DeletionCoordinates, 1)
	assert.Equal(t, Coordinate{Start: 4, End: 5}, r.DeletionCoordinates[0])
	assert.Equal(t, 1, r.DeletionSizes[0])
	assert.Equal(t, 1, r.DeletionN)
	assert.Empty(t, r.InsertionCoordinates)
}

func TestFind_S5_SingleWideGapRun(t *testing.T) {
	r, err := Find("ATCGATCGATCG", "ATCG------CG", nil)
	require.NoError(t, err)

	require.Len(t, r.DeletionCoordinates, 1, "must be one contiguous run, not scattered")
	assert.Equal(t, Coordinate{Start: 4, End: 10}, r.DeletionCoordinates[0])
	assert.Equal(t, 6, r.DeletionSizes[0])
	assert.Equal(t, 6, r.DeletionN)
}

func TestFind_S6_NoSubstitutionWhenReadBaseIsN(t *testing.T) {
	r, err := Find("ATCGATCG", "ATCNATCG", nil)
	require.NoError(t, err)
	assert.Empty(t, r.SubstitutionPositions)
	assert.Equal(t, 0, r.SubstitutionN)
}

func TestFind_S8_DeletionWidthsSumToGapCount(t *testing.T) {
	// The gap run is interior: a trailing run closes at the last reference
	// position (see Find), which leaves it one column short.
	r, err := Find("AAAAAAAA"+"AAAA"+"AAAA", "AAAAAAAA"+"----"+"AAAA", nil)
	require.NoError(t, err)

	total := 0
	for _, size := range r.DeletionSizes {
		total += size
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, 4, r.DeletionN)
}

func TestFind_Substitution(t *testing.T) {
	r, err := Find("ATCGATCG", "ATCTATCG", nil)
	require.NoError(t, err)

	require.Len(t, r.SubstitutionPositions, 1)
	assert.Equal(t, 3, r.SubstitutionPositions[0])
	assert.Equal(t, byte('T'), r.SubstitutionValues[0])
	assert.Equal(t, 1, r.SubstitutionN)
}

func TestFind_WindowedInsertionRequiresBothEndpoints(t *testing.T) {
	// insertion coordinate (3, 4): both endpoints must be in the window.
	withBoth := map[int]struct{}{3: {}, 4: {}}
	r, err := Find("ATCG-ATCG", "ATCGAATCG", withBoth)
	require.NoError(t, err)
	assert.Len(t, r.WindowedInsertionCoordinates, 1)

	onlyOne := map[int]struct{}{3: {}}
	r2, err := Find("ATCG-ATCG", "ATCGAATCG", onlyOne)
	require.NoError(t, err)
	assert.Empty(t, r2.WindowedInsertionCoordinates)
}

func TestFind_WindowedDeletionRequiresIntersection(t *testing.T) {
	window := map[int]struct{}{4: {}}
	r, err := Find("ATCGATCGATCG", "ATCG------CG", window)
	require.NoError(t, err)
	assert.Len(t, r.WindowedDeletionCoordinates, 1)

	outsideWindow := map[int]struct{}{100: {}}
	r2, err := Find("ATCGATCGATCG", "ATCG------CG", outsideWindow)
	require.NoError(t, err)
	assert.Empty(t, r2.WindowedDeletionCoordinates)
}

func TestFind_WindowedSubsetsOfAll_FullWindowGivesEquality(t *testing.T) {
	fullWindow := map[int]struct{}{}
	for i := 0; i < 20; i++ {
		fullWindow[i] = struct{}{}
	}

	r, err := Find("ATCG-ATCGATCG", "ATCGAATCG--CG", fullWindow)
	require.NoError(t, err)

	assert.Equal(t, len(r.InsertionCoordinates), len(r.WindowedInsertionCoordinates))
	assert.Equal(t, len(r.DeletionCoordinates), len(r.WindowedDeletionCoordinates))
	assert.Equal(t, len(r.SubstitutionPositions), len(r.WindowedSubstitutionPositions))
}

func TestFind_RefPositionsSentinelForInsertionColumns(t *testing.T) {
	r, err := Find("ATCG-ATCG", "ATCGAATCG", nil)
	require.NoError(t, err)

	// column 4 is the insertion column; idx was 4 at that point, so the
	// sentinel is -4.
	assert.Equal(t, -4, r.RefPositions[4])
	assert.Equal(t, 0, r.RefPositions[0])
	assert.Equal(t, 4, r.RefPositions[5])
}

func TestFind_UnequalLengthsIsError(t *testing.T) {
	_, err := Find("ACGT", "ACG", nil)
	require.Error(t, err)
}

func TestFind_GapInBothColumnIsError(t *testing.T) {
	_, err := Find("AC-T", "AC-T", nil)
	require.Error(t, err)
}
