package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixforge/crispralign/internal/align"
	"github.com/helixforge/crispralign/internal/variants"
)

func outcomeWith(matchPercent float64, insSizes, delSizes []int, subPositions []int) Outcome {
	return Outcome{
		Aligned: align.Result{MatchPercent: matchPercent},
		Variants: &variants.Report{
			WindowedInsertionSizes:        insSizes,
			WindowedDeletionSizes:         delSizes,
			WindowedSubstitutionPositions: subPositions,
		},
	}
}

func TestSummarize_EditedFractionAndMeans(t *testing.T) {
	outcomes := []Outcome{
		outcomeWith(100.0, nil, nil, nil),                   // unedited
		outcomeWith(95.0, []int{3}, nil, nil),                // insertion
		outcomeWith(90.0, nil, []int{2}, nil),                // deletion
		outcomeWith(98.0, nil, nil, []int{5}),                // substitution only
	}

	summary, err := Summarize(outcomes)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 3, summary.EditedCount)
	assert.InDelta(t, 0.75, summary.EditedFraction, 1e-9)
	assert.InDelta(t, (0.0+3.0+2.0+0.0)/4.0, summary.MeanIndelSize, 1e-9)
	assert.InDelta(t, (100.0+95.0+90.0+98.0)/4.0, summary.MeanMatchPercent, 1e-9)
	assert.InDelta(t, 0.25, summary.MeanSubstitutions, 1e-9)
}

func TestSummarize_EditedFractionBounds(t *testing.T) {
	allUnedited := []Outcome{outcomeWith(100, nil, nil, nil), outcomeWith(100, nil, nil, nil)}
	summary, err := Summarize(allUnedited)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.EditedFraction)

	allEdited := []Outcome{outcomeWith(90, []int{1}, nil, nil), outcomeWith(90, []int{2}, nil, nil)}
	summary, err = Summarize(allEdited)
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.EditedFraction)
}

func TestSummarize_EmptyOutcomesIsError(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
}

func TestSummarize_MedianIndelSize(t *testing.T) {
	outcomes := []Outcome{
		outcomeWith(100, []int{1}, nil, nil),
		outcomeWith(100, []int{3}, nil, nil),
		outcomeWith(100, []int{5}, nil, nil),
	}
	summary, err := Summarize(outcomes)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, summary.MedianIndelSize, 1e-9)
}
