// Package batch aggregates editing-outcome statistics across many aligned
// pairs, the batch-of-reads counterpart to a single internal/align +
// internal/variants call. It performs no alignment itself: it summarizes
// results the caller has already computed.
package batch

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/helixforge/crispralign/internal/align"
	"github.com/helixforge/crispralign/internal/variants"
)

// Outcome pairs one read's alignment result with its variant report, the
// unit of work internal/batch aggregates over.
type Outcome struct {
	Aligned  align.Result
	Variants *variants.Report
}

// Summary is the aggregate editing-outcome report for a pool of Outcomes,
// the central output of amplicon-sequencing CRISPR analysis: how many reads
// show evidence of editing, and how large are the edits.
type Summary struct {
	Count             int
	EditedCount       int
	EditedFraction    float64
	MeanIndelSize     float64
	MedianIndelSize   float64
	MeanMatchPercent  float64
	MeanSubstitutions float64
}

// Summarize computes a Summary over outcomes. An outcome counts as
// "edited" when its windowed insertion, deletion, or substitution count is
// nonzero, using the inclusion window its variant report was computed
// with. Summarize returns an error
// only when outcomes is empty, since no statistic is defined over zero
// reads.
func Summarize(outcomes []Outcome) (*Summary, error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("batch: outcomes cannot be empty")
	}

	n := len(outcomes)
	indelSizes := make([]float64, n)
	matchPercents := make([]float64, n)
	substitutionCounts := make([]float64, n)
	editedCount := 0

	for i, o := range outcomes {
		windowedIndel := sumInts(o.Variants.WindowedInsertionSizes) + sumInts(o.Variants.WindowedDeletionSizes)
		windowedSubstitutions := len(o.Variants.WindowedSubstitutionPositions)

		indelSizes[i] = float64(windowedIndel)
		matchPercents[i] = o.Aligned.MatchPercent
		substitutionCounts[i] = float64(windowedSubstitutions)

		if windowedIndel > 0 || windowedSubstitutions > 0 {
			editedCount++
		}
	}

	sortedIndelSizes := append([]float64(nil), indelSizes...)
	sort.Float64s(sortedIndelSizes)

	return &Summary{
		Count:             n,
		EditedCount:       editedCount,
		EditedFraction:    float64(editedCount) / float64(n),
		MeanIndelSize:     stat.Mean(indelSizes, nil),
		MedianIndelSize:   stat.Quantile(0.5, stat.Empirical, sortedIndelSizes, nil),
		MeanMatchPercent:  stat.Mean(matchPercents, nil),
		MeanSubstitutions: stat.Mean(substitutionCounts, nil),
	}, nil
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func (s *Summary) String() string {
	return fmt.Sprintf(`Batch Summary {
  reads: %d
  edited: %d (%.1f%%)
  mean indel size: %.2f
  median indel size: %.2f
  mean match %%: %.3f
  mean substitutions/read: %.2f
}`, s.Count, s.EditedCount, s.EditedFraction*100,
		s.MeanIndelSize, s.MedianIndelSize, s.MeanMatchPercent, s.MeanSubstitutions)
}
