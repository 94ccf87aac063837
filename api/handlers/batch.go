package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/helixforge/crispralign/internal/batch"
	"github.com/helixforge/crispralign/pkg/crispralign"
)

// BatchPair is one read/reference pair within a BatchRequest.
type BatchPair struct {
	Read      string `json:"read"`
	Reference string `json:"reference"`
}

// BatchRequest represents a request to align and summarize many pairs in
// one call. A non-empty IncludeIdx is the window for every pair. Otherwise
// IncludeAll windows every position of each pair's own reference (the
// common "whole amplicon" case); with neither set, no position is windowed.
type BatchRequest struct {
	Pairs      []BatchPair `json:"pairs"`
	IncludeAll bool        `json:"include_all,omitempty"`
	IncludeIdx []int       `json:"include_idx,omitempty"`
	GapOpen    int32       `json:"gap_open,omitempty"`
	GapExtend  int32       `json:"gap_extend,omitempty"`
}

// BatchHandler handles POST /api/batch.
func BatchHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Pairs) == 0 {
		writeError(w, http.StatusBadRequest, "pairs cannot be empty")
		return
	}

	gapOpen, gapExtend := req.GapOpen, req.GapExtend
	if gapOpen == 0 {
		gapOpen = -1
	}
	if gapExtend == 0 {
		gapExtend = -1
	}

	m := crispralign.DefaultScoring()
	outcomes := make([]batch.Outcome, 0, len(req.Pairs))

	for _, pair := range req.Pairs {
		incentive := crispralign.ZeroIncentive(len(pair.Reference))
		result, err := crispralign.Align(pair.Read, pair.Reference, m, incentive, gapOpen, gapExtend)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		includeIdx := windowFor(req, len(pair.Reference))
		report, err := crispralign.FindVariants(result.AlignedRef, result.AlignedRead, includeIdx)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		outcomes = append(outcomes, batch.Outcome{Aligned: result, Variants: report})
	}

	summary, err := crispralign.Summarize(outcomes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func windowFor(req BatchRequest, refLen int) map[int]struct{} {
	if len(req.IncludeIdx) > 0 {
		set := make(map[int]struct{}, len(req.IncludeIdx))
		for _, idx := range req.IncludeIdx {
			set[idx] = struct{}{}
		}
		return set
	}
	if req.IncludeAll {
		set := make(map[int]struct{}, refLen)
		for i := 0; i < refLen; i++ {
			set[i] = struct{}{}
		}
		return set
	}
	return nil
}
