// Package handlers provides HTTP handlers for the crispralign API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/helixforge/crispralign/pkg/crispralign"
)

// AlignRequest represents a global-alignment request. Incentive, if empty,
// defaults to a zero vector of length len(Reference)+1. GapOpen and
// GapExtend default to -1 when zero (the common affine-gap default).
type AlignRequest struct {
	Read      string  `json:"read"`
	Reference string  `json:"reference"`
	Incentive []int32 `json:"incentive,omitempty"`
	GapOpen   int32   `json:"gap_open,omitempty"`
	GapExtend int32   `json:"gap_extend,omitempty"`
	Match     int32   `json:"match,omitempty"`
	Mismatch  int32   `json:"mismatch,omitempty"`
	NMismatch int32   `json:"n_mismatch,omitempty"`
	NMatch    int32   `json:"n_match,omitempty"`
}

// AlignResponse represents the response for a global alignment.
type AlignResponse struct {
	AlignedRef   string  `json:"aligned_ref"`
	AlignedRead  string  `json:"aligned_read"`
	MatchPercent float64 `json:"match_percent"`
}

// AlignHandler handles POST /api/align.
func AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gapOpen, gapExtend := req.GapOpen, req.GapExtend
	if gapOpen == 0 {
		gapOpen = -1
	}
	if gapExtend == 0 {
		gapExtend = -1
	}

	m := defaultMatrixOrCustom(req.Match, req.Mismatch, req.NMismatch, req.NMatch)

	incentive := req.Incentive
	if len(incentive) == 0 {
		incentive = crispralign.ZeroIncentive(len(req.Reference))
	}

	result, err := crispralign.Align(req.Read, req.Reference, m, incentive, gapOpen, gapExtend)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AlignResponse{
		AlignedRef:   result.AlignedRef,
		AlignedRead:  result.AlignedRead,
		MatchPercent: result.MatchPercent,
	})
}

func defaultMatrixOrCustom(match, mismatch, nMismatch, nMatch int32) *crispralign.Matrix {
	if match == 0 && mismatch == 0 && nMismatch == 0 && nMatch == 0 {
		return crispralign.DefaultScoring()
	}
	return crispralign.BuildMatrix(match, mismatch, nMismatch, nMatch)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
