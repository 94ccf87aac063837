package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/helixforge/crispralign/pkg/crispralign"
)

// VariantsRequest represents a variant-extraction request. IncludeIdx, if
// empty, means no reference coordinate is windowed.
type VariantsRequest struct {
	AlignedRef  string `json:"aligned_ref"`
	AlignedRead string `json:"aligned_read"`
	IncludeIdx  []int  `json:"include_idx,omitempty"`
}

// VariantsHandler handles POST /api/variants.
func VariantsHandler(w http.ResponseWriter, r *http.Request) {
	var req VariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var includeIdx map[int]struct{}
	if len(req.IncludeIdx) > 0 {
		includeIdx = make(map[int]struct{}, len(req.IncludeIdx))
		for _, idx := range req.IncludeIdx {
			includeIdx[idx] = struct{}{}
		}
	}

	report, err := crispralign.FindVariants(req.AlignedRef, req.AlignedRead, includeIdx)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
