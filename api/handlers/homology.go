package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/helixforge/crispralign/pkg/crispralign"
)

// HomologyRequest represents a similarity request for two equal (or
// truncated-to-shorter) length strings.
type HomologyRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// HomologyResponse represents the response for a homology computation.
type HomologyResponse struct {
	Fraction float64 `json:"fraction"`
}

// HomologyHandler handles POST /api/homology.
func HomologyHandler(w http.ResponseWriter, r *http.Request) {
	var req HomologyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fraction, err := crispralign.Homology(req.A, req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, HomologyResponse{Fraction: fraction})
}
