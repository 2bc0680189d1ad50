package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/reductionlab/internal/curve"
	"github.com/mind-engage/reductionlab/internal/store"
)

// GET /api/curves?limit=20
func ListStoredCurvesHandler(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		list, err := s.ListCurves(r.Context(), limit)
		if err != nil {
			http.Error(w, "list curves: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

type storedCurveResp struct {
	store.CurveSummary
	Samples []curve.Point `json:"samples"`
}

// GET /api/curves/{curveID}
func GetStoredCurveHandler(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "curveID"))
		if id == "" {
			http.Error(w, "curveID required", http.StatusBadRequest)
			return
		}
		c, sum, err := s.LoadCurve(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "load curve: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, storedCurveResp{CurveSummary: sum, Samples: c.Points()})
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
