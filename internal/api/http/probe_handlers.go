package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/metrics"
	"github.com/mind-engage/reductionlab/internal/plot"
)

type probeResp struct {
	Query float64 `json:"query"`
	convert.Probe
	Pixel plot.Pixel `json:"pixel"`
}

// GET /api/probe?x=5.03   (curve space)
// GET /api/probe?px=125   (pixels from the left edge of the plot area)
func ProbeHandler(ch *Chart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var x float64
		switch {
		case q.Has("x"):
			v, ok := parseCoord(q.Get("x"))
			if !ok {
				http.Error(w, "x must be a number", http.StatusBadRequest)
				return
			}
			x = v
		case q.Has("px"):
			v, ok := parseCoord(q.Get("px"))
			if !ok {
				http.Error(w, "px must be a number", http.StatusBadRequest)
				return
			}
			x = ch.Frame.InvertX(v)
		default:
			http.Error(w, "x or px required", http.StatusBadRequest)
			return
		}
		p := ch.Ctl.Probe(x)
		writeJSON(w, http.StatusOK, probeResp{Query: x, Probe: p, Pixel: ch.Frame.Project(p.Point)})
	}
}

// GET /api/stats/latency
func LatencyHandler(l *metrics.Latency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, l.Snapshot())
	}
}

func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
