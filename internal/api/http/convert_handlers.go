package http

import (
	"log/slog"
	"net/http"

	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/plot"
)

type screenHighlight struct {
	Vertical   [2]plot.Pixel `json:"vertical"`
	Horizontal [2]plot.Pixel `json:"horizontal"`
	Point      plot.Pixel    `json:"point"`
}

type convertResp struct {
	convert.Result
	Screen *screenHighlight `json:"screen,omitempty"`
	Reason string           `json:"reason,omitempty"`
}

func (ch *Chart) toResp(res convert.Result) convertResp {
	out := convertResp{Result: res}
	if h := res.Highlight; h != nil {
		f := ch.Frame
		out.Screen = &screenHighlight{
			Vertical:   [2]plot.Pixel{f.Project(h.Vertical.From), f.Project(h.Vertical.To)},
			Horizontal: [2]plot.Pixel{f.Project(h.Horizontal.From), f.Project(h.Horizontal.To)},
			Point:      f.Project(h.Point),
		}
	}
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}
	return out
}

// GET /api/convert/efficiency?value=5
//
// Bad input is not an HTTP error: the surface just gets an empty result and
// clears whatever it was showing.
func EfficiencyHandler(ch *Chart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("value")
		res := ch.Ctl.EfficiencyInput(raw)
		if !res.Valid {
			slog.Debug("efficiency input cleared", "raw", raw, "reason", res.Reason)
		}
		writeJSON(w, http.StatusOK, ch.toResp(res))
	}
}

// GET /api/convert/reduction?value=50
func ReductionHandler(ch *Chart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("value")
		res := ch.Ctl.ReductionInput(raw)
		if !res.Valid {
			slog.Debug("reduction input cleared", "raw", raw, "reason", res.Reason)
		}
		writeJSON(w, http.StatusOK, ch.toResp(res))
	}
}
