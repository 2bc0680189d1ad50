package http

import (
	"encoding/json"
	"net/http"

	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/curve"
	"github.com/mind-engage/reductionlab/internal/plot"
)

// Chart bundles what every handler reads: the controller with its curve and
// the pixel frame the presentation surface draws into. Built once at startup.
type Chart struct {
	Ctl   *convert.Controller
	Frame plot.Frame
	Ticks int
}

// NewChart fits a frame of the given outer size to the controller's curve.
func NewChart(ctl *convert.Controller, width, height float64, m plot.Margins, ticks int) (*Chart, error) {
	f, err := plot.NewFrame(width, height, m, ctl.Curve(), ctl.XMax())
	if err != nil {
		return nil, err
	}
	if ticks <= 0 {
		ticks = 10
	}
	return &Chart{Ctl: ctl, Frame: f, Ticks: ticks}, nil
}

type curveResp struct {
	Title  string        `json:"title"`
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	XMax   float64       `json:"x_max"`
	Frame  plot.Frame    `json:"frame"`
	Points []curve.Point `json:"points"`
	Path   []plot.Pixel  `json:"path"`
	XTicks []plot.Tick   `json:"x_ticks"`
	YTicks []plot.Tick   `json:"y_ticks"`
}

// GET /api/curve
func CurveHandler(ch *Chart) http.HandlerFunc {
	// the curve never changes; build the payload once
	pts := ch.Ctl.Curve().Points()
	path := make([]plot.Pixel, len(pts))
	for i, p := range pts {
		path[i] = ch.Frame.Project(p)
	}
	resp := curveResp{
		Title:  plot.Title,
		XLabel: plot.XLabel,
		YLabel: plot.YLabel,
		XMax:   ch.Ctl.XMax(),
		Frame:  ch.Frame,
		Points: pts,
		Path:   path,
		XTicks: ch.Frame.XTicks(ch.Ticks),
		YTicks: ch.Frame.YTicks(ch.Ticks),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
