package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/reductionlab/internal/metrics"
	"github.com/mind-engage/reductionlab/internal/store"
)

// Mount wires the chart API under r. store may be nil when no database is
// configured; the stored-curve routes are then left out.
func Mount(r chi.Router, ch *Chart, lat *metrics.Latency, s store.Store) {
	r.Get("/curve", CurveHandler(ch))
	r.Route("/convert", func(cr chi.Router) {
		cr.Get("/efficiency", EfficiencyHandler(ch))
		cr.Get("/reduction", ReductionHandler(ch))
	})
	r.With(lat.Middleware).Get("/probe", ProbeHandler(ch))
	r.Get("/stats/latency", LatencyHandler(lat))

	if s != nil {
		r.Get("/curves", ListStoredCurvesHandler(s))
		r.Get("/curves/{curveID}", GetStoredCurveHandler(s))
	}
}
