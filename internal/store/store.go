package store

import (
	"context"
	"errors"

	"github.com/mind-engage/reductionlab/internal/curve"
)

var ErrNotFound = errors.New("curve not found")

// CurveSummary describes one exported curve.
type CurveSummary struct {
	ID           string `db:"id" json:"id"`
	StepsPerUnit int    `db:"steps_per_unit" json:"steps_per_unit"`
	XMax         int    `db:"x_max" json:"x_max"`
	Points       int    `db:"points" json:"points"`
	CreatedAt    int64  `db:"created_at" json:"created_at"`
}

// Store keeps sampled curves so other tools can read them with plain SQL.
type Store interface {
	SaveCurve(ctx context.Context, c curve.Curve, stepsPerUnit, xMax int) (string, error)
	LoadCurve(ctx context.Context, id string) (curve.Curve, CurveSummary, error)
	ListCurves(ctx context.Context, limit int) ([]CurveSummary, error)
}
