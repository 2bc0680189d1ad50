// Package convert turns raw efficiency/reduction inputs and pointer queries
// into view models against a fixed, precomputed reduction curve.
package convert

import (
	"errors"
	"fmt"

	"github.com/mind-engage/reductionlab/internal/curve"
)

// Options configures a Controller.
type Options struct {
	XMax           int  // efficiency ceiling of the plotted window
	StepsPerUnit   int  // curve sampling resolution
	EfficiencyUnit Unit // unit of the raw efficiency field
	ReductionUnit  Unit // unit of the raw reduction field
}

// DefaultOptions is the reference configuration.
func DefaultOptions() Options {
	return Options{
		XMax:           20,
		StepsPerUnit:   10,
		EfficiencyUnit: UnitRatio,
		ReductionUnit:  UnitPercent,
	}
}

// Controller holds the sampled curve and domain bounds. It is built once
// and only read afterwards, so one value can serve concurrent callers.
type Controller struct {
	curve   curve.Curve
	xMax    float64
	effUnit Unit
	redUnit Unit
}

// New samples the curve and returns a ready controller.
func New(opts Options) (*Controller, error) {
	if opts.XMax <= 0 {
		return nil, fmt.Errorf("convert: x max must be positive, got %d", opts.XMax)
	}
	c, err := curve.Sample(opts.StepsPerUnit, opts.XMax)
	if err != nil {
		return nil, err
	}
	if opts.EfficiencyUnit == "" {
		opts.EfficiencyUnit = UnitRatio
	}
	if opts.ReductionUnit == "" {
		opts.ReductionUnit = UnitPercent
	}
	return &Controller{
		curve:   c,
		xMax:    float64(opts.XMax),
		effUnit: opts.EfficiencyUnit,
		redUnit: opts.ReductionUnit,
	}, nil
}

// Curve returns the controller's sample curve.
func (c *Controller) Curve() curve.Curve { return c.curve }

// XMax returns the efficiency ceiling.
func (c *Controller) XMax() float64 { return c.xMax }

// EfficiencyToReduction converts an efficiency ratio. Outside [0, XMax] the
// result is cleared.
func (c *Controller) EfficiencyToReduction(e float64) Result {
	if !(e >= 0 && e <= c.xMax) {
		return cleared(ErrOutOfRange)
	}
	y := curve.Forward(e)
	return Result{
		Valid:     true,
		Value:     y,
		Text:      "Reduction: " + percent(y),
		Highlight: highlightAt(curve.Point{X: e, Y: y}),
	}
}

// ReductionToEfficiency converts a reduction ratio in [0, 1). The efficiency
// text is always filled in for an admissible r; the highlight only when the
// efficiency lands inside the plotted window.
func (c *Controller) ReductionToEfficiency(r float64) Result {
	if !(r >= 0 && r < 1) {
		return cleared(ErrOutOfRange)
	}
	e, err := curve.Inverse(r)
	if err != nil {
		return cleared(fmt.Errorf("%w: %w", ErrOutOfRange, err))
	}
	res := Result{
		Valid: true,
		Value: e,
		Text:  "Efficiency: " + percent(e),
	}
	if e >= 0 && e <= c.xMax {
		res.Highlight = highlightAt(curve.Point{X: e, Y: r})
	}
	return res
}

// EfficiencyInput parses a raw efficiency field and converts it.
func (c *Controller) EfficiencyInput(raw string) Result {
	v, err := parseRaw(raw)
	if err != nil {
		return cleared(err)
	}
	return c.EfficiencyToReduction(c.effUnit.ToRatio(v))
}

// ReductionInput parses a raw reduction field and converts it.
func (c *Controller) ReductionInput(raw string) Result {
	v, err := parseRaw(raw)
	if err != nil {
		return cleared(err)
	}
	return c.ReductionToEfficiency(c.redUnit.ToRatio(v))
}

// Probe finds the sample nearest to an efficiency query.
func (c *Controller) Probe(x float64) Probe {
	p := c.curve.Nearest(x)
	return Probe{
		Point:   p,
		Tooltip: "Efficiency: " + percent(p.X) + "<br>Reduction: " + percent(p.Y),
	}
}

// IsCleared reports whether err is one of the silent-clear reasons.
func IsCleared(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrNotANumber)
}
