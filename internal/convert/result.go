package convert

import (
	"fmt"

	"github.com/mind-engage/reductionlab/internal/curve"
)

// Segment is a line between two curve-space points.
type Segment struct {
	From curve.Point `json:"from"`
	To   curve.Point `json:"to"`
}

// Highlight marks a value on the chart: a drop line to the x axis, a line
// across from the y axis and the point where they meet the curve.
type Highlight struct {
	Vertical   Segment     `json:"vertical"`
	Horizontal Segment     `json:"horizontal"`
	Point      curve.Point `json:"point"`
}

func highlightAt(p curve.Point) *Highlight {
	return &Highlight{
		Vertical:   Segment{From: curve.Point{X: p.X, Y: 0}, To: p},
		Horizontal: Segment{From: curve.Point{X: 0, Y: p.Y}, To: p},
		Point:      p,
	}
}

// Result is the view model for one input event. An invalid result is empty:
// no value, no text, no highlight. Reason says why, for logs and diagnostics.
type Result struct {
	Valid     bool       `json:"valid"`
	Value     float64    `json:"value"`
	Text      string     `json:"text"`
	Highlight *Highlight `json:"highlight,omitempty"`
	Reason    error      `json:"-"`
}

func cleared(reason error) Result {
	return Result{Reason: reason}
}

// Probe is the answer to a pointer position: the nearest sample and its tooltip.
type Probe struct {
	Point   curve.Point `json:"point"`
	Tooltip string      `json:"tooltip"`
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
