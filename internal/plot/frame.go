package plot

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mind-engage/reductionlab/internal/curve"
)

// Margins around the plotting area, in pixels.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Frame is the pixel space a curve is drawn into. X runs left to right,
// Y runs top to bottom, both relative to the inner (margin-less) area.
type Frame struct {
	Width   float64 `json:"width"`  // inner width
	Height  float64 `json:"height"` // inner height
	Margins Margins `json:"margins"`

	X Linear `json:"-"`
	Y Linear `json:"-"`
}

// NewFrame sizes a frame for an outer width/height and fits its scales to c:
// x over [0, xMax], y over the curve's reduction range (inverted so larger
// reductions sit higher).
func NewFrame(outerW, outerH float64, m Margins, c curve.Curve, xMax float64) (Frame, error) {
	w := outerW - m.Left - m.Right
	h := outerH - m.Top - m.Bottom
	if w <= 0 || h <= 0 {
		return Frame{}, fmt.Errorf("plot: frame %vx%v leaves no room inside margins", outerW, outerH)
	}
	lo, hi := c.YRange()
	return Frame{
		Width:   w,
		Height:  h,
		Margins: m,
		X:       NewLinear(0, xMax, 0, w),
		Y:       NewLinear(lo, hi, h, 0),
	}, nil
}

// Pixel is a position inside the frame.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps a curve-space point to pixels.
func (f Frame) Project(p curve.Point) Pixel {
	return Pixel{X: f.X.Map(p.X), Y: f.Y.Map(p.Y)}
}

// InvertX turns a horizontal pixel offset into an efficiency query.
func (f Frame) InvertX(px float64) float64 {
	return f.X.Invert(px)
}

// Tick is one labelled axis mark.
type Tick struct {
	Value float64 `json:"value"`
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// Axis labels and title for the reduction chart.
const (
	Title  = "Reduction Function"
	XLabel = "Efficiency (%)"
	YLabel = "Reduction (%)"
)

// XTicks labels efficiency ticks as whole percentages ("500%").
func (f Frame) XTicks(n int) []Tick {
	vals := f.X.Ticks(n)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Pos: f.X.Map(v), Label: trimPercent(v*100) + "%"}
	}
	return out
}

// YTicks labels reduction ticks as rounded percentages ("80%").
func (f Frame) YTicks(n int) []Tick {
	vals := f.Y.Ticks(n)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Pos: f.Y.Map(v), Label: fmt.Sprintf("%.0f%%", v*100)}
	}
	return out
}

func trimPercent(v float64) string {
	// ticks are multiples of nice steps; strip the float noise before printing
	r := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(r, 'f', -1, 64)
}
