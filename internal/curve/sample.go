package curve

import (
	"fmt"
	"math"
	"sort"
)

// Point is one (efficiency, reduction) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is an ascending, immutable sequence of samples of Forward.
// Build it with Sample; the zero value is an empty curve.
type Curve struct {
	points []Point
}

// Sample generates xMax*stepsPerUnit+1 points spaced 1/stepsPerUnit apart,
// covering [0, xMax] inclusive.
func Sample(stepsPerUnit, xMax int) (Curve, error) {
	if stepsPerUnit <= 0 {
		return Curve{}, fmt.Errorf("curve: steps per unit must be positive, got %d", stepsPerUnit)
	}
	if xMax < 0 {
		return Curve{}, fmt.Errorf("curve: x max must not be negative, got %d", xMax)
	}
	n := xMax*stepsPerUnit + 1
	pts := make([]Point, n)
	for i := range pts {
		// divide rather than accumulate so the last x is exactly xMax
		x := float64(i) / float64(stepsPerUnit)
		pts[i] = Point{X: x, Y: Forward(x)}
	}
	return Curve{points: pts}, nil
}

// MustSample is Sample for init code with constant arguments.
func MustSample(stepsPerUnit, xMax int) Curve {
	c, err := Sample(stepsPerUnit, xMax)
	if err != nil {
		panic(err)
	}
	return c
}

// FromPoints builds a curve from stored samples, checking the ascending-x invariant.
func FromPoints(pts []Point) (Curve, error) {
	for i := 1; i < len(pts); i++ {
		if !(pts[i-1].X < pts[i].X) {
			return Curve{}, fmt.Errorf("curve: samples not strictly ascending at index %d", i)
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Curve{points: cp}, nil
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.points) }

// At returns the i-th sample.
func (c Curve) At(i int) Point { return c.points[i] }

// Points returns a copy of the samples.
func (c Curve) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// YRange reports the smallest and largest reduction on the curve.
func (c Curve) YRange() (lo, hi float64) {
	if len(c.points) == 0 {
		return 0, 0
	}
	lo, hi = c.points[0].Y, c.points[0].Y
	for _, p := range c.points[1:] {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	return lo, hi
}

// Nearest returns the sample whose x is closest to q. Ties go to the
// right-hand sample; queries past either end clamp to that end.
// An empty curve yields the zero Point.
func (c Curve) Nearest(q float64) Point {
	n := len(c.points)
	if n == 0 {
		return Point{}
	}
	i := sort.Search(n, func(i int) bool { return c.points[i].X >= q })
	switch {
	case i == 0:
		return c.points[0]
	case i == n:
		if math.IsNaN(q) {
			return c.points[0]
		}
		return c.points[n-1]
	}
	left, right := c.points[i-1], c.points[i]
	if q-left.X < right.X-q {
		return left
	}
	return right
}
