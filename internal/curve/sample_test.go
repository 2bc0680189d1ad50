package curve

import (
	"math"
	"testing"
)

func TestSampleReferenceCurve(t *testing.T) {
	c, err := Sample(10, 20)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if c.Len() != 201 {
		t.Fatalf("len = %d, want 201", c.Len())
	}
	if first := c.At(0); first != (Point{0, 0}) {
		t.Errorf("first = %+v, want (0,0)", first)
	}
	if last := c.At(c.Len() - 1); last.X != 20 {
		t.Errorf("last x = %v, want 20", last.X)
	}
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		if p.Y != Forward(p.X) {
			t.Fatalf("sample %d: y = %v, want Forward(%v) = %v", i, p.Y, p.X, Forward(p.X))
		}
		if i > 0 && !(c.At(i-1).X < p.X) {
			t.Fatalf("sample %d not ascending", i)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := MustSample(10, 20).Points()
	b := MustSample(10, 20).Points()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSampleRejectsBadArgs(t *testing.T) {
	if _, err := Sample(0, 20); err == nil {
		t.Error("Sample(0, 20): want error")
	}
	if _, err := Sample(10, -1); err == nil {
		t.Error("Sample(10, -1): want error")
	}
	c, err := Sample(4, 0)
	if err != nil || c.Len() != 1 {
		t.Errorf("Sample(4, 0) = len %d, %v; want single point", c.Len(), err)
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	c := MustSample(10, 1)
	pts := c.Points()
	pts[0].X = 99
	if c.At(0).X != 0 {
		t.Fatal("mutating Points() leaked into the curve")
	}
}

func TestFromPoints(t *testing.T) {
	if _, err := FromPoints([]Point{{0, 0}, {1, 0.5}, {1, 0.5}}); err == nil {
		t.Error("duplicate x: want error")
	}
	c, err := FromPoints(MustSample(2, 3).Points())
	if err != nil {
		t.Fatalf("FromPoints: %v", err)
	}
	if c.Len() != 7 {
		t.Errorf("len = %d, want 7", c.Len())
	}
}

func TestYRange(t *testing.T) {
	lo, hi := MustSample(10, 20).YRange()
	if lo != 0 || hi != Forward(20) {
		t.Errorf("YRange = (%v, %v), want (0, %v)", lo, hi, Forward(20))
	}
	if lo, hi := (Curve{}).YRange(); lo != 0 || hi != 0 {
		t.Errorf("empty YRange = (%v, %v)", lo, hi)
	}
}

func TestNearest(t *testing.T) {
	c := MustSample(10, 20)
	tests := []struct {
		name  string
		q     float64
		wantX float64
	}{
		{"closer to left", 5.03, 5.0},
		{"closer to right", 5.08, 5.1},
		{"exact sample", 7.0, 7.0},
		{"below domain", -1, 0},
		{"above domain", 25, 20},
		{"tie goes right", 0.05, 0.1},
		{"first sample", 0, 0},
		{"last sample", 20, 20},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 20},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Nearest(tt.q)
			if math.Abs(got.X-tt.wantX) > 1e-12 {
				t.Errorf("Nearest(%v) = %+v, want x=%v", tt.q, got, tt.wantX)
			}
			if got.Y != Forward(got.X) {
				t.Errorf("Nearest(%v) returned y=%v not on the curve", tt.q, got.Y)
			}
		})
	}
}

func TestNearestMatchesLinearScan(t *testing.T) {
	c := MustSample(10, 20)
	pts := c.Points()
	for i := -50; i <= 2100; i++ {
		q := float64(i)*0.0137 - 0.3
		best := pts[0]
		for _, p := range pts[1:] {
			if math.Abs(p.X-q) <= math.Abs(best.X-q) {
				best = p
			}
		}
		if got := c.Nearest(q); got != best {
			t.Fatalf("Nearest(%v) = %+v, linear scan = %+v", q, got, best)
		}
	}
}

func TestNearestEmpty(t *testing.T) {
	if got := (Curve{}).Nearest(3); got != (Point{}) {
		t.Errorf("empty Nearest = %+v", got)
	}
}
