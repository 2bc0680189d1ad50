package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotANumber = errors.New("convert: input is not a number")
	ErrOutOfRange = errors.New("convert: input out of range")
)

// Unit is how a raw field value is expressed.
type Unit string

const (
	UnitRatio   Unit = "ratio"   // 0.5 means 50%
	UnitPercent Unit = "percent" // 50 means 50%
)

// ParseUnit accepts "ratio" or "percent" (case-insensitive, "%" too).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ratio", "":
		return UnitRatio, nil
	case "percent", "pct", "%":
		return UnitPercent, nil
	}
	return "", fmt.Errorf("convert: unknown unit %q", s)
}

// ToRatio converts v from the unit into a plain ratio.
func (u Unit) ToRatio(v float64) float64 {
	if u == UnitPercent {
		return v / 100
	}
	return v
}

// parseRaw reads a field value loosely: surrounding space is ignored, a
// trailing "%" is dropped and only the first whitespace-separated token has
// to be numeric. NaN and infinities count as not-a-number.
func parseRaw(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		sp := strings.Fields(s)
		if v, err = strconv.ParseFloat(strings.TrimSuffix(sp[0], "%"), 64); err != nil {
			return 0, ErrNotANumber
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	return v, nil
}
