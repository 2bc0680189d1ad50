package curve

import (
	"errors"
	"math"
)

// ErrDomain is returned by Inverse when y sits on or past the asymptote.
var ErrDomain = errors.New("curve: reduction must be below 1")

// Forward maps an efficiency ratio to its reduction ratio.
//
//	y = 1 - 100 / (100x + 100)
//
// Defined for x > -1. Forward(0) == 0 and the result approaches 1 as x grows.
func Forward(x float64) float64 {
	return 1 - 100/(x*100+100)
}

// Inverse solves Forward(x) == y for x. y must be strictly below 1.
func Inverse(y float64) (float64, error) {
	if math.IsNaN(y) || y >= 1 {
		return 0, ErrDomain
	}
	return (100/(1-y) - 100) / 100, nil
}
