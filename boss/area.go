package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

// RandomPointInCircle returns a point uniformly distributed inside the circle.
func RandomPointInCircle(r Rand, center cp.Vector, radius float64) cp.Vector {
	if radius <= 0 {
		return center
	}
	dist := radius * math.Sqrt(r.Float64())
	angle := 2 * math.Pi * r.Float64()
	return center.Add(cp.ForAngle(angle).Mult(dist))
}

// RectArea places summons uniformly inside an axis-aligned box.
type RectArea struct {
	BB cp.BB
}

func (a RectArea) RandomPoint(r Rand) cp.Vector {
	return cp.Vector{
		X: a.BB.L + r.Float64()*(a.BB.R-a.BB.L),
		Y: a.BB.B + r.Float64()*(a.BB.T-a.BB.B),
	}
}

// CircleArea places summons uniformly inside a fixed circle.
type CircleArea struct {
	Center cp.Vector
	Radius float64
}

func (a CircleArea) RandomPoint(r Rand) cp.Vector {
	return RandomPointInCircle(r, a.Center, a.Radius)
}
