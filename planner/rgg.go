package planner

import "math"

// Random-geometric-graph connection policy. Radius shrinks and the
// neighbor count grows with the accumulated sample count, per the
// asymptotic-optimality analysis the AIT* family inherits from RRT*/PRM*,
// so graph density converges instead of growing unbounded.

// unitBallMeasure returns the Lebesgue measure of the d-dimensional unit
// ball.
func unitBallMeasure(d int) float64 {
	return math.Pow(math.Pi, float64(d)/2.0) / math.Gamma(float64(d)/2.0+1.0)
}

// connectionRadius returns the RGG connection radius for n accumulated
// samples in a space of measure m and dimension d, scaled by the rewire
// factor.
func connectionRadius(n int, d int, m float64, rewire float64) float64 {
	if n < 2 {
		return math.Inf(1)
	}
	nf := float64(n)
	df := float64(d)
	factor := 2.0 * math.Pow(1.0+1.0/df, 1.0/df)
	density := math.Pow(m/unitBallMeasure(d), 1.0/df)

	return rewire * factor * density * math.Pow(math.Log(nf)/nf, 1.0/df)
}

// numNeighbors returns the k-nearest connection count for n accumulated
// samples in dimension d, scaled by the rewire factor: ⌈η·e·(1+1/d)·ln n⌉.
func numNeighbors(n int, d int, rewire float64) int {
	if n < 2 {
		return 1
	}
	k := rewire * math.E * (1.0 + 1.0/float64(d)) * math.Log(float64(n))

	return int(math.Ceil(k))
}
