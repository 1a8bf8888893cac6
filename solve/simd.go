/*
NAME
  simd.go

AUTHORS
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package solve

import "math"

// equationLanes evaluates f(h), f'(h) in 8 lanes with a scalar tail loop
// (spec §4.7/§9). Go has no portable intrinsic SIMD without assembly, so it
// expresses the same instruction-level-parallel shape (8 independent
// accumulator lanes over one point's history) that a real 8-wide float64
// vector unit would execute. The single-lane equation in solve.go performs
// the same per-term arithmetic and is the scalar reference the tests compare
// against; the two add the terms in a different order, so they agree to
// rounding error rather than bit-for-bit.
func equationLanes(p point, h, dt, k, a, tw float64) (f, df float64) {
	t0 := 0.0
	for i := 0; i < firstFewToCalT0; i++ {
		t0 += p.temperatures[i]
	}
	t0 /= firstFewToCalT0

	n := p.gmaxFrameIndex
	var sumLanes, dSumLanes [8]float64

	full := n / 8 * 8
	for base := 0; base < full; base += 8 {
		for lane := 0; lane < 8; lane++ {
			i := base + lane
			deltaTemp := p.temperatures[i+1] - p.temperatures[i]
			at := a * dt * float64(n-i-1)
			sqrtAt := math.Sqrt(at)
			expErfc := math.Exp(h*h/(k*k)*at) * math.Erfc(h/k*sqrtAt)

			sumLanes[lane] += (1 - expErfc) * deltaTemp
			dSumLanes[lane] += -deltaTemp * (2*sqrtAt/(k*math.Sqrt(math.Pi)) - (2*at*h*expErfc)/(k*k))
		}
	}

	var sum, dSum float64
	for lane := 0; lane < 8; lane++ {
		sum += sumLanes[lane]
		dSum += dSumLanes[lane]
	}

	// Scalar tail for the remainder that doesn't fill a full 8-lane group.
	for i := full; i < n; i++ {
		deltaTemp := p.temperatures[i+1] - p.temperatures[i]
		at := a * dt * float64(n-i-1)
		sqrtAt := math.Sqrt(at)
		expErfc := math.Exp(h*h/(k*k)*at) * math.Erfc(h/k*sqrtAt)

		sum += (1 - expErfc) * deltaTemp
		dSum += -deltaTemp * (2*sqrtAt/(k*math.Sqrt(math.Pi)) - (2*at*h*expErfc)/(k*k))
	}

	return tw - t0 - sum, dSum
}
