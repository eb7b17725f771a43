package match

import (
	"math"
	"math/rand"
)

// normalApproxThreshold is the lambda above which inverse transform sampling
// gets slow and a normal approximation takes over.
const normalApproxThreshold = 12

// samplePoisson draws one sample from Poisson(lambda) using the supplied
// generator.
func samplePoisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	if lambda < normalApproxThreshold {
		l := math.Exp(-lambda)
		k := 0
		p := 1.0
		for p > l {
			k++
			p *= rng.Float64()
		}
		return k - 1
	}

	return int(math.Max(0, rng.NormFloat64()*math.Sqrt(lambda)+lambda+0.5))
}
