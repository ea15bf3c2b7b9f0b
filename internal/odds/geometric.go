package odds

import "math"

// ChanceWithin is the chance of at least one success in runs independent attempts
// that each succeed with probability p.
func ChanceWithin(p float64, runs int) float64 {
	if runs <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return -math.Expm1(float64(runs) * math.Log1p(-p))
}

// RunsForConfidence returns the fewest runs whose cumulative success chance reaches
// confidence. ok is false when p is zero or confidence is outside (0, 1).
func RunsForConfidence(p, confidence float64) (runs int, ok bool) {
	if p <= 0 || confidence <= 0 || confidence >= 1 {
		return 0, false
	}
	if p >= 1 {
		return 1, true
	}
	k := math.Ceil(math.Log1p(-confidence) / math.Log1p(-p))
	if k < 1 {
		k = 1
	}
	if k > math.MaxInt32 {
		return 0, false
	}
	runs = int(k)
	// Log rounding can land one off the threshold either way.
	for runs > 1 && ChanceWithin(p, runs-1) >= confidence {
		runs--
	}
	for ChanceWithin(p, runs) < confidence {
		runs++
	}
	return runs, true
}
