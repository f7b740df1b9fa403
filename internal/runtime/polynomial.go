package runtime

// Evaluate returns A(x) = Σ coeffs[i]·x^(i+1) using Horner's scheme.
func Evaluate(coeffs []float64, x float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc * x
}

// EvaluateSeed returns F(x) = a·x + b·x².
func EvaluateSeed(a, b, x float64) float64 {
	return a*x + b*x*x
}

// Linspace returns n evenly spaced samples over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Sample evaluates coeffs at every x in xs.
func Sample(coeffs []float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Evaluate(coeffs, x)
	}
	return out
}
