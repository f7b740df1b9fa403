/*
Package composita computes the power series A(x) implicitly defined by a quadratic
seed F(x) = a·x + b·x² through the composita recurrence.

For 1 <= k <= n the composita A^Δ(n, k) satisfies

	A^Δ(n, n) = f1^(n/2)
	A^Δ(n, k) = (F^Δ(n, k) − Σ_{k<m<n} A^Δ(n, m)·A^Δ(m, k)) / (f1^(n/2) + f1^(k/2))

and the coefficients of A(x) are A[n] = A^Δ(n, 1). The engine fills a triangular
table by increasing n−k, so every (n, k) is computed exactly once: O(N³) time and
O(N²) memory. All arithmetic is IEEE-754 binary64.

# Usage

	solver := composita.New()
	sol, _, err := solver.Solve(ctx, domain.Params{A: 1, B: 1, F1: 1, MaxDegree: 100})
	if err != nil {
		// errors.Is(err, domain.ErrDomain), domain.ErrNumericOverflow, domain.ErrInvalidConfiguration
	}
	fmt.Println(sol.Coefficients)

# Errors

Parameters are validated first (domain.ErrInvalidConfiguration). A recurrence that is
undefined over the reals, such as a negative f1 raised to a half-integer power or a zero
denominator, fails with a *domain.DomainError naming the offending (n, k). A value that
leaves the float64 range fails with a *domain.OverflowError instead.
*/
package composita
