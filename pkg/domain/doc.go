/*
Package domain contains the core domain models of the composita calculator.

It defines the parameters of a run, the solution artifact produced by the engine,
the lifecycle hooks fired around a solve, and the error taxonomy shared by every
adapter. This package is kept pure and free of I/O, so the engine, the stores and
the transports can all depend on it.

# Key Entities

  - Params: The seed quadratic F(x) = a·x + b·x², the normalization constant f1 = F(1)
    and the number of coefficients to produce.
  - Solution: The ascending coefficient sequence A[1..N] plus bookkeeping (memo size, timing).
  - SolveHooks: Callbacks used by observability (metrics, logs) without coupling the engine to them.
  - DomainError / ConfigError / OverflowError: The three failure classes a caller must tell apart.
*/
package domain
