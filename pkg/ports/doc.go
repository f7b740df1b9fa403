/*
Package ports defines the driven ports (interfaces) of the composita solver.

These interfaces decouple the solver from external implementations, allowing
computed solutions to be cached in memory or in Redis without the engine
knowing about either.

# Key Interfaces

  - ResultStore: Responsible for caching and loading computed Solutions.
  - DistributedLocker: Lets replicas sharing a ResultStore compute each fingerprint once.
*/
package ports
