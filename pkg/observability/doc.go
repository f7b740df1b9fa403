/*
Package observability provides tools for monitoring the composita solver.

It turns solver lifecycle hooks into Prometheus metrics and structured log lines,
so adapters (HTTP, MCP, CLI) can expose the same view of solve counts, latencies,
cache hits and memo table sizes.
*/
package observability
