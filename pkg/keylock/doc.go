/*
Package keylock serializes work per key.

Callers that ask for the same key run one at a time, so the first computes and
stores a result while the rest wait and then read it. An optional
ports.DistributedLocker extends the guarantee across replicas that share a
cache.
*/
package keylock
