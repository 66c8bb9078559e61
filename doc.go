// Package jump provides Google's Jump Consistent Hash.
//
// Jump maps a key to one of n ordered buckets (shards, nodes, replicas) without
// a routing table. When n grows by one, only about 1/(n+1) of the keys move, and
// every key that moves lands on the new bucket n. Keys never shuffle between
// existing buckets.
//
// Hash is the canonical entry point: it maps a 64-bit seed to a bucket and does
// not depend on any digest function, so it is stable across languages and builds.
// HashBytes and HashString first reduce the key to a seed with a 64-bit
// non-cryptographic digest (xxhash by default). The digest is swappable via
// a Selector configured with WithDigest or WithHash.
//
// A bucket count of zero is a programming error. All entry points panic with
// ErrNoBuckets in that case; use ValidateBuckets to reject bad counts upstream.
//
// From the paper "A Fast, Minimal Memory, Consistent Hash Algorithm" by
// John Lamping and Eric Veach (2014), https://arxiv.org/abs/1406.2294.
package jump
