package jump

import "github.com/prometheus/client_golang/prometheus"

// Selector maps keys to buckets with a configured digest.
// It holds no mutable state and is safe for concurrent use.
type Selector struct {
	name   string
	digest Digest

	selections prometheus.Counter
	buckets    prometheus.Gauge
}

// New returns a selector configured by the options.
func New(opts ...Option) *Selector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Selector{
		name:       o.name,
		digest:     o.digest,
		selections: selectionCounter.WithLabelValues(o.name),
		buckets:    bucketsGauge.WithLabelValues(o.name),
	}
}

// Name returns the selector name.
func (s *Selector) Name() string {
	return s.name
}

// Seed returns the digest of the key.
func (s *Selector) Seed(key []byte) uint64 {
	return s.digest(key)
}

// Bucket returns the bucket in the range [0, buckets) for the key.
// It panics with ErrNoBuckets if buckets is zero.
func (s *Selector) Bucket(key []byte, buckets uint32) uint32 {
	mustHaveBuckets(buckets)

	b := Hash(s.digest(key), buckets)
	s.observe(buckets)

	return b
}

// BucketString is like Bucket for string keys.
func (s *Selector) BucketString(key string, buckets uint32) uint32 {
	return s.Bucket([]byte(key), buckets)
}

// Replicas returns n distinct buckets in the range [0, buckets) for the key.
// The first is the same as Bucket. Each following replica is chosen by
// jumping over the buckets not yet chosen with a re-mixed seed.
//
// It panics with ErrNoBuckets if buckets is zero and with
// ErrTooManyReplicas if n exceeds buckets.
func (s *Selector) Replicas(key []byte, n, buckets uint32) []uint32 {
	mustHaveBuckets(buckets)
	if n > buckets {
		panic(ErrTooManyReplicas)
	}

	seed := s.digest(key)
	s.observe(buckets)

	// Sparse Fisher-Yates: swapped[i] holds the bucket moved into slot i.
	swapped := make(map[uint32]uint32, n)
	at := func(i uint32) uint32 {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	res := make([]uint32, 0, n)
	for i := uint32(0); i < n; i++ {
		size := buckets - i
		slot := Hash(seed, size)

		res = append(res, at(slot))
		swapped[slot] = at(size - 1)

		seed = xorshiftMult64(seed)
	}

	return res
}

func (s *Selector) observe(buckets uint32) {
	s.selections.Inc()
	s.buckets.Set(float64(buckets))
}

// xorshiftMult64 is the 64-bit xorshift multiply generator from
// http://vigna.di.unimi.it/ftp/papers/xorshift.pdf
func xorshiftMult64(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * 2685821657736338717
}
