package jump

// lcgMultiplier is the multiplier of the 64-bit linear congruential
// generator embedded in jump hash.
// See https://nuclear.llnl.gov/CNP/rng/rngman/node4.html
const lcgMultiplier = 2862933555777941757

// Hash returns the bucket in the range [0, buckets) for the seed.
// It panics with ErrNoBuckets if buckets is zero.
func Hash(seed uint64, buckets uint32) uint32 {
	mustHaveBuckets(buckets)

	var (
		b int64 = -1
		j int64
	)

	for j < int64(buckets) {
		b = j
		seed = seed*lcgMultiplier + 1

		// Multiply before dividing, in double precision, to match the
		// reference outputs bit for bit.
		j = int64(float64(b+1) * (1 << 31) / float64((seed>>33)+1))
	}

	return uint32(b)
}

// HashBytes returns the bucket in the range [0, buckets) for the key
// digested with XXHash. It panics with ErrNoBuckets if buckets is zero.
func HashBytes(key []byte, buckets uint32) uint32 {
	mustHaveBuckets(buckets)
	return Hash(XXHash(key), buckets)
}

// HashString is like HashBytes for string keys.
func HashString(key string, buckets uint32) uint32 {
	mustHaveBuckets(buckets)
	return Hash(xxhashString(key), buckets)
}

// mustHaveBuckets panics if buckets is zero.
func mustHaveBuckets(buckets uint32) {
	if buckets < 1 {
		panic(ErrNoBuckets)
	}
}
