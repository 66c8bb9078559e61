package jump

import (
	"math"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

var (
	// ErrNoBuckets is the panic value of all hash functions when called
	// with zero buckets. ValidateBuckets returns it for counts below one.
	ErrNoBuckets = errors.New("bucket count must be at least one", j.C("ERR_3f9d2c1a7b6e0451"))

	// ErrTooManyBuckets is returned by ValidateBuckets for counts that
	// do not fit in a uint32.
	ErrTooManyBuckets = errors.New("bucket count exceeds uint32", j.C("ERR_b71e04c98a2d5f36"))

	// ErrTooManyReplicas is the panic value of Selector.Replicas when
	// more replicas than buckets are requested.
	ErrTooManyReplicas = errors.New("replica count exceeds bucket count", j.C("ERR_5c2a9e7d1f0b8364"))

	// ErrShrink is returned by Selector.Moves when the target bucket
	// count is less than the current count.
	ErrShrink = errors.New("bucket count may only grow", j.C("ERR_e08d4b6f37a1c925"))
)

// ValidateBuckets converts a bucket count held in an int, typically
// len(nodes), into the uint32 expected by the hash functions.
// Use it to reject bad configuration before routing any key.
func ValidateBuckets(n int) (uint32, error) {
	if n < 1 {
		return 0, errors.Wrap(ErrNoBuckets, "validate buckets", j.KV("buckets", n))
	}
	if uint64(n) > math.MaxUint32 {
		return 0, errors.Wrap(ErrTooManyBuckets, "validate buckets", j.KV("buckets", n))
	}

	return uint32(n), nil
}
