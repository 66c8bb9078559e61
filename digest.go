package jump

import (
	"encoding/binary"
	"hash"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// Digest reduces a key to the 64-bit seed used by Hash.
// Implementations must be deterministic and should spread
// distinct keys uniformly over the uint64 domain.
type Digest func(key []byte) uint64

// XXHash is the default digest, 64-bit xxHash.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

func xxhashString(key string) uint64 {
	return xxhash.Sum64String(key)
}

// FNV1a is the 64-bit FNV-1a digest.
func FNV1a(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}

// FromHash64 returns a digest that writes the key to a fresh
// hash from newHash and returns its Sum64.
func FromHash64(newHash func() hash.Hash64) Digest {
	return func(key []byte) uint64 {
		h := newHash()
		_, _ = h.Write(key)
		return h.Sum64()
	}
}

// FromHash returns a digest using the last 8 bytes (big endian) of
// the sum of a fresh hash from newHash, e.g. md5.New or sha256.New.
// The hash size must be at least 8 bytes.
func FromHash(newHash func() hash.Hash) Digest {
	return func(key []byte) uint64 {
		h := newHash()
		_, _ = h.Write(key)
		b := h.Sum(nil)
		return binary.BigEndian.Uint64(b[len(b)-8:])
	}
}
