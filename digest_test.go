package jump

import (
	"crypto/md5"
	"crypto/sha256"
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigests(t *testing.T) {
	testCases := []struct {
		name   string
		digest Digest
		key    string

		exp uint64
	}{
		{name: "xxhash empty", digest: XXHash, key: "", exp: 0xef46db3751d8e999},
		{name: "xxhash abc", digest: XXHash, key: "abc", exp: 0x44bc2cf5ad770999},
		{name: "xxhash long", digest: XXHash,
			key: "Nobody inspects the spammish repetition", exp: 0xfbcea83c8a378bf1},
		{name: "fnv1a empty", digest: FNV1a, key: "", exp: 0xcbf29ce484222325},
		{name: "fnv1a test", digest: FNV1a, key: "test", exp: 0xf9e6e6ef197c2b25},
		{name: "fnv1a hash64", digest: FromHash64(fnv.New64a), key: "test", exp: 0xf9e6e6ef197c2b25},
		{name: "md5 test", digest: FromHash(md5.New), key: "test", exp: 0xcade4e832627b4f6},
		{name: "sha256 empty", digest: FromHash(sha256.New), key: "", exp: 0xa495991b7852b855},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, tc.digest([]byte(tc.key)))
		})
	}
}

func TestXXHashString(t *testing.T) {
	for _, key := range []string{"", "a", "test", "Nobody inspects the spammish repetition"} {
		assert.Equal(t, XXHash([]byte(key)), xxhashString(key))
	}
}

func TestDigestStable(t *testing.T) {
	for _, digest := range []Digest{XXHash, FNV1a, FromHash(md5.New)} {
		for _, key := range []string{"", "foobar", "🦄"} {
			assert.Equal(t, digest([]byte(key)), digest([]byte(key)))
		}
	}
}
