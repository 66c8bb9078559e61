package jump

import (
	"fmt"
	"strconv"
	"strings"
)

const modprefix = "modrole:"

// ModRole returns a role that will be mapped to a rank by modulo operation
// instead of consistent hashing.
//
// This is useful if even distribution of roles is more important than
// stability when the number of ranks changes.
func ModRole(role int) string {
	return fmt.Sprintf("%s%d", modprefix, role)
}

// RoleRank returns the rank in the range [0, size) that owns the role.
// It panics with ErrNoBuckets if size is zero.
func (s *Selector) RoleRank(role string, size uint32) uint32 {
	mustHaveBuckets(size)

	if i, ok := maybeModRole(role); ok {
		return uint32(i % uint64(size))
	}

	return s.BucketString(role, size)
}

// HasRole returns true if the member with rank in a cluster of size owns the role.
// It returns false if rank is not a valid rank for the size.
func (s *Selector) HasRole(rank, size uint32, role string) bool {
	if rank >= size {
		return false
	}

	return s.RoleRank(role, size) == rank
}

// maybeModRole returns true and the integer to use
// if this role should be mapped with modulo operation instead of
// consistent hashing.
func maybeModRole(role string) (uint64, bool) {
	if !strings.HasPrefix(role, modprefix) {
		return 0, false
	}

	i, err := strconv.ParseUint(strings.TrimPrefix(role, modprefix), 10, 64)
	if err != nil {
		// NoReturnErr: Assume not a mod role
		return 0, false
	}

	return i, true
}
