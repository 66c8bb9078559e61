package jump

import (
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

// Move describes a key that changes bucket when the bucket count grows.
type Move struct {
	Key  string
	From uint32
	To   uint32
}

// Moves returns the keys that change bucket when the bucket count grows
// from one count to another, in the order of keys. Every returned move
// has To in the range [from, to); keys never move between buckets that
// existed before.
//
// Shrinking is not supported and returns ErrShrink.
func (s *Selector) Moves(keys []string, from, to uint32) ([]Move, error) {
	if from < 1 {
		return nil, errors.Wrap(ErrNoBuckets, "moves", j.KV("from", from))
	} else if to < from {
		return nil, errors.Wrap(ErrShrink, "moves", j.MKV{"from": from, "to": to})
	}

	var res []Move
	for _, key := range keys {
		seed := s.digest([]byte(key))

		before := Hash(seed, from)
		after := Hash(seed, to)
		if before == after {
			continue
		}

		res = append(res, Move{Key: key, From: before, To: after})
	}

	return res, nil
}

// MovedFraction returns the expected fraction of keys that move
// when the bucket count grows from one count to another, 1 - from/to.
func MovedFraction(from, to uint32) float64 {
	if to <= from || from == 0 {
		return 0
	}

	return 1 - float64(from)/float64(to)
}
