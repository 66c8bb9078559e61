package jump

import "hash"

const defaultName = "default"

type Option func(*options)

// WithName provides an option to override the default selector
// name used to label its metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDigest returns an option to override the default
// 64-bit xxHash digest used to convert keys into seeds.
func WithDigest(digest Digest) Option {
	return func(o *options) {
		o.digest = digest
	}
}

// WithHash returns an option to use a hash.Hash64 constructor,
// e.g. fnv.New64a, as the digest.
func WithHash(newHash func() hash.Hash64) Option {
	return func(o *options) {
		o.digest = FromHash64(newHash)
	}
}

type options struct {
	name   string
	digest Digest
}

func defaultOptions() *options {
	return &options{
		name:   defaultName,
		digest: XXHash,
	}
}
