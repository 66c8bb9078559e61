package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/luno/jettison/jtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luno/jump"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"jumphash"}, args...))

	return out.String(), err
}

func TestBucket(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string

		exp string
	}{
		{name: "seeds",
			args: []string{"bucket", "--buckets", "10", "--seed", "1", "0xdeadbeef", "42"},
			exp:  "1\t6\n0xdeadbeef\t5\n42\t2\n",
		},
		{name: "default digest",
			args: []string{"bucket", "-n", "10", "alice", "bob", "carol"},
			exp:  "alice\t1\nbob\t2\ncarol\t1\n",
		},
		{name: "fnv1a digest",
			args: []string{"bucket", "--buckets", "10", "--digest", "fnv1a", "alice", "bob", "carol"},
			exp:  "alice\t4\nbob\t2\ncarol\t7\n",
		},
		{name: "keys from stdin",
			stdin: "alice\nbob\n",
			args:  []string{"bucket", "--buckets", "10"},
			exp:   "alice\t1\nbob\t2\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			jtest.RequireNil(t, err)
			assert.Equal(t, tc.exp, out)
		})
	}
}

func TestReplicas(t *testing.T) {
	out, err := run(t, "", "replicas", "--buckets", "10", "--replicas", "3", "alice", "bob")
	jtest.RequireNil(t, err)
	assert.Equal(t, "alice\t1\t6\t8\nbob\t2\t1\t0\n", out)
}

func TestPlan(t *testing.T) {
	out, err := run(t, "", "plan", "--buckets", "10", "--to", "11", "k27", "k34", "k0")
	jtest.RequireNil(t, err)
	assert.Equal(t, "k27\t1\t10\nk34\t9\t10\n# moved 2 of 3 keys (0.6667, expected 0.0909)\n", out)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "bucket", "--buckets", "0", "alice")
	jtest.Require(t, jump.ErrNoBuckets, err)

	_, err = run(t, "", "bucket", "--buckets", "-3", "alice")
	jtest.Require(t, jump.ErrNoBuckets, err)

	_, err = run(t, "", "replicas", "--buckets", "2", "--replicas", "3", "alice")
	jtest.Require(t, jump.ErrTooManyReplicas, err)

	_, err = run(t, "", "plan", "--buckets", "10", "--to", "9", "alice")
	jtest.Require(t, jump.ErrShrink, err)

	_, err = run(t, "", "bucket", "--buckets", "10", "--seed", "notanumber")
	require.Error(t, err)

	_, err = run(t, "", "bucket", "--buckets", "10", "--digest", "md4", "alice")
	require.Error(t, err)

	_, err = run(t, "", "bucket", "alice")
	require.Error(t, err)
}
