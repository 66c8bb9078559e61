// Command jumphash maps keys to buckets with jump consistent hashing.
//
//	jumphash bucket --buckets 10 alice bob
//	jumphash bucket --buckets 10 --seed 1 0xdeadbeef
//	jumphash replicas --buckets 10 --replicas 3 alice
//	jumphash plan --buckets 10 --to 11 < keys.txt
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"
	"github.com/urfave/cli/v2"

	"github.com/luno/jump"
)

const (
	flagBuckets  = "buckets"
	flagDigest   = "digest"
	flagSeed     = "seed"
	flagReplicas = "replicas"
	flagTo       = "to"
)

var digests = map[string]jump.Digest{
	"xxhash": jump.XXHash,
	"fnv1a":  jump.FNV1a,
}

var (
	globalFlags = []cli.Flag{
		&cli.IntFlag{
			Name:     flagBuckets,
			Aliases:  []string{"n"},
			Usage:    "Number of buckets to map keys to. Must be at least 1.",
			Required: true,
		},
		&cli.StringFlag{
			Name:  flagDigest,
			Value: "xxhash",
			Usage: "Digest used to reduce keys to 64-bit seeds: xxhash or fnv1a.",
		},
	}

	bucketFlags = []cli.Flag{
		&cli.BoolFlag{
			Name:  flagSeed,
			Usage: "Treat keys as 64-bit seeds (decimal or 0x hex) and skip the digest.",
		},
	}

	replicaFlags = []cli.Flag{
		&cli.IntFlag{
			Name:  flagReplicas,
			Value: 1,
			Usage: "Number of distinct buckets to return per key.",
		},
	}

	planFlags = []cli.Flag{
		&cli.IntFlag{
			Name:     flagTo,
			Usage:    "Bucket count after growth. Must not be less than --buckets.",
			Required: true,
		},
	}
)

func main() {
	ctx := context.Background()

	app := newApp(os.Stdin, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error(ctx, errors.Wrap(err, "jumphash"))
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "jumphash",
		Usage:  "Jump consistent hash command-line tool",
		Reader: in,
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:      "bucket",
				Usage:     "Print the bucket of each key",
				ArgsUsage: "[KEY...]",
				Flags:     mergeFlags(globalFlags, bucketFlags),
				Action:    runBucket,
			},
			{
				Name:      "replicas",
				Usage:     "Print distinct replica buckets of each key",
				ArgsUsage: "[KEY...]",
				Flags:     mergeFlags(globalFlags, replicaFlags),
				Action:    runReplicas,
			},
			{
				Name:      "plan",
				Usage:     "Print the keys that move when the bucket count grows",
				ArgsUsage: "[KEY...]",
				Flags:     mergeFlags(globalFlags, planFlags),
				Action:    runPlan,
			},
		},
	}
}

func runBucket(c *cli.Context) error {
	out := c.App.Writer

	buckets, err := jump.ValidateBuckets(c.Int(flagBuckets))
	if err != nil {
		return err
	}

	sel, err := newSelector(c)
	if err != nil {
		return err
	}

	keys, err := readKeys(c)
	if err != nil {
		return err
	}

	for _, key := range keys {
		var b uint32
		if c.Bool(flagSeed) {
			seed, err := parseSeed(key)
			if err != nil {
				return err
			}
			b = jump.Hash(seed, buckets)
		} else {
			b = sel.BucketString(key, buckets)
		}

		if _, err := fmt.Fprintf(out, "%s\t%d\n", key, b); err != nil {
			return err
		}
	}

	return nil
}

func runReplicas(c *cli.Context) error {
	out := c.App.Writer

	buckets, err := jump.ValidateBuckets(c.Int(flagBuckets))
	if err != nil {
		return err
	}

	n := c.Int(flagReplicas)
	if n < 0 || n > int(buckets) {
		return errors.Wrap(jump.ErrTooManyReplicas, "replicas", j.MKV{"replicas": n, "buckets": buckets})
	}

	sel, err := newSelector(c)
	if err != nil {
		return err
	}

	keys, err := readKeys(c)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if _, err := fmt.Fprint(out, key); err != nil {
			return err
		}
		for _, b := range sel.Replicas([]byte(key), uint32(n), buckets) {
			if _, err := fmt.Fprintf(out, "\t%d", b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	return nil
}

func runPlan(c *cli.Context) error {
	out := c.App.Writer

	from, err := jump.ValidateBuckets(c.Int(flagBuckets))
	if err != nil {
		return err
	}

	to, err := jump.ValidateBuckets(c.Int(flagTo))
	if err != nil {
		return err
	}

	sel, err := newSelector(c)
	if err != nil {
		return err
	}

	keys, err := readKeys(c)
	if err != nil {
		return err
	}

	moves, err := sel.Moves(keys, from, to)
	if err != nil {
		return err
	}

	for _, m := range moves {
		if _, err := fmt.Fprintf(out, "%s\t%d\t%d\n", m.Key, m.From, m.To); err != nil {
			return err
		}
	}

	var moved float64
	if len(keys) > 0 {
		moved = float64(len(moves)) / float64(len(keys))
	}

	_, err = fmt.Fprintf(out, "# moved %d of %d keys (%.4f, expected %.4f)\n",
		len(moves), len(keys), moved, jump.MovedFraction(from, to))
	return err
}

func newSelector(c *cli.Context) (*jump.Selector, error) {
	name := c.String(flagDigest)

	digest, ok := digests[name]
	if !ok {
		return nil, errors.New("unknown digest", j.KV("digest", name))
	}

	return jump.New(jump.WithName("jumphash"), jump.WithDigest(digest)), nil
}

// readKeys returns the command arguments, or the lines of stdin if there are none.
func readKeys(c *cli.Context) ([]string, error) {
	if c.NArg() > 0 {
		return c.Args().Slice(), nil
	}

	var keys []string
	sc := bufio.NewScanner(c.App.Reader)
	for sc.Scan() {
		keys = append(keys, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read keys")
	}

	return keys, nil
}

func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse seed", j.KV("seed", s))
	}

	return seed, nil
}

func mergeFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
