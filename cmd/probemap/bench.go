package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/homier/probemap"
)

var benchFlags struct {
	n    int
	keys string
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random-key upserts against the built-in map",
		RunE: func(cmd *cobra.Command, args []string) error {
			if benchFlags.n < 1 {
				return fmt.Errorf("--n must be positive, got %d", benchFlags.n)
			}

			switch benchFlags.keys {
			case "uint64":
				benchUint64(cmd)
			case "uuid":
				benchUUID(cmd)
			default:
				return fmt.Errorf("unknown key kind %q (want uint64 or uuid)", benchFlags.keys)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&benchFlags.n, "n", 100000, "number of iterations")
	cmd.Flags().StringVar(&benchFlags.keys, "keys", "uint64", "key kind: uint64 or uuid")

	return cmd
}

// benchUint64 runs the get-mut-or-insert workload with random integer keys
// on both table variants and prints the wall-clock durations.
func benchUint64(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	n := benchFlags.n

	start := time.Now()
	m := probemap.New[uint64, uint64]()
	for range n {
		k := rand.Uint64()
		if p, ok := m.GetMut(k); ok {
			*p++
		} else {
			m.Set(k, k)
		}
	}
	fmt.Fprintf(out, "probemap  keys=uint64 n=%d  %v\n", n, time.Since(start))

	start = time.Now()
	std := make(map[uint64]uint64)
	for range n {
		k := rand.Uint64()
		if _, ok := std[k]; ok {
			std[k]++
		} else {
			std[k] = k
		}
	}
	fmt.Fprintf(out, "std map   keys=uint64 n=%d  %v\n", n, time.Since(start))
}

// benchUUID is the same workload with UUID string keys. Keys are generated
// up front so UUID generation stays out of the timings.
func benchUUID(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	n := benchFlags.n

	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	start := time.Now()
	m := probemap.New[string, int]()
	for i, k := range keys {
		if p, ok := m.GetMut(k); ok {
			*p++
		} else {
			m.Set(k, i)
		}
	}
	fmt.Fprintf(out, "probemap  keys=uuid n=%d  %v\n", n, time.Since(start))

	start = time.Now()
	std := make(map[string]int)
	for i, k := range keys {
		if _, ok := std[k]; ok {
			std[k]++
		} else {
			std[k] = i
		}
	}
	fmt.Fprintf(out, "std map   keys=uuid n=%d  %v\n", n, time.Since(start))
}
