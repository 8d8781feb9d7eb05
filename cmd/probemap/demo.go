package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/homier/probemap"
)

var demoDump bool

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk a small table through fill-up, growth and lookup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	cmd.Flags().BoolVar(&demoDump, "dump", false, "print the slot dump before and after growth")

	return cmd
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	m := probemap.NewWithCapacity[string, string](11)
	for i := range 11 {
		m.Set(strconv.Itoa(i), strconv.Itoa(100000+i))
	}

	if demoDump {
		m.DebugDump(out)
	}

	// The table is exactly full; one more distinct key forces growth.
	m.Set("69", "69")

	if demoDump {
		m.DebugDump(out)
	}

	for i := range 11 {
		key := strconv.Itoa(i)
		want := strconv.Itoa(100000 + i)

		v, ok := m.Get(key)
		if !ok || v != want {
			return fmt.Errorf("lookup %q: got %q, want %q", key, v, want)
		}
	}

	v, ok := m.Get("69")
	if !ok || v != "69" {
		return fmt.Errorf("lookup \"69\": got %q, want \"69\"", v)
	}

	stats := m.Stats()
	fmt.Fprintf(out, "ok: %d keys, capacity %d, load factor %.2f\n",
		stats.Size, stats.Capacity, stats.LoadFactor)

	return nil
}
