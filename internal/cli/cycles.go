package cli

import (
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mquint/hexloop/internal/lattice"
)

// CyclesOptions holds flags for the cycles command.
type CyclesOptions struct {
	*RootOptions
	Size    int
	Pattern string
	Steps   int
	Seed    uint64
	Diag    bool
}

// NewCyclesCommand creates the cycles command: an offline decomposition run
// without the HTTP surface.
func NewCyclesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CyclesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Seed a lattice, optionally scramble it, and print its cycle census",
		Long: `Seed an in-memory lattice, run up to the requested number of edge-swaps, and
print the cycle decomposition. With --seed the run is reproducible.

Example:
  hexloop cycles --size 20 --pattern diagonal_1
  hexloop cycles --size 50 --steps 2000 --seed 7 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 10, "lattice edge length (clamped to [5, 200])")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "vertical", "seed pattern (unknown names fall back to vertical)")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "edge-swaps to perform before decomposing")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "deterministic RNG seed (0 = OS entropy)")
	cmd.Flags().BoolVar(&opts.Diag, "diag", false, "report non-closed fragments separately")

	return cmd
}

func runCycles(opts *CyclesOptions, cmd *cobra.Command) error {
	lat := lattice.New(opts.Size, lattice.ParsePattern(opts.Pattern))

	var rng lattice.Rand
	if opts.Seed != 0 {
		rng = lattice.NewSeededRand(opts.Seed)
	} else {
		rng = lattice.NewEntropyRand()
	}
	swaps := lat.Scramble(rng, opts.Steps)

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), lat.Snapshot())
	}

	cycles, fragments := lat.CyclesDiag()
	if !opts.Diag {
		cycles = append(cycles, fragments...)
		fragments = nil
	}

	// Length census, ascending.
	lengths := make([]int, len(cycles))
	total := 0
	for i, cyc := range cycles {
		lengths[i] = len(cyc)
		total += len(cyc)
	}
	sort.Ints(lengths)

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()
	p.Fprintf(out, "size %d, pattern %s, %d swaps\n",
		lat.Size(), lattice.ParsePattern(opts.Pattern), swaps)
	p.Fprintf(out, "%d cycles covering %d cells\n", len(cycles), total)
	for _, group := range censusGroups(lengths) {
		p.Fprintf(out, "  %d × length %d\n", group.count, group.length)
	}
	for _, frag := range fragments {
		p.Fprintf(out, "  fragment of length %d starting at (%d,%d)\n",
			len(frag), frag[0].Col, frag[0].Row)
	}
	return nil
}

type censusGroup struct {
	length, count int
}

// censusGroups collapses a sorted length list into (length, count) pairs.
func censusGroups(sorted []int) []censusGroup {
	var groups []censusGroup
	for _, n := range sorted {
		if len(groups) > 0 && groups[len(groups)-1].length == n {
			groups[len(groups)-1].count++
			continue
		}
		groups = append(groups, censusGroup{length: n, count: 1})
	}
	return groups
}
