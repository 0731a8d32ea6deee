// Package cmd wires the tripolys CSP core and its external collaborators
// (persist, enumerate, dot) behind a single cobra command, following a
// cmd/<tool>/cmd split.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tripolys/tripolys/enumerate"
	"github.com/tripolys/tripolys/internal/xlog"
	"github.com/tripolys/tripolys/persist"
	"github.com/tripolys/tripolys/poly"
	"github.com/tripolys/tripolys/propagate"
	"github.com/tripolys/tripolys/triad"
)

type flags struct {
	data         string
	triadArg     string
	nodesArg     string
	polymorphism string
	conservative bool
	idempotent   bool
	consistency  string
	verbosity    int
	logFormat    string
	workers      int
}

// NewRootCmd builds the single tripolys command and its flags.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:          "tripolys",
		Short:        "decide existence of triad polymorphisms by CSP search",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.data, "data", ".", "directory for persisted triad and result files")
	cmd.Flags().StringVar(&f.triadArg, "triad", "", "operate on one explicit triad: arm1,arm2,arm3")
	cmd.Flags().StringVar(&f.nodesArg, "nodes", "", "enumerate core triads with <n> or <a-b> non-root vertices")
	cmd.Flags().StringVar(&f.polymorphism, "polymorphism", "", "polymorphism name from the catalogue")
	cmd.Flags().BoolVar(&f.conservative, "conservative", false, "restrict to the conservative variant")
	cmd.Flags().BoolVar(&f.idempotent, "idempotent", false, "restrict to the idempotent variant")
	cmd.Flags().StringVar(&f.consistency, "consistency", "ac3", "propagator: ac3 or sac1")
	cmd.Flags().CountVarP(&f.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "json", "log output format: json or console")
	cmd.Flags().IntVar(&f.workers, "workers", runtime.NumCPU(), "worker pool size for --nodes batch testing")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	logger := xlog.New(os.Stderr, f.logFormat, xlog.LevelFromVerbosity(f.verbosity))

	consistency, err := propagate.ParseConsistency(f.consistency)
	if err != nil {
		cmd.PrintErrln(err)
		return err
	}

	var spec *poly.Spec
	if f.polymorphism != "" {
		spec, err = poly.ParseSpec(f.polymorphism, f.conservative, f.idempotent)
		if err != nil {
			cmd.PrintErrln(err)
			return err
		}
	}

	switch {
	case f.triadArg != "":
		return runSingleTriad(cmd, f, spec, consistency, logger)
	case f.nodesArg != "":
		return runNodesRange(cmd, f, spec, consistency, logger)
	default:
		err := fmt.Errorf("tripolys: one of --triad or --nodes is required")
		cmd.PrintErrln(err)
		return err
	}
}

// runSingleTriad answers one explicit triad. With no --polymorphism it
// reports coreness; with one, it reports YES/NO. A definitive NO is not
// an error and exits 0.
func runSingleTriad(cmd *cobra.Command, f *flags, spec *poly.Spec, consistency propagate.Consistency, logger zerolog.Logger) error {
	parts := strings.Split(f.triadArg, ",")
	if len(parts) != 3 {
		err := fmt.Errorf("tripolys: --triad must be arm1,arm2,arm3")
		cmd.PrintErrln(err)
		return err
	}
	t, err := triad.Parse(parts[0], parts[1], parts[2])
	if err != nil {
		cmd.PrintErrln(err)
		return err
	}

	if spec == nil {
		cmd.Println(fmt.Sprintf("core: %v", triad.IsCore(t)))
		return nil
	}

	logger.Debug().Str("triad", f.triadArg).Str("spec", f.polymorphism).Msg("compiling indicator")
	result, err := poly.FindPolymorphism(t, spec, consistency)
	if err != nil {
		cmd.PrintErrln(err)
		return err
	}

	if result.Exists {
		cmd.Println("YES")
	} else {
		cmd.Println("NO")
	}

	return nil
}

// runNodesRange enumerates (or loads from --data) core triads for every n
// in the requested range and, if --polymorphism was given, tests each and
// appends results.
func runNodesRange(cmd *cobra.Command, f *flags, spec *poly.Spec, consistency propagate.Consistency, logger zerolog.Logger) error {
	a, b, err := parseNodesArg(f.nodesArg)
	if err != nil {
		cmd.PrintErrln(err)
		return err
	}

	for n := a; n <= b; n++ {
		triads, err := persist.ReadCoreTriads(f.data, n)
		if err != nil {
			cmd.PrintErrln(err)
			return err
		}
		if len(triads) == 0 {
			triads = enumerate.CoreTriads(n)
			if err := persist.WriteCoreTriads(f.data, n, triads); err != nil {
				cmd.PrintErrln(err)
				return err
			}
		}
		logger.Info().Int("n", n).Int("count", len(triads)).Msg("core triads ready")

		if spec == nil {
			cmd.Println(fmt.Sprintf("n=%d core triads=%d", n, len(triads)))
			continue
		}

		outcomes := enumerate.TestAll(context.Background(), triads, spec, consistency, f.workers)
		yes := 0
		for _, o := range outcomes {
			if o.Err != nil {
				logger.Debug().Err(o.Err).Msg("triad test failed")
				continue
			}
			if err := persist.AppendPolyResult(f.data, f.polymorphism, n, o.Triad, o.Exists); err != nil {
				cmd.PrintErrln(err)
				return err
			}
			if o.Exists {
				yes++
			}
		}
		cmd.Println(fmt.Sprintf("n=%d %s: %d/%d exist", n, f.polymorphism, yes, len(triads)))
	}

	return nil
}

func parseNodesArg(s string) (a, b int, err error) {
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		lo, err1 := strconv.Atoi(s[:idx])
		hi, err2 := strconv.Atoi(s[idx+1:])
		if err1 != nil || err2 != nil || lo <= 0 || hi < lo {
			return 0, 0, fmt.Errorf("tripolys: malformed --nodes range %q", s)
		}
		return lo, hi, nil
	}

	n, convErr := strconv.Atoi(s)
	if convErr != nil || n <= 0 {
		return 0, 0, fmt.Errorf("tripolys: malformed --nodes value %q", s)
	}

	return n, n, nil
}
