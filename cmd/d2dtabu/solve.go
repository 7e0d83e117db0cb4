package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/khoint5304/soict-2024/internal/logging"
	"github.com/khoint5304/soict-2024/internal/xrand"
	"github.com/khoint5304/soict-2024/ioformat"
	"github.com/khoint5304/soict-2024/tabu"
)

var (
	solveInputPath     string
	solveOverridesPath string
	solveSeed          int64
	solveNoTUI         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Parse a problem instance and run the tabu search",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if solveInputPath != "" {
			f, err := os.Open(solveInputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		cfg, err := ioformat.ParseStream(in)
		if err != nil {
			return err
		}

		overrides, err := ioformat.LoadOverrides(solveOverridesPath)
		if err != nil {
			return err
		}
		overrides.Apply(cfg)

		log := logging.New(cfg.Verbose)
		log.Info("parsed problem instance",
			"customers", cfg.Context.N(),
			"trucks", cfg.Context.TrucksCount,
			"drones", cfg.Context.DronesCount,
			"iterations", cfg.Iterations,
			"tabu_size", cfg.TabuSize,
		)

		sink := tabu.ProgressSink(tabu.NoopProgressSink{})
		if !solveNoTUI {
			if _, err := tabu.TerminalWidthProbe(); err == nil {
				sink = tabu.NewTUIProgressSink(cfg.Iterations)
			} else {
				log.Debug("no TUI progress sink", "reason", err)
			}
		}

		rng := xrand.New(solveSeed)
		report, err := tabu.Run(cfg.Context, cfg.Iterations, cfg.TabuSize, rng, sink)
		if err != nil {
			return err
		}

		log.Info("search finished", "run_id", report.RunID, "elapsed", report.Elapsed, "best_cost", report.Best.Cost())
		return ioformat.WriteReport(os.Stdout, report)
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveInputPath, "input", "", "path to a problem instance file (default stdin)")
	solveCmd.Flags().StringVar(&solveOverridesPath, "overrides", "", "optional YAML file overriding iterations/tabu_size/verbose")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "deterministic RNG seed (0 uses the package default)")
	solveCmd.Flags().BoolVar(&solveNoTUI, "no-tui", false, "disable the live progress TUI even on a terminal")
}
