package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoint5304/soict-2024/ioformat"
)

var validateInputPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse a problem instance without running the search",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if validateInputPath != "" {
			f, err := os.Open(validateInputPath)
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

		fmt.Printf("ok: customers=%d trucks=%d drones=%d iterations=%d tabu_size=%d\n",
			cfg.Context.N(), cfg.Context.TrucksCount, cfg.Context.DronesCount, cfg.Iterations, cfg.TabuSize)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateInputPath, "input", "", "path to a problem instance file (default stdin)")
}
