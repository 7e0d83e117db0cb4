package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "d2dtabu",
	Short: "Drone-truck combined delivery tabu search",
	Long:  "d2dtabu solves the Drone-Truck Combined Delivery Problem with a tabu-search metaheuristic.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(validateCmd)
}
