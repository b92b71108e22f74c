package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "hyperfoil",
	Short:   "A distributed, phase-driven HTTP load generator",
	Version: version,
	Long: `Hyperfoil drives an HTTP load-injection benchmark described as a set of
phases, each running a scenario of sessions under a configurable arrival
model (at-once, always-on, constant rate, ramping rate, or sequential).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(runCmd)
}
