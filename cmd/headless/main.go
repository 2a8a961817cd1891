// headless runs the platformer simulation without a window.
//
// Usage:
//
//	headless run                 - Run the default world with its script
//	headless run --ticks 200     - Run a fixed number of ticks
//	headless world               - List the surfaces of a world
//
// Global flags:
//
//	--world <name>  - World prefab (default: world.yaml)
//	--debug         - Log every tick
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagWorld string
	flagDebug bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the platformer simulation without a window",
	Long: `headless steps the platformer simulation at its fixed tick and reports
the actor state, driving input from a tengo script.

Examples:
  headless run --ticks 60
  headless run --script patrol.tengo --detect-support-loss
  headless world --world ./my-world.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "World prefab name or path (default world.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every tick")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(worldCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
