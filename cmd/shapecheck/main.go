package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shapecheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "shapecheck",
	Short:         "Type lattice and binding ledger tooling",
	Long:          `shapecheck inspects serialized type records and merges recorded binding ledgers`,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(builtinsCmd)
	rootCmd.AddCommand(versionCmd)

	registerGlobalFlags(rootCmd)
}

// main executes the root command. Any command error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "path to shapecheck.toml (default: search upwards from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Int("max-issues", 0, "maximum number of diagnostics kept per file (0: use config)")
	root.PersistentFlags().Bool("timings", false, "show phase timings on stderr")
	root.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this file")
	root.PersistentFlags().String("memprofile", "", "write a heap profile to this file")
	root.PersistentFlags().Bool("no-cache", false, "do not read or write the type record cache")

	root.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	root.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug; default: config)")
	root.PersistentFlags().String("trace-mode", "", "trace storage mode (stream|ring|both; default: config)")
	root.PersistentFlags().Int("trace-ring-size", 4096, "ring buffer size for --trace-mode ring")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
