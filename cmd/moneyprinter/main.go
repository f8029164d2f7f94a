package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/moneyprinter/pkg/config"
	"github.com/yurifrl/moneyprinter/pkg/session"
	"github.com/yurifrl/moneyprinter/pkg/surface"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "moneyprinter",
	Short: "Type an amount, watch it accrue every tick",
	// The terminal form is the default when no subcommand is provided
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// setup builds the configuration and logger shared by every command.
func setup(cmd *cobra.Command, fallback io.Writer) (*config.Config, *log.Logger, io.Closer, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer, err := cfg.Logger("moneyprinter", fallback)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closer, nil
}

// bindSession binds a session to s. A failed integrity check is logged and
// returned so main can report it even when the logger is discarded.
func bindSession(s surface.Surface, logger *log.Logger) (*session.State, error) {
	st, err := session.New(s, logger)
	if err != nil {
		logger.Error("display surface integrity check failed", "error", err)
		return nil, fmt.Errorf("display surface integrity check failed: %w", err)
	}
	return st, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	// Ledger filter flags, shared by run and replay
	for _, c := range []*cobra.Command{runCmd, replayCmd} {
		c.Flags().BoolVar(&cliFilters.csv, "csv", false, "Print the accrual ledger as CSV to stdout")
		c.Flags().Float64Var(&cliFilters.minAmount, "min", 0, "Only list accruals printing at least this amount")
		c.Flags().BoolVar(&cliFilters.skipZero, "skip-zero", false, "Leave out accruals that printed nothing")
	}
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "Stop after this many ticks (0 runs until interrupted)")
	configCmd.Flags().BoolVar(&configDump, "dump", false, "Pretty-print the config struct instead of YAML")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
