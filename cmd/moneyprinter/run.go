package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yurifrl/moneyprinter/pkg/clock"
	"github.com/yurifrl/moneyprinter/pkg/models"
	"github.com/yurifrl/moneyprinter/pkg/session"
	"github.com/yurifrl/moneyprinter/pkg/tui"
)

var runTicks int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal form",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Logs would corrupt the screen, so they only go to --log-file.
	cfg, logger, closer, err := setup(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	model := tui.NewModel(cfg.Interval)
	st, err := bindSession(model, logger)
	if err != nil {
		return err
	}
	st.Start(model, cfg.Amount)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, model); err != nil {
		return err
	}
	logger.Info("session ended", "print_amount", st.PrintAmount(), "total", st.Total())
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Accrue headless, logging every tick",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, closer, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()

		mem := session.NewMemorySurface()
		st, err := bindSession(mem, logger)
		if err != nil {
			return err
		}

		ticker := clock.NewTicker(cfg.Interval)
		st.OnAccrue(func(a models.Accrual) {
			logger.Info("printed", "amount", a.AmountText(), "total", a.TotalText())
		})
		if cliFilters.csv {
			st.OnAccrue(NewLedgerPrinter(cmd.OutOrStdout(), &cliFilters).Print)
		}
		st.Start(ticker, cfg.Amount)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("printing money", "every", ticker.Interval(), "amount", st.PrintAmount())
		n := ticker.Run(ctx, runTicks)
		logger.Info("stopped", "ticks", n, "total", mem.Text(session.TotalID))
		return nil
	},
}
