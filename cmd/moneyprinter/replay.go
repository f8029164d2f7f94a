package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yurifrl/moneyprinter/pkg/csv"
	"github.com/yurifrl/moneyprinter/pkg/models"
	"github.com/yurifrl/moneyprinter/pkg/script"
	"github.com/yurifrl/moneyprinter/pkg/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script_file>",
	Short: "Replay a YAML script of edits, ticks and resets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()

		s, err := script.Load(args[0])
		if err != nil {
			return err
		}

		mem := session.NewMemorySurface()
		st, err := bindSession(mem, logger)
		if err != nil {
			return err
		}

		var ledger []models.Accrual
		st.OnAccrue(func(a models.Accrual) { ledger = append(ledger, a) })

		clk := s.Clock(cfg.Interval)
		st.Start(clk, s.InitialAmount(cfg.Amount))

		out := cmd.OutOrStdout()
		stepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))   // gray
		stateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green

		fmt.Fprintf(out, "Replaying %s (%d steps)\n", args[0], len(s.Steps))
		err = s.Run(mem, clk, func(n int, step script.Step) {
			line := fmt.Sprintf("dollars=%-6s cents=%-3s total=%s",
				mem.Text(session.DollarsID), mem.Text(session.CentsID), mem.Text(session.TotalID))
			fmt.Fprintf(out, "%s %s\n", stepStyle.Render(fmt.Sprintf("[%d] %-24s", n, step)), stateStyle.Render(line))
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nFinal: %s\n", st.Snapshot())
		if cliFilters.csv {
			fmt.Fprint(out, string(csv.Create(ledger, cliFilters.toFilterFunc())))
		}
		return nil
	},
}
