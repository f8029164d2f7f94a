package main

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/moneyprinter/pkg/config"
)

var configDump bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		if configDump {
			printer := pp.New()
			printer.SetOutput(cmd.OutOrStdout())
			printer.SetColoringEnabled(false)
			_, err := printer.Println(cfg)
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
