package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trknhr/housepricer/internal/config"
	"github.com/trknhr/housepricer/internal/logger"
	"github.com/trknhr/housepricer/internal/session"
)

func NewRootCmd() *cobra.Command {
	var (
		cfgFile     string
		dataPath    string
		historyPath string
		logLevel    string
		writeConfig bool
	)

	cmd := &cobra.Command{
		Use:   "housepricer",
		Short: "Interactive house price prediction over the KC House dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			// flags win over env and config file
			f := cmd.Flags()
			if f.Changed("data") {
				cfg.DataPath = dataPath
			}
			if f.Changed("history") {
				cfg.HistoryPath = historyPath
			}
			if f.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			if err := logger.Init(cfg.LogFile, cfg.LogLevel); err != nil {
				return err
			}
			if writeConfig {
				if err := config.Save(cfg, cfgFile); err != nil {
					return err
				}
			}

			s := session.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return s.Run()
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ~/.housepricer/config.yaml)")
	cmd.Flags().StringVar(&dataPath, "data", "", "path to the KC house CSV (overrides config)")
	cmd.Flags().StringVar(&historyPath, "history", "", "path to the prediction history file (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "write the effective configuration back to the config file")

	return cmd
}

func Execute() error {
	cmd := NewRootCmd()
	cmd.SetIn(os.Stdin)
	cmd.SetOut(os.Stdout)
	return cmd.Execute()
}
