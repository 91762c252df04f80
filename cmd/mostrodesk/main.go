package main

import (
	"fmt"
	"os"

	"mostrodesk/internal/config"
	"mostrodesk/internal/desktop"
	"mostrodesk/internal/logging"
	"mostrodesk/internal/terminal"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "mostrodesk",
		Short:        "Mostro desktop login screen",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logging.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			logging.Debugf("starting %s host with logo %s", cfg.Host, cfg.Asset)
			return run(cfg)
		},
	}

	d := config.Defaults()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/mostrodesk/mostrodesk.yaml)")
	cmd.Flags().String("host", d.Host, fmt.Sprintf("rendering host: %s or %s", config.HostDesktop, config.HostTerminal))
	cmd.Flags().String("asset", d.Asset, "path to the logo image")
	cmd.Flags().String("log-level", d.LogLevel, "debug, info, warn or error")

	cmd.AddCommand(newConfigCmd(&cfgFile))
	return cmd
}

func run(cfg config.AppConfig) error {
	switch cfg.Host {
	case config.HostTerminal:
		return terminal.Run(cfg.Asset)
	default:
		desktop.Run(cfg.Asset)
		return nil
	}
}

func newConfigCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the mostrodesk configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *cfgFile
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			path = config.ExpandPath(path)
			if err := config.Save(path, config.Defaults()); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
	return cmd
}
