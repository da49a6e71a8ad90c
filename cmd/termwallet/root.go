package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mr-Dark-debug/termwallet/internal/logging"
	"github.com/Mr-Dark-debug/termwallet/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// newRootCmd builds the termwallet command tree. With no subcommand it
// launches the interactive UI.
func newRootCmd() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "termwallet",
		Short: "Solana at your fingertips",
		Long: `termwallet is a terminal wallet shell.

It takes over the whole terminal and shows two pages:

  h   go to the home page
  w   go back to the welcome page
  q   quit

Settings are read from $HOME/.config/termwallet/config.yml and
TERMWALLET_* environment variables; both are optional.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), "log-file", "log-level"); err != nil {
				return err
			}
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, closer, err := logging.New(logging.Options{
				Path:  cfg.LogFile,
				Level: cfg.LogLevel,
			})
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return tui.Run(ctx, tui.Options{
				Config: tui.Config{
					StartPage:    cfg.startPage(),
					PollInterval: cfg.PollInterval,
					Logger:       logger,
				},
				Mouse: cfg.Mouse,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/termwallet/config.yml)")
	flags.String("log-file", "", "write logs to this file (default: no logging)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termwallet v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
