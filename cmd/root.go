package cmd

import (
	"context"
	"os"

	"github.com/glimpseframework/holoview/internal/config"
	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	settings   *config.Settings
)

var rootCmd = &cobra.Command{
	Use:          "holoview",
	Short:        "Tilt-driven hologram renderer",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "init" {
			return nil
		}
		return loadSettings()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (default ~/.config/holoview/settings.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the settings file)")
}

func loadSettings() error {
	s, err := config.Load(configPath)
	if err != nil {
		return err
	}
	settings = s

	name := s.LogLevel
	if logLevel != "" {
		name = logLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}
	logging.SetLogger(logging.NewText(os.Stderr, level))
	return nil
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
