package cmd

import (
	"fmt"
	"os"

	"github.com/glimpseframework/holoview/internal/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE:  writeDefaults,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing settings file")
}

func writeDefaults(cmd *cobra.Command, args []string) error {
	path, err := homedir.Expand(configPath)
	if err != nil {
		return err
	}
	if path == "" {
		if path, err = config.GetPath(); err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Write(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	return nil
}
