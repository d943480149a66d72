package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/formulafactory/config"
)

var initForce bool

// initCmd: formulafactory init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Args:  cobra.NoArgs,
	// The configuration file may not exist yet, or be invalid.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath
		}
		if err := initConfigurationFile(path, initForce); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

func initConfigurationFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return config.Write(path, config.Default())
}
