package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/formulafactory/config"
	"github.com/crillab/formulafactory/wff"
)

var (
	cfgFile string
	verbose bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "formulafactory",
	Short:        "formulafactory - build well-formed formulas of propositional logic",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		if verbose {
			cfg.Log.Development = true
			cfg.Log.Level = "debug"
		}
		logger, err = cfg.Logger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "sets verbose mode on")

	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(forgesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(playCmd)
}

// newGenerator returns the target generator described by c.
// A zero seed is replaced by a seed taken from the clock.
func newGenerator(c config.Config, logger *zap.Logger) *wff.Generator {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Target generator seeded", zap.Int64("seed", seed))
	return wff.NewGenerator(rand.New(rand.NewSource(seed))).WithLeafProbability(c.LeafProbability)
}
