package cmd

import (
	"github.com/spf13/cobra"
)

var (
	targetDepth  int
	targetSeed   int64
	targetFormat string
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Generate a random formula to rebuild",
	Long: `Generates a random well-formed formula, used as a target the learner must rebuild.
Example) formulafactory target --depth 3 --seed 42 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("depth") {
			cfg.Depth = targetDepth
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = targetSeed
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		f := newGenerator(cfg, logger).Random(cfg.Depth)
		return writeFormula(cmd.OutOrStdout(), f, targetFormat)
	},
}

func init() {
	targetCmd.Flags().IntVarP(&targetDepth, "depth", "d", 2, "Maximum depth of the formula")
	targetCmd.Flags().Int64Var(&targetSeed, "seed", 0, "Seed of the random generator (0: seed from the clock)")
	targetCmd.Flags().StringVarP(&targetFormat, "format", "f", formatText, "Output format: text, json or yaml")
}
