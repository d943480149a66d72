package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Print the display string of formulas",
	Long: `Reads formulas in the interchange format (JSON, or YAML for .yaml/.yml files, "-" for stdin)
and prints their display string.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout(), cmd.InOrStdin(), args)
	},
}

func runRender(w io.Writer, stdin io.Reader, paths []string) error {
	for _, path := range paths {
		f, err := readFormula(path, stdin)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			fmt.Fprintf(w, "%s: ", path)
		}
		fmt.Fprintln(w, f)
	}
	return nil
}
