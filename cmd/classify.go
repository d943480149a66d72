package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/formulafactory/wff"
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILE...",
	Short: "Tell whether formulas are tautologies, contradictions or contingent",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			f, err := readFormula(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := writeClassification(cmd.OutOrStdout(), f); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeClassification(w io.Writer, f wff.Formula) error {
	c, sat, unsat, err := wff.Classify(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v is ", f)
	titleStyle.Fprintln(w, c)
	if sat != nil {
		noteStyle.Fprintf(w, "  true when %s\n", formatModel(f, sat))
	}
	if unsat != nil {
		noteStyle.Fprintf(w, "  false when %s\n", formatModel(f, unsat))
	}
	return nil
}

// formatModel lists the bindings of the letters of f, in alphabetical order.
func formatModel(f wff.Formula, model wff.Model) string {
	letters := wff.Letters(f)
	bindings := make([]string, len(letters))
	for i, l := range letters {
		bindings[i] = fmt.Sprintf("%s=%t", l, model[l])
	}
	return strings.Join(bindings, ", ")
}
