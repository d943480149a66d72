package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/formulafactory/wff"
)

var forgesCmd = &cobra.Command{
	Use:   "forges",
	Short: "List the formation rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeForges(cmd.OutOrStdout())
	},
}

func writeForges(w io.Writer) {
	letters := wff.Alphabet()
	names := make([]string, len(letters))
	for i, l := range letters {
		names[i] = string(l)
	}
	titleStyle.Fprintln(w, "Atomic Sentences")
	fmt.Fprintf(w, "  %s\n  letters: %s\n", wff.AtomicRule, strings.Join(names, " "))
	for _, cfg := range wff.Forges() {
		titleStyle.Fprintln(w, cfg.Title)
		fmt.Fprintf(w, "  %s\n  %s  (%d slot(s), %s)\n", cfg.RuleText, cfg.Template, cfg.Slots, cfg.ButtonText)
	}
}
