package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/formulafactory/challenge"
	"github.com/crillab/formulafactory/wff"
)

var errMismatch = errors.New("answer does not match target")

var checkCmd = &cobra.Command{
	Use:   "check TARGET ANSWER",
	Short: "Check an answer against a target formula",
	Long: `Compares two formulas in the interchange format. The answer is correct only if it has
exactly the shape of the target: (A ∧ B) is not a correct answer for (B ∧ A).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), cmd.InOrStdin(), logger, args[0], args[1])
	},
}

func runCheck(w io.Writer, stdin io.Reader, logger *zap.Logger, targetPath, answerPath string) error {
	target, err := readFormula(targetPath, stdin)
	if err != nil {
		return err
	}
	answer, err := readFormula(answerPath, stdin)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Target: %v\nAnswer: %v\n", target, answer)
	correct := wff.Equal(target, answer)
	logger.Debug("Answer checked", zap.String("target", target.String()), zap.String("answer", answer.String()), zap.Bool("correct", correct))
	if !correct {
		failureStyle.Fprintln(w, challenge.IncorrectMessage)
		return errMismatch
	}
	successStyle.Fprintln(w, challenge.CorrectMessage)
	return nil
}
