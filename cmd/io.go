package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/crillab/formulafactory/wff"
)

var (
	titleStyle   = color.New(color.FgCyan, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	failureStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgHiBlack)
)

// Output formats of formulas.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// readFormula reads a formula from the file at path, or from stdin if path is "-".
// Files with a .yaml or .yml extension are decoded as YAML, all others as JSON.
func readFormula(path string, stdin io.Reader) (wff.Formula, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	var f wff.Formula
	if isYAML(path) {
		f, err = wff.UnmarshalYAML(data)
	} else {
		f, err = wff.Unmarshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return f, nil
}

// writeFormula writes f on w in the given format.
func writeFormula(w io.Writer, f wff.Formula, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case formatText:
		_, err = fmt.Fprintln(w, wff.Display(f))
		return err
	case formatJSON:
		data, err = wff.Marshal(f)
		data = append(data, '\n')
	case formatYAML:
		data, err = wff.MarshalYAML(f)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
