package main

import (
	"os"

	"github.com/crillab/formulafactory/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
