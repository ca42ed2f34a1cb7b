package main

import (
	"os"

	"github.com/bufbuild/stmtcompile/cmd/stmtc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
