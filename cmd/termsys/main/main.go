package main

import (
	"fmt"
	"os"

	"github.com/orcnighte/terminal-system/cmd/termsys"
	"github.com/orcnighte/terminal-system/pkg/style"
)

func main() {
	rootCmd := termsys.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
