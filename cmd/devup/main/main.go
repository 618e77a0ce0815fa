package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/devup/cmd/devup"
	"github.com/arthur-debert/devup/pkg/ui/output/styles"
)

func main() {
	rootCmd := devup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
