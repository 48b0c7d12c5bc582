// Package main is the entry point for the usdasm CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/usdassemble/cli/internal/cmd"
	uerrors "github.com/usdassemble/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if the error carries an ExitError with a specific code
		var exitErr *uerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: unexpected, print it
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
