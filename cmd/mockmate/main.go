// Package main is the entry point of the MockMate interview API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mockmate",
	Short: "MockMate AI mock interview API",
	Long:  "MockMate scores an uploaded resume, runs a chat-style technical mock interview over it and produces a final performance report.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
