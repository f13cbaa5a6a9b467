// Package main provides the entry point for the candidate ranking CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rank_agent",
	Short: "Candidate ranking engine",
	Long:  "rank_agent scores sourced candidate profiles against a structured job requirement using weighted multi-factor scoring with geo-aware location matching.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
