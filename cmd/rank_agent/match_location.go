package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/engine"
	"github.com/jonathan/candidate-ranker/internal/loader"
)

var matchLocationCmd = &cobra.Command{
	Use:   "match-location",
	Short: "Classify one candidate location against a job's location requirement",
	Long:  "Resolves a free-form candidate location string and prints the location match classification (match type, confidence, distance) as JSON. Useful for debugging why a candidate was filtered or scored low on location.",
	RunE:  runMatchLocation,
}

var (
	matchLocationJob  string
	matchLocationText string
)

func init() {
	matchLocationCmd.Flags().StringVarP(&matchLocationJob, "job", "j", "", "Path to the JobRequirement JSON file (required)")
	matchLocationCmd.Flags().StringVarP(&matchLocationText, "location", "l", "", "Candidate location text (required)")

	if err := matchLocationCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchLocationCmd.MarkFlagRequired("location"); err != nil {
		panic(fmt.Sprintf("failed to mark location flag as required: %v", err))
	}

	rootCmd.AddCommand(matchLocationCmd)
}

func runMatchLocation(_ *cobra.Command, _ []string) error {
	job, err := loader.LoadJobRequirement(matchLocationJob)
	if err != nil {
		return err
	}

	match := engine.New(nil).MatchLocation(matchLocationText, job.Location)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(match)
}
