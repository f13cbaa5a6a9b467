package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/config"
	"github.com/jonathan/candidate-ranker/internal/engine"
	"github.com/jonathan/candidate-ranker/internal/export"
	"github.com/jonathan/candidate-ranker/internal/loader"
	"github.com/jonathan/candidate-ranker/internal/logger"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate profiles against a job requirement",
	Long:  "Scores every candidate in the input file against the job requirement and writes the ranked breakdown as JSON or CSV. Strictly filtered candidates are reported separately, never silently dropped.",
	RunE:  runRank,
}

var (
	rankJob        string
	rankCandidates string
	rankWeights    string
	rankOutput     string
	rankFormat     string
	rankConfig     string
	rankTimeout    time.Duration
	rankDebug      bool
	rankJSONLogs   bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to the JobRequirement JSON file")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to the candidate profiles JSON file")
	rankCmd.Flags().StringVarP(&rankWeights, "weights", "w", "", "Weight preset (default, location_critical) or path to a weights JSON file")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Output file path (default: stdout)")
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "", "Output format: json or csv (default: json)")
	rankCmd.Flags().StringVar(&rankConfig, "config", "", "Path to a CLI config JSON file providing flag defaults")
	rankCmd.Flags().DurationVar(&rankTimeout, "timeout", 0, "Abort the run after this duration, keeping partial results")
	rankCmd.Flags().BoolVar(&rankDebug, "debug", false, "Enable debug logging")
	rankCmd.Flags().BoolVar(&rankJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:        rankJob,
		Candidates: rankCandidates,
		Weights:    rankWeights,
		Output:     rankOutput,
		Format:     rankFormat,
		Debug:      rankDebug,
		JSONLogs:   rankJSONLogs,
	}
	if rankConfig != "" {
		fileCfg, err := config.LoadConfig(rankConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Debug = cfg.Debug || fileCfg.Debug
		cfg.JSONLogs = cfg.JSONLogs || fileCfg.JSONLogs
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job requirement file is required (--job or config)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("a candidates file is required (--candidates or config)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := loader.LoadJobRequirement(cfg.Job)
	if err != nil {
		return err
	}
	candidates, err := loader.LoadCandidates(cfg.Candidates)
	if err != nil {
		return err
	}
	weights, err := loader.ResolveWeights(cfg.Weights)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rankTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rankTimeout)
		defer cancel()
	}

	result, err := engine.New(log).Rank(ctx, job, weights, candidates)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", cfg.Output, err)
		}
		defer file.Close()
		out = file
	}

	switch cfg.Format {
	case config.FormatCSV:
		err = export.WriteCSV(out, result)
	default:
		err = export.WriteJSON(out, result)
	}
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		fmt.Fprintf(os.Stderr, "Ranked %d candidate(s) (%d filtered out) to %s\n",
			len(result.Ranked), len(result.FilteredOut), cfg.Output)
	}
	return nil
}
