package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score candidates against a job",
	Long:  "Score a single candidate (--candidate) or a batch of candidates (--candidates) against a job. Scores and per-technique details are persisted.",
	RunE:  runMatch,
}

var (
	matchJobID        string
	matchCandidateID  string
	matchCandidateIDs []string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobID, "job", "j", "", "Job ID (required)")
	matchCmd.Flags().StringVarP(&matchCandidateID, "candidate", "c", "", "Candidate ID to score")
	matchCmd.Flags().StringSliceVar(&matchCandidateIDs, "candidates", nil, "Comma-separated candidate IDs to score as a batch")

	matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if matchCandidateID == "" && len(matchCandidateIDs) == 0 {
		return fmt.Errorf("either --candidate or --candidates must be provided")
	}
	if matchCandidateID != "" && len(matchCandidateIDs) > 0 {
		return fmt.Errorf("--candidate and --candidates are mutually exclusive; provide only one")
	}

	jobID, err := uuid.Parse(matchJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	d, err := buildDeps(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	matcher := matching.New(d.db, d.client, d.logger)

	if matchCandidateID != "" {
		candidateID, err := uuid.Parse(matchCandidateID)
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %w", err)
		}
		score, err := matcher.MatchWithJob(ctx, jobID, candidateID)
		if err != nil {
			return fmt.Errorf("failed to match candidate: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Match score: %.2f\n", score)
		return nil
	}

	candidateIDs := make([]uuid.UUID, 0, len(matchCandidateIDs))
	for _, raw := range matchCandidateIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid candidate ID %q: %w", raw, err)
		}
		candidateIDs = append(candidateIDs, id)
	}

	results, err := matcher.MatchBatch(ctx, jobID, candidateIDs, func(completed, total int) {
		fmt.Fprintf(os.Stdout, "Matched %d of %d candidates\n", completed, total)
	})
	if err != nil {
		return fmt.Errorf("batch matching failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "Job not found; nothing matched")
		return nil
	}

	fmt.Fprintln(os.Stdout)
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-36s  %-25s  %.2f  %s\n", r.CandidateID, r.Name, r.Score, r.Status)
	}

	return nil
}
