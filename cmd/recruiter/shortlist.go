package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ranking"
)

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Shortlist candidates whose score meets the threshold",
	RunE:  runShortlist,
}

var (
	shortlistJobID     string
	shortlistThreshold float64
)

func init() {
	shortlistCmd.Flags().StringVarP(&shortlistJobID, "job", "j", "", "Job ID (required)")
	shortlistCmd.Flags().Float64VarP(&shortlistThreshold, "threshold", "t", ranking.DefaultShortlistThreshold, "Minimum score to shortlist (inclusive)")

	shortlistCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(shortlistCmd)
}

func runShortlist(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobID, err := uuid.Parse(shortlistJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	d, err := buildDeps(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	threshold := shortlistThreshold
	if !cmd.Flags().Changed("threshold") && d.cfg.ShortlistThreshold > 0 {
		threshold = d.cfg.ShortlistThreshold
	}

	shortlister := ranking.New(d.db, d.logger)
	shortlisted, err := shortlister.Shortlist(ctx, jobID, threshold)
	if err != nil {
		return fmt.Errorf("shortlisting failed: %w", err)
	}

	if len(shortlisted) == 0 {
		fmt.Fprintf(os.Stdout, "No candidates scored %.2f or higher\n", threshold)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Shortlisted %d candidates (threshold %.2f):\n", len(shortlisted), threshold)
	for _, m := range shortlisted {
		fmt.Fprintf(os.Stdout, "%-36s  %-25s  %.2f\n", m.CandidateID, m.Name, m.Score)
	}

	return nil
}
