package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates for a job, boosting priority skills",
	Long:  "List candidates for a job ordered by score, with an optional bonus for each priority skill found in the candidate's CV. Adjusted scores are display-only and never persisted.",
	RunE:  runRank,
}

var (
	rankJobID  string
	rankSkills []string
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobID, "job", "j", "", "Job ID (required)")
	rankCmd.Flags().StringSliceVarP(&rankSkills, "skills", "s", nil, "Comma-separated priority skills to boost")

	rankCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobID, err := uuid.Parse(rankJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	d, err := buildDeps(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	shortlister := ranking.New(d.db, d.logger)
	ranked, err := shortlister.AdjustRanking(ctx, jobID, rankSkills)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if len(ranked) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded for this job")
		return nil
	}

	for i, r := range ranked {
		matched := ""
		if len(r.MatchedPrioritySkills) > 0 {
			matched = "  [" + strings.Join(r.MatchedPrioritySkills, ", ") + "]"
		}
		fmt.Fprintf(os.Stdout, "%2d. %-25s  %.2f (stored %.2f)%s\n",
			i+1, r.Name, r.AdjustedScore, r.OriginalScore, matched)
	}

	return nil
}
