package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/tailoring"
)

var generateCVCmd = &cobra.Command{
	Use:   "generate-cv",
	Short: "Generate a CV tailored to a job from a stored candidate",
	RunE:  runGenerateCV,
}

var (
	cvCandidateID string
	cvJobID       string
	cvOutPath     string
)

func init() {
	generateCVCmd.Flags().StringVarP(&cvCandidateID, "candidate", "c", "", "Candidate ID (required)")
	generateCVCmd.Flags().StringVarP(&cvJobID, "job", "j", "", "Job ID (required)")
	generateCVCmd.Flags().StringVarP(&cvOutPath, "out", "o", "", "Write the tailored CV to this file instead of stdout")

	generateCVCmd.MarkFlagRequired("candidate")
	generateCVCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(generateCVCmd)
}

func runGenerateCV(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	candidateID, err := uuid.Parse(cvCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}
	jobID, err := uuid.Parse(cvJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	d, err := buildDeps(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	candidate, err := d.db.GetCandidate(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return fmt.Errorf("candidate %s not found", candidateID)
	}

	job, err := d.db.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job %s not found", jobID)
	}

	generator := tailoring.New(d.client)
	cv, err := generator.GenerateCV(ctx, candidate.CVText, job.Description)
	if err != nil {
		return fmt.Errorf("failed to generate CV: %w", err)
	}

	if cvOutPath != "" {
		if err := os.WriteFile(cvOutPath, []byte(cv), 0o644); err != nil {
			return fmt.Errorf("failed to write CV: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote tailored CV to %s\n", cvOutPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, cv)
	return nil
}
