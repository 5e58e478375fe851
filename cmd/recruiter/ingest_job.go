package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job description from a text file",
	Long:  "Read a job description from a text file, summarize it into structured fields, compute its embedding, and store it.",
	RunE:  runIngestJob,
}

var (
	jobTitle string
	jobFile  string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&jobTitle, "title", "t", "", "Job title (required)")
	ingestJobCmd.Flags().StringVarP(&jobFile, "file", "f", "", "Path to text file containing the job description (required)")

	ingestJobCmd.MarkFlagRequired("title")
	ingestJobCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	d, err := buildDeps(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	raw, err := os.ReadFile(jobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	description := ingestion.CleanText(string(raw))

	processor := ingestion.NewJobProcessor(d.db, d.client, d.client, d.logger)
	jobID, err := processor.ProcessJobDescription(ctx, jobTitle, description)
	if err != nil {
		return fmt.Errorf("failed to ingest job: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Ingested job %q\n", jobTitle)
	fmt.Fprintf(os.Stdout, "Job ID: %s\n", jobID)

	return nil
}
