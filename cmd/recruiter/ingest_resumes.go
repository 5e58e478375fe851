package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ingestion"
)

var ingestResumesCmd = &cobra.Command{
	Use:   "ingest-resumes <file> [file...]",
	Short: "Ingest one or more candidate resumes from text files",
	Long:  "Read candidate resumes from text files, extract candidate names, compute embeddings, and store the candidates. Failures on individual files do not stop the run.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngestResumes,
}

var resumeName string

func init() {
	ingestResumesCmd.Flags().StringVarP(&resumeName, "name", "n", ingestion.AutoName, "Candidate name; \"auto\" extracts it from the resume (single file only)")

	rootCmd.AddCommand(ingestResumesCmd)
}

func runIngestResumes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if resumeName != ingestion.AutoName && len(args) > 1 {
		return fmt.Errorf("--name can only be used with a single resume file")
	}

	d, err := buildDeps(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	processor := ingestion.NewResumeProcessor(d.db, d.client, d.client, nil, d.logger)

	if len(args) == 1 && resumeName != ingestion.AutoName {
		candidateID, name, err := processor.ProcessResume(ctx, resumeName, args[0])
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Ingested candidate %q\n", name)
		fmt.Fprintf(os.Stdout, "Candidate ID: %s\n", candidateID)
		return nil
	}

	results := processor.BulkProcessResumes(ctx, args, func(completed, total int, name, status string) {
		fmt.Fprintf(os.Stdout, "[%d/%d] %s: %s\n", completed, total, name, status)
	})

	var failed int
	for _, r := range results {
		if strings.HasPrefix(r.Status, "error") {
			failed++
		}
	}
	fmt.Fprintf(os.Stdout, "Ingested %d of %d resumes\n", len(results)-failed, len(results))

	return nil
}
