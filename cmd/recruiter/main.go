// Package main provides the entry point for the recruitment assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter",
	Short: "HR recruitment assistant",
	Long:  "Recruiter ingests job descriptions and candidate resumes, scores candidates against jobs with an LLM judge, shortlists and re-ranks them, and drafts interview emails and tailored CVs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
