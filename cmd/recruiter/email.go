package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/interview"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Draft an interview invitation email for a match",
	RunE:  runEmail,
}

var (
	emailMatchID string
	emailCompany string
)

func init() {
	emailCmd.Flags().StringVarP(&emailMatchID, "match", "m", "", "Match ID (required)")
	emailCmd.Flags().StringVar(&emailCompany, "company", "", "Company name used in the email")

	emailCmd.MarkFlagRequired("match")

	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	matchID, err := uuid.Parse(emailMatchID)
	if err != nil {
		return fmt.Errorf("invalid match ID: %w", err)
	}

	d, err := buildDeps(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	company := emailCompany
	if company == "" {
		company = d.cfg.CompanyName
	}

	scheduler := interview.New(d.db, d.client, d.logger)
	email, err := scheduler.GenerateEmail(ctx, matchID, company)
	if err != nil {
		return fmt.Errorf("failed to generate email: %w", err)
	}
	if email == "" {
		return fmt.Errorf("match %s not found", matchID)
	}

	fmt.Fprintln(os.Stdout, email)
	return nil
}
