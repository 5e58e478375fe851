package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/config"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/db"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/logger"
)

// Global flags shared by every subcommand.
var (
	flagConfigPath string
	flagAPIKey     string
	flagDBURL      string
	flagModel      string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&flagDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Override the model used for scoring and summarization")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig merges, in increasing priority: environment variables, the
// optional config file, and explicitly set CLI flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = flagDBURL
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = flagModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// deps bundles the runtime dependencies a subcommand needs. Close releases
// whatever was opened.
type deps struct {
	cfg    config.Config
	logger *zap.Logger
	db     *db.DB
	client *llm.GeminiClient
}

func (d *deps) Close() {
	if d.client != nil {
		_ = d.client.Close()
	}
	if d.db != nil {
		d.db.Close()
	}
	if d.logger != nil {
		_ = d.logger.Sync()
	}
}

// buildDeps resolves configuration and opens the database and, when needLLM
// is set, the Gemini client.
func buildDeps(ctx context.Context, cmd *cobra.Command, needLLM bool) (*deps, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (--db-url flag, DATABASE_URL env var, or config file)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	d := &deps{cfg: cfg, logger: log, db: database}

	if needLLM {
		if cfg.APIKey == "" {
			d.Close()
			return nil, fmt.Errorf("API key is required (--api-key flag, GEMINI_API_KEY env var, or config file)")
		}
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
		}
		client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		d.client = client
	}

	return d, nil
}
