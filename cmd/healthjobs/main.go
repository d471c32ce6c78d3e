// Package main provides the healthjobs command: healthcare job search and
// market insights backed by grounded Gemini calls, as a CLI or an HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/healthjobfinder/internal/config"
	"github.com/jonathan/healthjobfinder/internal/llm"
	"github.com/jonathan/healthjobfinder/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	cfg        config.Config
	log        zerolog.Logger

	// newClient is replaced in tests.
	newClient func(ctx context.Context, cfg config.Config) (llm.Client, error)
}

func newApp() *app {
	return &app{
		log:       zerolog.Nop(),
		newClient: newGeminiClient,
	}
}

func newGeminiClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "healthjobs",
		Short: "HealthJobFinder: find recent healthcare jobs open to international applicants",
		Long: "HealthJobFinder searches the web for recent healthcare job postings that match your " +
			"filters, flags visa sponsorship and posting authenticity, and summarizes the job market.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Get()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a JSON config file")

	root.AddCommand(
		newServeCmd(a),
		newSearchCmd(a),
		newInsightsCmd(a),
		newFiltersCmd(a),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd(newApp()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
