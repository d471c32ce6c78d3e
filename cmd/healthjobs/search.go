package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/healthjobfinder/internal/observability"
	"github.com/jonathan/healthjobfinder/internal/search"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		ff         filterFlags
		resumePath string
		resumeType string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recent healthcare job listings",
		Long: "Search the web for healthcare job postings matching the filters. Results are " +
			"limited to the --date-posted window and sorted most recent first.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := ff.resolve(cmd.Context(), cmd, a)
			if err != nil {
				return err
			}

			var resume *search.Resume
			if resumePath != "" {
				resume = search.ResumeFromFile(resumePath, resumeType)
			}
			return a.runSession(cmd.Context(), cmd.OutOrStdout(), types.TabListings, filters, resume, asJSON)
		},
	}

	ff.register(cmd, true)
	cmd.Flags().StringVar(&resumePath, "resume", "", "Resume file (PDF, DOCX or TXT) to personalize the search")
	cmd.Flags().StringVar(&resumeType, "resume-type", "", "Media type of --resume when the extension is misleading")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newInsightsCmd(a *app) *cobra.Command {
	var (
		ff     filterFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize the healthcare job market for the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := ff.resolve(cmd.Context(), cmd, a)
			if err != nil {
				return err
			}
			return a.runSession(cmd.Context(), cmd.OutOrStdout(), types.TabInsights, filters, nil, asJSON)
		},
	}

	ff.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// runSession runs one search through a Session and prints its final state.
func (a *app) runSession(ctx context.Context, out io.Writer, tab types.Tab, filters types.FilterState, resume *search.Resume, asJSON bool) error {
	client, err := a.newClient(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	session := search.NewSession(search.NewService(client, search.WithLogger(a.log)), a.log)
	session.Subscribe(func(requestID string, state search.State, _ types.SearchResult) {
		a.log.Debug().Str("request_id", requestID).Str("state", string(state)).Msg("search state")
	})

	result := session.Search(ctx, tab, filters, resume)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		p := observability.NewPrinter(out)
		switch {
		case result.Error != nil:
			p.PrintError(result.Error)
		case tab == types.TabListings:
			p.PrintJobs(result.Jobs)
			p.PrintSources(result.Sources)
		default:
			p.PrintInsights(result.Insights)
			p.PrintSources(result.Sources)
		}
	}

	if result.Error != nil {
		return fmt.Errorf("%s: %s", result.Error.Title(), result.Error.Message)
	}
	return nil
}
