// Package search runs the job search and market insights flows against the model
// and tracks the request lifecycle shown to users.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/healthjobfinder/internal/llm"
	"github.com/jonathan/healthjobfinder/internal/parsing"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/rs/zerolog"
)

// JobsResult is the outcome of a job search.
type JobsResult struct {
	Jobs    []types.Job             `json:"jobs"`
	Sources []types.GroundingSource `json:"sources"`
}

// InsightsResult is the outcome of a market insights request.
type InsightsResult struct {
	Insights string                  `json:"insights"`
	Sources  []types.GroundingSource `json:"sources"`
}

// Searcher runs the two request flows.
type Searcher interface {
	FindJobs(ctx context.Context, filters types.FilterState, resume *Resume) (*JobsResult, error)
	MarketInsights(ctx context.Context, filters types.FilterState) (*InsightsResult, error)
}

// Service implements Searcher on top of an llm.Client.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	client llm.Client
	now    func() time.Time
	log    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates a Service.
func NewService(client llm.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindJobs builds the prompt, calls the model and turns its fenced JSON answer
// into normalized jobs filtered by the date window and sorted most recent first.
func (s *Service) FindJobs(ctx context.Context, filters types.FilterState, resume *Resume) (*JobsResult, error) {
	if err := validateFilters(&filters); err != nil {
		return nil, err
	}

	req, err := BuildJobSearchRequest(filters, resume)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, callError("job search request", err)
	}

	sources := llm.ExtractSources(resp)
	text, err := llm.ResponseText(resp)
	if err != nil {
		return nil, &parsing.ParseError{Message: "model returned no usable text", Cause: err}
	}

	payload, err := llm.ParseJSONFromMarkdown(text)
	if err != nil {
		return nil, err
	}

	jobs := parsing.NormalizeJobs(payload, s.now())
	returned := len(jobs)
	jobs = parsing.ApplyDateWindow(jobs, filters.DatePostedFilter)

	s.log.Info().
		Str("model", s.client.GetModel(llm.PurposeJobSearch)).
		Bool("resume", resume != nil).
		Int("returned", returned).
		Int("kept", len(jobs)).
		Int("sources", len(sources)).
		Dur("latency", time.Since(start)).
		Msg("job search completed")

	return &JobsResult{Jobs: jobs, Sources: sources}, nil
}

// MarketInsights asks the model for a Markdown analysis of the market described by filters.
func (s *Service) MarketInsights(ctx context.Context, filters types.FilterState) (*InsightsResult, error) {
	if err := validateFilters(&filters); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.Generate(ctx, BuildInsightsRequest(filters))
	if err != nil {
		return nil, callError("market insights request", err)
	}

	sources := llm.ExtractSources(resp)
	text, err := llm.ResponseText(resp)
	if err != nil {
		return nil, &parsing.ParseError{Message: "model returned no usable text", Cause: err}
	}

	s.log.Info().
		Str("model", s.client.GetModel(llm.PurposeInsights)).
		Int("chars", len(text)).
		Int("sources", len(sources)).
		Dur("latency", time.Since(start)).
		Msg("market insights completed")

	return &InsightsResult{Insights: text, Sources: sources}, nil
}

func validateFilters(filters *types.FilterState) error {
	if err := filters.Validate(); err != nil {
		return &parsing.ValidationError{Field: "filters", Message: fmt.Sprint(err)}
	}
	return nil
}

// callError wraps a failed model call. Connection failures are labelled as such in
// the message, since a dial error's own text rarely says "network".
func callError(op string, err error) *parsing.APICallError {
	if isTransportError(err) {
		op = "network failure during " + op
	}
	return &parsing.APICallError{Message: op, Cause: err}
}
