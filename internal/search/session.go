package search

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/rs/zerolog"
)

// State is a step of the search lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateSuccess   State = "success"
	StateFailed    State = "failed"
)

// Observer is called after every state change with a copy of the result.
type Observer func(requestID string, state State, result types.SearchResult)

// Session owns the presentation state for one user: the latest jobs, insights,
// sources and error, and whether a request is in flight.
//
// Overlapping searches are not fenced. Each search clears the state when it
// starts and writes its own outcome when it ends, so a slow earlier request
// can overwrite a faster later one.
type Session struct {
	searcher Searcher
	log      zerolog.Logger

	mu        sync.Mutex
	state     State
	result    types.SearchResult
	observers []Observer
}

// NewSession creates an idle Session.
func NewSession(searcher Searcher, log zerolog.Logger) *Session {
	return &Session{
		searcher: searcher,
		log:      log,
		state:    StateIdle,
		result:   emptyResult(false),
	}
}

// Subscribe registers an observer for state changes.
func (s *Session) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of the presentation state.
func (s *Session) Snapshot() types.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyResult(s.result)
}

// Search runs the flow selected by tab. The listings tab runs a job search;
// every other tab runs the insights request. Failures are classified and
// recorded rather than returned. The loading flag is cleared on every path.
func (s *Session) Search(ctx context.Context, tab types.Tab, filters types.FilterState, resume *Resume) types.SearchResult {
	s.run(ctx, uuid.NewString(), tab, filters, resume)
	return s.Snapshot()
}

func (s *Session) run(ctx context.Context, id string, tab types.Tab, filters types.FilterState, resume *Resume) {
	s.transition(id, StateSearching, func(r *types.SearchResult) {
		*r = emptyResult(true)
	})
	defer s.transition(id, StateIdle, func(r *types.SearchResult) {
		r.Loading = false
	})

	log := s.log.With().Str("request_id", id).Str("tab", string(tab)).Logger()

	var err error
	if tab == types.TabListings {
		var res *JobsResult
		if res, err = s.searcher.FindJobs(ctx, filters, resume); err == nil {
			s.transition(id, StateSuccess, func(r *types.SearchResult) {
				r.Jobs = res.Jobs
				r.Sources = res.Sources
			})
		}
	} else {
		var res *InsightsResult
		if res, err = s.searcher.MarketInsights(ctx, filters); err == nil {
			s.transition(id, StateSuccess, func(r *types.SearchResult) {
				r.Insights = res.Insights
				r.Sources = res.Sources
			})
		}
	}

	if err != nil {
		appErr := Classify(err)
		log.Error().Err(err).Str("error_type", string(appErr.Type)).Msg("search failed")
		s.transition(id, StateFailed, func(r *types.SearchResult) {
			r.Error = appErr
		})
	}
}

func (s *Session) transition(id string, to State, mutate func(*types.SearchResult)) {
	s.mu.Lock()
	s.state = to
	mutate(&s.result)
	snapshot := copyResult(s.result)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o(id, to, snapshot)
	}
}

func emptyResult(loading bool) types.SearchResult {
	return types.SearchResult{
		Jobs:    []types.Job{},
		Sources: []types.GroundingSource{},
		Loading: loading,
	}
}

func copyResult(r types.SearchResult) types.SearchResult {
	out := r
	out.Jobs = append([]types.Job{}, r.Jobs...)
	out.Sources = append([]types.GroundingSource{}, r.Sources...)
	if r.Error != nil {
		e := *r.Error
		out.Error = &e
	}
	return out
}
