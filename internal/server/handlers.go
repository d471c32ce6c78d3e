package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/healthjobfinder/internal/search"
	"github.com/jonathan/healthjobfinder/internal/types"
)

const (
	formFieldFilters = "filters"
	formFieldResume  = "resume"
)

// handleJobSearch runs a job search. The body is either a JSON FilterState or
// a multipart form with a "filters" JSON field and an optional "resume" file.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	filters, resume, err := decodeSearchInput(w, r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	res, err := s.searcher.FindJobs(r.Context(), filters, resume)
	if err != nil {
		s.searchError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleInsights runs a market insights request.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	filters, _, err := decodeSearchInput(w, r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	res, err := s.searcher.MarketInsights(r.Context(), filters)
	if err != nil {
		s.searchError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleSearchStream runs the flow for ?tab= in a fresh session and streams
// each lifecycle transition, then the final result.
func (s *Server) handleSearchStream(w http.ResponseWriter, r *http.Request) {
	tab, err := types.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	filters, resume, err := decodeSearchInput(w, r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}
	if err := filters.Validate(); err != nil {
		s.badRequest(w, fmt.Sprintf("invalid filters: %v", err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.internalError(w, "streaming not supported", err)
		return
	}

	session := search.NewSession(s.searcher, s.log)
	session.Subscribe(func(requestID string, state search.State, result types.SearchResult) {
		if err := sse.WriteState(requestID, state, result.Loading); err != nil {
			s.log.Debug().Err(err).Msg("client went away")
		}
	})

	result := session.Search(r.Context(), tab, filters, resume)
	if err := sse.WriteResult(result); err != nil {
		s.log.Debug().Err(err).Msg("client went away")
	}
}

// decodeSearchInput reads filters, and a resume for multipart bodies. Keys
// missing from the filters take their defaults; an empty body means defaults.
func decodeSearchInput(w http.ResponseWriter, r *http.Request) (types.FilterState, *search.Resume, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	filters := types.DefaultFilterState()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(&filters); err != nil && !errors.Is(err, io.EOF) {
			return filters, nil, fmt.Errorf("invalid request body: %w", err)
		}
		return filters, nil, nil
	}

	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		return filters, nil, fmt.Errorf("invalid multipart body: %w", err)
	}
	if raw := r.FormValue(formFieldFilters); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return filters, nil, fmt.Errorf("invalid %q field: %w", formFieldFilters, err)
		}
	}

	files := r.MultipartForm.File[formFieldResume]
	if len(files) == 0 {
		return filters, nil, nil
	}
	return filters, resumeFromUpload(files[0]), nil
}

func resumeFromUpload(fh *multipart.FileHeader) *search.Resume {
	return &search.Resume{
		Name:     fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
