package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/healthjobfinder/internal/store"
	"github.com/jonathan/healthjobfinder/internal/types"
)

// FiltersResponse is returned by GET and PUT /filters.
type FiltersResponse struct {
	Filters types.FilterState `json:"filters"`
	Saved   bool              `json:"saved"`
}

// handleGetFilters returns the saved snapshot, or the defaults when nothing
// usable is stored.
func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	saved, err := s.filters.Load(r.Context())
	switch {
	case errors.Is(err, store.ErrInvalidSnapshot):
		s.log.Warn().Err(err).Msg("ignoring invalid saved filters")
	case err != nil:
		s.internalError(w, "failed to load saved filters", err)
		return
	}

	if saved == nil {
		s.jsonResponse(w, http.StatusOK, FiltersResponse{Filters: types.DefaultFilterState()})
		return
	}
	s.jsonResponse(w, http.StatusOK, FiltersResponse{Filters: *saved, Saved: true})
}

func (s *Server) handlePutFilters(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	filters := types.DefaultFilterState()
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		s.badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := filters.Validate(); err != nil {
		s.badRequest(w, fmt.Sprintf("invalid filters: %v", err))
		return
	}

	if err := s.filters.Save(r.Context(), filters); err != nil {
		s.internalError(w, "failed to save filters", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, FiltersResponse{Filters: filters, Saved: true})
}

func (s *Server) handleDeleteFilters(w http.ResponseWriter, r *http.Request) {
	if err := s.filters.Clear(r.Context()); err != nil {
		s.internalError(w, "failed to clear saved filters", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
