package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/healthjobfinder/internal/parsing"
	"github.com/jonathan/healthjobfinder/internal/search"
	"github.com/jonathan/healthjobfinder/internal/types"
)

// errorTypeValidation marks client mistakes. It never reaches the search
// state, which only carries classified upstream failures.
const errorTypeValidation = "validation"

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Title   string `json:"title"`
}

// ErrorResponse wraps ErrorDetail under an "error" key.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HTTPStatus returns the status code for a classified search failure.
func HTTPStatus(appErr *types.AppError, cause error) int {
	switch appErr.Type {
	case types.ErrorTypeNetwork:
		if errors.Is(cause, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	case types.ErrorTypeParsing, types.ErrorTypeAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 validation error.
func (s *Server) badRequest(w http.ResponseWriter, message string) {
	s.jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
		Type:    errorTypeValidation,
		Message: message,
		Title:   "Invalid Request",
	}})
}

// searchError maps an error from the search service onto a response.
func (s *Server) searchError(w http.ResponseWriter, err error) {
	var valErr *parsing.ValidationError
	if errors.As(err, &valErr) {
		s.badRequest(w, valErr.Error())
		return
	}

	appErr := search.Classify(err)
	s.log.Error().Err(err).Str("error_type", string(appErr.Type)).Msg("search request failed")
	s.jsonResponse(w, HTTPStatus(appErr, err), ErrorResponse{Error: ErrorDetail{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Title:   appErr.Title(),
	}})
}

// internalError writes a 500 for failures outside the search flows.
func (s *Server) internalError(w http.ResponseWriter, message string, err error) {
	s.log.Error().Err(err).Msg(message)
	s.jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
		Type:    string(types.ErrorTypeUnknown),
		Message: message,
		Title:   (&types.AppError{Type: types.ErrorTypeUnknown}).Title(),
	}})
}
