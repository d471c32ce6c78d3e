package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/healthjobfinder/internal/search"
	"github.com/jonathan/healthjobfinder/internal/types"
)

// SSE event names.
const (
	EventState  = "state"
	EventResult = "result"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// StateEvent is the payload of a state event.
type StateEvent struct {
	RequestID string       `json:"requestId"`
	State     search.State `json:"state"`
	Loading   bool         `json:"loading"`
}

// WriteState sends a lifecycle transition.
func (s *SSEWriter) WriteState(requestID string, state search.State, loading bool) error {
	return s.WriteEvent(EventState, StateEvent{RequestID: requestID, State: state, Loading: loading})
}

// WriteResult sends the final presentation state.
func (s *SSEWriter) WriteResult(result types.SearchResult) error {
	return s.WriteEvent(EventResult, result)
}
