package search

import (
	"context"
	"sync"

	"github.com/jonathan/healthjobfinder/internal/llm"
	"google.golang.org/genai"
)

// fakeClient records requests and replays a canned response.
type fakeClient struct {
	mu       sync.Mutex
	requests []*llm.Request
	text     string
	chunks   []*genai.GroundingChunk
	err      error
}

func (f *fakeClient) Generate(_ context.Context, req *llm.Request) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	candidate := &genai.Candidate{
		GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: f.chunks},
	}
	if f.text != "" {
		candidate.Content = genai.NewContentFromText(f.text, genai.RoleModel)
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{candidate}}, nil
}

func (f *fakeClient) GetModel(llm.Purpose) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) lastRequest() *llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func webChunk(title, uri string) *genai.GroundingChunk {
	return &genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: title, URI: uri}}
}
