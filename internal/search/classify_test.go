package search

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/jonathan/healthjobfinder/internal/parsing"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Messages(t *testing.T) {
	tests := []struct {
		msg  string
		want types.ErrorType
	}{
		{msg: "Failed to fetch", want: types.ErrorTypeNetwork},
		{msg: "invalid JSON format", want: types.ErrorTypeParsing},
		{msg: "API key invalid", want: types.ErrorTypeAPI},
		{msg: "boom", want: types.ErrorTypeUnknown},
		{msg: "Could not find markdown block", want: types.ErrorTypeParsing},
		{msg: "network unreachable", want: types.ErrorTypeNetwork},
		{msg: "failed to fetch JSON", want: types.ErrorTypeParsing},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := Classify(errors.New(tt.msg))
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.msg, got.Message)
		})
	}
}

func TestClassify_EmptyAndNil(t *testing.T) {
	got := Classify(nil)
	assert.Equal(t, types.ErrorTypeUnknown, got.Type)
	assert.Equal(t, UnknownErrorMessage, got.Message)

	got = Classify(errors.New(""))
	assert.Equal(t, types.ErrorTypeUnknown, got.Type)
	assert.Equal(t, UnknownErrorMessage, got.Message)
}

func TestClassify_TypedErrors(t *testing.T) {
	dialErr := &url.Error{
		Op:  "Post",
		URL: "https://generativelanguage.googleapis.com/v1beta/models",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
	}

	tests := []struct {
		name string
		err  error
		want types.ErrorType
	}{
		{
			name: "resume read failure",
			err:  &parsing.ParseError{Message: `failed to read resume file "cv.pdf"`},
			want: types.ErrorTypeParsing,
		},
		{
			name: "transport failure behind an API wrapper",
			err:  callError("job search request", dialErr),
			want: types.ErrorTypeNetwork,
		},
		{
			name: "service rejected the call",
			err:  callError("job search request", errors.New("Error 403, Message: permission denied")),
			want: types.ErrorTypeAPI,
		},
		{
			name: "upstream message mentioning JSON",
			err:  callError("job search request", errors.New("Error 400, Message: Invalid JSON payload received")),
			want: types.ErrorTypeParsing,
		},
		{
			name: "model produced no text",
			err:  &parsing.ParseError{Message: "model returned no usable text"},
			want: types.ErrorTypeParsing,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("generate: %w", context.DeadlineExceeded),
			want: types.ErrorTypeNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err).Type)
		})
	}
}

func TestClassify_AppErrorPassthrough(t *testing.T) {
	orig := &types.AppError{Type: types.ErrorTypeAPI, Message: "quota"}
	assert.Same(t, orig, Classify(fmt.Errorf("wrapped: %w", orig)))
}

func TestClassify_MessageRulesBeforeTypes(t *testing.T) {
	// A typed wrapper does not override what the message says.
	err := &parsing.APICallError{Message: "job search request", Cause: errors.New("Invalid JSON payload received")}
	assert.Equal(t, types.ErrorTypeParsing, Classify(err).Type)
	assert.Equal(t, ClassifyMessage(err.Error()), Classify(err).Type)

	// A parse error whose text matches no rule still counts as parsing.
	readErr := &parsing.ParseError{Message: `failed to read resume file "cv.pdf"`, Cause: errors.New("EOF")}
	assert.Equal(t, types.ErrorTypeUnknown, ClassifyMessage(readErr.Error()))
	assert.Equal(t, types.ErrorTypeParsing, Classify(readErr).Type)
}
