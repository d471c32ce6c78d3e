package search

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jonathan/healthjobfinder/internal/parsing"
	"github.com/jonathan/healthjobfinder/internal/types"
)

// UnknownErrorMessage is shown when a failure carries no message at all.
const UnknownErrorMessage = "An unknown error occurred."

type errorRule struct {
	errType  types.ErrorType
	patterns []string
}

// errorRules is checked in order against the lower-cased error text; first match wins.
var errorRules = []errorRule{
	{errType: types.ErrorTypeParsing, patterns: []string{"json", "markdown"}},
	{errType: types.ErrorTypeNetwork, patterns: []string{"fetch", "network"}},
	{errType: types.ErrorTypeAPI, patterns: []string{"api"}},
}

// Classify maps a failure from a search flow onto an AppError.
//
// The substring rules on the message decide first. Only when they find nothing
// does the error chain's type pick the kind, so a resume read failure or a bare
// deadline still lands in a useful bucket.
func Classify(err error) *types.AppError {
	if err == nil {
		return &types.AppError{Type: types.ErrorTypeUnknown, Message: UnknownErrorMessage}
	}

	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		return &types.AppError{Type: types.ErrorTypeUnknown, Message: UnknownErrorMessage}
	}

	t := ClassifyMessage(msg)
	if t == types.ErrorTypeUnknown {
		if byType, ok := classifyByType(err); ok {
			t = byType
		}
	}
	return &types.AppError{Type: t, Message: msg}
}

// ClassifyMessage applies the substring rules alone.
func ClassifyMessage(msg string) types.ErrorType {
	lower := strings.ToLower(msg)
	for _, rule := range errorRules {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return rule.errType
			}
		}
	}
	return types.ErrorTypeUnknown
}

func classifyByType(err error) (types.ErrorType, bool) {
	var parseErr *parsing.ParseError
	if errors.As(err, &parseErr) {
		return types.ErrorTypeParsing, true
	}

	if isTransportError(err) {
		return types.ErrorTypeNetwork, true
	}

	var apiErr *parsing.APICallError
	if errors.As(err, &apiErr) {
		return types.ErrorTypeAPI, true
	}

	return "", false
}

// isTransportError reports whether err comes from the connection rather than the service.
func isTransportError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}
