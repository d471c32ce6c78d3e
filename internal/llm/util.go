// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/healthjobfinder/internal/parsing"
)

// jsonFence matches the first ```json fenced block; only that block is considered.
var jsonFence = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// Messages carried by ParseError; both mention JSON so the error classifier
// files them under parsing.
const (
	MsgNoJSONBlock       = "no JSON block found in the model response"
	MsgInvalidJSONFormat = "the model returned invalid JSON format"
)

// ExtractJSONBlock returns the body of the first ```json fence in text.
// A fence with an empty body counts as missing.
func ExtractJSONBlock(text string) (string, bool) {
	m := jsonFence.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// ParseJSONFromMarkdown decodes the first ```json fenced block in text.
// Numbers decode as json.Number so integer values survive unchanged.
func ParseJSONFromMarkdown(text string) (any, error) {
	block, ok := ExtractJSONBlock(text)
	if !ok {
		return nil, &parsing.ParseError{Message: MsgNoJSONBlock}
	}

	dec := json.NewDecoder(strings.NewReader(block))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &parsing.ParseError{Message: MsgInvalidJSONFormat, Cause: err}
	}
	// Anything after the first value means the block was not a single JSON document.
	if strings.TrimSpace(block[dec.InputOffset():]) != "" {
		return nil, &parsing.ParseError{Message: MsgInvalidJSONFormat}
	}
	return v, nil
}
