package pipeline

import (
	"fmt"
	"strings"

	"animagen/internal/domain"
)

// ExtractJSON pulls a JSON object or array out of free-form model output. It
// takes the first `{` or `[` and cuts to the last closing character of the
// same family; it is a heuristic, not a parser, and assumes the output holds
// exactly one JSON payload with no trailing braces in the surrounding prose.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	start := strings.IndexAny(trimmed, "{[")
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object or array found", domain.ErrMalformedResponse)
	}
	closer := "}"
	if trimmed[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(trimmed, closer)
	if end < start {
		return "", fmt.Errorf("%w: unterminated JSON payload", domain.ErrMalformedResponse)
	}
	return trimmed[start : end+1], nil
}

// StripCodeFence removes a leading markdown fence line and the trailing
// closing fence, returning the text unchanged when it is not fenced.
// Idempotent: stripped text no longer starts with a fence.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		// fence marker with no body
		return ""
	}
	trimmed = strings.TrimSpace(trimmed)
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
	}
	return trimmed
}
