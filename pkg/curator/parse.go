package curator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentpress/agentpress/pkg/domain"
)

// ParseError indicates the LLM response could not be parsed into stories.
// The pipeline treats it as a failed generation rather than publishing an
// empty newsletter.
type ParseError struct {
	Reason  string
	Snippet string
}

// Error returns the error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse curation response: %s", e.Reason)
}

// ParseStories extracts a story list from free-form LLM output. It tries a
// direct JSON unmarshal first, then falls back to re-parsing the first
// bracketed array substring. Anything else is a *ParseError.
func ParseStories(content string) ([]domain.Story, error) {
	trimmed := strings.TrimSpace(content)

	var stories []domain.Story
	if err := json.Unmarshal([]byte(trimmed), &stories); err == nil {
		return stories, nil
	}

	// models often wrap the array in prose or code fences
	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, &ParseError{Reason: "no json array found in response", Snippet: snippet(trimmed)}
	}

	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &stories); err != nil {
		return nil, &ParseError{Reason: err.Error(), Snippet: snippet(trimmed)}
	}

	return stories, nil
}

// snippet bounds response text kept in errors
func snippet(s string) string {
	if runes := []rune(s); len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return s
}
