package curator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/agentpress/agentpress/pkg/config"
	"github.com/agentpress/agentpress/pkg/domain"
)

// Curator uses an LLM to select and summarize newsletter stories
type Curator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// New creates a new LLM curator
func New(cfg config.LLMConfig) *Curator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		// a stalled provider must fail the generation, not hang a worker
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Curator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for newsletter curation
const defaultSystemPrompt = `You are an editor for a local real-estate agent's weekly email newsletter.
From the provided candidate articles, select the stories most useful to homeowners and buyers in the agent's coverage areas.

Rules:
- Select 8-10 stories total.
- Pinned stories supplied by the agent MUST all be included, verbatim headline and URL.
- Assign each story exactly one category from: market, local, home-tips, finance, community.
- Write a 2-3 sentence summary per story with a local angle for the coverage areas.
- Prefer recent, concrete stories over national think pieces.

Each story in the response must contain:
- headline: the story headline
- summary: 2-3 sentence locally-angled summary
- category: one of the categories above
- url: the story's source URL

Respond with a JSON array of story objects and nothing else.`

// Request contains all inputs for one curation pass
type Request struct {
	Candidates []domain.CandidateArticle
	Pinned     []domain.Story
	Areas      []string
}

// Curate selects and summarizes stories for one newsletter. An empty input
// (no candidates and nothing pinned) yields an empty story list with no
// error; the caller decides that nothing should be sent.
func (c *Curator) Curate(ctx context.Context, req Request) ([]domain.Story, error) {
	if len(req.Candidates) == 0 && len(req.Pinned) == 0 {
		return []domain.Story{}, nil
	}

	// nothing to curate, pinned stories pass through as-is
	if len(req.Candidates) == 0 {
		return normalize(req.Pinned, req.Pinned), nil
	}

	prompt := c.buildPrompt(req)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: c.systemMsg,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		content := resp.Choices[0].Message.Content
		stories, err := ParseStories(content)
		if err == nil {
			return normalize(stories, req.Pinned), nil
		}

		lastErr = err
	}

	return nil, fmt.Errorf("curation failed after 3 attempts: %w", lastErr)
}

// buildPrompt creates the user prompt for the LLM
func (c *Curator) buildPrompt(req Request) string {
	var sb strings.Builder

	if len(req.Areas) > 0 {
		sb.WriteString("Coverage areas: ")
		sb.WriteString(strings.Join(req.Areas, "; "))
		sb.WriteString("\n\n")
	}

	if len(req.Pinned) > 0 {
		sb.WriteString("Pinned stories (must all be included):\n")
		for _, s := range req.Pinned {
			sb.WriteString(fmt.Sprintf("- Headline: %s\n", s.Headline))
			if s.Summary != "" {
				sb.WriteString(fmt.Sprintf("  Summary: %s\n", s.Summary))
			}
			sb.WriteString(fmt.Sprintf("  URL: %s\n", s.URL))
			if s.Category != "" {
				sb.WriteString(fmt.Sprintf("  Category: %s\n", s.Category))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Candidate articles:\n\n")
	for i, a := range req.Candidates {
		sb.WriteString(fmt.Sprintf("%d. Title: %s\n", i+1, a.Title))
		sb.WriteString(fmt.Sprintf("   URL: %s\n", a.Link))
		if a.Area != "" {
			sb.WriteString(fmt.Sprintf("   Area: %s\n", a.Area))
		}
		if !a.Published.IsZero() {
			sb.WriteString(fmt.Sprintf("   Published: %s\n", a.Published.Format("2006-01-02")))
		}
		if a.Snippet != "" {
			// limit snippets to keep the payload bounded, cutting on a rune
			// boundary so the prompt stays valid UTF-8
			snippet := a.Snippet
			if runes := []rune(snippet); len(runes) > 300 {
				snippet = string(runes[:300]) + "..."
			}
			sb.WriteString(fmt.Sprintf("   Snippet: %s\n", snippet))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with a JSON array of story objects.")
	return sb.String()
}

// normalize enforces the output contract on parsed stories: categories are
// mapped into the closed set and every pinned story is present even if the
// model dropped it.
func normalize(stories, pinned []domain.Story) []domain.Story {
	result := make([]domain.Story, 0, len(stories)+len(pinned))
	seen := make(map[string]bool, len(stories))

	for _, s := range stories {
		if strings.TrimSpace(s.Headline) == "" {
			continue
		}
		s.Category = domain.NormalizeCategory(string(s.Category))
		result = append(result, s)
		seen[strings.ToLower(s.Headline)] = true
	}

	for _, p := range pinned {
		if seen[strings.ToLower(p.Headline)] {
			continue
		}
		p.Category = domain.NormalizeCategory(string(p.Category))
		result = append(result, p)
	}

	return result
}
