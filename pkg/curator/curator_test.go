package curator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpress/agentpress/pkg/config"
	"github.com/agentpress/agentpress/pkg/domain"
)

// llmServer returns an httptest server speaking the chat-completions shape,
// answering each request with the next canned content in order
func llmServer(t *testing.T, contents ...string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		content := contents[len(contents)-1]
		if calls < len(contents) {
			content = contents[calls]
		}
		calls++

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	return srv, &calls
}

func testLLMConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    endpoint + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.4,
		MaxTokens:   2000,
	}
}

func candidates() []domain.CandidateArticle {
	return []domain.CandidateArticle{
		{Title: "Austin home prices cool", Link: "https://example.com/1", Snippet: "prices down 2%", Area: "Austin, TX"},
		{Title: "New school bond approved", Link: "https://example.com/2", Snippet: "bond passes", Area: "Austin, TX"},
	}
}

func TestCurator_Curate(t *testing.T) {
	srv, _ := llmServer(t, `Here are the selected stories:

[
  {"headline": "Austin home prices cool", "summary": "Median prices dipped 2% this month. Buyers in Austin gain leverage heading into fall.", "category": "market", "url": "https://example.com/1"},
  {"headline": "New school bond approved", "summary": "Voters approved a new school bond. Families near the district can expect construction next year.", "category": "Community News", "url": "https://example.com/2"}
]`)
	defer srv.Close()

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{Candidates: candidates(), Areas: []string{"Austin, TX"}})

	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "Austin home prices cool", stories[0].Headline)
	assert.Equal(t, domain.CategoryMarket, stories[0].Category)
	// unknown category text normalized into the closed set
	assert.Equal(t, domain.CategoryLocal, stories[1].Category)
}

func TestCurator_Curate_PinnedAlwaysIncluded(t *testing.T) {
	// model response drops the pinned story
	srv, _ := llmServer(t, `[
  {"headline": "Austin home prices cool", "summary": "Prices dipped.", "category": "market", "url": "https://example.com/1"}
]`)
	defer srv.Close()

	pinned := []domain.Story{{
		Headline: "Open house this Saturday",
		Summary:  "Join us at 123 Main St.",
		Category: domain.CategoryCommunity,
		URL:      "https://example.com/open-house",
	}}

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{Candidates: candidates(), Pinned: pinned})

	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "Open house this Saturday", stories[1].Headline)
}

func TestCurator_Curate_PinnedOnlyNoLLMCall(t *testing.T) {
	srv, calls := llmServer(t, `should not be called`)
	defer srv.Close()

	pinned := []domain.Story{{Headline: "Open house this Saturday", URL: "https://example.com/oh", Category: "community"}}

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{Pinned: pinned})

	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Open house this Saturday", stories[0].Headline)
	assert.Equal(t, 0, *calls, "no candidates means no LLM request")
}

func TestCurator_Curate_EmptyInputs(t *testing.T) {
	srv, calls := llmServer(t, `should not be called`)
	defer srv.Close()

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{})

	require.NoError(t, err)
	assert.Empty(t, stories)
	assert.Equal(t, 0, *calls)
}

func TestCurator_Curate_RetriesOnBadJSON(t *testing.T) {
	srv, calls := llmServer(t,
		`not json at all`,
		`[{"headline": "Austin home prices cool", "summary": "s", "category": "market", "url": "https://example.com/1"}]`,
	)
	defer srv.Close()

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{Candidates: candidates()})

	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, 2, *calls)
}

func TestCurator_Curate_ParseFailureSurfaced(t *testing.T) {
	srv, calls := llmServer(t, `still not json`)
	defer srv.Close()

	c := New(testLLMConfig(srv.URL))
	stories, err := c.Curate(context.Background(), Request{Candidates: candidates()})

	require.Error(t, err)
	assert.Nil(t, stories)
	assert.Equal(t, 3, *calls, "parse errors retried 3 times")

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestCurator_Curate_TimeoutEnforced(t *testing.T) {
	// provider stalls well past the configured timeout
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
	}))
	defer srv.Close()

	cfg := testLLMConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	c := New(cfg)
	start := time.Now()
	stories, err := c.Curate(context.Background(), Request{Candidates: candidates()})

	require.Error(t, err, "stalled provider must fail the curation, not hang")
	assert.Nil(t, stories)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "call aborted at the configured timeout")
}

func TestCurator_BuildPrompt_TruncatesSnippetOnRuneBoundary(t *testing.T) {
	c := New(testLLMConfig("http://localhost"))

	// long snippet of multi-byte runes crossing the truncation point
	long := strings.Repeat("ü", 400)
	prompt := c.buildPrompt(Request{
		Candidates: []domain.CandidateArticle{{Title: "Wohnungsmarkt kühlt ab", Link: "https://example.com/1", Snippet: long}},
	})

	assert.True(t, utf8.ValidString(prompt), "snippet truncation must not split a rune")
	assert.Contains(t, prompt, strings.Repeat("ü", 300)+"...")
	assert.NotContains(t, prompt, strings.Repeat("ü", 301))
}

func TestParseStories(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "plain array",
			content: `[{"headline":"a","summary":"s","category":"market","url":"u"}]`,
			want:    1,
		},
		{
			name: "array wrapped in prose and fences",
			content: "Sure, here you go:\n```json\n" +
				`[{"headline":"a","summary":"s","category":"market","url":"u"},{"headline":"b","summary":"s","category":"local","url":"u2"}]` +
				"\n```",
			want: 2,
		},
		{name: "no array", content: "I could not find any stories.", wantErr: true},
		{name: "broken json inside brackets", content: `[{"headline": }]`, wantErr: true},
		{name: "empty array", content: `[]`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stories, err := ParseStories(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
				return
			}
			require.NoError(t, err)
			assert.Len(t, stories, tt.want)
		})
	}
}
