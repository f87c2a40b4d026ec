package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpress/agentpress/pkg/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:          "p1",
		Name:        "Dana Smith",
		Email:       "dana@example.com",
		Brokerage:   "Hilltop Realty",
		Phone:       "(512) 555-0100",
		HeadshotURL: "https://cdn.example.com/dana.jpg",
		LogoURL:     "https://cdn.example.com/hilltop.png",
		BrandColor:  "#aa3366",
		Areas:       domain.CoverageAreas{{City: "Austin", State: "TX"}},
	}
}

func testStories(n int) []domain.Story {
	stories := make([]domain.Story, 0, n)
	for i := 0; i < n; i++ {
		stories = append(stories, domain.Story{
			Headline: fmt.Sprintf("Story headline %d", i+1),
			Summary:  fmt.Sprintf("Summary text for story %d. Second sentence here.", i+1),
			Category: domain.CategoryMarket,
			URL:      fmt.Sprintf("https://example.com/%d", i+1),
		})
	}
	return stories
}

func TestRender_Deterministic(t *testing.T) {
	p := testProfile()
	stories := testStories(8)
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	first, err := Render(p, stories, date)
	require.NoError(t, err)
	second, err := Render(p, stories, date)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical HTML")
}

func TestRender_Sections(t *testing.T) {
	html, err := Render(testProfile(), testStories(8), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, html, "Top Stories")
	assert.Contains(t, html, "Quick Hits")
	assert.Contains(t, html, "June 16, 2025")

	// first three stories rendered large, the rest as quick hits
	assert.Contains(t, html, "Story headline 1")
	assert.Contains(t, html, "Summary text for story 3.")
	assert.NotContains(t, html, "Summary text for story 4.", "quick hits carry no summary")
	assert.Contains(t, html, "Story headline 8")

	// identity block and footer
	assert.Contains(t, html, "Dana Smith")
	assert.Contains(t, html, "Hilltop Realty")
	assert.Contains(t, html, "(512) 555-0100")
	assert.Contains(t, html, "dana@example.com")
	assert.Contains(t, html, "https://cdn.example.com/dana.jpg")

	// brand color used as accent
	assert.Contains(t, html, "#aa3366")

	// self-contained: no external stylesheet
	assert.NotContains(t, html, "<link")
}

func TestRender_OptionalFieldsOmitted(t *testing.T) {
	p := testProfile()
	p.HeadshotURL = ""
	p.LogoURL = ""
	p.Phone = ""
	p.Brokerage = ""

	html, err := Render(p, testStories(2), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotContains(t, html, "<img", "no images without headshot/logo")
	assert.NotContains(t, html, "(512)")
	assert.Contains(t, html, "Dana Smith")
}

func TestRender_DefaultBrandColor(t *testing.T) {
	p := testProfile()
	p.BrandColor = ""

	html, err := Render(p, testStories(1), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, html, defaultBrandColor)
}

func TestRender_FewStories(t *testing.T) {
	html, err := Render(testProfile(), testStories(2), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, html, "Top Stories")
	assert.NotContains(t, html, "Quick Hits", "no quick hits section with under four stories")
}

func TestRender_SanitizesStoryText(t *testing.T) {
	stories := []domain.Story{{
		Headline: `Breaking <script>alert("x")</script> news`,
		Summary:  `Summary with <img src="http://evil.example/t.gif"> tracker`,
		Category: domain.CategoryLocal,
		URL:      "https://example.com/1",
	}}

	html, err := Render(testProfile(), stories, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "evil.example")
	assert.Contains(t, html, "Breaking")
}

func TestSubject(t *testing.T) {
	p := testProfile()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Austin, TX Real Estate Update - June 16, 2025", Subject(p, date))

	p.Areas = nil
	assert.True(t, strings.HasPrefix(Subject(p, date), "Your Area"))
}
