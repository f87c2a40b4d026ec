// Package render converts a profile and curated stories into a
// self-contained HTML email body. Rendering is a pure function: no network,
// no clock, byte-identical output for identical inputs.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agentpress/agentpress/pkg/domain"
)

// defaultBrandColor is used when a profile has no brand color configured
const defaultBrandColor = "#1a4d8f"

// sanitizer strips any markup from curated text; story summaries originate
// from LLM output and feed snippets and are never trusted as HTML
var sanitizer = bluemonday.StrictPolicy()

// storyView is one story prepared for the template
type storyView struct {
	Headline string
	Summary  string
	Category string
	URL      string
}

// pageView is the complete template payload
type pageView struct {
	Name        string
	Brokerage   string
	Email       string
	Phone       string
	HeadshotURL string
	LogoURL     string
	BrandColor  string
	DateLabel   string
	TopStories  []storyView
	QuickHits   []storyView
}

// Subject builds the campaign subject line for an edition
func Subject(p *domain.Profile, editionDate time.Time) string {
	area := "Your Area"
	if len(p.Areas) > 0 {
		area = p.Areas[0].Label()
	}
	return fmt.Sprintf("%s Real Estate Update - %s", area, editionDate.Format("January 2, 2006"))
}

// Render produces the newsletter HTML for a profile, story list and edition
// date. The first three stories get the large presentation, the rest a
// compact list. Optional profile fields simply omit their blocks.
func Render(p *domain.Profile, stories []domain.Story, editionDate time.Time) (string, error) {
	view := pageView{
		Name:        p.Name,
		Brokerage:   p.Brokerage,
		Email:       p.Email,
		Phone:       p.Phone,
		HeadshotURL: p.HeadshotURL,
		LogoURL:     p.LogoURL,
		BrandColor:  p.BrandColor,
		DateLabel:   editionDate.Format("January 2, 2006"),
	}
	if view.BrandColor == "" {
		view.BrandColor = defaultBrandColor
	}

	for i, s := range stories {
		sv := storyView{
			Headline: sanitizer.Sanitize(s.Headline),
			Summary:  sanitizer.Sanitize(s.Summary),
			Category: categoryLabel(s.Category),
			URL:      s.URL,
		}
		if i < 3 {
			view.TopStories = append(view.TopStories, sv)
		} else {
			view.QuickHits = append(view.QuickHits, sv)
		}
	}

	var sb strings.Builder
	if err := newsletterTmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("execute newsletter template: %w", err)
	}
	return sb.String(), nil
}

// categoryLabel maps a category to its display form
func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryMarket:
		return "Market Trends"
	case domain.CategoryLocal:
		return "Local News"
	case domain.CategoryHomeTips:
		return "Home Tips"
	case domain.CategoryFinance:
		return "Finance"
	case domain.CategoryCommunity:
		return "Community"
	default:
		return "Local News"
	}
}

var newsletterTmpl = template.Must(template.New("newsletter").Parse(newsletterHTML))
