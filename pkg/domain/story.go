package domain

import (
	"strings"
	"time"
)

// Category is the closed set of story categories used in a newsletter.
type Category string

// known story categories
const (
	CategoryMarket    Category = "market"
	CategoryLocal     Category = "local"
	CategoryHomeTips  Category = "home-tips"
	CategoryFinance   Category = "finance"
	CategoryCommunity Category = "community"
)

// Categories lists all valid categories in a fixed order.
func Categories() []Category {
	return []Category{CategoryMarket, CategoryLocal, CategoryHomeTips, CategoryFinance, CategoryCommunity}
}

// NormalizeCategory maps free-form category text to the closed set,
// falling back to CategoryLocal for anything unrecognized.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return known
		}
	}
	return CategoryLocal
}

// Story is a curated, summarized news item embedded in an edition.
// Immutable once part of an edition.
type Story struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Category Category `json:"category"`
	URL      string   `json:"url"`
}

// CandidateArticle is a raw article fetched from the news source,
// consumed by the curator and never persisted.
type CandidateArticle struct {
	Title     string
	Link      string
	Published time.Time
	Snippet   string
	Area      string
}

// CoverageArea is one geographic area an agent covers.
type CoverageArea struct {
	City   string `json:"city"`
	State  string `json:"state"`
	County string `json:"county,omitempty"`
}

// Label returns a human-readable form like "Austin, TX" used in
// search queries and prompts.
func (a CoverageArea) Label() string {
	if a.City == "" {
		return a.State
	}
	return a.City + ", " + a.State
}
