package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/agentpress/agentpress/pkg/config"
	"github.com/agentpress/agentpress/pkg/domain"
)

// titlePrefixLen is how much of a normalized title participates in dedup
const titlePrefixLen = 50

// Searcher queries a public news aggregator's RSS search endpoint for
// candidate articles per coverage area. Fetch failures for one area never
// fail the overall lookup, they just produce no articles for that area.
type Searcher struct {
	client    *http.Client
	endpoint  string
	pageSize  int
	maxTotal  int
	freshness time.Duration
	userAgent string
}

// NewSearcher creates a news searcher from config
func NewSearcher(cfg config.NewsConfig) *Searcher {
	return &Searcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoint:  cfg.Endpoint,
		pageSize:  cfg.PageSize,
		maxTotal:  cfg.MaxTotal,
		freshness: cfg.Freshness,
		userAgent: cfg.UserAgent,
	}
}

// Fetch returns deduplicated recent candidate articles across all coverage
// areas, capped at the configured total. If every area comes back empty a
// single broader query is tried before giving up with an empty list. An
// empty result is not an error.
func (s *Searcher) Fetch(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle {
	// query areas concurrently, keeping per-area results in area order so
	// dedup stays deterministic
	results := make([][]domain.CandidateArticle, len(areas))
	g, gctx := errgroup.WithContext(ctx)
	for i, area := range areas {
		g.Go(func() error {
			query := fmt.Sprintf("%s real estate housing market", area.Label())
			articles, err := s.search(gctx, query, area.Label())
			if err != nil {
				lgr.Printf("[WARN] news search failed for %q: %v", area.Label(), err)
				return nil // one area's failure never fails the lookup
			}
			results[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	var all []domain.CandidateArticle
	for _, articles := range results {
		all = append(all, articles...)
	}

	// fallback to a broader query when nothing came back at all
	if len(all) == 0 && len(areas) > 0 {
		query := fmt.Sprintf("%s real estate news", areas[0].State)
		articles, err := s.search(ctx, query, areas[0].State)
		if err != nil {
			lgr.Printf("[WARN] fallback news search failed: %v", err)
			return []domain.CandidateArticle{}
		}
		all = articles
	}

	deduped := dedupe(all)
	if len(deduped) > s.maxTotal {
		deduped = deduped[:s.maxTotal]
	}
	return deduped
}

// search issues one query against the RSS search endpoint
func (s *Searcher) search(ctx context.Context, query, areaLabel string) ([]domain.CandidateArticle, error) {
	reqURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", s.endpoint, url.QueryEscape(query))

	body, err := s.fetch(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer body.Close() //nolint:errcheck // read-only response body

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	cutoff := time.Now().Add(-s.freshness)
	articles := make([]domain.CandidateArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) >= s.pageSize {
			break
		}

		article := domain.CandidateArticle{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Description,
			Area:    areaLabel,
		}

		if item.PublishedParsed != nil {
			article.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			article.Published = *item.UpdatedParsed
		}

		// skip stale articles, but keep ones without a parseable date
		if !article.Published.IsZero() && article.Published.Before(cutoff) {
			continue
		}

		articles = append(articles, article)
	}

	return articles, nil
}

// fetch retrieves content from a URL
func (s *Searcher) fetch(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// dedupe drops articles whose normalized title prefix was already seen,
// first occurrence wins
func dedupe(articles []domain.CandidateArticle) []domain.CandidateArticle {
	seen := make(map[string]bool, len(articles))
	result := make([]domain.CandidateArticle, 0, len(articles))

	for _, a := range articles {
		key := normalizeTitle(a.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, a)
	}
	return result
}

// normalizeTitle lowercases, collapses whitespace and truncates the title
// to a fixed prefix for comparison, never splitting a multi-byte rune
func normalizeTitle(title string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(title), " "))
	if runes := []rune(normalized); len(runes) > titlePrefixLen {
		normalized = string(runes[:titlePrefixLen])
	}
	return normalized
}
