// Package delivery talks to the email-delivery provider (a Constant Contact
// v3 shaped API) on behalf of one profile, hiding the OAuth token lifecycle
// from callers. Every operation retries exactly once after a transparent
// token refresh on 401; a failed refresh is terminal for the profile.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/agentpress/agentpress/pkg/config"
	"github.com/agentpress/agentpress/pkg/domain"
)

//go:generate moq -out mocks/token_store.go -pkg mocks -skip-ensure -fmt goimports . TokenStore

// TokenStore persists refreshed credentials. The persisted token pair is the
// single source of truth; the in-memory copy on the profile is only valid
// for the current call chain.
type TokenStore interface {
	UpdateTokens(ctx context.Context, profileID, accessToken, refreshToken string) error
	SetAccountStatus(ctx context.Context, profileID string, status domain.AccountStatus) error
}

// Campaign identifies a created provider campaign
type Campaign struct {
	ID         string
	ActivityID string
}

// CampaignRequest holds everything needed to create a campaign
type CampaignRequest struct {
	Name      string
	Subject   string
	FromName  string
	FromEmail string
	ReplyTo   string
	HTML      string
}

// Client is the delivery provider integration for all profiles. Refreshes
// for the same profile are serialized with a per-profile mutex; the
// persisted pair is last-writer-wins, which the provider's refresh overlap
// window tolerates.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	store        TokenStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewClient creates a delivery client from config
func NewClient(cfg config.DeliveryConfig, store TokenStore) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		store:        store,
		locks:        make(map[string]*sync.Mutex),
	}
}

// campaign creation payload, provider shape
type campaignPayload struct {
	Name       string                    `json:"name"`
	Activities []campaignActivityPayload `json:"email_campaign_activities"`
}

type campaignActivityPayload struct {
	FormatType  int    `json:"format_type"`
	FromName    string `json:"from_name"`
	FromEmail   string `json:"from_email"`
	ReplyTo     string `json:"reply_to_email"`
	Subject     string `json:"subject"`
	HTMLContent string `json:"html_content"`
}

type campaignResponse struct {
	CampaignID string `json:"campaign_id"`
	Activities []struct {
		CampaignActivityID string `json:"campaign_activity_id"`
	} `json:"campaign_activities"`
}

// CreateCampaign creates a provider campaign with the rendered HTML and
// returns its identifiers
func (c *Client) CreateCampaign(ctx context.Context, p *domain.Profile, req CampaignRequest) (*Campaign, error) {
	payload := campaignPayload{
		Name: req.Name,
		Activities: []campaignActivityPayload{{
			FormatType:  5, // custom HTML
			FromName:    req.FromName,
			FromEmail:   req.FromEmail,
			ReplyTo:     req.ReplyTo,
			Subject:     req.Subject,
			HTMLContent: req.HTML,
		}},
	}

	var resp campaignResponse
	if err := c.do(ctx, p, "create campaign", http.MethodPost, "/emails", payload, &resp); err != nil {
		return nil, err
	}

	campaign := &Campaign{ID: resp.CampaignID}
	if len(resp.Activities) > 0 {
		campaign.ActivityID = resp.Activities[0].CampaignActivityID
	}
	if campaign.ActivityID == "" {
		return nil, &APIError{Op: "create campaign", StatusCode: http.StatusOK, Body: "response carries no campaign activity id"}
	}
	return campaign, nil
}

// SendPreview sends a test render of the campaign to the given recipients
func (c *Client) SendPreview(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
	payload := map[string]any{
		"email_addresses":  recipients,
		"personal_message": "Preview of your upcoming newsletter.",
	}
	path := fmt.Sprintf("/emails/activities/%s/tests", url.PathEscape(activityID))
	return c.do(ctx, p, "send preview", http.MethodPost, path, payload, nil)
}

// ScheduleSend schedules the campaign for the given UTC time; a nil time
// means send as soon as possible
func (c *Client) ScheduleSend(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
	scheduledDate := "0" // provider semantics for "send now"
	if when != nil {
		scheduledDate = when.UTC().Format(time.RFC3339)
	}
	payload := map[string]any{"scheduled_date": scheduledDate}
	path := fmt.Sprintf("/emails/activities/%s/schedules", url.PathEscape(activityID))
	return c.do(ctx, p, "schedule send", http.MethodPost, path, payload, nil)
}

// do performs one authenticated provider call. On 401 it refreshes the
// token pair and retries the original call exactly once.
func (c *Client) do(ctx context.Context, p *domain.Profile, op, method, path string, payload, out any) error {
	status, body, err := c.attempt(ctx, p.AccessToken, method, path, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if status == http.StatusUnauthorized {
		if err := c.refresh(ctx, p); err != nil {
			return &AuthError{ProfileID: p.ID, Err: err}
		}
		status, body, err = c.attempt(ctx, p.AccessToken, method, path, payload)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if status < 200 || status > 299 {
		return &APIError{Op: op, StatusCode: status, Body: string(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// attempt performs a single HTTP request with the given bearer token
func (c *Client) attempt(ctx context.Context, token, method, path string, payload any) (status int, body []byte, err error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only response body

	body, err = io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// refresh exchanges the profile's refresh token for a new pair, persists it
// and updates the in-memory profile. Refreshes for one profile are
// serialized; a failure marks the account status as error.
func (c *Client) refresh(ctx context.Context, p *domain.Profile) error {
	lock := c.profileLock(p.ID)
	lock.Lock()
	defer lock.Unlock()

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", p.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only response body

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("decode token response: %w", err)
	}
	if tokens.AccessToken == "" {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("token response carries no access token")
	}

	p.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		p.RefreshToken = tokens.RefreshToken
	}

	if err := c.store.UpdateTokens(ctx, p.ID, p.AccessToken, p.RefreshToken); err != nil {
		c.markAuthFailed(ctx, p.ID)
		return fmt.Errorf("persist refreshed tokens: %w", err)
	}

	lgr.Printf("[INFO] refreshed delivery tokens for profile %s", p.ID)
	return nil
}

// markAuthFailed records the terminal auth state, best effort
func (c *Client) markAuthFailed(ctx context.Context, profileID string) {
	if err := c.store.SetAccountStatus(ctx, profileID, domain.AccountError); err != nil {
		lgr.Printf("[WARN] failed to mark account status for profile %s: %v", profileID, err)
	}
}

// profileLock returns the mutex serializing refreshes for one profile
func (c *Client) profileLock(profileID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.locks[profileID]; !ok {
		c.locks[profileID] = &sync.Mutex{}
	}
	return c.locks[profileID]
}
