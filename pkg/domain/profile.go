package domain

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AccountStatus reflects the state of a profile's delivery-provider account
type AccountStatus string

// delivery account statuses
const (
	AccountActive       AccountStatus = "active"
	AccountWrongAccount AccountStatus = "wrong_account"
	AccountExpired      AccountStatus = "expired"
	AccountError        AccountStatus = "error"
)

// Profile is one agent's newsletter configuration and delivery credentials
type Profile struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	Brokerage   string `db:"brokerage"`
	Phone       string `db:"phone"`
	HeadshotURL string `db:"headshot_url"`
	LogoURL     string `db:"logo_url"`
	BrandColor  string `db:"brand_color"`

	Areas CoverageAreas `db:"areas"`

	SendDay          SendDay `db:"send_day"`
	SendHour         int     `db:"send_hour"`
	SendMinute       int     `db:"send_minute"`
	UTCOffsetMinutes int     `db:"utc_offset_minutes"`

	AccessToken  string        `db:"access_token"`
	RefreshToken string        `db:"refresh_token"`
	CCStatus     AccountStatus `db:"cc_status"`

	LastCampaignID sql.NullString `db:"last_campaign_id"`
	LastSentAt     sql.NullTime   `db:"last_sent_at"`

	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NextSend computes the profile's next send time, always strictly in the future
func (p *Profile) NextSend(now time.Time) time.Time {
	return NextSendTime(p.SendDay, p.SendHour, p.SendMinute, p.UTCOffsetMinutes, now)
}

// AreaLabels returns the display labels of all coverage areas
func (p *Profile) AreaLabels() []string {
	labels := make([]string, 0, len(p.Areas))
	for _, a := range p.Areas {
		labels = append(labels, a.Label())
	}
	return labels
}

// CoverageAreas is a JSON-encoded list of coverage areas stored in one column
type CoverageAreas []CoverageArea

// Value implements driver.Valuer
func (a CoverageAreas) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal coverage areas: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (a *CoverageAreas) Scan(src any) error {
	return scanJSON(a, src, "coverage areas")
}

// Stories is a JSON-encoded story list stored in one column
type Stories []Story

// Value implements driver.Valuer
func (s Stories) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal stories: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *Stories) Scan(src any) error {
	return scanJSON(s, src, "stories")
}

// scanJSON unmarshals a TEXT/BLOB column into dst
func scanJSON(dst any, src any, what string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(v), dst)
	case []byte:
		return json.Unmarshal(v, dst)
	default:
		return fmt.Errorf("unexpected %s column type %T", what, src)
	}
}

// SavedStory is an agent-pinned story guaranteed inclusion in the next
// curation pass. Consuming it into an edition marks it used; historical
// editions keep their own snapshot.
type SavedStory struct {
	ID            string         `db:"id" json:"id"`
	ProfileID     string         `db:"profile_id" json:"profile_id"`
	Headline      string         `db:"headline" json:"headline"`
	Summary       string         `db:"summary" json:"summary"`
	URL           string         `db:"url" json:"url"`
	Category      Category       `db:"category" json:"category"`
	UsedInEdition sql.NullString `db:"used_in_edition" json:"-"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// Story converts the saved story to its newsletter form
func (s *SavedStory) Story() Story {
	return Story{
		Headline: s.Headline,
		Summary:  s.Summary,
		Category: NormalizeCategory(string(s.Category)),
		URL:      s.URL,
	}
}
