package domain

import (
	"database/sql"
	"time"
)

// EditionStatus is the lifecycle state of an edition
type EditionStatus string

// edition lifecycle: draft -> preview_sent -> scheduled -> sent, with
// failed absorbing from any non-terminal state
const (
	EditionDraft       EditionStatus = "draft"
	EditionPreviewSent EditionStatus = "preview_sent"
	EditionScheduled   EditionStatus = "scheduled"
	EditionSent        EditionStatus = "sent"
	EditionFailed      EditionStatus = "failed"
)

// Edition is one concrete newsletter instance for one profile. Content is
// immutable once rendered; regeneration creates a new edition.
type Edition struct {
	ID        string        `db:"id"`
	ProfileID string        `db:"profile_id"`
	Status    EditionStatus `db:"status"`
	Subject   string        `db:"subject"`
	HTML      string        `db:"html"`
	Stories   Stories       `db:"stories"`

	ScheduledFor sql.NullTime `db:"scheduled_for"`
	SentAt       sql.NullTime `db:"sent_at"`

	CampaignID         sql.NullString `db:"campaign_id"`
	CampaignActivityID sql.NullString `db:"campaign_activity_id"`
	Error              sql.NullString `db:"error"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Terminal reports whether the edition reached a final state
func (e *Edition) Terminal() bool {
	return e.Status == EditionSent || e.Status == EditionFailed
}

// Open reports whether the edition is awaiting promotion for its cycle
func (e *Edition) Open() bool {
	return e.Status == EditionDraft || e.Status == EditionPreviewSent
}

// Due reports whether the edition's scheduled time has passed
func (e *Edition) Due(now time.Time) bool {
	if !e.ScheduledFor.Valid {
		return false
	}
	return !e.ScheduledFor.Time.After(now)
}
