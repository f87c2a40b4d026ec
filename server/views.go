package server

import (
	"time"

	"github.com/agentpress/agentpress/pkg/domain"
)

// editionView is the JSON shape for editions, flattening nullable columns.
// The rendered HTML body is omitted, it is large and the preview email is
// the intended review surface.
type editionView struct {
	ID           string         `json:"id"`
	ProfileID    string         `json:"profile_id"`
	Status       string         `json:"status"`
	Subject      string         `json:"subject"`
	Stories      []domain.Story `json:"stories"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	CampaignID   string         `json:"campaign_id,omitempty"`
	Error        string         `json:"error,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func newEditionView(e domain.Edition) editionView {
	v := editionView{
		ID:        e.ID,
		ProfileID: e.ProfileID,
		Status:    string(e.Status),
		Subject:   e.Subject,
		Stories:   e.Stories,
		CreatedAt: e.CreatedAt,
	}
	if e.ScheduledFor.Valid {
		t := e.ScheduledFor.Time
		v.ScheduledFor = &t
	}
	if e.SentAt.Valid {
		t := e.SentAt.Time
		v.SentAt = &t
	}
	if e.CampaignID.Valid {
		v.CampaignID = e.CampaignID.String
	}
	if e.Error.Valid {
		v.Error = e.Error.String
	}
	return v
}
