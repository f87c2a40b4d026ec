package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/agentpress/agentpress/pkg/domain"
)

// SweepDueSends resolves every edition whose scheduled time has passed to a
// terminal state: the send is re-confirmed with the provider and the edition
// marked sent, or marked failed when confirmation is impossible. The sweep
// only sees preview_sent and scheduled editions, so re-running it over
// already resolved editions is a no-op.
func (s *Scheduler) SweepDueSends(ctx context.Context) (sent, failed int) {
	now := time.Now()

	editions, err := s.editions.ListDue(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] failed to list due editions: %v", err)
		return 0, 0
	}
	if len(editions) == 0 {
		return 0, 0
	}

	lgr.Printf("[INFO] sweeping %d due editions", len(editions))

	for _, e := range editions {
		if err := s.confirmSend(ctx, &e, now); err != nil {
			lgr.Printf("[WARN] edition %s failed to send: %v", e.ID, err)
			s.fail(ctx, e.ID, err.Error())
			failed++
			continue
		}
		sent++
	}

	lgr.Printf("[INFO] sweep completed: %d sent, %d failed", sent, failed)
	return sent, failed
}

// confirmSend re-validates credentials, re-issues the send as immediate, and
// marks the edition sent. A due edition must never stay ambiguous: the caller
// marks it failed on any error so it always reaches a terminal state.
func (s *Scheduler) confirmSend(ctx context.Context, e *domain.Edition, now time.Time) error {
	if !e.CampaignActivityID.Valid {
		return fmt.Errorf("edition has no campaign activity id")
	}

	p, err := s.profiles.Get(ctx, e.ProfileID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	// nil schedule time means "send as soon as possible"; the provider treats
	// re-scheduling an already dispatched campaign as a no-op, so confirming
	// twice cannot double-send
	if err := s.delivery.ScheduleSend(ctx, p, e.CampaignActivityID.String, nil); err != nil {
		return fmt.Errorf("confirm send: %w", err)
	}

	if err := s.editions.MarkSent(ctx, e.ID, now); err != nil {
		return fmt.Errorf("mark edition sent: %w", err)
	}

	if e.CampaignID.Valid {
		if err := s.profiles.SetLastCampaign(ctx, p.ID, e.CampaignID.String, now); err != nil {
			lgr.Printf("[WARN] failed to record last campaign for profile %s: %v", p.ID, err)
		}
	}

	lgr.Printf("[INFO] edition %s sent for profile %s", e.ID, p.Name)
	return nil
}
