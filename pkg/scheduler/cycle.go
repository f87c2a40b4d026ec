package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/agentpress/agentpress/pkg/curator"
	"github.com/agentpress/agentpress/pkg/delivery"
	"github.com/agentpress/agentpress/pkg/domain"
	"github.com/agentpress/agentpress/pkg/render"
)

// Summary reports the outcome of one scheduler cycle across all profiles
type Summary struct {
	Generated int               `json:"generated"`
	Promoted  int               `json:"promoted"`
	Skipped   int               `json:"skipped"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// RunCycle evaluates every active profile once. Profiles run concurrently up
// to the worker limit; one profile's failure never aborts the rest of the
// batch, it is recorded in the summary instead.
func (s *Scheduler) RunCycle(ctx context.Context) Summary {
	now := time.Now()
	summary := Summary{Errors: map[string]string{}}

	profiles, err := s.profiles.ListActive(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list active profiles: %v", err)
		summary.Errors[""] = err.Error()
		return summary
	}

	lgr.Printf("[INFO] running cycle for %d profiles", len(profiles))

	sem := make(chan struct{}, s.maxWorkers)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, p := range profiles {
		wg.Add(1)
		go func(profile domain.Profile) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			outcome, err := s.processProfile(ctx, &profile, now)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				summary.Errors[profile.ID] = err.Error()
				return
			}
			switch outcome {
			case ActionGenerate:
				summary.Generated++
			case ActionPromote:
				summary.Promoted++
			default:
				summary.Skipped++
			}
		}(p)
	}

	wg.Wait()
	lgr.Printf("[INFO] cycle completed: generated %d, promoted %d, skipped %d, failed %d",
		summary.Generated, summary.Promoted, summary.Skipped, summary.Failed)
	return summary
}

// GenerateNow forces edition generation for one profile, ignoring the send-day
// window. An edition already in flight is promoted instead of generating a
// second; one already scheduled is left alone.
func (s *Scheduler) GenerateNow(ctx context.Context, profileID string) error {
	p, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	open, err := s.editions.GetOpen(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("get open edition: %w", err)
	}
	if open != nil {
		return s.promote(ctx, p, open)
	}

	_, err = s.generate(ctx, p, time.Now())
	return err
}

// processProfile runs the decided action for one profile. The returned action
// reflects what actually happened: a generation window with nothing worth
// sending reports a skip.
func (s *Scheduler) processProfile(ctx context.Context, p *domain.Profile, now time.Time) (Action, error) {
	open, err := s.editions.GetOpen(ctx, p.ID)
	if err != nil {
		return ActionSkip, fmt.Errorf("get open edition: %w", err)
	}

	action := Decide(p, open, now)
	lgr.Printf("[DEBUG] profile %s (%s): %s", p.ID, p.Name, action)

	switch action {
	case ActionGenerate:
		created, err := s.generate(ctx, p, now)
		if err != nil {
			return ActionSkip, err
		}
		if !created {
			return ActionSkip, nil
		}
		return ActionGenerate, nil
	case ActionPromote:
		if err := s.promote(ctx, p, open); err != nil {
			return ActionSkip, err
		}
		return ActionPromote, nil
	default:
		return ActionSkip, nil
	}
}

// generate runs the content pipeline for one profile and persists the result
// as a draft edition, then promotes it through the delivery provider. Returns
// false without error when curation produced nothing to send.
func (s *Scheduler) generate(ctx context.Context, p *domain.Profile, now time.Time) (created bool, err error) {
	candidates := s.news.Fetch(ctx, p.Areas)

	saved, err := s.stories.ListUnused(ctx, p.ID, pinnedLimit)
	if err != nil {
		return false, fmt.Errorf("list saved stories: %w", err)
	}
	pinned := make([]domain.Story, 0, len(saved))
	for _, ss := range saved {
		pinned = append(pinned, ss.Story())
	}

	stories, err := s.curator.Curate(ctx, curator.Request{Candidates: candidates, Pinned: pinned, Areas: p.AreaLabels()})
	if err != nil {
		return false, fmt.Errorf("curate stories: %w", err)
	}
	if len(stories) == 0 {
		lgr.Printf("[INFO] nothing to send for profile %s (%s), skipping this cycle", p.ID, p.Name)
		return false, nil
	}

	scheduledFor := p.NextSend(now)
	subject := render.Subject(p, scheduledFor)
	html, err := render.Render(p, stories, scheduledFor)
	if err != nil {
		return false, fmt.Errorf("render newsletter: %w", err)
	}

	edition := &domain.Edition{
		ProfileID:    p.ID,
		Status:       domain.EditionDraft,
		Subject:      subject,
		HTML:         html,
		Stories:      stories,
		ScheduledFor: sql.NullTime{Time: scheduledFor, Valid: true},
	}
	if err := s.editions.Create(ctx, edition); err != nil {
		return false, fmt.Errorf("create edition: %w", err)
	}

	// consume the pinned stories that went into this edition
	if len(saved) > 0 {
		ids := make([]string, 0, len(saved))
		for _, ss := range saved {
			ids = append(ids, ss.ID)
		}
		if err := s.stories.MarkUsed(ctx, ids, edition.ID); err != nil {
			lgr.Printf("[WARN] failed to mark saved stories used for edition %s: %v", edition.ID, err)
		}
	}

	lgr.Printf("[INFO] generated edition %s for profile %s with %d stories, scheduled for %s",
		edition.ID, p.Name, len(stories), scheduledFor.Format(time.RFC3339))

	if err := s.promote(ctx, p, edition); err != nil {
		return false, err
	}
	return true, nil
}

// promote advances an open edition through the remaining delivery steps:
// draft gets a provider campaign plus agent preview, preview_sent gets its
// send scheduled. Any provider failure moves the edition to failed so the
// agent sees the error instead of a stuck draft.
func (s *Scheduler) promote(ctx context.Context, p *domain.Profile, e *domain.Edition) error {
	if e.Status == domain.EditionDraft {
		campaign, err := s.delivery.CreateCampaign(ctx, p, delivery.CampaignRequest{
			Name:      fmt.Sprintf("%s [%s]", e.Subject, shortID(e.ID)),
			Subject:   e.Subject,
			FromName:  p.Name,
			FromEmail: p.Email,
			ReplyTo:   p.Email,
			HTML:      e.HTML,
		})
		if err != nil {
			s.fail(ctx, e.ID, fmt.Sprintf("create campaign: %v", err))
			return fmt.Errorf("create campaign: %w", err)
		}

		if err := s.editions.SetCampaign(ctx, e.ID, campaign.ID, campaign.ActivityID); err != nil {
			return fmt.Errorf("attach campaign to edition: %w", err)
		}
		e.Status = domain.EditionPreviewSent
		e.CampaignID = sql.NullString{String: campaign.ID, Valid: true}
		e.CampaignActivityID = sql.NullString{String: campaign.ActivityID, Valid: true}

		recipients := append([]string{p.Email}, s.previewRecipients...)
		if err := s.delivery.SendPreview(ctx, p, campaign.ActivityID, recipients); err != nil {
			s.fail(ctx, e.ID, fmt.Sprintf("send preview: %v", err))
			return fmt.Errorf("send preview: %w", err)
		}
		lgr.Printf("[INFO] preview sent for edition %s to %s", e.ID, strings.Join(recipients, ", "))
	}

	if e.Status == domain.EditionPreviewSent {
		if !e.CampaignActivityID.Valid {
			s.fail(ctx, e.ID, "edition has no campaign activity id")
			return fmt.Errorf("edition %s has no campaign activity id", e.ID)
		}

		now := time.Now()
		when := e.ScheduledFor.Time
		if !e.ScheduledFor.Valid || !when.After(now) {
			// leftover edition whose window passed, push to the next occurrence
			when = p.NextSend(now)
			lgr.Printf("[WARN] edition %s had a stale schedule, moved to %s", e.ID, when.Format(time.RFC3339))
		}

		if err := s.delivery.ScheduleSend(ctx, p, e.CampaignActivityID.String, &when); err != nil {
			s.fail(ctx, e.ID, fmt.Sprintf("schedule send: %v", err))
			return fmt.Errorf("schedule send: %w", err)
		}
		if err := s.editions.MarkScheduled(ctx, e.ID, when); err != nil {
			return fmt.Errorf("mark edition scheduled: %w", err)
		}
		e.Status = domain.EditionScheduled
		e.ScheduledFor = sql.NullTime{Time: when, Valid: true}
		lgr.Printf("[INFO] edition %s scheduled for %s", e.ID, when.Format(time.RFC3339))
	}

	return nil
}

// fail marks an edition failed, logging when even that cannot be recorded
func (s *Scheduler) fail(ctx context.Context, editionID, reason string) {
	if err := s.editions.MarkFailed(ctx, editionID, reason); err != nil {
		lgr.Printf("[ERROR] failed to mark edition %s failed: %v", editionID, err)
	}
}

// shortID returns a compact edition id suffix for campaign names
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
