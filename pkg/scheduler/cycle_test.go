package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpress/agentpress/pkg/curator"
	"github.com/agentpress/agentpress/pkg/delivery"
	"github.com/agentpress/agentpress/pkg/domain"
	"github.com/agentpress/agentpress/pkg/scheduler/mocks"
)

// sendDayFor maps a weekday to its stored send-day value
func sendDayFor(d time.Weekday) domain.SendDay {
	days := map[time.Weekday]domain.SendDay{
		time.Monday:    domain.Monday,
		time.Tuesday:   domain.Tuesday,
		time.Wednesday: domain.Wednesday,
		time.Thursday:  domain.Thursday,
		time.Friday:    domain.Friday,
		time.Saturday:  domain.Saturday,
		time.Sunday:    domain.Sunday,
	}
	return days[d]
}

// windowProfile returns a profile whose generation window is open right now
func windowProfile(id string) domain.Profile {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Weekday()
	return domain.Profile{
		ID:      id,
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Areas:   domain.CoverageAreas{{City: "Austin", State: "TX"}},
		SendDay: sendDayFor(tomorrow),
		Active:  true,
	}
}

func testStories() []domain.Story {
	return []domain.Story{
		{Headline: "Rates dip", Summary: "Mortgage rates fell this week.", Category: domain.CategoryFinance, URL: "https://example.com/1"},
		{Headline: "New listings up", Summary: "Inventory grew.", Category: domain.CategoryMarket, URL: "https://example.com/2"},
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{})

	assert.Equal(t, time.Hour, s.cycleInterval)
	assert.Equal(t, 15*time.Minute, s.sweepInterval)
	assert.Equal(t, 5, s.maxWorkers)
}

func TestScheduler_StartStop(t *testing.T) {
	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return nil, nil },
	}
	s := NewScheduler(Params{Profiles: profiles, CycleInterval: time.Hour, SweepInterval: time.Hour})

	s.Start(context.Background())
	s.Stop()

	// the initial cycle ran once on start
	assert.Len(t, profiles.ListActiveCalls(), 1)
}

func TestScheduler_RunCycle_Generates(t *testing.T) {
	p := windowProfile("p1")

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return nil, nil },
		CreateFunc: func(ctx context.Context, e *domain.Edition) error {
			e.ID = "ed1"
			return nil
		},
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error { return nil },
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return []domain.SavedStory{{ID: "s1", Headline: "Open house", Category: domain.CategoryCommunity}}, nil
		},
		MarkUsedFunc: func(ctx context.Context, storyIDs []string, editionID string) error { return nil },
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle {
			return []domain.CandidateArticle{{Title: "Rates dip", Link: "https://example.com/1"}}
		},
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return testStories(), nil
		},
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return nil
		},
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{
		Profiles: profiles, Editions: editions, Stories: stories,
		News: news, Curator: cur, Delivery: del,
		PreviewRecipients: []string{"ops@example.com"},
	})

	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Errors)

	// curation saw both candidates and the pinned story
	require.Len(t, cur.CurateCalls(), 1)
	req := cur.CurateCalls()[0].Req
	assert.Len(t, req.Candidates, 1)
	require.Len(t, req.Pinned, 1)
	assert.Equal(t, "Open house", req.Pinned[0].Headline)

	// edition created as draft with future schedule and rendered content
	require.Len(t, editions.CreateCalls(), 1)
	created := editions.CreateCalls()[0].E
	assert.Equal(t, domain.EditionDraft, created.Status)
	require.True(t, created.ScheduledFor.Valid)
	assert.True(t, created.ScheduledFor.Time.After(time.Now()), "scheduled time must be strictly future")
	assert.Contains(t, created.HTML, "Rates dip")
	assert.Len(t, created.Stories, 2)

	// pinned story consumed
	require.Len(t, stories.MarkUsedCalls(), 1)
	assert.Equal(t, []string{"s1"}, stories.MarkUsedCalls()[0].StoryIDs)
	assert.Equal(t, "ed1", stories.MarkUsedCalls()[0].EditionID)

	// full promotion: campaign, preview to agent plus extra recipient, schedule
	require.Len(t, del.CreateCampaignCalls(), 1)
	assert.Equal(t, "Jordan Reyes", del.CreateCampaignCalls()[0].Req.FromName)
	require.Len(t, del.SendPreviewCalls(), 1)
	assert.Equal(t, []string{"jordan@example.com", "ops@example.com"}, del.SendPreviewCalls()[0].Recipients)
	require.Len(t, del.ScheduleSendCalls(), 1)
	require.NotNil(t, del.ScheduleSendCalls()[0].When)
	require.Len(t, editions.MarkScheduledCalls(), 1)
	assert.True(t, editions.MarkScheduledCalls()[0].ScheduledFor.After(time.Now()))
}

func TestScheduler_RunCycle_EmptyStoriesSkips(t *testing.T) {
	p := windowProfile("p1")

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return nil, nil },
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return nil, nil
		},
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle { return nil },
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return []domain.Story{}, nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Stories: stories, News: news, Curator: cur})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 1, summary.Skipped, "empty curation is a skip, not a failure")
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, editions.CreateCalls(), "no edition persisted when there is nothing to send")
}

func TestScheduler_RunCycle_PartialFailureIsolated(t *testing.T) {
	good := windowProfile("good")
	bad := windowProfile("bad")

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) {
			return []domain.Profile{bad, good}, nil
		},
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return nil, nil },
		CreateFunc: func(ctx context.Context, e *domain.Edition) error {
			e.ID = "ed-" + e.ProfileID
			return nil
		},
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error { return nil },
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
		MarkFailedFunc: func(ctx context.Context, editionID, reason string) error { return nil },
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return nil, nil
		},
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle { return nil },
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return testStories(), nil
		},
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			if p.ID == "bad" {
				return nil, fmt.Errorf("provider rejected campaign: %w", errors.New("invalid from address"))
			}
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return nil
		},
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Stories: stories, News: news, Curator: cur, Delivery: del})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Generated, "good profile completed despite bad profile's failure")
	assert.Equal(t, 1, summary.Failed)
	require.Contains(t, summary.Errors, "bad")
	assert.Contains(t, summary.Errors["bad"], "create campaign")

	// bad profile's edition reached a terminal failed state
	require.Len(t, editions.MarkFailedCalls(), 1)
	assert.Equal(t, "ed-bad", editions.MarkFailedCalls()[0].EditionID)
	assert.Contains(t, editions.MarkFailedCalls()[0].Reason, "create campaign")
}

func TestScheduler_RunCycle_CurationErrorRecorded(t *testing.T) {
	p := windowProfile("p1")

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return nil, nil },
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return nil, nil
		},
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle { return nil },
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return nil, &curator.ParseError{Reason: "response is not a JSON array", Snippet: "sorry, I cannot"}
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Stories: stories, News: news, Curator: cur})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Failed)
	require.Contains(t, summary.Errors, "p1")
	assert.Contains(t, summary.Errors["p1"], "curate stories")
	assert.Empty(t, editions.CreateCalls())
}

func TestScheduler_Promote_ResumesDraft(t *testing.T) {
	p := windowProfile("p1")
	open := &domain.Edition{
		ID:           "ed1",
		ProfileID:    "p1",
		Status:       domain.EditionDraft,
		Subject:      "Austin Real Estate Update - June 5, 2025",
		HTML:         "<html></html>",
		ScheduledFor: sql.NullTime{Time: time.Now().Add(24 * time.Hour), Valid: true},
	}

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return open, nil },
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error {
			return nil
		},
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return nil
		},
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Delivery: del})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Promoted)
	assert.Equal(t, 0, summary.Failed)

	// campaign name carries the subject plus a short edition marker
	require.Len(t, del.CreateCampaignCalls(), 1)
	assert.True(t, strings.HasPrefix(del.CreateCampaignCalls()[0].Req.Name, open.Subject))

	// draft advanced all the way to scheduled
	require.Len(t, editions.SetCampaignCalls(), 1)
	require.Len(t, editions.MarkScheduledCalls(), 1)
}

func TestScheduler_Promote_PreviewFailureMarksFailed(t *testing.T) {
	p := windowProfile("p1")
	open := &domain.Edition{
		ID:           "ed1",
		ProfileID:    "p1",
		Status:       domain.EditionDraft,
		Subject:      "subject",
		HTML:         "<html></html>",
		ScheduledFor: sql.NullTime{Time: time.Now().Add(24 * time.Hour), Valid: true},
	}

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc:     func(ctx context.Context, profileID string) (*domain.Edition, error) { return open, nil },
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error { return nil },
		MarkFailedFunc:  func(ctx context.Context, editionID, reason string) error { return nil },
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return &delivery.AuthError{ProfileID: p.ID, Err: errors.New("token refresh rejected")}
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Delivery: del})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Failed)
	require.Len(t, editions.MarkFailedCalls(), 1)
	assert.Contains(t, editions.MarkFailedCalls()[0].Reason, "send preview")
	assert.Empty(t, del.ScheduleSendCalls(), "scheduling never attempted after preview failure")
}

func TestScheduler_GenerateNow_ForcesOutsideWindow(t *testing.T) {
	// send day far from today so the regular cycle would skip
	farDay := time.Now().UTC().AddDate(0, 0, 3).Weekday()
	p := domain.Profile{
		ID:      "p1",
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Areas:   domain.CoverageAreas{{City: "Austin", State: "TX"}},
		SendDay: sendDayFor(farDay),
		Active:  true,
	}

	profiles := &mocks.ProfileStoreMock{
		GetFunc: func(ctx context.Context, id string) (*domain.Profile, error) { return &p, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return nil, nil },
		CreateFunc: func(ctx context.Context, e *domain.Edition) error {
			e.ID = "ed1"
			return nil
		},
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error { return nil },
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return nil, nil
		},
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle { return nil },
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return testStories(), nil
		},
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return nil
		},
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Stories: stories, News: news, Curator: cur, Delivery: del})

	err := s.GenerateNow(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, editions.CreateCalls(), 1)
}

func TestScheduler_RunCycle_SameWindowGeneratesOnce(t *testing.T) {
	p := windowProfile("p1")

	// stateful store: the edition from the first cycle stays visible to the
	// second one, including the scheduled status promotion left it in
	var current *domain.Edition
	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return current, nil },
		CreateFunc: func(ctx context.Context, e *domain.Edition) error {
			e.ID = "ed1"
			current = e
			return nil
		},
		SetCampaignFunc: func(ctx context.Context, editionID, campaignID, activityID string) error { return nil },
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
	}
	stories := &mocks.StoryStoreMock{
		ListUnusedFunc: func(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
			return nil, nil
		},
	}
	news := &mocks.NewsSearcherMock{
		FetchFunc: func(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle { return nil },
	}
	cur := &mocks.StoryCuratorMock{
		CurateFunc: func(ctx context.Context, req curator.Request) ([]domain.Story, error) {
			return testStories(), nil
		},
	}
	del := &mocks.DelivererMock{
		CreateCampaignFunc: func(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error) {
			return &delivery.Campaign{ID: "camp1", ActivityID: "act1"}, nil
		},
		SendPreviewFunc: func(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error {
			return nil
		},
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Stories: stories, News: news, Curator: cur, Delivery: del})

	first := s.RunCycle(context.Background())
	assert.Equal(t, 1, first.Generated)

	// still inside the same generation window
	second := s.RunCycle(context.Background())
	assert.Equal(t, 0, second.Generated)
	assert.Equal(t, 1, second.Skipped, "scheduled edition blocks a second generation")

	assert.Len(t, editions.CreateCalls(), 1, "one edition per send window")
	assert.Len(t, del.CreateCampaignCalls(), 1)
	assert.Len(t, del.SendPreviewCalls(), 1, "agent gets exactly one preview")
}

func TestScheduler_Promote_StaleScheduleRecomputed(t *testing.T) {
	p := windowProfile("p1")

	// preview_sent leftover whose send time already passed, e.g. after downtime
	open := &domain.Edition{
		ID:                 "ed1",
		ProfileID:          "p1",
		Status:             domain.EditionPreviewSent,
		Subject:            "subject",
		HTML:               "<html></html>",
		CampaignID:         sql.NullString{String: "camp1", Valid: true},
		CampaignActivityID: sql.NullString{String: "act1", Valid: true},
		ScheduledFor:       sql.NullTime{Time: time.Now().Add(-48 * time.Hour), Valid: true},
	}

	profiles := &mocks.ProfileStoreMock{
		ListActiveFunc: func(ctx context.Context) ([]domain.Profile, error) { return []domain.Profile{p}, nil },
	}
	editions := &mocks.EditionStoreMock{
		GetOpenFunc: func(ctx context.Context, profileID string) (*domain.Edition, error) { return open, nil },
		MarkScheduledFunc: func(ctx context.Context, editionID string, scheduledFor time.Time) error {
			return nil
		},
	}
	del := &mocks.DelivererMock{
		ScheduleSendFunc: func(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error {
			return nil
		},
	}

	s := NewScheduler(Params{Profiles: profiles, Editions: editions, Delivery: del})
	summary := s.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Promoted)
	assert.Equal(t, 0, summary.Failed)

	// provider got the recomputed future time, not the stale one
	require.Len(t, del.ScheduleSendCalls(), 1)
	when := del.ScheduleSendCalls()[0].When
	require.NotNil(t, when)
	assert.True(t, when.After(time.Now()), "stale schedule pushed to the next send occurrence")

	// and the stored schedule matches what the provider was told
	require.Len(t, editions.MarkScheduledCalls(), 1)
	assert.Equal(t, *when, editions.MarkScheduledCalls()[0].ScheduledFor)
}
