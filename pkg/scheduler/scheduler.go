package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/agentpress/agentpress/pkg/curator"
	"github.com/agentpress/agentpress/pkg/delivery"
	"github.com/agentpress/agentpress/pkg/domain"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/edition_store.go -pkg mocks -skip-ensure -fmt goimports . EditionStore
//go:generate moq -out mocks/story_store.go -pkg mocks -skip-ensure -fmt goimports . StoryStore
//go:generate moq -out mocks/news_searcher.go -pkg mocks -skip-ensure -fmt goimports . NewsSearcher
//go:generate moq -out mocks/story_curator.go -pkg mocks -skip-ensure -fmt goimports . StoryCurator
//go:generate moq -out mocks/deliverer.go -pkg mocks -skip-ensure -fmt goimports . Deliverer

// pinnedLimit caps how many saved stories feed one curation pass
const pinnedLimit = 5

// ProfileStore provides profile access for orchestration
type ProfileStore interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	ListActive(ctx context.Context) ([]domain.Profile, error)
	SetLastCampaign(ctx context.Context, profileID, campaignID string, sentAt time.Time) error
}

// EditionStore provides edition persistence and status transitions
type EditionStore interface {
	Create(ctx context.Context, e *domain.Edition) error
	GetOpen(ctx context.Context, profileID string) (*domain.Edition, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.Edition, error)
	MarkScheduled(ctx context.Context, editionID string, scheduledFor time.Time) error
	SetCampaign(ctx context.Context, editionID, campaignID, activityID string) error
	MarkSent(ctx context.Context, editionID string, sentAt time.Time) error
	MarkFailed(ctx context.Context, editionID, reason string) error
}

// StoryStore provides agent-pinned saved stories
type StoryStore interface {
	ListUnused(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error)
	MarkUsed(ctx context.Context, storyIDs []string, editionID string) error
}

// NewsSearcher fetches candidate articles for coverage areas
type NewsSearcher interface {
	Fetch(ctx context.Context, areas []domain.CoverageArea) []domain.CandidateArticle
}

// StoryCurator selects and summarizes stories for a newsletter
type StoryCurator interface {
	Curate(ctx context.Context, req curator.Request) ([]domain.Story, error)
}

// Deliverer performs campaign operations against the email provider
type Deliverer interface {
	CreateCampaign(ctx context.Context, p *domain.Profile, req delivery.CampaignRequest) (*delivery.Campaign, error)
	SendPreview(ctx context.Context, p *domain.Profile, activityID string, recipients []string) error
	ScheduleSend(ctx context.Context, p *domain.Profile, activityID string, when *time.Time) error
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Profiles ProfileStore
	Editions EditionStore
	Stories  StoryStore
	News     NewsSearcher
	Curator  StoryCurator
	Delivery Deliverer

	PreviewRecipients []string
	CycleInterval     time.Duration
	SweepInterval     time.Duration
	MaxWorkers        int
}

// Scheduler drives the weekly newsletter lifecycle: generating editions a day
// ahead of each profile's send day, promoting them through the delivery
// provider, and sweeping due sends to a terminal state.
type Scheduler struct {
	profiles ProfileStore
	editions EditionStore
	stories  StoryStore
	news     NewsSearcher
	curator  StoryCurator
	delivery Deliverer

	previewRecipients []string
	cycleInterval     time.Duration
	sweepInterval     time.Duration
	maxWorkers        int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.CycleInterval == 0 {
		params.CycleInterval = time.Hour
	}
	if params.SweepInterval == 0 {
		params.SweepInterval = 15 * time.Minute
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}

	return &Scheduler{
		profiles:          params.Profiles,
		editions:          params.Editions,
		stories:           params.Stories,
		news:              params.News,
		curator:           params.Curator,
		delivery:          params.Delivery,
		previewRecipients: params.PreviewRecipients,
		cycleInterval:     params.CycleInterval,
		sweepInterval:     params.SweepInterval,
		maxWorkers:        params.MaxWorkers,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.cycleWorker(ctx)

	s.wg.Add(1)
	go s.sweepWorker(ctx)

	lgr.Printf("[INFO] scheduler started with cycle interval %v, sweep interval %v", s.cycleInterval, s.sweepInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// cycleWorker periodically evaluates every active profile
func (s *Scheduler) cycleWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cycleInterval)
	defer ticker.Stop()

	// run immediately on start
	s.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(ctx)
		}
	}
}

// sweepWorker periodically resolves due sends
func (s *Scheduler) sweepWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepDueSends(ctx)
		}
	}
}
