package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpress/agentpress/pkg/domain"
)

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

// makeTestEdition persists a draft edition for the profile
func makeTestEdition(t *testing.T, repos *Repositories, profileID string) *domain.Edition {
	t.Helper()

	e := &domain.Edition{
		ProfileID: profileID,
		Subject:   "Austin Real Estate Update - June 2, 2025",
		HTML:      "<html><body>hello</body></html>",
		Stories: domain.Stories{
			{Headline: "Rates dip", Summary: "Mortgage rates fell.", Category: domain.CategoryFinance, URL: "https://example.com/rates"},
		},
	}
	err := repos.Edition.Create(context.Background(), e)
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	return e
}

func TestEditionRepository_CreateAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	e := makeTestEdition(t, repos, p.ID)

	got, err := repos.Edition.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionDraft, got.Status, "new editions start in draft")
	assert.Equal(t, e.Subject, got.Subject)
	require.Len(t, got.Stories, 1)
	assert.Equal(t, "Rates dip", got.Stories[0].Headline)
	assert.False(t, got.ScheduledFor.Valid)
}

func TestEditionRepository_GetOpen(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	p := makeTestProfile(t, repos)

	t.Run("no open edition", func(t *testing.T) {
		got, err := repos.Edition.GetOpen(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	e := makeTestEdition(t, repos, p.ID)

	t.Run("draft is open", func(t *testing.T) {
		got, err := repos.Edition.GetOpen(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, e.ID, got.ID)
	})

	t.Run("preview_sent is open", func(t *testing.T) {
		require.NoError(t, repos.Edition.SetCampaign(ctx, e.ID, "camp-1", "act-1"))
		got, err := repos.Edition.GetOpen(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EditionPreviewSent, got.Status)
	})

	t.Run("scheduled is still open", func(t *testing.T) {
		require.NoError(t, repos.Edition.MarkScheduled(ctx, e.ID, time.Now().Add(24*time.Hour)))
		got, err := repos.Edition.GetOpen(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EditionScheduled, got.Status)
	})

	t.Run("terminal edition is not open", func(t *testing.T) {
		require.NoError(t, repos.Edition.MarkFailed(ctx, e.ID, "llm parse failure"))
		got, err := repos.Edition.GetOpen(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEditionRepository_MarkScheduled(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	e := makeTestEdition(t, repos, p.ID)
	require.NoError(t, repos.Edition.SetCampaign(ctx, e.ID, "camp-1", "act-1"))

	when := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Edition.MarkScheduled(ctx, e.ID, when))

	got, err := repos.Edition.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionScheduled, got.Status)
	require.True(t, got.ScheduledFor.Valid)
	assert.Equal(t, when, got.ScheduledFor.Time.UTC())
}

func TestEditionRepository_SetCampaign(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	e := makeTestEdition(t, repos, p.ID)

	require.NoError(t, repos.Edition.SetCampaign(ctx, e.ID, "camp-9", "act-9"))

	got, err := repos.Edition.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionPreviewSent, got.Status)
	require.True(t, got.CampaignID.Valid)
	assert.Equal(t, "camp-9", got.CampaignID.String)
	require.True(t, got.CampaignActivityID.Valid)
	assert.Equal(t, "act-9", got.CampaignActivityID.String)
}

func TestEditionRepository_ListDue(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := makeTestProfile(t, repos)

	due := &domain.Edition{ProfileID: p.ID, ScheduledFor: nullTime(now.Add(-time.Hour))}
	require.NoError(t, repos.Edition.Create(ctx, due))
	require.NoError(t, repos.Edition.SetCampaign(ctx, due.ID, "c1", "a1"))

	future := &domain.Edition{ProfileID: p.ID, ScheduledFor: nullTime(now.Add(time.Hour))}
	require.NoError(t, repos.Edition.Create(ctx, future))
	require.NoError(t, repos.Edition.SetCampaign(ctx, future.ID, "c2", "a2"))

	// past-due but already sent, must not reappear
	done := &domain.Edition{ProfileID: p.ID, ScheduledFor: nullTime(now.Add(-2 * time.Hour))}
	require.NoError(t, repos.Edition.Create(ctx, done))
	require.NoError(t, repos.Edition.MarkSent(ctx, done.ID, now))

	// draft with no schedule never shows up
	makeTestEdition(t, repos, p.ID)

	editions, err := repos.Edition.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, editions, 1)
	assert.Equal(t, due.ID, editions[0].ID)
}

func TestEditionRepository_MarkSent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	e := makeTestEdition(t, repos, p.ID)

	sentAt := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Edition.MarkSent(ctx, e.ID, sentAt))

	got, err := repos.Edition.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionSent, got.Status)
	require.True(t, got.SentAt.Valid)
	assert.Equal(t, sentAt, got.SentAt.Time.UTC())
	assert.True(t, got.Terminal())
}

func TestEditionRepository_MarkFailed(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	e := makeTestEdition(t, repos, p.ID)

	require.NoError(t, repos.Edition.MarkFailed(ctx, e.ID, "delivery auth failure"))

	got, err := repos.Edition.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionFailed, got.Status)
	require.True(t, got.Error.Valid)
	assert.Equal(t, "delivery auth failure", got.Error.String)
}

func TestEditionRepository_ListByProfile(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	p := makeTestProfile(t, repos)
	other := makeTestProfile(t, repos)
	makeTestEdition(t, repos, p.ID)
	makeTestEdition(t, repos, p.ID)
	makeTestEdition(t, repos, other.ID)

	editions, err := repos.Edition.ListByProfile(ctx, p.ID, 10)
	require.NoError(t, err)
	assert.Len(t, editions, 2)

	limited, err := repos.Edition.ListByProfile(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
