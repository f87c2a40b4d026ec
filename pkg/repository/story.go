package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agentpress/agentpress/pkg/domain"
)

// StoryRepository handles agent-pinned saved stories
type StoryRepository struct {
	db *sqlx.DB
}

// NewStoryRepository creates a new saved-story repository
func NewStoryRepository(db *sqlx.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create inserts a new saved story, assigning an id when absent
func (r *StoryRepository) Create(ctx context.Context, s *domain.SavedStory) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.Category = domain.NormalizeCategory(string(s.Category))

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO saved_stories (id, profile_id, headline, summary, url, category)
			VALUES (:id, :profile_id, :headline, :summary, :url, :category)
		`
		_, err := r.db.NamedExecContext(ctx, query, s)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert saved story: %w", err)}
		}
		return nil
	})
}

// ListUnused returns the profile's most recent saved stories not yet
// consumed into an edition, limited to the curation cap
func (r *StoryRepository) ListUnused(ctx context.Context, profileID string, limit int) ([]domain.SavedStory, error) {
	var stories []domain.SavedStory
	query := `
		SELECT * FROM saved_stories
		WHERE profile_id = ? AND used_in_edition IS NULL
		ORDER BY created_at DESC
		LIMIT ?
	`
	err := r.db.SelectContext(ctx, &stories, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("list unused saved stories: %w", err)
	}
	return stories, nil
}

// ListByProfile returns all of a profile's saved stories, newest first
func (r *StoryRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.SavedStory, error) {
	var stories []domain.SavedStory
	query := `SELECT * FROM saved_stories WHERE profile_id = ? ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &stories, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list saved stories: %w", err)
	}
	return stories, nil
}

// MarkUsed stamps saved stories as consumed by an edition. Later edits to a
// saved story never change the edition's snapshot.
func (r *StoryRepository) MarkUsed(ctx context.Context, storyIDs []string, editionID string) error {
	if len(storyIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE saved_stories SET used_in_edition = ? WHERE id IN (?)`, editionID, storyIDs)
	if err != nil {
		return fmt.Errorf("build mark used query: %w", err)
	}
	query = r.db.Rebind(query)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark saved stories used: %w", err)}
		}
		return nil
	})
}
