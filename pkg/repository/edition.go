package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agentpress/agentpress/pkg/domain"
)

// EditionRepository handles edition persistence and status transitions
type EditionRepository struct {
	db *sqlx.DB
}

// NewEditionRepository creates a new edition repository
func NewEditionRepository(db *sqlx.DB) *EditionRepository {
	return &EditionRepository{db: db}
}

// Create inserts a new edition, assigning an id when absent
func (r *EditionRepository) Create(ctx context.Context, e *domain.Edition) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = domain.EditionDraft
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO editions (id, profile_id, status, subject, html, stories, scheduled_for)
			VALUES (:id, :profile_id, :status, :subject, :html, :stories, :scheduled_for)
		`
		_, err := r.db.NamedExecContext(ctx, query, e)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert edition: %w", err)}
		}
		return nil
	})
}

// Get retrieves an edition by id
func (r *EditionRepository) Get(ctx context.Context, id string) (*domain.Edition, error) {
	var e domain.Edition
	err := r.db.GetContext(ctx, &e, `SELECT * FROM editions WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("edition not found")
		}
		return nil, fmt.Errorf("get edition: %w", err)
	}
	return &e, nil
}

// GetOpen returns the profile's edition still heading toward its send
// (draft, preview_sent or scheduled), or nil when there is none. At most one
// such edition exists per profile at any time; including scheduled here keeps
// a new generation from starting while the current week's edition waits for
// its send to be confirmed.
func (r *EditionRepository) GetOpen(ctx context.Context, profileID string) (*domain.Edition, error) {
	var e domain.Edition
	query := `
		SELECT * FROM editions
		WHERE profile_id = ? AND status IN ('draft', 'preview_sent', 'scheduled')
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &e, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open edition: %w", err)
	}
	return &e, nil
}

// ListByProfile returns a profile's editions, newest first
func (r *EditionRepository) ListByProfile(ctx context.Context, profileID string, limit int) ([]domain.Edition, error) {
	var editions []domain.Edition
	query := `SELECT * FROM editions WHERE profile_id = ? ORDER BY created_at DESC LIMIT ?`
	err := r.db.SelectContext(ctx, &editions, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("list editions: %w", err)
	}
	return editions, nil
}

// ListDue returns editions whose scheduled time has passed and which still
// await confirmation of the send
func (r *EditionRepository) ListDue(ctx context.Context, now time.Time) ([]domain.Edition, error) {
	var editions []domain.Edition
	query := `
		SELECT * FROM editions
		WHERE status IN ('preview_sent', 'scheduled') AND scheduled_for IS NOT NULL AND scheduled_for <= ?
		ORDER BY scheduled_for
	`
	err := r.db.SelectContext(ctx, &editions, query, now)
	if err != nil {
		return nil, fmt.Errorf("list due editions: %w", err)
	}
	return editions, nil
}

// MarkScheduled moves an edition to scheduled with the confirmed send time.
// The time is stored alongside the status so a promotion that had to push a
// stale schedule forward stays consistent with what the provider was told.
func (r *EditionRepository) MarkScheduled(ctx context.Context, editionID string, scheduledFor time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `UPDATE editions SET status = 'scheduled', scheduled_for = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query, scheduledFor, editionID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark edition scheduled: %w", err)}
		}
		return nil
	})
}

// SetCampaign attaches provider campaign identifiers after creation and
// moves the edition to preview_sent
func (r *EditionRepository) SetCampaign(ctx context.Context, editionID, campaignID, activityID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			UPDATE editions
			SET status = 'preview_sent', campaign_id = ?, campaign_activity_id = ?, updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, campaignID, activityID, editionID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set edition campaign: %w", err)}
		}
		return nil
	})
}

// MarkSent records the terminal sent state with its timestamp
func (r *EditionRepository) MarkSent(ctx context.Context, editionID string, sentAt time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `UPDATE editions SET status = 'sent', sent_at = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query, sentAt, editionID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark edition sent: %w", err)}
		}
		return nil
	})
}

// MarkFailed records the terminal failed state with the failure reason, so
// the agent can tell a content problem from a delivery problem
func (r *EditionRepository) MarkFailed(ctx context.Context, editionID, reason string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `UPDATE editions SET status = 'failed', error = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query, reason, editionID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark edition failed: %w", err)}
		}
		return nil
	})
}
