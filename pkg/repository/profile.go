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

// ProfileRepository handles profile persistence
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile, assigning an id when absent
func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CCStatus == "" {
		p.CCStatus = domain.AccountActive
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO profiles (id, name, email, brokerage, phone, headshot_url, logo_url, brand_color,
			                      areas, send_day, send_hour, send_minute, utc_offset_minutes,
			                      access_token, refresh_token, cc_status, active)
			VALUES (:id, :name, :email, :brokerage, :phone, :headshot_url, :logo_url, :brand_color,
			        :areas, :send_day, :send_hour, :send_minute, :utc_offset_minutes,
			        :access_token, :refresh_token, :cc_status, :active)
		`
		_, err := r.db.NamedExecContext(ctx, query, p)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert profile: %w", err)}
		}
		return nil
	})
}

// Get retrieves a profile by id
func (r *ProfileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// ListActive returns all active profiles
func (r *ProfileRepository) ListActive(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.SelectContext(ctx, &profiles, `SELECT * FROM profiles WHERE active = 1 ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list active profiles: %w", err)
	}
	return profiles, nil
}

// UpdateTokens persists a refreshed token pair. The persisted pair is the
// single source of truth for delivery credentials.
func (r *ProfileRepository) UpdateTokens(ctx context.Context, profileID, accessToken, refreshToken string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			UPDATE profiles
			SET access_token = ?, refresh_token = ?, cc_status = 'active', updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, accessToken, refreshToken, profileID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update tokens: %w", err)}
		}
		return nil
	})
}

// SetAccountStatus records the delivery-provider account state
func (r *ProfileRepository) SetAccountStatus(ctx context.Context, profileID string, status domain.AccountStatus) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `UPDATE profiles SET cc_status = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query, status, profileID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set account status: %w", err)}
		}
		return nil
	})
}

// SetLastCampaign records the most recent campaign bookkeeping for a profile
func (r *ProfileRepository) SetLastCampaign(ctx context.Context, profileID, campaignID string, sentAt time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			UPDATE profiles
			SET last_campaign_id = ?, last_sent_at = ?, updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, campaignID, sentAt, profileID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set last campaign: %w", err)}
		}
		return nil
	})
}

// SetActive toggles the soft-deactivation flag
func (r *ProfileRepository) SetActive(ctx context.Context, profileID string, active bool) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `UPDATE profiles SET active = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query, active, profileID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set active: %w", err)}
		}
		return nil
	})
}
