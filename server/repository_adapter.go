package server

import (
	"context"

	"github.com/agentpress/agentpress/pkg/domain"
	"github.com/agentpress/agentpress/pkg/repository"
)

// RepositoryAdapter bridges the repository layer to the server's Database
// interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates an adapter over shared repositories
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetProfile retrieves a profile by id
func (a *RepositoryAdapter) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return a.repos.Profile.Get(ctx, id)
}

// ListEditions returns a profile's editions, newest first
func (a *RepositoryAdapter) ListEditions(ctx context.Context, profileID string, limit int) ([]domain.Edition, error) {
	return a.repos.Edition.ListByProfile(ctx, profileID, limit)
}

// CreateSavedStory saves an agent-pinned story
func (a *RepositoryAdapter) CreateSavedStory(ctx context.Context, s *domain.SavedStory) error {
	return a.repos.Story.Create(ctx, s)
}

// ListSavedStories returns a profile's saved stories, newest first
func (a *RepositoryAdapter) ListSavedStories(ctx context.Context, profileID string) ([]domain.SavedStory, error) {
	return a.repos.Story.ListByProfile(ctx, profileID)
}
