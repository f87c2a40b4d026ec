package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpress/agentpress/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)

	t.Cleanup(func() { repos.Close() })
	return repos
}

// makeTestProfile persists a minimal profile and returns it
func makeTestProfile(t *testing.T, repos *Repositories) *domain.Profile {
	t.Helper()

	p := &domain.Profile{
		Name:  "Jordan Reyes",
		Email: "jordan@example.com",
		Areas: domain.CoverageAreas{
			{City: "Austin", State: "TX"},
		},
		SendDay:          domain.Monday,
		SendHour:         9,
		UTCOffsetMinutes: -360,
		AccessToken:      "access-1",
		RefreshToken:     "refresh-1",
		Active:           true,
	}
	err := repos.Profile.Create(context.Background(), p)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	return p
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)

	assert.NotNil(t, repos.Profile)
	assert.NotNil(t, repos.Edition)
	assert.NotNil(t, repos.Story)
	assert.NoError(t, repos.Ping(context.Background()))
}

func TestNewRepositories_SchemaIdempotent(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "reopen.db") + "?mode=rwc"

	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	p := makeTestProfile(t, repos)
	require.NoError(t, repos.Close())

	// reopening must re-run the schema without clobbering data
	repos2, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos2.Close()

	got, err := repos2.Profile.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
}

func TestNewRepositories_PoolSettings(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "pool.db") + "?mode=rwc"
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             dsn,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	defer repos.Close()

	assert.NoError(t, repos.Ping(context.Background()))
}
