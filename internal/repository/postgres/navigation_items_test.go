package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav/internal/domain"
	models "sitenav/internal/domain/models/navigation"
)

func TestNewTableNames(t *testing.T) {
	assert.Equal(t, "test_navigation_items", NewTableNames("test_").NavigationItems)
	assert.Equal(t, "navigation_items", NewTableNames("").NavigationItems)
}

func TestPgErrorHelpers(t *testing.T) {
	assert.False(t, IsPgDuplicateError(errors.New("plain")))
	assert.False(t, IsPgUndefinedTableError(nil))

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsPgDuplicateError(wrapped))
	assert.False(t, IsPgUndefinedTableError(wrapped))
	assert.True(t, IsPgUndefinedTableError(&pgconn.PgError{Code: "42P01"}))
}

// TestNavigationItemRepository_RoundTrip needs a scratch database:
// TEST_DATABASE_URL=postgres://... go test ./internal/repository/postgres/
func TestNavigationItemRepository_RoundTrip(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := CreateConnectionPool(ctx, databaseURL)
	require.NoError(t, err)
	defer pool.Close()

	config := &RepositoryConfig{Pool: pool, Tables: NewTableNames("test_roundtrip_"), Logger: logger}
	repo := NewNavigationItemRepository(config, NewTransactionManager(pool, logger))
	require.NoError(t, repo.EnsureSchema(ctx))
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DROP TABLE IF EXISTS "+config.Tables.NavigationItems)
	})

	items := []models.Item{
		{ID: "blog", Title: "Blog", Path: "/blog", Type: models.ItemTypeCollection, Order: 1, Visible: true},
		{ID: "post", Title: "Post", Path: "/blog/post", Type: models.ItemTypeContent, Visible: false, Parent: "blog",
			Metadata: map[string]any{"source": "blog/post.md"}},
	}
	require.NoError(t, repo.ReplaceAll(ctx, items))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{items[1], items[0]}, loaded)

	err = repo.ReplaceAll(ctx, []models.Item{items[0], items[0]})
	assert.ErrorIs(t, err, domain.ErrConflict)

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 2, "failed replace must roll back")
}
