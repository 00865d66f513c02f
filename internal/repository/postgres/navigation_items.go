package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"sitenav/internal/domain"
	models "sitenav/internal/domain/models/navigation"
	"sitenav/internal/domain/repositories"
)

// PostgresNavigationItemRepository stores navigation items in one flat table;
// parent_id is a plain column, not a foreign key, so orphans survive a
// round trip and are reported by the validator instead of rejected here.
type PostgresNavigationItemRepository struct {
	pool      *pgxpool.Pool
	tables    *TableNames
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewNavigationItemRepository creates a new navigation item repository
func NewNavigationItemRepository(config *RepositoryConfig, txManager repositories.TransactionManager) *PostgresNavigationItemRepository {
	return &PostgresNavigationItemRepository{
		pool:      config.Pool,
		tables:    config.Tables,
		txManager: txManager,
		logger:    config.Logger,
	}
}

// EnsureSchema creates the navigation item table when it does not exist
func (r *PostgresNavigationItemRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			path       TEXT NOT NULL,
			type       TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			visible    BOOLEAN NOT NULL DEFAULT TRUE,
			parent_id  TEXT,
			metadata   JSONB NOT NULL DEFAULT '{}'::jsonb,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, r.tables.NavigationItems)

	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure navigation item schema: %w", err)
	}
	return nil
}

// Load returns every stored item ordered by sort order, then id
func (r *PostgresNavigationItemRepository) Load(ctx context.Context) ([]models.Item, error) {
	query := fmt.Sprintf(`
		SELECT id, title, path, type, sort_order, visible, parent_id, metadata
		FROM %s
		ORDER BY sort_order, id
	`, r.tables.NavigationItems)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		if IsPgUndefinedTableError(err) {
			return nil, fmt.Errorf("table %s: %w", r.tables.NavigationItems, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load navigation items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			item     models.Item
			itemType string
			parentID *string
			metadata map[string]any
		)
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Path,
			&itemType,
			&item.Order,
			&item.Visible,
			&parentID,
			&metadata,
		); err != nil {
			return nil, fmt.Errorf("scan navigation item: %w", err)
		}
		item.Type = models.ItemType(itemType)
		if parentID != nil {
			item.Parent = *parentID
		}
		if len(metadata) > 0 {
			item.Metadata = metadata
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate navigation items: %w", err)
	}

	r.logger.Debug("navigation items loaded", "table", r.tables.NavigationItems, "item_count", len(items))
	return items, nil
}

// ReplaceAll deletes every stored item and inserts items in one transaction
func (r *PostgresNavigationItemRepository) ReplaceAll(ctx context.Context, items []models.Item) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s`, r.tables.NavigationItems)
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (id, title, path, type, sort_order, visible, parent_id, metadata, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	`, r.tables.NavigationItems)

	err := r.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		executor := GetExecutor(txCtx, r.pool)

		if _, err := executor.Exec(txCtx, deleteQuery); err != nil {
			return fmt.Errorf("clear navigation items: %w", err)
		}

		for _, item := range items {
			var parentID *string
			if item.HasParent() {
				parent := item.Parent
				parentID = &parent
			}
			metadata := item.Metadata
			if metadata == nil {
				metadata = map[string]any{}
			}

			_, err := executor.Exec(txCtx, insertQuery,
				item.ID,
				item.Title,
				item.Path,
				string(item.Type),
				item.Order,
				item.Visible,
				parentID,
				metadata,
			)
			if err != nil {
				if IsPgDuplicateError(err) {
					return &domain.ConflictError{
						Message:      fmt.Sprintf("navigation item '%s' already exists", item.ID),
						ResourceType: "navigation_item",
						ResourceID:   item.ID,
					}
				}
				return fmt.Errorf("insert navigation item %s: %w", item.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("navigation items replaced", "table", r.tables.NavigationItems, "item_count", len(items))
	return nil
}
