package repositories

import (
	"context"

	models "sitenav/internal/domain/models/navigation"
)

// ItemSource produces the raw flat list of navigation items.
// Items are decoded but not validated; invalid entries are the builder's
// and validator's concern.
type ItemSource interface {
	Load(ctx context.Context) ([]models.Item, error)
}

// NavigationItemRepository is an ItemSource that can also be written to
type NavigationItemRepository interface {
	ItemSource

	// ReplaceAll swaps the stored item set for items atomically
	ReplaceAll(ctx context.Context, items []models.Item) error
}
