package services

import (
	"context"

	models "sitenav/internal/domain/models/navigation"
)

// NavigationService serves hierarchies, reports, and path lookups for the
// current navigation snapshot
type NavigationService interface {
	// Reload re-reads the item source; the previous snapshot survives a failure
	Reload(ctx context.Context) (models.Report, error)

	// Hierarchy builds the tree for one request context (nil = defaults)
	Hierarchy(ctx context.Context, navCtx *models.Context) (models.Hierarchy, error)

	// BuildFrom builds a tree from caller-supplied, untyped items
	BuildFrom(raw any, navCtx *models.Context) models.Hierarchy

	// Validate reports structural problems of the snapshot
	Validate(ctx context.Context) (models.Report, error)

	// Lint reports structural problems of caller-supplied, untyped items
	Lint(raw any) models.Report

	// Paths maps each normalized path to the id that owns it
	Paths(ctx context.Context) (map[string]string, error)

	// Resolve returns the item owning path, or a NotFoundError
	Resolve(ctx context.Context, path string) (models.Item, error)
}
