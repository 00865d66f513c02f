// Package navigation serves navigation hierarchies built from a cached
// snapshot of an item source.
package navigation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sitenav/internal/domain"
	models "sitenav/internal/domain/models/navigation"
	"sitenav/internal/domain/repositories"
	nav "sitenav/internal/navigation"
)

// Options tunes how hierarchies are produced for requests
type Options struct {
	BaseURL       string
	DefaultLocale string
	MaxDepth      int  // 0 = unbounded
	HideInvisible bool // drop hidden items for non-admin roles
}

// Service owns the current item snapshot. Reads share the snapshot;
// Reload swaps it atomically.
type Service struct {
	source repositories.ItemSource
	opts   Options
	logger *slog.Logger

	mu     sync.RWMutex
	items  []models.Item
	loaded bool
}

// NewService creates a navigation service over source
func NewService(source repositories.ItemSource, opts Options, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		opts:   opts,
		logger: logger,
	}
}

// Reload replaces the snapshot with a fresh load from the source.
// The previous snapshot is kept when loading fails.
func (s *Service) Reload(ctx context.Context) (models.Report, error) {
	items, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("navigation reload failed", "error", err)
		return models.Report{}, fmt.Errorf("load navigation items: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()

	report := s.Lint(items)
	s.logger.Info("navigation reloaded",
		"item_count", report.ItemCount,
		"valid_count", report.ValidCount,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
		"cycles", len(report.Cycles),
	)
	for _, e := range report.Errors {
		s.logger.Warn("navigation error", "type", e.Type, "item_id", e.ItemID, "message", e.Message)
	}
	for _, e := range report.Cycles {
		s.logger.Warn("navigation cycle", "type", e.Type, "items", e.Items)
	}
	return report, nil
}

// Items returns the current snapshot, loading it on first use
func (s *Service) Items(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	items, loaded := s.items, s.loaded
	s.mu.RUnlock()
	if loaded {
		return items, nil
	}

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, nil
}

// Hierarchy builds the navigation tree for one request
func (s *Service) Hierarchy(ctx context.Context, navCtx *models.Context) (models.Hierarchy, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.Hierarchy{}, err
	}
	return s.BuildFrom(items, navCtx), nil
}

// BuildFrom builds a hierarchy from caller-supplied raw items using the
// service's request policies
func (s *Service) BuildFrom(raw any, navCtx *models.Context) models.Hierarchy {
	c := s.requestContext(navCtx)

	input := nav.ParseItems(raw)
	if s.opts.HideInvisible && !c.IsAdmin() {
		input = nav.FilterVisible(input)
	}

	h := nav.NewBuilder(&c).Build(input)
	return nav.TruncateDepth(h, s.opts.MaxDepth)
}

// Validate reports structural problems in the current snapshot
func (s *Service) Validate(ctx context.Context) (models.Report, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.Report{}, err
	}
	return s.Lint(items), nil
}

// Lint validates raw items and looks for parent cycles
func (s *Service) Lint(raw any) models.Report {
	items := nav.DecodeItems(raw)
	return models.Report{
		ValidationResult: nav.ValidateHierarchy(items),
		Cycles:           nav.DetectCircularReferences(items),
		ItemCount:        len(items),
		ValidCount:       len(nav.ParseItems(items)),
	}
}

// Paths returns the normalized path to item id map of the snapshot
func (s *Service) Paths(ctx context.Context) (map[string]string, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return nav.ResolvePaths(items), nil
}

// Resolve returns the item that owns path
func (s *Service) Resolve(ctx context.Context, path string) (models.Item, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.Item{}, err
	}

	id, ok := nav.ResolvePaths(items)[nav.NormalizePath(path)]
	if ok {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return models.Item{}, &domain.NotFoundError{Message: fmt.Sprintf("no navigation item for path '%s'", path)}
}

func (s *Service) requestContext(navCtx *models.Context) models.Context {
	c := navCtx.WithDefaults()
	if c.BaseURL == "" {
		c.BaseURL = s.opts.BaseURL
	}
	if (navCtx == nil || navCtx.Locale == "") && s.opts.DefaultLocale != "" {
		c.Locale = s.opts.DefaultLocale
	}
	return c
}
