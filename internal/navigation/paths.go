package navigation

import (
	"sort"
	"strings"

	models "sitenav/internal/domain/models/navigation"
)

// NormalizePath strips one trailing slash (the root "/" is kept) and drops
// any query string.
func NormalizePath(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	return path
}

// ResolvePaths maps each normalized path to an item id. When several items
// share a path, the one with the lowest order wins; equal orders keep input
// order.
func ResolvePaths(items []models.Item) map[string]string {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	resolved := make(map[string]string, len(sorted))
	for _, item := range sorted {
		path := NormalizePath(item.Path)
		if path == "" {
			continue
		}
		if _, taken := resolved[path]; taken {
			continue
		}
		resolved[path] = item.ID
	}
	return resolved
}
