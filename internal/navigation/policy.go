package navigation

import (
	models "sitenav/internal/domain/models/navigation"
)

// TruncateDepth drops every node deeper than maxDepth (1 keeps roots only)
// and recounts TotalItems. maxDepth <= 0 leaves the hierarchy unbounded.
// Breadcrumbs and the active item describe the location and are kept as is.
func TruncateDepth(h models.Hierarchy, maxDepth int) models.Hierarchy {
	if maxDepth <= 0 {
		return h
	}
	h.Items = truncate(h.Items, maxDepth)
	h.TotalItems = countItems(h.Items)
	return h
}

func truncate(items []models.Item, depth int) []models.Item {
	out := make([]models.Item, len(items))
	for i, item := range items {
		if depth <= 1 {
			item.Children = nil
		} else {
			item.Children = truncate(item.Children, depth-1)
			if len(item.Children) == 0 {
				item.Children = nil
			}
		}
		out[i] = item
	}
	return out
}

// FilterVisible removes hidden items together with every item that has a
// hidden ancestor. Parent chains are followed with a seen-set so cyclic
// input terminates.
func FilterVisible(items []models.Item) []models.Item {
	byID := make(map[string]models.Item, len(items))
	for _, item := range items {
		if _, exists := byID[item.ID]; !exists {
			byID[item.ID] = item
		}
	}

	hidden := make(map[string]bool)
	isHidden := func(item models.Item) bool {
		seen := make(map[string]bool)
		current := item
		for {
			if !current.Visible || hidden[current.ID] {
				return true
			}
			if !current.HasParent() || seen[current.Parent] {
				return false
			}
			seen[current.ID] = true
			parent, ok := byID[current.Parent]
			if !ok {
				return false
			}
			current = parent
		}
	}

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if isHidden(item) {
			hidden[item.ID] = true
			continue
		}
		out = append(out, item)
	}
	return out
}
