package navigation

import (
	"sort"

	models "sitenav/internal/domain/models/navigation"
)

// Builder assembles navigation hierarchies for a fixed request context
type Builder struct {
	context models.Context
}

// NewBuilder creates a builder; a nil context falls back to defaults
func NewBuilder(ctx *models.Context) *Builder {
	return &Builder{context: ctx.WithDefaults()}
}

// Context returns the context the builder was created with (defaults applied)
func (b *Builder) Context() models.Context {
	return b.context
}

// arena holds every node in a flat slice; edges are indexes into it.
type arena struct {
	nodes    []arenaNode
	byID     map[string]int
	rootIdxs []int
}

type arenaNode struct {
	item     models.Item
	children []int
}

// Build turns raw item descriptors into a sorted forest with breadcrumbs and
// the active item for the builder's current path. Malformed entries are
// dropped; Build never fails.
func (b *Builder) Build(raw any) models.Hierarchy {
	items := ParseItems(raw)
	a := newArena(items)

	forest := a.project(a.rootIdxs)
	trail := findTrail(forest, b.context.CurrentPath)

	h := models.Hierarchy{
		Items:       forest,
		Breadcrumbs: breadcrumbsFromTrail(trail),
		TotalItems:  countItems(forest),
	}
	if len(trail) > 0 {
		active := trail[len(trail)-1]
		h.ActiveItem = &active
	}
	return h
}

func newArena(items []models.Item) *arena {
	a := &arena{
		nodes: make([]arenaNode, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	// First pass: one node per distinct id. Later duplicates of an id are
	// skipped; ValidateHierarchy reports them as duplicate_id.
	for _, item := range items {
		if _, exists := a.byID[item.ID]; exists {
			continue
		}
		item.Children = nil
		a.byID[item.ID] = len(a.nodes)
		a.nodes = append(a.nodes, arenaNode{item: item})
	}

	// Second pass: connect children to parents, unresolved parents become roots
	for idx := range a.nodes {
		parentIdx, ok := a.byID[a.nodes[idx].item.Parent]
		if a.nodes[idx].item.HasParent() && ok {
			a.nodes[parentIdx].children = append(a.nodes[parentIdx].children, idx)
			continue
		}
		a.rootIdxs = append(a.rootIdxs, idx)
	}

	// Third pass: order every level
	a.sortLevel(a.rootIdxs)
	for idx := range a.nodes {
		a.sortLevel(a.nodes[idx].children)
	}
	return a
}

func (a *arena) sortLevel(idxs []int) {
	sort.SliceStable(idxs, func(i, j int) bool {
		return a.nodes[idxs[i]].item.Order < a.nodes[idxs[j]].item.Order
	})
}

// project renders the nested view below the given indexes. Only nodes
// reachable from a root are visited, so parent cycles never recurse.
func (a *arena) project(idxs []int) []models.Item {
	out := make([]models.Item, 0, len(idxs))
	for _, idx := range idxs {
		node := a.nodes[idx]
		item := node.item
		if len(node.children) > 0 {
			item.Children = a.project(node.children)
		}
		out = append(out, item)
	}
	return out
}

// findTrail returns the chain of nodes from a root down to the first node
// (depth-first, sibling order) whose path equals currentPath.
func findTrail(items []models.Item, currentPath string) []models.Item {
	for _, item := range items {
		if item.Path == currentPath {
			return []models.Item{item}
		}
		if sub := findTrail(item.Children, currentPath); sub != nil {
			return append([]models.Item{item}, sub...)
		}
	}
	return nil
}

func breadcrumbsFromTrail(trail []models.Item) []models.Breadcrumb {
	crumbs := make([]models.Breadcrumb, len(trail))
	for i, item := range trail {
		crumbs[i] = models.Breadcrumb{
			ID:      item.ID,
			Title:   item.Title,
			Path:    item.Path,
			Current: i == len(trail)-1,
		}
	}
	return crumbs
}

func countItems(items []models.Item) int {
	total := len(items)
	for _, item := range items {
		total += countItems(item.Children)
	}
	return total
}
