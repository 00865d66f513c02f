package navigation

import (
	"fmt"
	"strings"

	models "sitenav/internal/domain/models/navigation"
)

// DetectCircularReferences finds cycles in the parent-pointer graph.
// Each node has at most one outgoing edge, so every walk is a simple chain
// and the recursion stack is kept as an explicit slice.
// A one-node cycle is reported as self_reference, longer ones as
// circular_reference; each cycle is reported once.
func DetectCircularReferences(items []models.Item) []models.CircularReferenceError {
	parentOf := make(map[string]string, len(items))
	var ids []string
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, exists := parentOf[item.ID]; exists {
			continue
		}
		parentOf[item.ID] = item.Parent
		ids = append(ids, item.ID)
	}

	visited := make(map[string]bool, len(ids))
	var cycles []models.CircularReferenceError

	for _, start := range ids {
		if visited[start] {
			continue
		}

		var stack []string
		onStack := make(map[string]int)
		current := start
		for {
			if visited[current] {
				break
			}
			if pos, ok := onStack[current]; ok {
				cycles = append(cycles, newCycleError(stack[pos:]))
				break
			}
			onStack[current] = len(stack)
			stack = append(stack, current)

			parent := parentOf[current]
			if _, known := parentOf[parent]; parent == "" || !known {
				break
			}
			current = parent
		}

		for _, id := range stack {
			visited[id] = true
		}
	}

	if cycles == nil {
		return []models.CircularReferenceError{}
	}
	return cycles
}

func newCycleError(members []string) models.CircularReferenceError {
	ids := make([]string, len(members))
	copy(ids, members)

	if len(ids) == 1 {
		return models.CircularReferenceError{
			Type:    models.ErrorSelfReference,
			ItemID:  ids[0],
			Message: fmt.Sprintf("item '%s' references itself as parent", ids[0]),
			Items:   ids,
		}
	}
	return models.CircularReferenceError{
		Type:    models.ErrorCircularReference,
		ItemID:  ids[0],
		Message: fmt.Sprintf("circular parent reference: %s -> %s", strings.Join(ids, " -> "), ids[0]),
		Items:   ids,
	}
}
