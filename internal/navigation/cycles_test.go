package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sitenav/internal/domain/models/navigation"
)

func TestDetectCircularReferences_TwoNodeCycle(t *testing.T) {
	items := []models.Item{
		withParent(page("A", "/a", 0), "B"),
		withParent(page("B", "/b", 0), "A"),
	}

	cycles := DetectCircularReferences(items)

	require.Len(t, cycles, 1)
	assert.Equal(t, models.ErrorCircularReference, cycles[0].Type)
	assert.Subset(t, cycles[0].Items, []string{"A", "B"})
}

func TestDetectCircularReferences_SelfReference(t *testing.T) {
	items := []models.Item{
		withParent(page("X", "/x", 0), "X"),
	}

	cycles := DetectCircularReferences(items)

	require.Len(t, cycles, 1)
	assert.Equal(t, models.ErrorSelfReference, cycles[0].Type)
	assert.Equal(t, []string{"X"}, cycles[0].Items)
}

func TestDetectCircularReferences(t *testing.T) {
	tests := []struct {
		name      string
		items     []models.Item
		wantTypes []models.ErrorType
		wantSets  [][]string
	}{
		{
			name:      "acyclic tree",
			items:     siteItems(),
			wantTypes: []models.ErrorType{},
		},
		{
			name: "dangling parent ends the walk",
			items: []models.Item{
				withParent(page("a", "/a", 0), "ghost"),
			},
			wantTypes: []models.ErrorType{},
		},
		{
			name: "tail leading into a cycle reports only the cycle",
			items: []models.Item{
				withParent(page("tail", "/t", 0), "a"),
				withParent(page("a", "/a", 0), "b"),
				withParent(page("b", "/b", 0), "c"),
				withParent(page("c", "/c", 0), "a"),
			},
			wantTypes: []models.ErrorType{models.ErrorCircularReference},
			wantSets:  [][]string{{"a", "b", "c"}},
		},
		{
			name: "independent cycles",
			items: []models.Item{
				withParent(page("x", "/x", 0), "x"),
				withParent(page("p", "/p", 0), "q"),
				withParent(page("q", "/q", 0), "p"),
				page("home", "/", 0),
			},
			wantTypes: []models.ErrorType{models.ErrorSelfReference, models.ErrorCircularReference},
			wantSets:  [][]string{{"x"}, {"p", "q"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycles := DetectCircularReferences(tt.items)

			assert.Equal(t, tt.wantTypes, errorTypes(cycles))
			for i, set := range tt.wantSets {
				assert.ElementsMatch(t, set, cycles[i].Items)
			}
		})
	}
}
