package navigation

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sitenav/internal/domain/models/navigation"
)

func TestBuild_EndToEnd(t *testing.T) {
	b := NewBuilder(&models.Context{CurrentPath: "/blog/post"})

	h := b.Build(siteItems())

	require.NotNil(t, h.ActiveItem)
	assert.Equal(t, "post", h.ActiveItem.ID)
	assert.Equal(t, 3, h.TotalItems)
	assert.Equal(t, []string{"home", "blog"}, ids(h.Items))

	var crumbIDs []string
	for _, crumb := range h.Breadcrumbs {
		crumbIDs = append(crumbIDs, crumb.ID)
	}
	assert.Equal(t, []string{"blog", "post"}, crumbIDs)
	assert.False(t, h.Breadcrumbs[0].Current)
	assert.True(t, h.Breadcrumbs[1].Current)
}

func TestNewBuilder_DefaultContext(t *testing.T) {
	b := NewBuilder(nil)

	assert.Equal(t, models.DefaultContext(), b.Context())

	h := b.Build(siteItems())
	require.NotNil(t, h.ActiveItem)
	assert.Equal(t, "home", h.ActiveItem.ID)
	require.Len(t, h.Breadcrumbs, 1)
	assert.True(t, h.Breadcrumbs[0].Current)
}

func TestNewBuilder_PartialContext(t *testing.T) {
	b := NewBuilder(&models.Context{BaseURL: "https://example.com"})

	ctx := b.Context()
	assert.Equal(t, "https://example.com", ctx.BaseURL)
	assert.Equal(t, "/", ctx.CurrentPath)
	assert.Equal(t, "visitor", ctx.UserRole)
	assert.Equal(t, "en", ctx.Locale)
}

func TestBuild_NonSliceInput(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil", raw: nil},
		{name: "string", raw: "not a list"},
		{name: "number", raw: 42},
		{name: "single object", raw: map[string]any{"id": "home", "title": "Home", "path": "/", "type": "page"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBuilder(nil).Build(tt.raw)

			assert.Empty(t, h.Items)
			assert.Empty(t, h.Breadcrumbs)
			assert.Nil(t, h.ActiveItem)
			assert.Equal(t, 0, h.TotalItems)
		})
	}
}

func TestBuild_DropsMalformedItems(t *testing.T) {
	raw := []any{
		nil,
		"string",
		17,
		map[string]any{"id": "ok", "title": "OK", "path": "/ok", "type": "page"},
		map[string]any{"title": "No ID", "path": "/no-id", "type": "page"},
		map[string]any{"id": "no-title", "path": "/no-title", "type": "page"},
		map[string]any{"id": "no-path", "title": "No Path", "type": "page"},
		map[string]any{"id": "no-type", "title": "No Type", "path": "/no-type"},
		map[string]any{"id": "bad-type", "title": "Bad", "path": "/bad", "type": "folder"},
		map[string]any{"id": "relative", "title": "Relative", "path": "relative", "type": "page"},
		map[string]any{"id": 5, "title": "Numeric ID", "path": "/num", "type": "page"},
		(*models.Item)(nil),
	}

	h := NewBuilder(nil).Build(raw)

	assert.Equal(t, []string{"ok"}, ids(h.Items))
	assert.Equal(t, 1, h.TotalItems)
}

func TestBuild_FilteredItemsNeverAppear(t *testing.T) {
	items := []models.Item{
		collection("docs", "/docs", 0),
		content("guide", "/docs/guide", 0, "docs"),
		{ID: "bad-path", Title: "Bad", Path: "docs/bad", Type: models.ItemTypeContent, Parent: "docs"},
		{ID: "bad-type", Title: "Bad", Path: "/docs/x", Type: "widget", Parent: "docs"},
		{ID: "", Title: "Anon", Path: "/docs/anon", Type: models.ItemTypePage, Parent: "docs"},
	}

	h := NewBuilder(nil).Build(items)

	seen := map[string]bool{}
	walk(h.Items, func(item models.Item) { seen[item.ID] = true })
	assert.Equal(t, map[string]bool{"docs": true, "guide": true}, seen)
	assert.Equal(t, 2, h.TotalItems)
}

func TestBuild_CountsEveryDepth(t *testing.T) {
	items := []models.Item{
		collection("a", "/a", 0),
		withParent(collection("b", "/a/b", 0), "a"),
		withParent(collection("c", "/a/b/c", 0), "b"),
		withParent(collection("d", "/a/b/c/d", 0), "c"),
		content("e", "/a/b/c/d/e", 0, "d"),
		page("z", "/z", 1),
	}

	h := NewBuilder(&models.Context{CurrentPath: "/a/b/c/d/e"}).Build(items)

	assert.Equal(t, 6, h.TotalItems)
	require.Len(t, h.Breadcrumbs, 5)
	assert.Equal(t, "e", h.Breadcrumbs[4].ID)
	for i, crumb := range h.Breadcrumbs {
		assert.Equal(t, i == 4, crumb.Current, "crumb %s", crumb.ID)
	}
}

func TestBuild_SortsSiblingsStably(t *testing.T) {
	items := []models.Item{
		collection("root", "/", 0),
		withParent(page("third", "/c", 2), "root"),
		withParent(page("first-a", "/a", 1), "root"),
		withParent(page("zero", "/z", 0), "root"),
		withParent(page("first-b", "/b", 1), "root"),
		page("top-2", "/top2", 5),
		page("top-1", "/top1", -1),
	}

	h := NewBuilder(nil).Build(items)

	assert.Equal(t, []string{"top-1", "root", "top-2"}, ids(h.Items))
	assert.Equal(t, []string{"zero", "first-a", "first-b", "third"}, ids(h.Items[1].Children))

	walk(h.Items, func(item models.Item) {
		for i := 1; i < len(item.Children); i++ {
			assert.LessOrEqual(t, item.Children[i-1].Order, item.Children[i].Order)
		}
	})
}

func TestBuild_OrphanBecomesRoot(t *testing.T) {
	items := []models.Item{
		page("home", "/", 0),
		content("orphan", "/lost", 1, "nowhere"),
	}

	h := NewBuilder(nil).Build(items)

	assert.Equal(t, []string{"home", "orphan"}, ids(h.Items))
	assert.Equal(t, 2, h.TotalItems)
}

func TestBuild_NoMatchingPath(t *testing.T) {
	h := NewBuilder(&models.Context{CurrentPath: "/missing"}).Build(siteItems())

	assert.Nil(t, h.ActiveItem)
	assert.NotNil(t, h.Breadcrumbs)
	assert.Empty(t, h.Breadcrumbs)
}

func TestBuild_FirstMatchWinsInTraversalOrder(t *testing.T) {
	items := []models.Item{
		collection("second", "/s", 1),
		withParent(page("deep", "/dup", 0), "second"),
		page("first", "/dup", 0),
	}

	h := NewBuilder(&models.Context{CurrentPath: "/dup"}).Build(items)

	require.NotNil(t, h.ActiveItem)
	assert.Equal(t, "first", h.ActiveItem.ID)
}

func TestBuild_DuplicateIDKeepsFirst(t *testing.T) {
	items := []models.Item{
		page("home", "/", 0),
		page("home", "/other-home", 1),
	}

	h := NewBuilder(nil).Build(items)

	require.Len(t, h.Items, 1)
	assert.Equal(t, "/", h.Items[0].Path)
	assert.Equal(t, 1, h.TotalItems)
}

func TestBuild_CyclicItemsAreUnreachable(t *testing.T) {
	items := []models.Item{
		page("home", "/", 0),
		withParent(page("a", "/a", 0), "b"),
		withParent(page("b", "/b", 0), "a"),
		withParent(page("self", "/self", 0), "self"),
	}

	h := NewBuilder(&models.Context{CurrentPath: "/a"}).Build(items)

	assert.Equal(t, []string{"home"}, ids(h.Items))
	assert.Equal(t, 1, h.TotalItems)
	assert.Nil(t, h.ActiveItem)
}

func TestBuild_Idempotent(t *testing.T) {
	b := NewBuilder(&models.Context{CurrentPath: "/blog/post"})
	items := siteItems()

	first := b.Build(items)
	second := b.Build(items)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build() not idempotent (-first +second):\n%s", diff)
	}
	assert.Nil(t, items[1].Children, "input must not be mutated")
}

func TestBuild_DecodedJSON(t *testing.T) {
	payload := `[
		{"id":"home","title":"Home","path":"/","type":"page","order":0,"visible":true},
		{"id":"blog","title":"Blog","path":"/blog","type":"collection","order":1,"visible":true,"parent":null},
		{"id":"post","title":"Post","path":"/blog/post","type":"content","order":0,"parent":"blog","metadata":{"tags":["go"]}},
		null,
		{"id":"broken"}
	]`
	var raw any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	h := NewBuilder(&models.Context{CurrentPath: "/blog/post"}).Build(raw)

	assert.Equal(t, 3, h.TotalItems)
	require.NotNil(t, h.ActiveItem)
	assert.Equal(t, "post", h.ActiveItem.ID)
	assert.Equal(t, []any{"go"}, h.ActiveItem.Metadata["tags"])
}
