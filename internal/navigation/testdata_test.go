package navigation

import (
	models "sitenav/internal/domain/models/navigation"
)

func page(id, path string, order int) models.Item {
	return models.Item{ID: id, Title: id, Path: path, Type: models.ItemTypePage, Order: order, Visible: true}
}

func collection(id, path string, order int) models.Item {
	return models.Item{ID: id, Title: id, Path: path, Type: models.ItemTypeCollection, Order: order, Visible: true}
}

func content(id, path string, order int, parent string) models.Item {
	return models.Item{ID: id, Title: id, Path: path, Type: models.ItemTypeContent, Order: order, Visible: true, Parent: parent}
}

func withParent(item models.Item, parent string) models.Item {
	item.Parent = parent
	return item
}

func siteItems() []models.Item {
	return []models.Item{
		page("home", "/", 0),
		collection("blog", "/blog", 1),
		content("post", "/blog/post", 0, "blog"),
	}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func walk(items []models.Item, fn func(models.Item)) {
	for _, item := range items {
		fn(item)
		walk(item.Children, fn)
	}
}
