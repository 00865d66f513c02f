package navigation

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ItemType is the kind of a navigation node
type ItemType string

const (
	ItemTypePage       ItemType = "page"
	ItemTypeCollection ItemType = "collection"
	ItemTypeContent    ItemType = "content" // leaf-only, never has children
)

// ValidItemTypes lists every accepted ItemType
var ValidItemTypes = []ItemType{ItemTypePage, ItemTypeCollection, ItemTypeContent}

// IsValid reports whether t is one of the known item types
func (t ItemType) IsValid() bool {
	for _, valid := range ValidItemTypes {
		if t == valid {
			return true
		}
	}
	return false
}

var rootedPathRegex = regexp.MustCompile(`^/`)

// Item is one navigable node of the site.
// Children is only populated on builder output; raw input leaves it nil.
type Item struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Path     string         `json:"path"`
	Type     ItemType       `json:"type"`
	Order    int            `json:"order"`
	Visible  bool           `json:"visible"`
	Parent   string         `json:"parent,omitempty"`
	Children []Item         `json:"children,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// HasParent reports whether the item names a parent id
func (i Item) HasParent() bool {
	return i.Parent != ""
}

// Validate checks the fields an item needs before it may enter a hierarchy
func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required),
		validation.Field(&i.Title, validation.Required),
		validation.Field(&i.Path,
			validation.Required,
			validation.Match(rootedPathRegex).Error("path must start with '/'"),
		),
		validation.Field(&i.Type,
			validation.Required,
			validation.In(ItemTypePage, ItemTypeCollection, ItemTypeContent).Error("type must be page, collection or content"),
		),
	)
}

// Breadcrumb is one step of the root-to-current trail
type Breadcrumb struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Current bool   `json:"current"`
}

// Hierarchy is the builder output.
// TotalItems counts every node in the forest, not just roots.
type Hierarchy struct {
	Items       []Item       `json:"items"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
	ActiveItem  *Item        `json:"activeItem"`
	TotalItems  int          `json:"totalItems"`
}
