package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "sitenav/internal/domain/models/navigation"
)

func errorTypes(errs []models.ValidationError) []models.ErrorType {
	out := make([]models.ErrorType, len(errs))
	for i, e := range errs {
		out[i] = e.Type
	}
	return out
}

func TestValidateHierarchy_Valid(t *testing.T) {
	result := ValidateHierarchy(siteItems())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateHierarchy(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.Item
		wantValid    bool
		wantErrors   []models.ErrorType
		wantWarnings []models.ErrorType
	}{
		{
			name: "duplicate id reported once",
			items: []models.Item{
				page("a", "/a", 0),
				page("a", "/a2", 1),
				page("a", "/a3", 2),
			},
			wantValid:    false,
			wantErrors:   []models.ErrorType{models.ErrorDuplicateID},
			wantWarnings: []models.ErrorType{},
		},
		{
			name: "duplicate path reported once",
			items: []models.Item{
				page("a", "/same", 0),
				page("b", "/same", 1),
			},
			wantValid:    false,
			wantErrors:   []models.ErrorType{models.ErrorDuplicatePath},
			wantWarnings: []models.ErrorType{},
		},
		{
			name: "content used as parent",
			items: []models.Item{
				content("post", "/post", 0, ""),
				content("child", "/post/child", 0, "post"),
				content("child2", "/post/child2", 1, "post"),
			},
			wantValid:    false,
			wantErrors:   []models.ErrorType{models.ErrorInvalidParentChild},
			wantWarnings: []models.ErrorType{},
		},
		{
			name: "missing parent is only a warning",
			items: []models.Item{
				page("home", "/", 0),
				content("orphan", "/orphan", 0, "ghost"),
			},
			wantValid:    true,
			wantErrors:   []models.ErrorType{},
			wantWarnings: []models.ErrorType{models.ErrorMissingParent},
		},
		{
			name: "checks accumulate",
			items: []models.Item{
				page("a", "/x", 0),
				page("a", "/x", 1),
				content("leaf", "/leaf", 0, ""),
				content("under-leaf", "/leaf/under", 0, "leaf"),
				content("lost", "/lost", 0, "ghost"),
			},
			wantValid: false,
			wantErrors: []models.ErrorType{
				models.ErrorDuplicateID,
				models.ErrorDuplicatePath,
				models.ErrorInvalidParentChild,
			},
			wantWarnings: []models.ErrorType{models.ErrorMissingParent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateHierarchy(tt.items)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantErrors, errorTypes(result.Errors))
			assert.Equal(t, tt.wantWarnings, errorTypes(result.Warnings))
		})
	}
}

func TestValidateHierarchy_ErrorDetails(t *testing.T) {
	items := []models.Item{
		page("first", "/shared", 0),
		page("second", "/shared", 1),
		content("leaf", "/leaf", 0, ""),
		content("kid", "/leaf/kid", 0, "leaf"),
		content("orphan", "/orphan", 0, "ghost"),
	}

	result := ValidateHierarchy(items)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "first", result.Errors[0].ItemID)
	assert.Equal(t, []string{"first", "second"}, result.Errors[0].Items)
	assert.Equal(t, "leaf", result.Errors[1].ItemID)
	assert.Contains(t, result.Errors[1].Message, "cannot have children")

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "orphan", result.Warnings[0].ItemID)
	assert.Equal(t, []string{"ghost"}, result.Warnings[0].Items)
}

func TestValidateHierarchy_OrphanIsRootAndWarning(t *testing.T) {
	items := []models.Item{
		page("home", "/", 0),
		content("orphan", "/orphan", 1, "ghost"),
	}

	h := NewBuilder(nil).Build(items)
	result := ValidateHierarchy(items)

	assert.Contains(t, ids(h.Items), "orphan")
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, models.ErrorMissingParent, result.Warnings[0].Type)
	assert.Empty(t, result.Errors)
}
