package navigation

import (
	"fmt"

	models "sitenav/internal/domain/models/navigation"
)

// ValidateHierarchy checks a raw flat item list for duplicate ids and paths,
// content items used as parents, and parents that do not exist. Every check
// runs; problems accumulate. Missing parents are warnings only.
func ValidateHierarchy(items []models.Item) models.ValidationResult {
	errs := make([]models.ValidationError, 0)
	warnings := make([]models.ValidationError, 0)

	errs = append(errs, duplicateIDErrors(items)...)
	errs = append(errs, duplicatePathErrors(items)...)
	errs = append(errs, invalidParentChildErrors(items)...)
	warnings = append(warnings, missingParentWarnings(items)...)

	return models.ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// duplicateIDErrors emits one error per distinct duplicated id
func duplicateIDErrors(items []models.Item) []models.ValidationError {
	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if counts[item.ID] == 0 {
			order = append(order, item.ID)
		}
		counts[item.ID]++
	}

	var errs []models.ValidationError
	for _, id := range order {
		if counts[id] < 2 {
			continue
		}
		errs = append(errs, models.ValidationError{
			Type:    models.ErrorDuplicateID,
			ItemID:  id,
			Message: fmt.Sprintf("duplicate id '%s' used by %d items", id, counts[id]),
		})
	}
	return errs
}

// duplicatePathErrors emits one error per distinct duplicated path,
// attributed to the first item holding it
func duplicatePathErrors(items []models.Item) []models.ValidationError {
	holders := make(map[string][]string, len(items))
	var order []string
	for _, item := range items {
		if item.Path == "" {
			continue
		}
		if _, seen := holders[item.Path]; !seen {
			order = append(order, item.Path)
		}
		holders[item.Path] = append(holders[item.Path], item.ID)
	}

	var errs []models.ValidationError
	for _, path := range order {
		ids := holders[path]
		if len(ids) < 2 {
			continue
		}
		errs = append(errs, models.ValidationError{
			Type:    models.ErrorDuplicatePath,
			ItemID:  ids[0],
			Message: fmt.Sprintf("duplicate path '%s' used by %d items", path, len(ids)),
			Items:   ids,
		})
	}
	return errs
}

// invalidParentChildErrors flags content items referenced as a parent
func invalidParentChildErrors(items []models.Item) []models.ValidationError {
	referenced := make(map[string][]string)
	for _, item := range items {
		if item.HasParent() {
			referenced[item.Parent] = append(referenced[item.Parent], item.ID)
		}
	}

	reported := make(map[string]bool)
	var errs []models.ValidationError
	for _, item := range items {
		if item.Type != models.ItemTypeContent || reported[item.ID] {
			continue
		}
		children, ok := referenced[item.ID]
		if !ok {
			continue
		}
		reported[item.ID] = true
		errs = append(errs, models.ValidationError{
			Type:    models.ErrorInvalidParentChild,
			ItemID:  item.ID,
			Message: fmt.Sprintf("content item '%s' cannot have children", item.ID),
			Items:   children,
		})
	}
	return errs
}

// missingParentWarnings emits one warning per item naming an unknown parent
func missingParentWarnings(items []models.Item) []models.ValidationError {
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	var warnings []models.ValidationError
	for _, item := range items {
		if !item.HasParent() || known[item.Parent] {
			continue
		}
		warnings = append(warnings, models.ValidationError{
			Type:    models.ErrorMissingParent,
			ItemID:  item.ID,
			Message: fmt.Sprintf("parent '%s' of item '%s' does not exist", item.Parent, item.ID),
			Items:   []string{item.Parent},
		})
	}
	return warnings
}
