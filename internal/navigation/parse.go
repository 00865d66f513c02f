// Package navigation assembles flat navigation item lists into a sorted
// forest and reports structural problems in them.
//
// Input arrives untyped (decoded JSON, YAML frontmatter, rows) and is narrowed
// to models.Item here before any tree logic runs.
package navigation

import (
	"encoding/json"
	"math"

	models "sitenav/internal/domain/models/navigation"
)

// DecodeItem narrows a single untyped value to an Item.
// Fields holding a value of the wrong dynamic type are treated as absent.
// It returns false when v is not an object at all.
func DecodeItem(v any) (models.Item, bool) {
	switch t := v.(type) {
	case models.Item:
		return t, true
	case *models.Item:
		if t == nil {
			return models.Item{}, false
		}
		return *t, true
	case map[string]any:
		return decodeMap(t), true
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return decodeMap(m), true
	default:
		return models.Item{}, false
	}
}

// DecodeItems decodes every object in raw, skipping nil and non-object
// entries. Anything that is not a slice yields an empty list.
// Decoded items are not validated; see ParseItems.
func DecodeItems(raw any) []models.Item {
	var elems []any
	switch t := raw.(type) {
	case []models.Item:
		out := make([]models.Item, len(t))
		copy(out, t)
		return out
	case []*models.Item:
		elems = make([]any, len(t))
		for i, p := range t {
			elems[i] = p
		}
	case []map[string]any:
		elems = make([]any, len(t))
		for i, m := range t {
			elems[i] = m
		}
	case []any:
		elems = t
	default:
		return []models.Item{}
	}

	items := make([]models.Item, 0, len(elems))
	for _, elem := range elems {
		if item, ok := DecodeItem(elem); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseItems decodes raw and keeps only the items passing Item.Validate.
// Invalid items are dropped without error.
func ParseItems(raw any) []models.Item {
	decoded := DecodeItems(raw)
	valid := make([]models.Item, 0, len(decoded))
	for _, item := range decoded {
		if err := item.Validate(); err != nil {
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

func decodeMap(m map[string]any) models.Item {
	item := models.Item{
		ID:    stringField(m, "id"),
		Title: stringField(m, "title"),
		Path:  stringField(m, "path"),
		Type:  models.ItemType(stringField(m, "type")),
	}
	if order, ok := intValue(m["order"]); ok {
		item.Order = order
	}
	// Only an explicit boolean false hides an item
	item.Visible = true
	if visible, ok := m["visible"].(bool); ok {
		item.Visible = visible
	}
	item.Parent = stringField(m, "parent")
	if metadata, ok := m["metadata"].(map[string]any); ok {
		item.Metadata = metadata
	}
	return item
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// intValue accepts every numeric kind decoders produce
// (json: float64 or json.Number, yaml: int, pgx: int32/int64).
// Fractional values round half away from zero; values outside the int range
// and NaN/Inf are rejected.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int64ToInt(int64(n))
	case int64:
		return int64ToInt(n)
	case uint:
		return uint64ToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uint64ToInt(uint64(n))
	case uint64:
		return uint64ToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64ToInt(i)
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func uint64ToInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	r := math.Round(f)
	// -float64(math.MinInt) is 2^63 (or 2^31), the first value past MaxInt
	if r < float64(math.MinInt) || r >= -float64(math.MinInt) {
		return 0, false
	}
	return int(r), true
}
