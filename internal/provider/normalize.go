package provider

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/samber/lo"
)

// toNumber coerces a free-form value with a numeric-or-zero rule: nil, empty
// strings and garbage all become 0 so the backend never sees a null where it
// expects a number.
func toNumber(value any) float64 {
	n := toOptionalNumber(value)
	if n == nil {
		return 0
	}
	return *n
}

// toOptionalNumber distinguishes "absent" from zero: nil, "" and unparsable
// input map to nil.
func toOptionalNumber(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		if v == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(normalizeNumberString(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		return &parsed
	case bool:
		f := 0.0
		if v {
			f = 1.0
		}
		return &f
	default:
		return nil
	}
}

func toStringSafe(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// normalizeNumberString prepares operator input for parsing: thousands
// separators are dropped and full-width digits (１００００) are folded to
// ASCII.
func normalizeNumberString(value string) string {
	value = strings.ReplaceAll(value, ",", "")
	var b strings.Builder
	for _, r := range value {
		if r >= '０' && r <= '９' {
			r = r - '０' + '0'
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// toNumberArray coerces an id set to a numeric array the backend accepts:
// arrays are mapped element-wise, a bare scalar becomes a one-element array,
// nil becomes an empty one.
func toNumberArray(value any) []float64 {
	switch v := value.(type) {
	case nil:
		return []float64{}
	case []any:
		return lo.Map(v, func(item any, _ int) float64 {
			return toNumber(item)
		})
	case []string:
		return lo.Map(v, func(item string, _ int) float64 {
			return toNumber(item)
		})
	case []float64:
		return v
	default:
		return []float64{toNumber(v)}
	}
}

// mergeUpdateResult overlays the submitted data on top of the backend's
// response, keeping the backend's id when it returned one.
func mergeUpdateResult(response, submitted backend.Record, fallbackID string) backend.Record {

	result := backend.Record{}
	for key, value := range response {
		result[key] = value
	}
	for key, value := range submitted {
		result[key] = value
	}

	id := fallbackID
	if response != nil && response.ID() != "" {
		id = response.ID()
	}
	result["id"] = id
	result[fullMarker] = true
	return result
}
