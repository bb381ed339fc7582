package backend

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a backend JSON object. The backend's schemas differ per resource
// and carry denormalized display fields, so records stay generic and the
// provider layers typed coercion on top.
type Record map[string]any

func (r Record) ID() string {
	return IDString(r["id"])
}

func (r Record) GetString(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func (r Record) GetStrings(key string) []string {
	value, ok := r[key].([]any)
	if !ok {
		return nil
	}

	var result []string
	for _, item := range value {
		if item == nil {
			continue
		}
		result = append(result, fmt.Sprintf("%v", item))
	}
	return result
}

func (r Record) GetArray(key string) []any {
	value, _ := r[key].([]any)
	return value
}

func (r Record) Clone() Record {
	clone := make(Record, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}

// IDString renders an identifier the way the admin UI expects it: always a
// string, with JSON numbers collapsed to their integral form ("7", not "7.0").
func IDString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func decodeRecord(body []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	record["id"] = record.ID()
	return record, nil
}

// decodeRecords accepts either a bare JSON array or a {data, total} envelope.
// When no total is supplied the length of the returned slice is used.
func decodeRecords(body []byte) ([]Record, int, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("error decoding JSON response: %v", err)
	}

	var items []any
	total := -1

	switch value := raw.(type) {
	case []any:
		items = value
	case map[string]any:
		if data, ok := value["data"].([]any); ok {
			items = data
		} else {
			items = []any{value}
		}
		if t, ok := value["total"].(float64); ok {
			total = int(t)
		}
	case nil:
		items = nil
	default:
		return nil, 0, fmt.Errorf("unexpected list response shape: %T", raw)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record := Record(object)
		record["id"] = record.ID()
		records = append(records, record)
	}

	if total < 0 {
		total = len(records)
	}
	return records, total, nil
}
