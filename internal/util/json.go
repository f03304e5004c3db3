package util

import "encoding/json"

// ConvertStructToJson marshals v for event payloads; on failure it
// returns an empty JSON object so publishing never panics.
func ConvertStructToJson(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
