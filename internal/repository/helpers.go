package repository

import (
	"encoding/json"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// extractRecordID extracts record ID from SurrealDB result
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// extractQueryResults extracts the result array from a SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// getFloatPtr extracts an optional float value from a map
func getFloatPtr(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

// getBool extracts a bool value from a map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) time.Time {
	if t := getTimePtr(m, key); t != nil {
		return *t
	}
	return time.Time{}
}

// getTimePtr extracts an optional time value from a map
func getTimePtr(m map[string]interface{}, key string) *time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	case time.Time:
		return &v
	case models.CustomDateTime:
		t := v.Time
		return &t
	case *models.CustomDateTime:
		if v != nil {
			t := v.Time
			return &t
		}
	}
	return nil
}

// getIDSlice extracts a slice of record ids from a map, normalizing
// RecordID values to their string form
func getIDSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(v))
	for _, item := range v {
		if id := extractRecordID(item); id != "" {
			result = append(result, id)
		}
	}
	return result
}

// getStatusMap extracts a map of adventure id to status string
func getStatusMap(m map[string]interface{}, key string) map[string]string {
	v, ok := m[key].(map[string]interface{})
	if !ok {
		return nil
	}
	result := make(map[string]string, len(v))
	for id, status := range v {
		if s, ok := status.(string); ok {
			result[id] = s
		}
	}
	return result
}
