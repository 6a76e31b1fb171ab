package tools

import (
	"encoding/json"
	"fmt"
	"time"
)

// Command arguments arrive loosely typed from the model: strings, numbers
// (float64 after JSON decoding, but ints from tests), booleans. These
// helpers normalize them; a missing or mistyped value reads as absent.

func stringArg(args map[string]interface{}, key string) (string, bool) {
	v, present := args[key]
	if !present {
		return "", false
	}
	s, isString := v.(string)
	if !isString || s == "" {
		return "", false
	}
	return s, true
}

func floatArg(args map[string]interface{}, key string) (float64, bool) {
	v, present := args[key]
	if !present {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func boolArg(args map[string]interface{}, key string) (bool, bool) {
	v, present := args[key]
	if !present {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

// timeArg parses an ISO 8601 instant, accepting a date-only form. The error
// distinguishes "absent" (nil error, ok=false) from "present but invalid".
func timeArg(args map[string]interface{}, key string) (time.Time, bool, error) {
	s, present := stringArg(args, key)
	if !present {
		return time.Time{}, false, nil
	}
	t, err := parseInstant(s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("campo %s: %w", key, err)
	}
	return t, true, nil
}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida %q", s)
}
