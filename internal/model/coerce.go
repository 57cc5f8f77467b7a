package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coercion helpers for partial updates and form input. JSON decoding hands us
// float64 for numbers; HTML forms hand us strings. A value that cannot be
// coerced reports ok=false and the caller leaves the field unchanged.

func CoerceString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func CoerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func CoerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func CoerceBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "on", "1", "yes":
			return true, true
		case "false", "off", "0", "no", "":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
