package metadata

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

// Draft is the transient form state, keyed by field id rendered as a string.
// Keys stay stable across field renames; the persisted payload is keyed by
// field name instead (see Normalize).
type Draft map[string]any

var (
	leadingDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	leadingDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)
	exactDateRe       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DraftKey renders a field id as a draft map key.
func DraftKey(fieldID uint) string {
	return strconv.FormatUint(uint64(fieldID), 10)
}

// BuildDefaults converts a stored, name-keyed metadata object into an
// id-keyed editable draft. Pure and idempotent: feeding a normalized payload
// of its own output back in yields an equivalent draft.
func BuildDefaults(defs []field.Definition, stored map[string]any) Draft {
	draft := make(Draft, len(defs))
	for _, def := range defs {
		key := DraftKey(def.ID)
		raw, ok := stored[def.Name]
		if !ok || raw == nil {
			if def.FieldType == field.TypeCheckbox {
				draft[key] = false
			} else {
				draft[key] = ""
			}
			continue
		}
		draft[key] = coerceDefault(def.FieldType, raw)
	}
	return draft
}

func coerceDefault(fieldType field.FieldType, raw any) any {
	switch fieldType {
	case field.TypeNumber:
		if n, ok := asFiniteNumber(raw); ok {
			return n
		}
		if s, ok := raw.(string); ok {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
				return n
			}
		}
		return ""
	case field.TypeCheckbox:
		if b, ok := raw.(bool); ok {
			return b
		}
		if s, ok := raw.(string); ok {
			return strings.EqualFold(s, "true")
		}
		return false
	case field.TypeDate:
		if s, ok := raw.(string); ok {
			if match := leadingDateRe.FindString(s); match != "" {
				return match
			}
			return s
		}
		return raw
	case field.TypeTimestamp:
		if s, ok := raw.(string); ok {
			substituted := strings.Replace(s, " ", "T", 1)
			if match := leadingDateTimeRe.FindString(substituted); match != "" {
				return match
			}
			return substituted
		}
		return raw
	default:
		// text, select and anything unknown edit as strings
		if s, ok := raw.(string); ok {
			return s
		}
		return stringify(raw)
	}
}

func asFiniteNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case float32:
		return asFiniteNumber(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func stringify(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
