package metadata

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

const (
	msgRequired       = "Field is required"
	msgString         = "Value must be a string"
	msgNumber         = "Value must be a number"
	msgDate           = "Value must be a date (YYYY-MM-DD)"
	msgTimestamp      = "Value must be a timestamp (ISO 8601)"
	msgCheckbox       = "Value must be true or false"
	msgMissingOptions = "Select field is missing options"
	msgUnsupported    = "Unsupported field type"
	msgUnknownField   = "Unknown field"
)

// FieldError is a validation failure attached to a field id.
type FieldError struct {
	FieldID uint   `json:"field_id"`
	Message string `json:"message"`
}

// Result is the outcome of normalizing a draft. Payload is nil when no field
// produced a value; Errors lists every per-field problem found.
type Result struct {
	Payload map[string]any
	Errors  []FieldError
}

// Normalize validates an id-keyed draft against the field definitions and
// builds the name-keyed payload ready for persistence. Fields are processed
// in the order given; callers sort by position and id beforehand. Normalize
// never panics or returns a Go error: every problem becomes a FieldError.
func Normalize(defs []field.Definition, draft Draft) Result {
	payload := make(map[string]any, len(defs))
	var errs []FieldError

	for _, def := range defs {
		value := draft[DraftKey(def.ID)]

		if isEmpty(value) {
			if def.IsRequired {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgRequired})
			}
			continue
		}

		switch def.FieldType {
		case field.TypeText:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgString})
				continue
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				payload[def.Name] = trimmed
			}

		case field.TypeNumber:
			n, ok := coerceNumber(value)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgNumber})
				continue
			}
			payload[def.Name] = n

		case field.TypeDate:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgDate})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !validDate(trimmed) {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgDate})
				continue
			}
			payload[def.Name] = trimmed

		case field.TypeTimestamp:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgTimestamp})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !validTimestamp(trimmed) {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgTimestamp})
				continue
			}
			// the original string goes out, not the parse-adjusted one
			payload[def.Name] = trimmed

		case field.TypeCheckbox:
			b, ok := value.(bool)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgCheckbox})
				continue
			}
			payload[def.Name] = b

		case field.TypeSelect:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgString})
				continue
			}
			options := def.OptionList()
			if len(options) == 0 {
				errs = append(errs, FieldError{FieldID: def.ID, Message: msgMissingOptions})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !containsOption(options, trimmed) {
				errs = append(errs, FieldError{
					FieldID: def.ID,
					Message: "Value must be one of: " + strings.Join(options, ", "),
				})
				continue
			}
			payload[def.Name] = trimmed

		default:
			errs = append(errs, FieldError{FieldID: def.ID, Message: msgUnsupported})
		}
	}

	if len(payload) == 0 {
		payload = nil
	}
	return Result{Payload: payload, Errors: errs}
}

// isEmpty reports the draft emptiness rule: nil, or a string that trims to "".
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func coerceNumber(value any) (float64, bool) {
	if n, ok := asFiniteNumber(value); ok {
		return n, true
	}
	if s, ok := value.(string); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// validDate requires the exact YYYY-MM-DD shape and a real calendar date.
func validDate(value string) bool {
	if !exactDateRe.MatchString(value) {
		return false
	}
	_, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	return err == nil
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// LooksLikeTimestamp reports whether value passes the same ISO 8601 check
// the validator applies, for callers vetting filter input.
func LooksLikeTimestamp(value string) bool {
	return validTimestamp(value)
}

// validTimestamp accepts a loosely-formed ISO 8601 string with either a 'T'
// or space separator. A trailing 'Z' is rewritten to '+00:00' for parsing
// only; callers persist the original string.
func validTimestamp(value string) bool {
	if !strings.Contains(value, "T") && !strings.Contains(value, " ") {
		return false
	}
	adjusted := strings.Replace(value, " ", "T", 1)
	if strings.HasSuffix(adjusted, "Z") {
		adjusted = strings.TrimSuffix(adjusted, "Z") + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, adjusted); err == nil {
			return true
		}
	}
	return false
}
