package metadata

import (
	"strings"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

// NamedError is a validation failure keyed by field name, the addressing
// scheme of the persisted metadata object and of the REST surface.
type NamedError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStored checks a name-keyed metadata object, as submitted to the
// item endpoints, against the collection's field definitions. It returns the
// normalized payload or the collected errors. The payload is nil when the
// caller sent no metadata at all and nothing normalized; an explicitly
// provided object normalizes to a (possibly empty) map.
func ValidateStored(defs []field.Definition, metadata map[string]any) (map[string]any, []NamedError) {
	provided := metadata != nil

	byName := make(map[string]field.Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	var errs []NamedError
	for key := range metadata {
		if _, known := byName[key]; !known {
			errs = append(errs, NamedError{Field: key, Message: msgUnknownField})
		}
	}

	normalized := make(map[string]any, len(defs))
	for _, def := range defs {
		value, present := metadata[def.Name]
		if !present || value == nil {
			if def.IsRequired {
				errs = append(errs, NamedError{Field: def.Name, Message: msgRequired})
			}
			continue
		}

		switch def.FieldType {
		case field.TypeText:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgString})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if def.IsRequired && trimmed == "" {
				errs = append(errs, NamedError{Field: def.Name, Message: msgRequired})
				continue
			}
			normalized[def.Name] = trimmed

		case field.TypeNumber:
			// booleans are not numbers even though JSON leaves them loose
			if _, isBool := value.(bool); isBool {
				errs = append(errs, NamedError{Field: def.Name, Message: msgNumber})
				continue
			}
			n, ok := asFiniteNumber(value)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgNumber})
				continue
			}
			normalized[def.Name] = n

		case field.TypeDate:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgDate})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !validDate(trimmed) {
				errs = append(errs, NamedError{Field: def.Name, Message: msgDate})
				continue
			}
			normalized[def.Name] = trimmed

		case field.TypeTimestamp:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgTimestamp})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !validTimestamp(trimmed) {
				errs = append(errs, NamedError{Field: def.Name, Message: msgTimestamp})
				continue
			}
			normalized[def.Name] = trimmed

		case field.TypeCheckbox:
			b, ok := value.(bool)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgCheckbox})
				continue
			}
			normalized[def.Name] = b

		case field.TypeSelect:
			s, ok := value.(string)
			if !ok {
				errs = append(errs, NamedError{Field: def.Name, Message: msgString})
				continue
			}
			options := def.OptionList()
			if len(options) == 0 {
				errs = append(errs, NamedError{Field: def.Name, Message: msgMissingOptions})
				continue
			}
			trimmed := strings.TrimSpace(s)
			if !containsOption(options, trimmed) {
				errs = append(errs, NamedError{
					Field:   def.Name,
					Message: "Value must be one of: " + strings.Join(options, ", "),
				})
				continue
			}
			normalized[def.Name] = trimmed

		default:
			errs = append(errs, NamedError{Field: def.Name, Message: msgUnsupported})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(normalized) == 0 && !provided {
		return nil, nil
	}
	return normalized, nil
}
