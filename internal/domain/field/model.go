package field

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// FieldType is the closed set of metadata attribute types. Both the defaults
// builder and the validator switch exhaustively over it; adding a type here
// without extending those switches is a compile-time visible gap.
type FieldType string

const (
	TypeText      FieldType = "text"
	TypeNumber    FieldType = "number"
	TypeDate      FieldType = "date"
	TypeTimestamp FieldType = "timestamp"
	TypeCheckbox  FieldType = "checkbox"
	TypeSelect    FieldType = "select"
)

// Known reports whether t is one of the declared field types.
func (t FieldType) Known() bool {
	switch t {
	case TypeText, TypeNumber, TypeDate, TypeTimestamp, TypeCheckbox, TypeSelect:
		return true
	}
	return false
}

// Definition is a server-declared metadata attribute of a collection. The
// options payload is stored as a JSON object {"options": [...]} to match the
// persisted shape used by schema templates as well.
type Definition struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CollectionID uint           `gorm:"not null;index;uniqueIndex:uq_fields_collection_name" json:"collection_id"`
	Name         string         `gorm:"size:200;not null;uniqueIndex:uq_fields_collection_name" json:"name"`
	FieldType    FieldType      `gorm:"size:20;not null" json:"field_type"`
	IsRequired   bool           `gorm:"default:false;not null" json:"is_required"`
	IsPrivate    bool           `gorm:"default:false;not null" json:"is_private"`
	Options      datatypes.JSON `json:"options,omitempty"`
	Position     int            `gorm:"not null" json:"position"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type optionsPayload struct {
	Options []string `json:"options"`
}

// OptionList decodes the select options in declaration order, dropping
// case-insensitive duplicates. Non-select fields and malformed payloads
// yield nil.
func (d Definition) OptionList() []string {
	return DecodeOptions(d.Options)
}

// DecodeOptions parses an {"options": [...]} JSON payload into an ordered,
// case-insensitively de-duplicated list.
func DecodeOptions(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var payload optionsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	if len(payload.Options) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(payload.Options))
	out := make([]string, 0, len(payload.Options))
	for _, opt := range payload.Options {
		key := strings.ToLower(opt)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, opt)
	}
	return out
}

// EncodeOptions builds the {"options": [...]} payload for persistence.
// A nil slice encodes to a null column.
func EncodeOptions(options []string) datatypes.JSON {
	if options == nil {
		return nil
	}
	raw, err := json.Marshal(optionsPayload{Options: options})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// SortDefinitions orders fields by position, ties broken by id ascending.
func SortDefinitions(defs []Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Position != defs[j].Position {
			return defs[i].Position < defs[j].Position
		}
		return defs[i].ID < defs[j].ID
	})
}
