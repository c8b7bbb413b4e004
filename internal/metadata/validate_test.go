package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

func selectField(id uint, name string, options ...string) field.Definition {
	return field.Definition{
		ID:        id,
		Name:      name,
		FieldType: field.TypeSelect,
		Options:   field.EncodeOptions(options),
	}
}

func TestNormalize_EmptyDraftNoRequiredFields(t *testing.T) {
	defs := []field.Definition{
		textField(1, "Maker"),
		{ID: 2, Name: "Year", FieldType: field.TypeNumber},
	}

	result := Normalize(defs, Draft{})

	assert.Nil(t, result.Payload)
	assert.Empty(t, result.Errors)
}

func TestNormalize_RequiredShortCircuitsTypeCheck(t *testing.T) {
	defs := []field.Definition{
		{ID: 3, Name: "Year", FieldType: field.TypeNumber, IsRequired: true},
	}

	result := Normalize(defs, Draft{"3": ""})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, uint(3), result.Errors[0].FieldID)
	assert.Equal(t, "Field is required", result.Errors[0].Message)
	assert.Nil(t, result.Payload)
}

func TestNormalize_OptionalEmptySkipsSilently(t *testing.T) {
	defs := []field.Definition{
		{ID: 3, Name: "Year", FieldType: field.TypeNumber},
	}

	result := Normalize(defs, Draft{"3": "   "})

	assert.Empty(t, result.Errors)
	assert.Nil(t, result.Payload)
}

func TestNormalize_Number(t *testing.T) {
	defs := []field.Definition{{ID: 1, Name: "Year", FieldType: field.TypeNumber}}

	result := Normalize(defs, Draft{"1": "1912"})
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1912.0, result.Payload["Year"])

	result = Normalize(defs, Draft{"1": "twelve"})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Value must be a number", result.Errors[0].Message)
}

func TestNormalize_Text(t *testing.T) {
	defs := []field.Definition{textField(1, "Maker")}

	result := Normalize(defs, Draft{"1": "  Junghans  "})
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Junghans", result.Payload["Maker"])
}

func TestNormalize_DateShapeButInvalidCalendar(t *testing.T) {
	defs := []field.Definition{{ID: 2, Name: "Acquired", FieldType: field.TypeDate}}

	result := Normalize(defs, Draft{"2": "2024-13-01"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Value must be a date (YYYY-MM-DD)", result.Errors[0].Message)
	assert.Nil(t, result.Payload)
}

func TestNormalize_DateValid(t *testing.T) {
	defs := []field.Definition{{ID: 2, Name: "Acquired", FieldType: field.TypeDate}}

	result := Normalize(defs, Draft{"2": "2024-02-29"})

	assert.Empty(t, result.Errors)
	assert.Equal(t, "2024-02-29", result.Payload["Acquired"])
}

func TestNormalize_Timestamp(t *testing.T) {
	defs := []field.Definition{{ID: 4, Name: "Seen", FieldType: field.TypeTimestamp}}

	t.Run("space separator accepted, original string kept", func(t *testing.T) {
		result := Normalize(defs, Draft{"4": "2024-05-01 10:30"})
		assert.Empty(t, result.Errors)
		assert.Equal(t, "2024-05-01 10:30", result.Payload["Seen"])
	})

	t.Run("trailing Z accepted", func(t *testing.T) {
		result := Normalize(defs, Draft{"4": "2024-05-01T10:30:00Z"})
		assert.Empty(t, result.Errors)
		assert.Equal(t, "2024-05-01T10:30:00Z", result.Payload["Seen"])
	})

	t.Run("missing separator rejected", func(t *testing.T) {
		result := Normalize(defs, Draft{"4": "2024-05-01"})
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Value must be a timestamp (ISO 8601)", result.Errors[0].Message)
	})
}

func TestNormalize_Checkbox(t *testing.T) {
	defs := []field.Definition{{ID: 5, Name: "Working", FieldType: field.TypeCheckbox}}

	result := Normalize(defs, Draft{"5": true})
	assert.Empty(t, result.Errors)
	assert.Equal(t, true, result.Payload["Working"])

	result = Normalize(defs, Draft{"5": 1})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Value must be true or false", result.Errors[0].Message)
}

func TestNormalize_SelectOutOfRange(t *testing.T) {
	defs := []field.Definition{selectField(6, "Material", "Bronze", "Silver")}

	result := Normalize(defs, Draft{"6": "Gold"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, uint(6), result.Errors[0].FieldID)
	assert.Equal(t, "Value must be one of: Bronze, Silver", result.Errors[0].Message)
	assert.Nil(t, result.Payload)
}

func TestNormalize_SelectCaseSensitiveAfterTrim(t *testing.T) {
	defs := []field.Definition{selectField(6, "Material", "Bronze", "Silver")}

	result := Normalize(defs, Draft{"6": "  Bronze "})
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Bronze", result.Payload["Material"])

	result = Normalize(defs, Draft{"6": "bronze"})
	require.Len(t, result.Errors, 1)
}

func TestNormalize_SelectMissingOptions(t *testing.T) {
	defs := []field.Definition{{ID: 6, Name: "Material", FieldType: field.TypeSelect}}

	result := Normalize(defs, Draft{"6": "Bronze"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Select field is missing options", result.Errors[0].Message)
}

func TestNormalize_UnsupportedType(t *testing.T) {
	defs := []field.Definition{{ID: 9, Name: "Weird", FieldType: "color"}}

	result := Normalize(defs, Draft{"9": "red"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Unsupported field type", result.Errors[0].Message)
}

func TestNormalize_ErrorsDoNotBlockOtherFields(t *testing.T) {
	defs := []field.Definition{
		textField(1, "Maker"),
		{ID: 2, Name: "Year", FieldType: field.TypeNumber},
	}

	result := Normalize(defs, Draft{"1": "Junghans", "2": "soon"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, uint(2), result.Errors[0].FieldID)
	assert.Equal(t, "Junghans", result.Payload["Maker"])
	_, hasYear := result.Payload["Year"]
	assert.False(t, hasYear)
}

func TestDecodeOptions_DeduplicatesCaseInsensitively(t *testing.T) {
	raw := field.EncodeOptions([]string{"Bronze", "bronze", "Silver", "BRONZE"})
	assert.Equal(t, []string{"Bronze", "Silver"}, field.DecodeOptions(raw))
}
