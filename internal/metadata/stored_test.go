package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

func TestValidateStored_NilMetadataNoRequired(t *testing.T) {
	defs := []field.Definition{textField(1, "Maker")}

	payload, errs := ValidateStored(defs, nil)

	assert.Nil(t, payload)
	assert.Empty(t, errs)
}

func TestValidateStored_NilMetadataWithRequired(t *testing.T) {
	defs := []field.Definition{
		{ID: 1, Name: "Maker", FieldType: field.TypeText, IsRequired: true},
	}

	payload, errs := ValidateStored(defs, nil)

	assert.Nil(t, payload)
	require.Len(t, errs, 1)
	assert.Equal(t, "Maker", errs[0].Field)
	assert.Equal(t, "Field is required", errs[0].Message)
}

func TestValidateStored_UnknownFieldRejected(t *testing.T) {
	defs := []field.Definition{textField(1, "Maker")}

	payload, errs := ValidateStored(defs, map[string]any{"Maker": "x", "Origin": "y"})

	assert.Nil(t, payload)
	require.Len(t, errs, 1)
	assert.Equal(t, "Origin", errs[0].Field)
	assert.Equal(t, "Unknown field", errs[0].Message)
}

func TestValidateStored_NumberRejectsStringsAndBools(t *testing.T) {
	defs := []field.Definition{{ID: 1, Name: "Year", FieldType: field.TypeNumber}}

	_, errs := ValidateStored(defs, map[string]any{"Year": "1912"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Value must be a number", errs[0].Message)

	_, errs = ValidateStored(defs, map[string]any{"Year": true})
	require.Len(t, errs, 1)
	assert.Equal(t, "Value must be a number", errs[0].Message)

	payload, errs := ValidateStored(defs, map[string]any{"Year": 1912.0})
	assert.Empty(t, errs)
	assert.Equal(t, 1912.0, payload["Year"])
}

func TestValidateStored_OptionalTextKeepsEmptyString(t *testing.T) {
	defs := []field.Definition{textField(1, "Maker")}

	payload, errs := ValidateStored(defs, map[string]any{"Maker": "   "})

	assert.Empty(t, errs)
	assert.Equal(t, "", payload["Maker"])
}

func TestValidateStored_ProvidedEmptyObjectNormalizesToEmptyMap(t *testing.T) {
	defs := []field.Definition{textField(1, "Maker")}

	payload, errs := ValidateStored(defs, map[string]any{})

	assert.Empty(t, errs)
	require.NotNil(t, payload)
	assert.Empty(t, payload)
}

func TestValidateStored_SelectAgainstOptions(t *testing.T) {
	defs := []field.Definition{selectField(2, "Material", "Bronze", "Silver")}

	payload, errs := ValidateStored(defs, map[string]any{"Material": " Silver "})
	assert.Empty(t, errs)
	assert.Equal(t, "Silver", payload["Material"])

	_, errs = ValidateStored(defs, map[string]any{"Material": "Gold"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Value must be one of: Bronze, Silver", errs[0].Message)
}
