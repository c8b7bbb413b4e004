package template

import "github.com/Endogen/antique-catalogue-sub001/internal/domain/field"

type TemplateFieldInput struct {
	Name       string          `json:"name" binding:"required,min=1,max=200" yaml:"name"`
	FieldType  field.FieldType `json:"field_type" binding:"required,oneof=text number date timestamp checkbox select" yaml:"field_type"`
	IsRequired bool            `json:"is_required" yaml:"is_required"`
	IsPrivate  bool            `json:"is_private" yaml:"is_private"`
	Options    []string        `json:"options" yaml:"options,omitempty"`
}

type CreateTemplateInput struct {
	Name   string               `json:"name" binding:"required,min=1,max=200"`
	Fields []TemplateFieldInput `json:"fields"`
}

type UpdateTemplateInput struct {
	Name   *string               `json:"name" binding:"omitempty,min=1,max=200"`
	Fields *[]TemplateFieldInput `json:"fields"`
}

type UpdateTemplateFieldInput struct {
	Name       *string          `json:"name" binding:"omitempty,min=1,max=200"`
	FieldType  *field.FieldType `json:"field_type" binding:"omitempty,oneof=text number date timestamp checkbox select"`
	IsRequired *bool            `json:"is_required"`
	IsPrivate  *bool            `json:"is_private"`
	Options    *[]string        `json:"options"`
}

type ReorderTemplateFieldsInput struct {
	FieldIDs []uint `json:"field_ids" binding:"required,min=1"`
}

// TemplateResponse bundles a template with its ordered fields.
type TemplateResponse struct {
	SchemaTemplate
	Fields []SchemaTemplateField `json:"fields"`
}

// TemplateYAML is the export/import document shape.
type TemplateYAML struct {
	Name   string               `yaml:"name"`
	Fields []TemplateFieldInput `yaml:"fields"`
}
